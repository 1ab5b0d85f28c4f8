// Package capture reads transfer logs recorded by an external sniffer.
// The format is line based: transport key, direction, then the transfer
// bytes as hex. Blank lines and '#' comments are skipped.
//
//	usb.interrupt/hid IN 60 08 04 31 00 48 69
//	usb.interrupt/hid OUT 280205 00
package capture

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

type Direction uint8

const (
	DirIn Direction = iota
	DirOut
)

func (d Direction) String() string {
	if d == DirIn {
		return "IN"
	}
	return "OUT"
}

// Transfer is one recorded interrupt exchange: the unit a decoder is
// invoked on. Line is the 1-based source line, kept for error reports.
type Transfer struct {
	Key  string
	Dir  Direction
	Data []byte
	Line int
}

// ReadLog parses a capture log. It stops at the first malformed line so
// a mangled file is not half-imported.
func ReadLog(r io.Reader) ([]Transfer, error) {
	var transfers []Transfer

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want key, direction and bytes, got %q", line, text)
		}

		var dir Direction
		switch strings.ToUpper(fields[1]) {
		case "IN":
			dir = DirIn
		case "OUT":
			dir = DirOut
		default:
			return nil, fmt.Errorf("line %d: unknown direction %q", line, fields[1])
		}

		data, err := hex.DecodeString(strings.Join(fields[2:], ""))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad hex: %w", line, err)
		}

		transfers = append(transfers, Transfer{
			Key:  fields[0],
			Dir:  dir,
			Data: data,
			Line: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return transfers, nil
}

// ReadFile is ReadLog over a file on disk.
func ReadFile(path string) ([]Transfer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	transfers, err := ReadLog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return transfers, nil
}
