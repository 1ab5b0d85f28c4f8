package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/fvollmer/hidwire/internal/hidio"
)

// Record is one decoded packet flattened for CSV export.
type Record struct {
	Transfer  int    `csv:"transfer"`
	Offset    int    `csv:"offset"`
	Type      string `csv:"type"`
	CommandID string `csv:"command_id"`
	Command   string `csv:"command"`
	Length    uint16 `csv:"declared_length"`
	Payload   int    `csv:"payload_bytes"`
	Text      string `csv:"text"`
}

// NewRecord flattens a decoded packet. Sync packets carry no id, so the
// command columns stay empty.
func NewRecord(transfer int, p hidio.Packet) Record {
	r := Record{
		Transfer: transfer,
		Offset:   p.Offset,
		Type:     p.Header.Type.String(),
		Length:   p.Header.Length,
		Payload:  len(p.Payload),
		Text:     p.Text,
	}
	if p.Header.Type != hidio.TypeSync {
		r.CommandID = fmt.Sprintf("0x%02X", p.CommandID)
		r.Command = hidio.CommandName(p.CommandID)
	}
	return r
}

// WriteCSV writes the records with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	b, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("report: marshal csv: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// WriteCSVFile is WriteCSV to a file on disk.
func WriteCSVFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
