package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fvollmer/hidwire/internal/hidio"
)

func TestNewRecord(t *testing.T) {
	packets, _ := hidio.DecodeAll([]byte{0x60, 0x08, 0x04, 0x31, 0x00, 'H', 'i'})
	if len(packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(packets))
	}

	want := []Record{
		{Transfer: 7, Offset: 0, Type: "Sync"},
		{
			Transfer:  7,
			Offset:    1,
			Type:      "Data",
			CommandID: "0x31",
			Command:   "Terminal Command",
			Length:    4,
			Payload:   2,
			Text:      "Hi",
		},
	}
	got := []Record{NewRecord(7, packets[0]), NewRecord(7, packets[1])}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	records := []Record{
		{Transfer: 1, Type: "Data", CommandID: "0x31", Command: "Terminal Command", Length: 4, Payload: 2, Text: "Hi"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one record:\n%s", len(lines), buf.String())
	}
	if lines[0] != "transfer,offset,type,command_id,command,declared_length,payload_bytes,text" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Terminal Command") {
		t.Errorf("record line = %q", lines[1])
	}
}
