package report

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/fvollmer/hidwire/internal/hidio"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out := log.StandardLogger().Out
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(out) })
	return &buf
}

func TestLogSinkForwardsDiagnostics(t *testing.T) {
	buf := captureLog(t)

	sink := &LogSink{Transfer: 3}
	hidio.Decode([]byte{0x08, 0x0A, 0x31, 0x00, 'a'}, sink)

	got := buf.String()
	if !strings.Contains(got, "truncated packet") {
		t.Errorf("log output missing diagnostic: %q", got)
	}
	if !strings.Contains(got, "Missing=7") {
		t.Errorf("log output missing byte count: %q", got)
	}
}

func TestLogPacketText(t *testing.T) {
	buf := captureLog(t)

	packets, _ := hidio.DecodeAll([]byte{0x08, 0x04, 0x31, 0x00, 'H', 'i'})
	LogPacket(0, packets[0])

	got := buf.String()
	if !strings.Contains(got, "Terminal Command") || !strings.Contains(got, "Hi") {
		t.Errorf("log output = %q", got)
	}
}
