// Package report renders decoded packets and diagnostics for the host:
// structured log lines during replay and CSV export at the end.
package report

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fvollmer/hidwire/internal/hidio"
)

// LogPacket writes one decoded packet as a structured log entry.
func LogPacket(transfer int, p hidio.Packet) {
	entry := log.WithFields(log.Fields{
		"Transfer": transfer,
		"Offset":   p.Offset,
		"Type":     p.Header.Type.String(),
	})
	if p.Header.Type == hidio.TypeSync {
		entry.Info("Sync")
		return
	}

	entry = entry.WithFields(log.Fields{
		"Command": hidio.CommandName(p.CommandID),
		"Id":      fmt.Sprintf("0x%02X", p.CommandID),
		"Width":   p.Header.IDWidth.String(),
		"Length":  p.Header.Length,
	})
	if p.Header.Continued {
		entry = entry.WithField("Continued", true)
	}
	if p.Text != "" {
		entry = entry.WithField("Text", p.Text)
	}
	entry.Info("Packet")
}

// LogDiagnostic writes one diagnostic as a structured warning.
func LogDiagnostic(transfer int, d hidio.Diagnostic) {
	entry := log.WithFields(log.Fields{
		"Transfer": transfer,
		"Offset":   d.Offset,
		"Length":   d.Length,
	})
	if d.Kind == hidio.DiagTruncatedPacket {
		entry = entry.WithField("Missing", d.Missing)
	}
	entry.Warn(d.Kind.String())
}

// LogSink is a hidio.Sink that forwards diagnostics to logrus as the
// decoder finds them.
type LogSink struct {
	Transfer int
}

func (s *LogSink) Emit(d hidio.Diagnostic) {
	LogDiagnostic(s.Transfer, d)
}
