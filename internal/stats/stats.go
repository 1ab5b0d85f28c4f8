// Package stats accumulates per-run decode counters for the replay
// summary.
package stats

import (
	"github.com/kelindar/bitmap"

	"github.com/fvollmer/hidwire/internal/hidio"
)

// Stats counts decoded packets by type and tracks which command ids
// were observed. Ids wider than the bitmap can index are counted but
// not tracked individually; the known id space ends at 0x51 anyway.
type Stats struct {
	seen        bitmap.Bitmap
	wide        map[uint32]struct{}
	byType      [8]int
	transfers   int
	packets     int
	diagnostics int
}

const maxTrackedID = 1 << 16

// AddTransfer records one decoded transfer's results.
func (s *Stats) AddTransfer(packets []hidio.Packet, diags []hidio.Diagnostic) {
	s.transfers++
	s.diagnostics += len(diags)
	for _, p := range packets {
		s.packets++
		s.byType[p.Header.Type]++
		if p.Header.Type == hidio.TypeSync {
			continue
		}
		if p.CommandID < maxTrackedID {
			s.seen.Set(p.CommandID)
		} else {
			if s.wide == nil {
				s.wide = make(map[uint32]struct{})
			}
			s.wide[p.CommandID] = struct{}{}
		}
	}
}

// Summary is the end-of-run report.
type Summary struct {
	Transfers   int
	Packets     int
	Diagnostics int
	ByType      map[string]int
	Commands    []string
}

func (s *Stats) Summary() Summary {
	sum := Summary{
		Transfers:   s.transfers,
		Packets:     s.packets,
		Diagnostics: s.diagnostics,
		ByType:      make(map[string]int),
	}
	for t, n := range s.byType {
		if n > 0 {
			sum.ByType[hidio.PacketType(t).String()] = n
		}
	}
	s.seen.Range(func(id uint32) {
		sum.Commands = append(sum.Commands, hidio.CommandName(id))
	})
	for id := range s.wide {
		sum.Commands = append(sum.Commands, hidio.CommandName(id))
	}
	return sum
}

// DistinctCommands returns how many different command ids were seen.
func (s *Stats) DistinctCommands() int {
	return s.seen.Count() + len(s.wide)
}
