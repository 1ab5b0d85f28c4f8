package main

import (
	"os"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"

	"github.com/fvollmer/hidwire/internal/capture"
	"github.com/fvollmer/hidwire/internal/config"
	"github.com/fvollmer/hidwire/internal/hidio"
	"github.com/fvollmer/hidwire/internal/registry"
	"github.com/fvollmer/hidwire/internal/report"
	"github.com/fvollmer/hidwire/internal/stats"
)

type args struct {
	Capture string `arg:"positional,required" help:"capture log to replay"`
	Config  string `arg:"-c,--config" help:"host configuration file"`
	Out     string `arg:"-o,--out" help:"write decoded packets to a CSV file"`
	Verbose bool   `arg:"-v,--verbose" help:"debug logging"`
}

// decoderNames maps the decoder names usable in the configuration file
// to their implementations.
var decoderNames = map[string]registry.Decoder{
	"hidio": hidio.DecodeAll,
}

func main() {
	var a args
	arg.MustParse(&a)

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if a.Config != "" {
		var err error
		cfg, err = config.Load(a.Config)
		if err != nil {
			log.WithError(err).Fatal("Could not load configuration")
		}
	}

	if a.Verbose {
		log.SetLevel(log.DebugLevel)
	} else if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	reg := registry.New()
	for key, name := range cfg.Decoders {
		dec, ok := decoderNames[name]
		if !ok {
			log.WithField("Decoder", name).Fatal("Unknown decoder name in configuration")
		}
		if err := reg.Register(key, dec); err != nil {
			log.WithError(err).Fatal("Could not register decoder")
		}
		log.WithFields(log.Fields{
			"Key":     key,
			"Decoder": name,
		}).Debug("Registered decoder")
	}

	transfers, err := capture.ReadFile(a.Capture)
	if err != nil {
		log.WithError(err).Fatal("Could not read capture log")
	}

	var (
		run     stats.Stats
		records []report.Record
		skipped int
	)
	for i, tr := range transfers {
		dec, ok := reg.Lookup(tr.Key)
		if !ok {
			skipped++
			log.WithFields(log.Fields{
				"Key":  tr.Key,
				"Line": tr.Line,
			}).Debug("No decoder for transport key")
			continue
		}

		packets, diags := dec(tr.Data)
		run.AddTransfer(packets, diags)
		for _, p := range packets {
			report.LogPacket(i, p)
			records = append(records, report.NewRecord(i, p))
		}
		for _, d := range diags {
			report.LogDiagnostic(i, d)
		}
	}

	if a.Out != "" {
		if err := report.WriteCSVFile(a.Out, records); err != nil {
			log.WithError(err).Fatal("Could not write CSV export")
		}
		log.WithField("Path", a.Out).Info("Wrote CSV export")
	}

	sum := run.Summary()
	log.WithFields(log.Fields{
		"Transfers":   sum.Transfers,
		"Packets":     sum.Packets,
		"Diagnostics": sum.Diagnostics,
		"Commands":    run.DistinctCommands(),
		"Skipped":     skipped,
	}).Info("Replay finished")

	if sum.Diagnostics > 0 {
		os.Exit(1)
	}
}
