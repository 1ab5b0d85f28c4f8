// Package config loads the host configuration: which decoder to attach
// to which transport key, plus logging options.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the TOML host configuration.
//
//	log_level = "debug"
//
//	[decoders]
//	"usb.interrupt/hid" = "hidio"
type Config struct {
	LogLevel string            `toml:"log_level"`
	Decoders map[string]string `toml:"decoders"`
}

// Default returns the configuration used when no file is given: the
// packet decoder attached to HID interrupt transfers.
func Default() Config {
	return Config{
		LogLevel: "info",
		Decoders: map[string]string{"usb.interrupt/hid": "hidio"},
	}
}

// Load reads and validates a configuration file. Missing fields fall
// back to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot be wired at startup.
func Validate(cfg Config) error {
	if len(cfg.Decoders) == 0 {
		return fmt.Errorf("config: no decoders mapped to transport keys")
	}
	for key, name := range cfg.Decoders {
		if key == "" {
			return fmt.Errorf("config: empty transport key")
		}
		if name == "" {
			return fmt.Errorf("config: transport key %q has no decoder name", key)
		}
	}
	return nil
}
