// Package registry wires decoders to transport keys. The hosting
// application registers once at startup; after that lookups are
// read-only and safe from any goroutine.
package registry

import (
	"fmt"
	"sync"

	"github.com/fvollmer/hidwire/internal/hidio"
)

// Decoder decodes one transfer buffer into packets and diagnostics.
type Decoder func(buf []byte) ([]hidio.Packet, []hidio.Diagnostic)

type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

func New() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register binds a decoder to a transport key such as
// "usb.interrupt/hid". Registering a key twice is a wiring mistake and
// returns an error.
func (r *Registry) Register(key string, dec Decoder) error {
	if key == "" {
		return fmt.Errorf("registry: empty transport key")
	}
	if dec == nil {
		return fmt.Errorf("registry: nil decoder for key %q", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[key]; exists {
		return fmt.Errorf("registry: key %q already registered", key)
	}
	r.decoders[key] = dec
	return nil
}

// Lookup returns the decoder bound to key, if any.
func (r *Registry) Lookup(key string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dec, ok := r.decoders[key]
	return dec, ok
}

// Keys returns the registered transport keys.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		keys = append(keys, k)
	}
	return keys
}
