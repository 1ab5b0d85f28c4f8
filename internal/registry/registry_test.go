package registry

import (
	"testing"

	"github.com/fvollmer/hidwire/internal/hidio"
)

func TestRegisterAndLookup(t *testing.T) {
	r := New()

	if err := r.Register("usb.interrupt/hid", hidio.DecodeAll); err != nil {
		t.Fatalf("Register: %v", err)
	}

	dec, ok := r.Lookup("usb.interrupt/hid")
	if !ok {
		t.Fatal("Lookup did not find registered key")
	}
	packets, _ := dec([]byte{0x60})
	if len(packets) != 1 || packets[0].Header.Type != hidio.TypeSync {
		t.Errorf("registered decoder returned %v", packets)
	}

	if _, ok := r.Lookup("usb.bulk/vendor"); ok {
		t.Error("Lookup found a key that was never registered")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := New()

	if err := r.Register("usb.interrupt/hid", hidio.DecodeAll); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("usb.interrupt/hid", hidio.DecodeAll); err == nil {
		t.Error("expected error on duplicate registration")
	}
	if err := r.Register("", hidio.DecodeAll); err == nil {
		t.Error("expected error on empty key")
	}
	if err := r.Register("usb.bulk/vendor", nil); err == nil {
		t.Error("expected error on nil decoder")
	}
}
