package hidio

import (
	"encoding/binary"
	"fmt"
)

// CmdTerminalCommand is the only command id with a modeled payload: a
// UTF-8 string to run on the host terminal.
const CmdTerminalCommand uint32 = 0x31

// decodeCommandID reads the little-endian command id that follows the
// header. ok is false when the transfer ends before the full id; a
// short id is never partially decoded.
func decodeCommandID(buf []byte, width IDWidth) (id uint32, ok bool) {
	if len(buf) < width.Bytes() {
		return 0, false
	}
	if width == Bits16 {
		return uint32(binary.LittleEndian.Uint16(buf)), true
	}
	return binary.LittleEndian.Uint32(buf), true
}

// commandNames maps the known command ids to display names. Lookup
// only; decoding never branches on this table. Ids outside it are valid
// but unnamed.
var commandNames = map[uint32]string{
	0x00: "Supported Ids",
	0x01: "Get Info",
	0x02: "Test Packet",
	0x03: "Reset HID-IO",
	0x10: "Get Properties",
	0x11: "USB Key State",
	0x12: "Keyboard Layout",
	0x13: "Button Layout",
	0x14: "Keycap Types",
	0x15: "LED Layout",
	0x16: "Flash Mode",
	0x17: "UTF-8 Character Stream",
	0x18: "UTF-8 State",
	0x19: "Trigger Host Macro",
	0x1A: "Sleep Mode",
	0x20: "KLL Trigger State",
	0x21: "Pixel Settings",
	0x22: "Pixel Set (1ch, 8bit)",
	0x23: "Pixel Set (3ch, 8bit)",
	0x24: "Pixel Set (1ch, 16bit)",
	0x25: "Pixel Set (3ch, 16bit)",
	0x30: "Open URL",
	0x31: "Terminal Command",
	0x32: "Get OS Layout",
	0x33: "Set OS Layout",
	0x34: "Terminal Output",
	0x40: "HID Keyboard State",
	0x41: "HID Keyboard LED State",
	0x42: "HID Mouse State",
	0x43: "HID Joystick State",
	0x50: "Manufacturing Test",
	0x51: "Manufacturing Test Result",
}

// CommandName returns the display name of a command id, or a hex
// placeholder for ids outside the known set.
func CommandName(id uint32) string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", id)
}
