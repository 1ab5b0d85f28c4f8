// Package hidio decodes the packet stream carried over USB interrupt
// transfers by HID-IO capable devices. One transfer may hold several
// packets back to back; a packet never spans two transfers.
package hidio

// PacketType is the 3-bit packet class stored in the top bits of the
// first header byte. All eight codes decode, including Reserved.
type PacketType uint8

const (
	TypeData PacketType = iota
	TypeAck
	TypeNak
	TypeSync
	TypeContinued
	TypeNoAckData
	TypeNoAckContinued
	TypeReserved
)

var packetTypeNames = [8]string{
	"Data",
	"Acknowledge",
	"Negative Acknowledge",
	"Sync",
	"Continued",
	"No Acknowledge Data",
	"No Acknowledge Continued",
	"Reserved",
}

func (t PacketType) String() string {
	if int(t) < len(packetTypeNames) {
		return packetTypeNames[t]
	}
	return "Invalid"
}

// IDWidth selects the wire encoding of the command id.
type IDWidth uint8

const (
	Bits32 IDWidth = iota
	Bits16
)

// Bytes returns the number of bytes the command id occupies on the wire.
func (w IDWidth) Bytes() int {
	if w == Bits16 {
		return 2
	}
	return 4
}

func (w IDWidth) String() string {
	if w == Bits16 {
		return "16-bit"
	}
	return "32-bit"
}

// Header holds the decoded fields of the 1- or 2-byte packet header.
// Length is the declared byte count of command id plus payload; it does
// not include the header itself and is always 0 for Sync packets.
type Header struct {
	Type      PacketType
	Continued bool
	IDWidth   IDWidth
	Reserved  bool
	Length    uint16
}

// Packet is one decoded protocol unit. Payload is a sub-slice of the
// transfer buffer handed to Decode, clamped to the bytes actually
// present; nothing is copied. Text is set only for Data packets
// carrying a Terminal Command.
type Packet struct {
	Header    Header
	Offset    int
	CommandID uint32
	Payload   []byte
	Text      string
}
