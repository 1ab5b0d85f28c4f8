package hidio

// Header byte layout:
//
//	byte0: bits 7-5 packet type
//	       bit  4   continued flag
//	       bit  3   id width (0 = 32-bit, 1 = 16-bit)
//	       bit  2   reserved
//	       bits 1-0 high bits of the 10-bit length (non-Sync only)
//	byte1: low 8 bits of the 10-bit length (non-Sync only)
const (
	typeShift      = 5
	continuedMask  = 0x10
	idWidthMask    = 0x08
	reservedMask   = 0x04
	lengthHighMask = 0x03
)

// DecodeHeader decodes the packet header at the start of buf, which must
// hold at least one byte. Every byte pattern decodes to some header;
// there is no error path. The second return value is the number of
// header bytes consumed: 1 for Sync, otherwise 2 when available.
//
// When a non-Sync header is cut off after its first byte, the low eight
// bits of the length are missing from the capture. The returned Length
// keeps the high bits as a lower bound on the true value rather than
// guessing the rest.
func DecodeHeader(buf []byte) (Header, int) {
	b0 := buf[0]

	h := Header{
		Type:      PacketType(b0 >> typeShift),
		Continued: b0&continuedMask != 0,
		IDWidth:   Bits32,
		Reserved:  b0&reservedMask != 0,
	}
	if b0&idWidthMask != 0 {
		h.IDWidth = Bits16
	}

	if h.Type == TypeSync {
		return h, 1
	}

	if len(buf) >= 2 {
		h.Length = uint16(b0&lengthHighMask)<<8 | uint16(buf[1])
		return h, 2
	}

	h.Length = uint16(b0&lengthHighMask) << 8
	return h, 1
}
