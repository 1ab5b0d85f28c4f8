package hidio

// minBodyLength is the smallest valid declared length of a non-Sync
// packet: enough to hold a 16-bit command id.
const minBodyLength = 2

// Decode splits one interrupt transfer into its packets. Decoded
// packets hold sub-slices of buf; the caller must not modify buf while
// they are in use. Diagnostics go to sink, which may be nil.
//
// Truncated trailing packets decode with a clamped body and a
// TruncatedPacket diagnostic. A declared length too small to hold a
// command id means the length field cannot be trusted to locate the
// next packet, so the rest of the buffer is abandoned after an
// InvalidPacketLength diagnostic. A transfer that ends inside the
// command id abandons the rest of the buffer without a diagnostic.
func Decode(buf []byte, sink Sink) []Packet {
	if sink == nil {
		sink = discard{}
	}

	var packets []Packet
	for off := 0; off < len(buf); {
		hdr, hdrLen := DecodeHeader(buf[off:])

		if hdr.Type == TypeSync {
			packets = append(packets, Packet{Header: hdr, Offset: off})
			off += hdrLen
			continue
		}

		declared := int(hdr.Length)
		body := len(buf) - off - hdrLen
		if body > declared {
			body = declared
		}
		if body < declared {
			sink.Emit(Diagnostic{
				Kind:    DiagTruncatedPacket,
				Offset:  off,
				Length:  len(buf) - off,
				Missing: declared - body,
			})
		}
		if declared < minBodyLength {
			sink.Emit(Diagnostic{
				Kind:   DiagInvalidPacketLength,
				Offset: off,
				Length: hdrLen,
			})
			return packets
		}

		idOff := off + hdrLen
		id, ok := decodeCommandID(buf[idOff:], hdr.IDWidth)
		if !ok {
			return packets
		}

		payloadOff := idOff + hdr.IDWidth.Bytes()
		payloadEnd := idOff + body
		if payloadOff > payloadEnd {
			payloadOff = payloadEnd
		}

		pkt := Packet{
			Header:    hdr,
			Offset:    off,
			CommandID: id,
			Payload:   buf[payloadOff:payloadEnd],
		}
		dispatch(&pkt, payloadEnd-off, sink)
		packets = append(packets, pkt)

		// The next packet starts after the declared length whether or
		// not those bytes were present; a truncated trailing packet
		// pushes the offset past the end and the loop stops.
		off += hdrLen + declared
	}
	return packets
}

// DecodeAll is Decode with a Collector attached.
func DecodeAll(buf []byte) ([]Packet, []Diagnostic) {
	var c Collector
	packets := Decode(buf, &c)
	return packets, c.Diags
}

// dispatch maps (packet type, command id) to a payload representation.
// Only Data packets carrying a Terminal Command have a modeled payload;
// everything else stays opaque bytes. pktLen is the byte count of the
// packet as present in the buffer, header included.
func dispatch(p *Packet, pktLen int, sink Sink) {
	switch p.Header.Type {
	case TypeData:
		if p.CommandID == CmdTerminalCommand {
			p.Text = string(p.Payload)
			return
		}
		sink.Emit(Diagnostic{
			Kind:   DiagUnknownCommandID,
			Offset: p.Offset,
			Length: pktLen,
		})
	case TypeReserved:
		sink.Emit(Diagnostic{
			Kind:   DiagUnknownPacketType,
			Offset: p.Offset,
			Length: pktLen,
		})
	}
}
