package hidio

// DiagnosticKind classifies a malformed or unknown condition found
// during decoding.
type DiagnosticKind uint8

const (
	// DiagTruncatedPacket: the header declared more body bytes than the
	// transfer holds. Decoding continues with the clamped length.
	DiagTruncatedPacket DiagnosticKind = iota
	// DiagInvalidPacketLength: a non-Sync header declared a length too
	// small to hold a command id. The rest of the buffer is abandoned.
	DiagInvalidPacketLength
	// DiagUnknownPacketType: the Reserved packet type was seen.
	DiagUnknownPacketType
	// DiagUnknownCommandID: a Data packet carried a command id with no
	// payload decoder. The payload is exposed as opaque bytes.
	DiagUnknownCommandID
)

var diagnosticKindNames = [...]string{
	"truncated packet",
	"invalid packet length",
	"unknown packet type",
	"unknown command id",
}

func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticKindNames) {
		return diagnosticKindNames[k]
	}
	return "invalid"
}

// Diagnostic reports one condition, tied to the byte range [Offset,
// Offset+Length) of the transfer buffer it was found in. Missing is set
// only for DiagTruncatedPacket and counts the declared body bytes the
// transfer did not contain.
type Diagnostic struct {
	Kind    DiagnosticKind
	Offset  int
	Length  int
	Missing int
}

// Sink receives diagnostics as the decoder finds them.
type Sink interface {
	Emit(d Diagnostic)
}

// Collector is a Sink that gathers diagnostics into a slice.
type Collector struct {
	Diags []Diagnostic
}

func (c *Collector) Emit(d Diagnostic) {
	c.Diags = append(c.Diags, d)
}

type discard struct{}

func (discard) Emit(Diagnostic) {}
