// Package utf8 provides a byte-at-a-time UTF-8 decoder suited to feeding
// a terminal escape-sequence parser: every call consumes exactly one
// byte and reports what that byte did, rather than buffering a whole
// string before producing output.
//
// The state machine is the one described by Bjoern Hoehrmann at
// http://bjoern.hoehrmann.de/utf-8/decoder/dfa, extended to surface
// malformed sequences as a replacement code point instead of silently
// losing them.
package utf8

// ResultKind distinguishes the three things a single byte can do to the
// decoder: extend a sequence still in progress, complete (or fail) one,
// or finish a sequence by producing a code point.
type ResultKind int

const (
	// Incomplete means the byte was consumed and extends a multi-byte
	// sequence still in progress; no code point is available yet.
	Incomplete ResultKind = iota
	// Invalid means the byte sequence decoded so far is malformed.
	// Replacement holds the code point to substitute (U+FFFD).
	// Consumed reports whether the byte that triggered the error was
	// itself consumed; if false, the caller must feed it again — it is
	// the first byte of whatever comes next.
	Invalid
	// Success means a complete code point was decoded. Value holds it.
	Success
)

// Result is the outcome of feeding one byte to the Decoder.
type Result struct {
	Kind        ResultKind
	Value       rune // valid when Kind == Success
	Replacement rune // valid when Kind == Invalid; always 0xFFFD
	Consumed    bool // whether the fed byte advanced the decoder's cursor
}

const (
	stateAccept = 0
	stateReject = 12
)

// table is Hoehrmann's byte-class map (first 256 entries) followed by
// the (state, class) -> state transition table.
var table = [364]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// Decoder is a UTF-8 decoder that consumes one byte at a time. The zero
// value is a decoder in the initial (accept) state.
type Decoder struct {
	state       uint8
	accumulator uint32
}

// NewDecoder returns a Decoder ready to decode from the start of a
// sequence.
func NewDecoder() *Decoder { return &Decoder{state: stateAccept} }

// Reset returns d to its initial state, discarding any in-progress
// sequence. Use this after an Invalid result whose Consumed is true and
// the caller has decided not to retry, or when resynchronising after an
// external signal (e.g. a received ESC) cuts a sequence short.
func (d *Decoder) Reset() {
	d.state = stateAccept
	d.accumulator = 0
}

// Next feeds one byte to the decoder. It always reports a Result;
// Consumed tells the caller whether the cursor advanced past c. The
// only case where it did not is an Invalid result for a continuation
// byte that turned out to be the start of the next, unrelated sequence
// — the caller must feed c again once it has reset or otherwise handled
// the Invalid result.
func (d *Decoder) Next(c uint8) Result {
	class := table[c]
	initial := d.state

	if d.state != stateAccept {
		d.accumulator = (d.accumulator << 6) | (uint32(c) & 0x3F)
	} else {
		d.accumulator = (uint32(0xFF) >> class) & uint32(c)
	}
	d.state = table[256+int(d.state)+int(class)]

	switch d.state {
	case stateAccept:
		cp := rune(d.accumulator)
		d.accumulator = 0
		return Result{Kind: Success, Value: cp, Consumed: true}

	case stateReject:
		d.state = stateAccept
		d.accumulator = 0
		return Result{Kind: Invalid, Replacement: 0xFFFD, Consumed: initial == stateAccept}

	default:
		return Result{Kind: Incomplete, Consumed: true}
	}
}
