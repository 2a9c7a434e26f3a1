// Package ansi holds the byte-range classifier and the control-code
// mnemonics shared by the parser and its diagnostics.
package ansi

// we ignore SOH/STX: https://github.com/microsoft/terminal/issues/10786
// and XTERM control sequence doesn't support them too:
// https://www.x.org/docs/xterm/ctlseqs.pdf
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	ENQ uint8 // ENQ is the enquiry character (Caret: ^E).
	EOT uint8 // EOT is the end of transmission character (Caret: ^D).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	SO  uint8 // SO is the shift out character (Caret: ^N).
	SI  uint8 // SI is the shift in character (Caret: ^O).
	CAN uint8 // CAN cancels the sequence in progress and returns to ground.
	SUB uint8 // SUB cancels the sequence in progress and returns to ground.
	ESC uint8 // ESC is the Escape character (Caret: ^[).
}

// C0 (7-bit) control characters from ANSI X3.64 / VT100.
//
// This is not complete; control characters are only added here as the
// parser needs to distinguish them from the generic executable range.
var C0 = c0{
	NUL: 0x00,
	ENQ: 0x05,
	EOT: 0x04,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	SO:  0x0E,
	SI:  0x0F,
	CAN: 0x18,
	SUB: 0x1A,
	ESC: 0x1B,
}
