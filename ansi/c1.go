package ansi

// c1 holds the 8-bit control introducers the parser's anywhere rules act
// on. These are the single-byte equivalents of the 7-bit ESC-prefixed
// introducers, per the DEC ANSI state diagram (vt100.net/emu/dec_ansi_parser).
type c1 struct {
	IND uint8 // IND - Index.
	NEL uint8 // NEL - Next Line.
	SSA uint8 // SSA - Start of Selected Area.
	ESA uint8 // ESA - End of Selected Area.
	HTS uint8 // HTS - Horizontal Tab Set.
	SPA uint8 // SPA - Start of Guarded Area.
	EPA uint8 // EPA - End of Guarded Area.
	SOS uint8 // SOS - Start of String.
	DCS uint8 // DCS - Device Control String.
	PM  uint8 // PM  - Privacy Message.
	APC uint8 // APC - Application Program Command.
	CSI uint8 // CSI - Control Sequence Introducer.
	ST  uint8 // ST  - String Terminator.
	OSC uint8 // OSC - Operating System Command.
}

// C1 (8-bit) control introducers. Values 0x80-0x8F and 0x91-0x97 return
// to ground unconditionally, with Ignore as the Transition action; the
// parser treats them as one range, so the few of them named here (IND
// through EPA) serve diagnostics only. The rest drive a named
// anywhere-rule transition.
var C1 = c1{
	IND: 0x84,
	NEL: 0x85,
	SSA: 0x86,
	ESA: 0x87,
	HTS: 0x88,
	SPA: 0x96,
	EPA: 0x97,
	SOS: 0x98,
	DCS: 0x90,
	PM:  0x9E,
	APC: 0x9F,
	CSI: 0x9B,
	ST:  0x9C,
	OSC: 0x9D,
}
