package parser

// State is one value of the DEC ANSI parser state machine
// (vt100.net/emu/dec_ansi_parser).
//
// StateUndefined is never entered at runtime; it is the zero value and
// exists purely as a table-lookup miss indicator.
type State int

const (
	StateUndefined State = iota

	StateGround
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassThrough
	StateDCSIgnore
	StateOSCString
	StateSosPmApcString

	stateCount = StateSosPmApcString + 1
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateEscapeIntermediate:
		return "EscapeIntermediate"
	case StateCSIEntry:
		return "CSIEntry"
	case StateCSIParam:
		return "CSIParam"
	case StateCSIIntermediate:
		return "CSIIntermediate"
	case StateCSIIgnore:
		return "CSIIgnore"
	case StateDCSEntry:
		return "DCSEntry"
	case StateDCSParam:
		return "DCSParam"
	case StateDCSIntermediate:
		return "DCSIntermediate"
	case StateDCSPassThrough:
		return "DCSPassThrough"
	case StateDCSIgnore:
		return "DCSIgnore"
	case StateOSCString:
		return "OSCString"
	case StateSosPmApcString:
		return "SosPmApcString"
	default:
		return "Undefined"
	}
}
