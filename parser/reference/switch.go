// Package reference is a second, independent implementation of the same
// state machine package parser drives from its precomputed table. It is
// written as a plain switch over the current state, the way the
// algorithm reads in prose, and exists solely so tests can cross-check
// the table-driven implementation against it on the same input.
//
// One deliberate, documented divergence exists between this oracle and
// the production parser, concerning the handling of C0 controls while
// only the first part of a device control string has been seen
// (DCS_Entry): this oracle reports Execute, the production parser
// reports Ignore. Tests that compare the two must treat DCS_Entry's C0
// range as an expected difference rather than a bug.
package reference

import (
	"github.com/dechex/vtparse/ansi"
	"github.com/dechex/vtparse/parser"
)

// Oracle mirrors the shape of parser.Parser closely enough that tests
// can drive both with the same input and diff their sink calls.
type Oracle struct {
	state parser.State
	sink  parser.ActionFunc
}

// NewOracle returns an Oracle in the Ground state.
func NewOracle(sink parser.ActionFunc) *Oracle {
	if sink == nil {
		sink = func(parser.ActionClass, parser.Action, rune) {}
	}
	return &Oracle{state: parser.StateGround, sink: sink}
}

// State reports the oracle's current state.
func (o *Oracle) State() parser.State { return o.state }

// Reset returns the oracle to Ground.
func (o *Oracle) Reset() { o.state = parser.StateGround }

func in(lo, hi uint8, c rune) bool {
	return c >= rune(lo) && c <= rune(hi)
}

// Advance feeds one decoded code point through the switch-form
// recognizer.
func (o *Oracle) Advance(cp rune) {
	if o.state == parser.StateGround && ansi.IsPrintableRune(cp) {
		o.sink(parser.ActionClassEvent, parser.ActionPrint, cp)
		return
	}

	// anywhere rules (§4.4), completed to include the 8-bit CSI and OSC
	// introducers alongside the ones every state diagram agrees on.
	switch {
	case cp == 0x18 || cp == 0x1A || cp == 0x9C || in(0x80, 0x8F, cp) || in(0x91, 0x97, cp) || cp == 0x99 || cp == 0x9A:
		o.transitionTo(parser.StateGround, parser.ActionIgnore, cp)
		return
	case cp == 0x1B:
		o.transitionTo(parser.StateEscape, parser.ActionIgnore, cp)
		return
	case cp == 0x90:
		o.transitionTo(parser.StateDCSEntry, parser.ActionIgnore, cp)
		return
	case cp == 0x9B:
		o.transitionTo(parser.StateCSIEntry, parser.ActionIgnore, cp)
		return
	case cp == 0x9D:
		o.transitionTo(parser.StateOSCString, parser.ActionIgnore, cp)
		return
	case cp == 0x98 || cp == 0x9E || cp == 0x9F:
		o.transitionTo(parser.StateSosPmApcString, parser.ActionIgnore, cp)
		return
	}

	if cp < 0 || cp > 0xFF {
		o.logInvalid(cp)
		return
	}
	c := uint8(cp)
	isExecute := ansi.IsExecute(c)
	isParam := ansi.IsParam(c)

	switch o.state {
	case parser.StateGround:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case ansi.IsPrintable(c):
			o.event(parser.ActionPrint, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateEscape:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case c == 0x58 || c == 0x5E || c == 0x5F:
			o.transitionTo(parser.StateSosPmApcString, parser.ActionIgnore, cp)
		case c == 0x50:
			o.transitionTo(parser.StateDCSEntry, parser.ActionIgnore, cp)
		case c == 0x5D:
			o.transitionTo(parser.StateOSCString, parser.ActionIgnore, cp)
		case c == 0x5B:
			o.transitionTo(parser.StateCSIEntry, parser.ActionIgnore, cp)
		case in(0x30, 0x4F, cp) || in(0x51, 0x57, cp) || c == 0x59 || c == 0x5A || c == 0x5C || in(0x60, 0x7E, cp):
			o.transitionTo(parser.StateGround, parser.ActionESCDispatch, cp)
		case in(0x20, 0x2F, cp):
			o.transitionTo(parser.StateEscapeIntermediate, parser.ActionCollect, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateEscapeIntermediate:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case in(0x20, 0x2F, cp):
			o.event(parser.ActionCollect, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case in(0x30, 0x7E, cp):
			o.transitionTo(parser.StateGround, parser.ActionESCDispatch, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateCSIEntry:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateGround, parser.ActionCSIDispatch, cp)
		case in(0x20, 0x2F, cp):
			o.transitionTo(parser.StateCSIIntermediate, parser.ActionCollect, cp)
		case c == 0x3A:
			o.event(parser.ActionIgnore, cp)
		case isParam:
			o.transitionTo(parser.StateCSIParam, parser.ActionParam, cp)
		case in(0x3C, 0x3F, cp):
			o.transitionTo(parser.StateCSIParam, parser.ActionCollect, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateCSIParam:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case isParam:
			o.event(parser.ActionParam, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case c == 0x3A || in(0x3C, 0x3F, cp):
			o.transitionTo(parser.StateCSIIgnore, parser.ActionIgnore, cp)
		case in(0x20, 0x2F, cp):
			o.transitionTo(parser.StateCSIIntermediate, parser.ActionCollect, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateGround, parser.ActionCSIDispatch, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateCSIIntermediate:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case in(0x20, 0x2F, cp):
			o.event(parser.ActionCollect, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case in(0x30, 0x3F, cp):
			o.transitionTo(parser.StateCSIIgnore, parser.ActionIgnore, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateGround, parser.ActionCSIDispatch, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateCSIIgnore:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case in(0x20, 0x3F, cp) || c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateGround, parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateDCSEntry:
		switch {
		case isExecute:
			// Deliberately Execute here, not Ignore: see package doc.
			o.event(parser.ActionExecute, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case in(0x20, 0x2F, cp):
			o.transitionTo(parser.StateDCSIntermediate, parser.ActionCollect, cp)
		case c == 0x3A:
			o.transitionTo(parser.StateDCSIgnore, parser.ActionIgnore, cp)
		case isParam:
			o.transitionTo(parser.StateDCSParam, parser.ActionParam, cp)
		case in(0x3C, 0x3F, cp):
			o.transitionTo(parser.StateDCSParam, parser.ActionCollect, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateDCSPassThrough, parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateDCSParam:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case isParam:
			o.event(parser.ActionParam, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case c == 0x3A || in(0x3C, 0x3F, cp):
			o.transitionTo(parser.StateDCSIgnore, parser.ActionIgnore, cp)
		case in(0x20, 0x2F, cp):
			o.transitionTo(parser.StateDCSIntermediate, parser.ActionCollect, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateDCSPassThrough, parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateDCSIntermediate:
		switch {
		case isExecute:
			o.event(parser.ActionExecute, cp)
		case in(0x20, 0x2F, cp):
			o.event(parser.ActionCollect, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		case in(0x30, 0x3F, cp):
			o.transitionTo(parser.StateDCSIgnore, parser.ActionIgnore, cp)
		case in(0x40, 0x7E, cp):
			o.transitionTo(parser.StateDCSPassThrough, parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateDCSPassThrough:
		switch {
		case isExecute || in(0x20, 0x7E, cp):
			o.event(parser.ActionPut, cp)
		case c == 0x7F:
			o.event(parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateDCSIgnore:
		switch {
		case isExecute || in(0x20, 0x7F, cp):
			o.event(parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateOSCString:
		switch {
		case isExecute:
			o.event(parser.ActionIgnore, cp)
		case in(0x20, 0x7F, cp):
			o.event(parser.ActionOSCPut, cp)
		default:
			o.logInvalid(cp)
		}

	case parser.StateSosPmApcString:
		switch {
		case isExecute || in(0x20, 0x7F, cp):
			o.event(parser.ActionIgnore, cp)
		default:
			o.logInvalid(cp)
		}

	default:
		o.logInvalid(cp)
	}
}

func (o *Oracle) event(action parser.Action, cp rune) {
	o.sink(parser.ActionClassEvent, action, cp)
}

// exitAction and entryAction default to Ignore, not Undefined: Leave
// and Enter fire on every genuine transition regardless of whether the
// state in question defines anything special to do (see §8 S2 in the
// behavioral walkthroughs).
func exitAction(s parser.State) parser.Action {
	switch s {
	case parser.StateDCSPassThrough:
		return parser.ActionUnhook
	case parser.StateOSCString:
		return parser.ActionOSCEnd
	default:
		return parser.ActionIgnore
	}
}

func entryAction(s parser.State) parser.Action {
	switch s {
	case parser.StateEscape, parser.StateCSIEntry, parser.StateDCSEntry:
		return parser.ActionClear
	case parser.StateDCSPassThrough:
		return parser.ActionHook
	case parser.StateOSCString:
		return parser.ActionOSCStart
	default:
		return parser.ActionIgnore
	}
}

func (o *Oracle) transitionTo(target parser.State, action parser.Action, cp rune) {
	o.sink(parser.ActionClassLeave, exitAction(o.state), cp)
	o.sink(parser.ActionClassTransition, action, cp)
	o.state = target
	o.sink(parser.ActionClassEnter, entryAction(target), cp)
}

func (o *Oracle) logInvalid(cp rune) {
	// Malformed input is absorbed silently in the oracle; the
	// production parser is responsible for diagnostics.
	_ = cp
}
