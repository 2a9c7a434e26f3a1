// Package parser implements the DEC ANSI / VT100-compatible
// escape-sequence state machine (vt100.net/emu/dec_ansi_parser): a
// driver that consumes one decoded code point at a time and reports,
// through a caller-supplied sink, which Actions fire and why.
//
// The state machine is deliberately inert with respect to terminal
// semantics. It never accumulates CSI parameters, intermediates or OSC
// payload bytes itself; Param, Collect, Put and OSC_Put events simply
// hand each byte to the sink, and collecting them into a command is the
// sink's job.
package parser

import (
	"github.com/dechex/vtparse/ansi"
	"github.com/dechex/vtparse/logger"
)

// Options configures a Parser. The zero value is valid: Sink defaults to
// a no-op and Logger to logger.Noop().
type Options struct {
	// Sink receives every Action the state machine fires. If nil, a
	// Parser discards every action it would otherwise report.
	Sink ActionFunc

	// Logger receives diagnostics about malformed input (unrecognised
	// (state, code point) pairs). If nil, diagnostics are discarded.
	Logger logger.Logger
}

// Parser drives the state machine one code point at a time. It holds no
// buffers of its own; the only state it carries between calls is the
// current State. A Parser is not safe for concurrent use by multiple
// goroutines without external synchronization.
type Parser struct {
	state State
	table *transitionTable
	sink  ActionFunc
	log   logger.Logger
}

// New returns a Parser in the Ground state.
func New(opts Options) *Parser {
	p := &Parser{
		state: StateGround,
		table: defaultTable,
		sink:  opts.Sink,
		log:   opts.Logger,
	}
	if p.sink == nil {
		p.sink = func(ActionClass, Action, rune) {}
	}
	if p.log == nil {
		p.log = logger.Noop()
	}
	return p
}

// State reports the parser's current state.
func (p *Parser) State() State { return p.state }

// Reset returns the parser to Ground without firing any actions,
// including Clear. Use this to recover from a desynchronised stream
// (e.g. after discarding unread bytes) rather than feeding a CAN.
func (p *Parser) Reset() { p.state = StateGround }

// Advance feeds one decoded code point to the state machine. It
// implements the fast path described in the data model (printable code
// points in Ground bypass the table lookup entirely) and otherwise
// follows the transition procedure: look up (state, cp), fire Leave on
// the current state, the Transition action, Enter on the next state, or
// — when the pair causes no state change — just the Event action.
//
// Code points the table has no entry for (outside the dense range and
// not covered by the Ground fast path) are logged and dropped; the
// parser's state is left unchanged.
func (p *Parser) Advance(cp rune) {
	if p.state == StateGround && ansi.IsPrintableRune(cp) {
		p.sink(ActionClassEvent, ActionPrint, cp)
		return
	}

	if cp < 0 || cp >= tableWidth {
		p.log.Warn("vtparse: code point outside table range", "state", p.state.String(), "cp", ansi.String(cp))
		return
	}

	c := uint8(cp)
	next, action := p.table.lookup(p.state, c)

	if next == StateUndefined {
		if action == ActionUndefined {
			p.log.Warn("vtparse: unrecognised input", "state", p.state.String(), "cp", ansi.String(cp))
			return
		}
		p.sink(ActionClassEvent, action, cp)
		return
	}

	// Leave and Enter fire unconditionally on every genuine transition —
	// exit/entry tables default to Ignore rather than Undefined, so
	// there is nothing to skip.
	from := p.state
	p.sink(ActionClassLeave, p.table.exit[from], cp)
	p.sink(ActionClassTransition, action, cp)
	p.state = next
	p.sink(ActionClassEnter, p.table.entry[next], cp)
}
