// Package vtparse is the public entry point: a DEC ANSI / VT100
// compatible escape-sequence recognizer that turns a byte stream into a
// sequence of atomic Actions, suitable for driving a terminal emulator,
// a pty multiplexer, or any other consumer that wants to react to
// control sequences without committing to a particular screen model.
package vtparse

import (
	"fmt"
	"runtime/debug"

	"github.com/dechex/vtparse/logger"
	"github.com/dechex/vtparse/parser"
	"github.com/dechex/vtparse/stream"
)

// Re-exported so callers never need to import package parser directly
// for the common case.
type (
	State       = parser.State
	Action      = parser.Action
	ActionClass = parser.ActionClass
	ActionFunc  = parser.ActionFunc
)

const (
	StateGround             = parser.StateGround
	StateEscape             = parser.StateEscape
	StateEscapeIntermediate = parser.StateEscapeIntermediate
	StateCSIEntry           = parser.StateCSIEntry
	StateCSIParam           = parser.StateCSIParam
	StateCSIIntermediate    = parser.StateCSIIntermediate
	StateCSIIgnore          = parser.StateCSIIgnore
	StateDCSEntry           = parser.StateDCSEntry
	StateDCSParam           = parser.StateDCSParam
	StateDCSIntermediate    = parser.StateDCSIntermediate
	StateDCSPassThrough     = parser.StateDCSPassThrough
	StateDCSIgnore          = parser.StateDCSIgnore
	StateOSCString          = parser.StateOSCString
	StateSosPmApcString     = parser.StateSosPmApcString
)

const (
	ActionIgnore      = parser.ActionIgnore
	ActionPrint       = parser.ActionPrint
	ActionExecute     = parser.ActionExecute
	ActionClear       = parser.ActionClear
	ActionCollect     = parser.ActionCollect
	ActionParam       = parser.ActionParam
	ActionESCDispatch = parser.ActionESCDispatch
	ActionCSIDispatch = parser.ActionCSIDispatch
	ActionHook        = parser.ActionHook
	ActionPut         = parser.ActionPut
	ActionUnhook      = parser.ActionUnhook
	ActionOSCStart    = parser.ActionOSCStart
	ActionOSCPut      = parser.ActionOSCPut
	ActionOSCEnd      = parser.ActionOSCEnd
)

const (
	ActionClassEnter      = parser.ActionClassEnter
	ActionClassEvent      = parser.ActionClassEvent
	ActionClassLeave      = parser.ActionClassLeave
	ActionClassTransition = parser.ActionClassTransition
)

// Options configures a Parser.
type Options struct {
	// Sink receives every Action fired while parsing. Required for the
	// parser to be of any use; a nil Sink silently discards everything.
	Sink ActionFunc
	// Logger receives diagnostics about malformed UTF-8 and unrecognised
	// input. Defaults to a no-op logger.
	Logger logger.Logger
}

// Parser recognizes DEC ANSI / VT100 escape sequences in a byte stream
// that may arrive in arbitrarily sized fragments, reporting recognized
// constructs to the configured sink one atomic Action at a time.
//
// A Parser is not safe for concurrent use by multiple goroutines.
type Parser struct {
	stream *stream.Stream
	logger logger.Logger
}

// New returns a Parser in the Ground state.
func New(opts Options) *Parser {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &Parser{
		stream: stream.New(stream.Options{Sink: opts.Sink, Logger: log}),
		logger: log,
	}
}

// State reports the parser's current state.
func (p *Parser) State() State { return p.stream.State() }

// Reset returns the parser to Ground with no partial UTF-8 sequence
// pending. Use this when reusing a Parser for a new logical stream.
func (p *Parser) Reset() { p.stream.Reset() }

// ParseFragment feeds a contiguous span of bytes — e.g. one read() off a
// pty — through the parser. Malformed input never produces an error:
// malformed UTF-8 and unrecognised (state, code point) pairs are absorbed
// and logged, never propagated, so a hostile or buggy peer can never
// abort parsing.
//
// The only error it returns comes from a panic inside the sink, which is
// recovered and returned as an error so a
// caller driving many Parsers (e.g. one per pty) can isolate a failure
// to a single stream rather than taking the whole process down.
func (p *Parser) ParseFragment(data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("vtparse: panic in sink", "recovered", r)
			debug.PrintStack()
			err = fmt.Errorf("vtparse: panic in sink: %v", r)
		}
	}()
	p.stream.ParseFragment(data)
	return nil
}
