// Package stream exposes the single entry point a caller actually uses:
// feed it bytes as they arrive over a pty or socket, get back Actions
// through a sink. It wires a UTF-8 decoder ahead of the state machine
// driver in package parser, persisting both across calls so a sequence
// split across two reads still parses correctly.
package stream

import (
	"github.com/dechex/vtparse/ansi"
	"github.com/dechex/vtparse/logger"
	"github.com/dechex/vtparse/parser"
	"github.com/dechex/vtparse/utf8"
)

// Options configures a Stream. The zero value is valid.
type Options struct {
	// Sink receives every Action the underlying parser fires.
	Sink parser.ActionFunc
	// Logger receives diagnostics about malformed UTF-8 and unrecognised
	// input. Defaults to a no-op.
	Logger logger.Logger
}

// Stream decodes UTF-8 and drives the escape-sequence state machine over
// a byte stream that may arrive in arbitrarily sized fragments.
type Stream struct {
	parser *parser.Parser
	utf8   *utf8.Decoder
	log    logger.Logger
}

// New returns a Stream in its initial state, ready for the first
// fragment of a fresh connection.
func New(opts Options) *Stream {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &Stream{
		parser: parser.New(parser.Options{Sink: opts.Sink, Logger: log}),
		utf8:   utf8.NewDecoder(),
		log:    log,
	}
}

// Reset returns the stream to its initial state: Ground, with no
// partial UTF-8 sequence pending. Call this when starting a new logical
// stream on a reused Stream value (the parser never resets itself).
func (s *Stream) Reset() {
	s.parser.Reset()
	s.utf8.Reset()
}

// State reports the parser's current state, primarily for diagnostics
// and tests.
func (s *Stream) State() parser.State { return s.parser.State() }

// ParseFragment feeds a contiguous span of bytes through the UTF-8
// decoder and the state machine driver, byte by byte. It always
// consumes the entire fragment: every byte advances the decoder's
// cursor exactly once, regardless of whether it produced a code point,
// extended a sequence in progress, or was rejected as malformed.
//
// Parser state and any partial UTF-8 sequence persist across calls, so
// a multi-byte sequence or an escape sequence split at a fragment
// boundary is handled correctly on the next call.
func (s *Stream) ParseFragment(data []byte) {
	for _, b := range data {
		s.next(b)
	}
}

func (s *Stream) next(b byte) {
	result := s.utf8.Next(b)
	switch result.Kind {
	case utf8.Incomplete:
		return
	case utf8.Invalid:
		s.log.Warn("vtparse: invalid utf-8 byte", "byte", ansi.String(rune(b)))
		s.parser.Advance(result.Replacement)
		if !result.Consumed {
			// b itself wasn't part of the rejected sequence; it starts a
			// new one and must be decoded again from scratch.
			s.next(b)
		}
	case utf8.Success:
		s.parser.Advance(result.Value)
	}
}
