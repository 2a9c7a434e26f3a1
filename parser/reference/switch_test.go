package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechex/vtparse/parser"
)

type call struct {
	class  parser.ActionClass
	action parser.Action
	cp     rune
}

// inDCSEntryDivergence detects the one documented divergence between this oracle and
// the production parser: C0 controls received while in DCS_Entry.
// Everywhere else the two implementations must agree exactly.
func inDCSEntryDivergence(p *parser.Parser, o *Oracle, cp rune) bool {
	return p.State() == parser.StateDCSEntry && o.State() == parser.StateDCSEntry &&
		((cp <= 0x17) || cp == 0x19 || (cp >= 0x1C && cp <= 0x1F))
}

func feed(t *testing.T, input string) (pCalls, oCalls []call) {
	t.Helper()
	p := parser.New(parser.Options{Sink: func(class parser.ActionClass, action parser.Action, cp rune) {
		pCalls = append(pCalls, call{class, action, cp})
	}})
	o := NewOracle(func(class parser.ActionClass, action parser.Action, cp rune) {
		oCalls = append(oCalls, call{class, action, cp})
	})

	for i := 0; i < len(input); i++ {
		cp := rune(input[i])
		skip := inDCSEntryDivergence(p, o, cp)
		p.Advance(cp)
		o.Advance(cp)
		if skip {
			// Drop the one call pair we know will disagree (Execute vs
			// Ignore) so the rest of the trace can still be compared.
			if n := len(pCalls); n > 0 {
				pCalls = pCalls[:n-1]
			}
			if n := len(oCalls); n > 0 {
				oCalls = oCalls[:n-1]
			}
		}
	}
	require.Equal(t, p.State(), o.State(), "table-driven and switch-form states diverged")
	return pCalls, oCalls
}

func TestOracleAgreesWithTableOnKnownSequences(t *testing.T) {
	sequences := []string{
		"hello, world",
		"\x1b[1;31mhi\x1b[0m",
		"\x1bc",
		"\x1b[?25h",
		"\x1bPqsome data\x1b\\",
		"\x1b]0;title\x1b\\",
		"\x1b]0;title\x07",
		"\x9bA",
		"\x90q1234\x9c",
		"\x1bX\x18",
		"\x1b[1\x1a\x1b[2J",
		string([]byte{0x80, 0x85, 0x8F, 0x91, 0x99, 0x9A}),
	}

	for _, seq := range sequences {
		t.Run(seq, func(t *testing.T) {
			pCalls, oCalls := feed(t, seq)
			assert.Equal(t, oCalls, pCalls)
		})
	}
}

func TestOracleAgreesWithTableOnAllBytePairs(t *testing.T) {
	// Drive both implementations through every byte value from each of
	// the states the prefixes below reach, to catch any table-entry /
	// switch-branch mismatch a handful of hand-picked sequences might
	// miss.
	prefixes := []string{
		"", "\x1b", "\x1b[", "\x1b[1", "\x1bP", "\x1bP1", "\x1b]", "\x1b]0", "\x1bX", "\x1b[1\x3a",
	}
	for _, prefix := range prefixes {
		for b := 0; b < 0x100; b++ {
			seq := prefix + string([]byte{byte(b)})
			t.Run("", func(t *testing.T) {
				pCalls, oCalls := feed(t, seq)
				assert.Equal(t, oCalls, pCalls, "prefix=%q byte=0x%02X", prefix, b)
			})
		}
	}
}
