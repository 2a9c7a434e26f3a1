package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	class  ActionClass
	action Action
	cp     rune
}

func recorder() (*Parser, *[]call) {
	var calls []call
	p := New(Options{Sink: func(class ActionClass, action Action, cp rune) {
		calls = append(calls, call{class, action, cp})
	}})
	return p, &calls
}

// feed advances p by one code point per byte of s, treating each byte's
// numeric value directly as a code point. This sidesteps Go's
// range-over-string UTF-8 decoding, which would misinterpret literals
// like "\x9b" (a standalone C1 introducer, not a UTF-8 continuation
// byte) — exactly the kind of input Advance is meant to receive
// directly, bypassing the UTF-8 decoder package entirely.
func feed(p *Parser, s string) {
	for i := 0; i < len(s); i++ {
		p.Advance(rune(s[i]))
	}
}

func actionsOf(calls []call) []Action {
	actions := make([]Action, len(calls))
	for i, c := range calls {
		actions[i] = c.action
	}
	return actions
}

// transitionsOf returns just the Transition-class actions, in order —
// the dispatch-relevant subsequence, since every genuine transition now
// also contributes a Leave and an Enter call around it.
func transitionsOf(calls []call) []Action {
	var out []Action
	for _, c := range calls {
		if c.class == ActionClassTransition {
			out = append(out, c.action)
		}
	}
	return out
}

func TestGroundPrint(t *testing.T) {
	p, calls := recorder()
	feed(p, "hi")
	require.Len(t, *calls, 2)
	for _, c := range *calls {
		assert.Equal(t, ActionClassEvent, c.class)
		assert.Equal(t, ActionPrint, c.action)
	}
	assert.Equal(t, StateGround, p.State())
}

func TestGroundExecute(t *testing.T) {
	p, calls := recorder()
	p.Advance('\n')
	require.Len(t, *calls, 1)
	assert.Equal(t, call{ActionClassEvent, ActionExecute, '\n'}, (*calls)[0])
}

func TestEscapeDispatchClearsOnEntry(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x1bc")
	require.Len(t, *calls, 6)
	assert.Equal(t, call{ActionClassLeave, ActionIgnore, '\x1b'}, (*calls)[0])
	assert.Equal(t, call{ActionClassTransition, ActionIgnore, '\x1b'}, (*calls)[1])
	assert.Equal(t, call{ActionClassEnter, ActionClear, '\x1b'}, (*calls)[2])
	assert.Equal(t, call{ActionClassLeave, ActionIgnore, 'c'}, (*calls)[3])
	assert.Equal(t, call{ActionClassTransition, ActionESCDispatch, 'c'}, (*calls)[4])
	assert.Equal(t, call{ActionClassEnter, ActionIgnore, 'c'}, (*calls)[5])
	assert.Equal(t, StateGround, p.State())
}

func TestCSIDispatchWithParamsAndIntermediate(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x1b[1;2 q") // CSI 1 ; 2 SP q
	actions := actionsOf(*calls)
	require.Equal(t, StateGround, p.State())
	assert.Contains(t, actions, ActionClear)
	assert.Contains(t, actions, ActionParam)
	assert.Contains(t, actions, ActionCollect)

	transitions := transitionsOf(*calls)
	require.NotEmpty(t, transitions)
	assert.Equal(t, ActionCSIDispatch, transitions[len(transitions)-1])
}

func TestCSIEntryViaC1(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x9bA") // 8-bit CSI introducer
	require.Len(t, *calls, 6)
	assert.Equal(t, call{ActionClassLeave, ActionIgnore, '\x9b'}, (*calls)[0])
	assert.Equal(t, call{ActionClassTransition, ActionIgnore, '\x9b'}, (*calls)[1])
	assert.Equal(t, call{ActionClassEnter, ActionClear, '\x9b'}, (*calls)[2])
	assert.Equal(t, call{ActionClassLeave, ActionIgnore, 'A'}, (*calls)[3])
	assert.Equal(t, call{ActionClassTransition, ActionCSIDispatch, 'A'}, (*calls)[4])
	assert.Equal(t, call{ActionClassEnter, ActionIgnore, 'A'}, (*calls)[5])
	assert.Equal(t, StateGround, p.State())
}

func TestDCSHookPutUnhook(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x1bPq1234\x1b\\") // ESC P q DATA ST (7-bit form)
	actions := actionsOf(*calls)
	require.Contains(t, actions, ActionHook)
	require.Contains(t, actions, ActionPut)
	require.Contains(t, actions, ActionUnhook)

	transitions := transitionsOf(*calls)
	require.NotEmpty(t, transitions)
	assert.Equal(t, ActionESCDispatch, transitions[len(transitions)-1])
	assert.Equal(t, StateGround, p.State())
}

func TestDCSUnhookViaC1ST(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x90q")
	p.Advance('\x9c') // 8-bit ST
	actions := actionsOf(*calls)
	assert.Contains(t, actions, ActionHook)
	assert.Contains(t, actions, ActionUnhook)
	assert.Equal(t, StateGround, p.State())
}

func TestOSCStartPutEnd(t *testing.T) {
	// BEL (0x07) is an execute char in OSC_String per the table, so it
	// never reaches OSC_End; use the documented ST terminator instead
	// to exercise the full lifecycle.
	p, calls := recorder()
	feed(p, "\x1b]0;title\x1b\\")
	actions := actionsOf(*calls)
	assert.Contains(t, actions, ActionOSCStart)
	assert.Contains(t, actions, ActionOSCPut)
	assert.Contains(t, actions, ActionOSCEnd)
	assert.Equal(t, StateGround, p.State())
}

func TestAnywhereCancelReenters(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x1b[1") // mid CSI_Param
	assert.Equal(t, StateCSIParam, p.State())
	*calls = nil

	p.Advance('\x1b') // ESC cancels and restarts
	require.Len(t, *calls, 3)
	assert.Equal(t, call{ActionClassLeave, ActionIgnore, '\x1b'}, (*calls)[0])
	assert.Equal(t, call{ActionClassTransition, ActionIgnore, '\x1b'}, (*calls)[1])
	assert.Equal(t, call{ActionClassEnter, ActionClear, '\x1b'}, (*calls)[2])
	assert.Equal(t, StateEscape, p.State())
}

func TestAnywhereCANResetsFromEveryState(t *testing.T) {
	sequences := []string{"\x1b", "\x1b[", "\x1b[1", "\x1bP", "\x1b]", "\x1bX"}
	for _, seq := range sequences {
		p, _ := recorder()
		feed(p, seq)
		require.NotEqual(t, StateGround, p.State(), "precondition: %q should leave Ground", seq)
		p.Advance('\x18') // CAN
		assert.Equal(t, StateGround, p.State(), "CAN must reset to Ground from %q", seq)
	}
}

func TestResetDoesNotFireActions(t *testing.T) {
	p, calls := recorder()
	feed(p, "\x1b[1;2")
	*calls = nil
	p.Reset()
	assert.Empty(t, *calls)
	assert.Equal(t, StateGround, p.State())
}

type warnCounter struct{ warns int }

func (w *warnCounter) Debug(string, ...any) {}
func (w *warnCounter) Info(string, ...any)  {}
func (w *warnCounter) Warn(string, ...any)  { w.warns++ }
func (w *warnCounter) Error(string, ...any) {}

func TestUnknownHighCodepointOutsideGroundIsDroppedAndLogged(t *testing.T) {
	p, calls := recorder()
	log := &warnCounter{}
	p.log = log
	feed(p, "\x1b[")
	*calls = nil
	p.Advance(0x2603) // snowman, well outside the indexable table range
	assert.Empty(t, *calls)
	assert.Equal(t, 1, log.warns)
	assert.Equal(t, StateCSIEntry, p.State())
}
