package parser

import (
	"github.com/dechex/vtparse/ansi"
	"github.com/dechex/vtparse/internal/utils"
)

// tableWidth is the number of indexable code points, [0x00, 0xA0). Code
// points at or above 0xA0 never index this table: in Ground the printable
// fast path handles them, and in every other state Parser.Advance logs
// and drops them.
const tableWidth = 0xA0

// transitionTable is the compile-time-constant mapping described in
// spec §3: transitions[state][cp] is the next state (StateUndefined if
// this (state, cp) pair never causes a state change), events[state][cp]
// is the action fired whether or not the state changes, and entry/exit
// hold the per-state Enter/Leave actions.
//
// It is built once, declaratively, from (state, codepoint-range, action,
// next-state) tuples, not hand-edited as a grid — see table construction
// note in the design notes.
type transitionTable struct {
	transitions [stateCount][tableWidth]State
	events      [stateCount][tableWidth]Action
	entry       [stateCount]Action
	exit        [stateCount]Action
}

// lookup returns the table entry for (s, c), or (StateUndefined,
// ActionUndefined) if s is not a real state. c must be below tableWidth;
// the caller checks that.
func (t *transitionTable) lookup(s State, c uint8) (next State, action Action) {
	if s < 0 || int(s) >= int(stateCount) {
		return StateUndefined, ActionUndefined
	}
	return t.transitions[s][c], t.events[s][c]
}

var defaultTable = newTransitionTable()

// event records the action fired while staying in state s on c, without
// touching the transitions table.
func (t *transitionTable) event(c uint8, s State, a Action) {
	t.events[s][c] = a
}

func (t *transitionTable) eventRange(from, to uint8, s State, a Action) {
	utils.Assert(to < tableWidth, "event range exceeds indexable table width")
	for c := int(from); c <= int(to); c++ {
		t.event(uint8(c), s, a)
	}
}

// goTo records a genuine state transition: the events table carries the
// action fired during the Transition callback, and the transitions table
// records the target so the driver also fires Leave/Enter.
func (t *transitionTable) goTo(c uint8, s State, next State, a Action) {
	t.transitions[s][c] = next
	t.events[s][c] = a
}

func (t *transitionTable) goToRange(from, to uint8, s State, next State, a Action) {
	utils.Assert(to < tableWidth, "goTo range exceeds indexable table width")
	for c := int(from); c <= int(to); c++ {
		t.goTo(uint8(c), s, next, a)
	}
}

func newTransitionTable() *transitionTable {
	t := &transitionTable{}

	// Leave and Enter fire on every genuine transition regardless of
	// whether the state in question defines anything special to do;
	// Ignore is the default entry/exit action, not Undefined — Ground's
	// own Enter, for instance, always reports Ignore (see §8 S2).
	for s := StateGround; s < stateCount; s++ {
		t.entry[s] = ActionIgnore
		t.exit[s] = ActionIgnore
	}

	// --- anywhere rules (§4.4) ---------------------------------------
	//
	// These apply uniformly to every real state, Ground included, and
	// take priority over everything else because nothing in the
	// per-state blocks below ever claims these code points. Every one
	// of these is encoded as a genuine transition (never merely an
	// event) even where the target happens to equal the source — e.g.
	// ESC received while already in Escape must still re-fire Clear to
	// cancel and restart the sequence in progress.
	for s := StateGround; s < stateCount; s++ {
		t.goTo(ansi.C0.CAN, s, StateGround, ActionIgnore)
		t.goTo(ansi.C0.SUB, s, StateGround, ActionIgnore)
		t.goToRange(0x80, 0x8F, s, StateGround, ActionIgnore)
		t.goToRange(0x91, 0x97, s, StateGround, ActionIgnore)
		t.goTo(0x99, s, StateGround, ActionIgnore)
		t.goTo(0x9A, s, StateGround, ActionIgnore)
		t.goTo(ansi.C1.ST, s, StateGround, ActionIgnore)

		t.goTo(ansi.C0.ESC, s, StateEscape, ActionIgnore)
		t.goTo(ansi.C1.DCS, s, StateDCSEntry, ActionIgnore)
		t.goTo(ansi.C1.CSI, s, StateCSIEntry, ActionIgnore)
		t.goTo(ansi.C1.OSC, s, StateOSCString, ActionIgnore)
		t.goTo(ansi.C1.SOS, s, StateSosPmApcString, ActionIgnore)
		t.goTo(ansi.C1.PM, s, StateSosPmApcString, ActionIgnore)
		t.goTo(ansi.C1.APC, s, StateSosPmApcString, ActionIgnore)
	}

	// --- ground -------------------------------------------------------
	{
		s := StateGround
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x20, 0x7F, s, ActionPrint)
	}

	// --- escape ---------------------------------------------------
	{
		s := StateEscape
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.event(0x7F, s, ActionIgnore)

		t.goTo(0x58, s, StateSosPmApcString, ActionIgnore)
		t.goTo(0x5E, s, StateSosPmApcString, ActionIgnore)
		t.goTo(0x5F, s, StateSosPmApcString, ActionIgnore)
		t.goTo(0x50, s, StateDCSEntry, ActionIgnore)
		t.goTo(0x5D, s, StateOSCString, ActionIgnore)
		t.goTo(0x5B, s, StateCSIEntry, ActionIgnore)

		t.goToRange(0x30, 0x4F, s, StateGround, ActionESCDispatch)
		t.goToRange(0x51, 0x57, s, StateGround, ActionESCDispatch)
		t.goTo(0x59, s, StateGround, ActionESCDispatch)
		t.goTo(0x5A, s, StateGround, ActionESCDispatch)
		t.goTo(0x5C, s, StateGround, ActionESCDispatch)
		t.goToRange(0x60, 0x7E, s, StateGround, ActionESCDispatch)

		t.goToRange(0x20, 0x2F, s, StateEscapeIntermediate, ActionCollect)
	}

	// --- escapeIntermediate ----------------------------------------
	{
		s := StateEscapeIntermediate
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x20, 0x2F, s, ActionCollect)
		t.event(0x7F, s, ActionIgnore)

		t.goToRange(0x30, 0x7E, s, StateGround, ActionESCDispatch)
	}

	// --- csiEntry -----------------------------------------------------
	{
		s := StateCSIEntry
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.event(0x7F, s, ActionIgnore)
		t.event(0x3A, s, ActionIgnore)
		t.eventRange(0x30, 0x39, s, ActionParam)
		t.event(0x3B, s, ActionParam)

		t.goToRange(0x40, 0x7E, s, StateGround, ActionCSIDispatch)
		t.goToRange(0x20, 0x2F, s, StateCSIIntermediate, ActionCollect)
		t.goToRange(0x30, 0x39, s, StateCSIParam, ActionParam)
		t.goTo(0x3B, s, StateCSIParam, ActionParam)
		t.goToRange(0x3C, 0x3F, s, StateCSIParam, ActionCollect)
	}

	// --- csiParam -------------------------------------------------
	{
		s := StateCSIParam
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x30, 0x39, s, ActionParam)
		t.event(0x3B, s, ActionParam)
		t.event(0x7F, s, ActionIgnore)

		t.goTo(0x3A, s, StateCSIIgnore, ActionIgnore)
		t.goToRange(0x3C, 0x3F, s, StateCSIIgnore, ActionIgnore)
		t.goToRange(0x20, 0x2F, s, StateCSIIntermediate, ActionCollect)
		t.goToRange(0x40, 0x7E, s, StateGround, ActionCSIDispatch)
	}

	// --- csiIntermediate ---------------------------------------------
	{
		s := StateCSIIntermediate
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x20, 0x2F, s, ActionCollect)
		t.event(0x7F, s, ActionIgnore)

		t.goToRange(0x30, 0x3F, s, StateCSIIgnore, ActionIgnore)
		t.goToRange(0x40, 0x7E, s, StateGround, ActionCSIDispatch)
	}

	// --- csiIgnore ------------------------------------------------
	{
		s := StateCSIIgnore
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x20, 0x3F, s, ActionIgnore)
		t.event(0x7F, s, ActionIgnore)

		t.goToRange(0x40, 0x7E, s, StateGround, ActionIgnore)
	}

	// --- dcsEntry -------------------------------------------------
	//
	// Open question (spec §9): the reference tables mark C0 controls as
	// Ignore here, while the switch-form transcription in
	// original_source/src/terminal/Parser.cpp dispatches Execute. This
	// module pins Ignore, matching the explicit table in spec §4.5 and
	// the rationale that C0 controls are not executed while only the
	// first part of a device control string — before its final
	// character — is being recognised. See DESIGN.md.
	{
		s := StateDCSEntry
		t.eventRange(0x00, 0x17, s, ActionIgnore)
		t.event(0x19, s, ActionIgnore)
		t.eventRange(0x1C, 0x1F, s, ActionIgnore)
		t.event(0x7F, s, ActionIgnore)
		t.eventRange(0x30, 0x39, s, ActionParam)
		t.event(0x3B, s, ActionParam)

		t.goToRange(0x20, 0x2F, s, StateDCSIntermediate, ActionCollect)
		t.goTo(0x3A, s, StateDCSIgnore, ActionIgnore)
		t.goToRange(0x30, 0x39, s, StateDCSParam, ActionParam)
		t.goTo(0x3B, s, StateDCSParam, ActionParam)
		t.goToRange(0x3C, 0x3F, s, StateDCSParam, ActionCollect)
		t.goToRange(0x40, 0x7E, s, StateDCSPassThrough, ActionIgnore)
	}

	// --- dcsParam -------------------------------------------------
	{
		s := StateDCSParam
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x30, 0x39, s, ActionParam)
		t.event(0x3B, s, ActionParam)
		t.event(0x7F, s, ActionIgnore)

		t.goTo(0x3A, s, StateDCSIgnore, ActionIgnore)
		t.goToRange(0x3C, 0x3F, s, StateDCSIgnore, ActionIgnore)
		t.goToRange(0x20, 0x2F, s, StateDCSIntermediate, ActionCollect)
		t.goToRange(0x40, 0x7E, s, StateDCSPassThrough, ActionIgnore)
	}

	// --- dcsIntermediate -----------------------------------------
	{
		s := StateDCSIntermediate
		t.eventRange(0x00, 0x17, s, ActionExecute)
		t.event(0x19, s, ActionExecute)
		t.eventRange(0x1C, 0x1F, s, ActionExecute)
		t.eventRange(0x20, 0x2F, s, ActionCollect)
		t.event(0x7F, s, ActionIgnore)

		t.goToRange(0x30, 0x3F, s, StateDCSIgnore, ActionIgnore)
		t.goToRange(0x40, 0x7E, s, StateDCSPassThrough, ActionIgnore)
	}

	// --- dcsPassThrough --------------------------------------------
	{
		s := StateDCSPassThrough
		t.eventRange(0x00, 0x17, s, ActionPut)
		t.event(0x19, s, ActionPut)
		t.eventRange(0x1C, 0x1F, s, ActionPut)
		t.eventRange(0x20, 0x7E, s, ActionPut)
		t.event(0x7F, s, ActionIgnore)
	}

	// --- dcsIgnore ------------------------------------------------
	{
		s := StateDCSIgnore
		t.eventRange(0x00, 0x17, s, ActionIgnore)
		t.event(0x19, s, ActionIgnore)
		t.eventRange(0x1C, 0x1F, s, ActionIgnore)
		t.eventRange(0x20, 0x7F, s, ActionIgnore)
	}

	// --- oscString ------------------------------------------------
	{
		s := StateOSCString
		t.eventRange(0x00, 0x17, s, ActionIgnore)
		t.event(0x19, s, ActionIgnore)
		t.eventRange(0x1C, 0x1F, s, ActionIgnore)
		t.eventRange(0x20, 0x7F, s, ActionOSCPut)
	}

	// --- sosPmApcString ----------------------------------------------
	{
		s := StateSosPmApcString
		t.eventRange(0x00, 0x17, s, ActionIgnore)
		t.event(0x19, s, ActionIgnore)
		t.eventRange(0x1C, 0x1F, s, ActionIgnore)
		t.eventRange(0x20, 0x7F, s, ActionIgnore)
	}

	// --- entry / exit actions (§4.5) ---------------------------------
	t.entry[StateEscape] = ActionClear
	t.entry[StateCSIEntry] = ActionClear
	t.entry[StateDCSEntry] = ActionClear
	t.entry[StateDCSPassThrough] = ActionHook
	t.entry[StateOSCString] = ActionOSCStart

	t.exit[StateDCSPassThrough] = ActionUnhook
	t.exit[StateOSCString] = ActionOSCEnd

	return t
}
