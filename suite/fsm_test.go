package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probatio/probatio/suite/emit"
)

func newTestMachine() (*machine, *emit.BufferedSink) {
	d := emit.NewDispatcher("m")
	sink := emit.NewBufferedSink()
	d.Pipe(sink)
	return newMachine(StatePending, testTransitions, d), sink
}

func TestMachine_ValidTransitions(t *testing.T) {
	cases := []struct {
		name string
		path []State
	}{
		{"pending to in-progress to pass", []State{StateInProgress, StatePass}},
		{"pending to in-progress to fail", []State{StateInProgress, StateFail}},
		{"pending to skipped", []State{StateSkipped}},
		{"pending to ignored", []State{StateIgnored}},
		{"pending to todo", []State{StateTodo}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestMachine()
			for _, s := range tc.path {
				require.NoError(t, m.Set(s))
			}
			assert.Equal(t, tc.path[len(tc.path)-1], m.Current())
		})
	}
}

func TestMachine_InvalidMove(t *testing.T) {
	t.Run("no edge matches the current state", func(t *testing.T) {
		m, _ := newTestMachine()
		err := m.Set(StatePass)

		var terr *TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, StatePass, terr.Attempted)
		assert.Equal(t, StatePending, terr.Current)
		assert.Equal(t, []State{StateInProgress}, terr.Allowed)
		assert.Contains(t, err.Error(), "invalid move")
		assert.Contains(t, err.Error(), "in-progress", "message enumerates the valid source states")
		assert.Equal(t, StatePending, m.Current(), "failed request leaves the state unchanged")
	})

	t.Run("no edge targets the state at all", func(t *testing.T) {
		m, _ := newTestMachine()
		err := m.Set(State("bogus"))

		var terr *TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Empty(t, terr.Allowed)
		assert.Contains(t, err.Error(), "invalid move")
	})

	t.Run("terminal states are final", func(t *testing.T) {
		m, _ := newTestMachine()
		require.NoError(t, m.Set(StateInProgress))
		require.NoError(t, m.Set(StatePass))

		err := m.Set(StateInProgress)
		require.Error(t, err)
		assert.Equal(t, StatePass, m.Current())
	})
}

func TestMachine_SameStateIsNoOp(t *testing.T) {
	m, sink := newTestMachine()
	require.NoError(t, m.Set(StateInProgress))
	sink.Clear()

	require.NoError(t, m.Set(StateInProgress))
	assert.Zero(t, sink.Len(), "setting the current state emits nothing")
}

func TestMachine_TransitionEvents(t *testing.T) {
	m, sink := newTestMachine()
	require.NoError(t, m.Set(StateInProgress))
	require.NoError(t, m.Set(StatePass, 42))

	names := sink.Names("")
	assert.Equal(t, []string{"state", "in-progress", "state", "pass"}, names)

	stateEvents := sink.HistoryWithFilter(emit.HistoryFilter{Name: EventState})
	require.Len(t, stateEvents, 2)
	assert.Equal(t, []any{StateInProgress, StatePending}, stateEvents[0].Args)
	assert.Equal(t, []any{StatePass, StateInProgress}, stateEvents[1].Args)

	passEvents := sink.HistoryWithFilter(emit.HistoryFilter{Name: string(StatePass)})
	require.Len(t, passEvents, 1)
	assert.Equal(t, []any{42}, passEvents[0].Args, "the state-name event carries the caller's payload")
}

func TestMachine_Reset(t *testing.T) {
	m, sink := newTestMachine()
	require.NoError(t, m.Set(StateInProgress))
	require.NoError(t, m.Set(StateFail))
	sink.Clear()

	m.Reset()

	assert.Equal(t, StatePending, m.Current())
	resets := sink.HistoryWithFilter(emit.HistoryFilter{Name: EventReset})
	require.Len(t, resets, 1)
	assert.Equal(t, []any{StateFail}, resets[0].Args, "reset reports the previous state")
}

func TestMachine_ResetBypassesValidation(t *testing.T) {
	m, _ := newTestMachine()
	require.NoError(t, m.Set(StateSkipped))

	// No declared edge leaves skipped; Reset must still succeed.
	m.Reset()
	assert.Equal(t, StatePending, m.Current())
}
