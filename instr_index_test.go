package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexDefineOperandOrder(t *testing.T) {
	st := newTestState(t)
	st.Stacks.Integer.Push(0)  // current
	st.Stacks.Integer.Push(10) // destination
	st.Stacks.Integer.Push(2)  // step
	fn, ok := st.Instructions.Lookup("INDEX.DEFINE")
	require.True(t, ok)
	fn(st)

	i, ok := st.Stacks.Index.Peek()
	require.True(t, ok)
	require.Equal(t, Index{Current: 0, Destination: 10, Step: 2}, i)
}

func TestIndexCurrentAndDestination(t *testing.T) {
	st := newTestState(t)
	st.Stacks.Index.Push(Index{Current: 3, Destination: 9, Step: 1})

	fn, _ := st.Instructions.Lookup("INDEX.CURRENT")
	fn(st)
	fn, _ = st.Instructions.Lookup("INDEX.DESTINATION")
	fn(st)

	require.Equal(t, []int64{3, 9}, st.Stacks.Integer.Items())
}

func TestIndexIncreaseDecrease(t *testing.T) {
	st := newTestState(t)
	st.Stacks.Index.Push(Index{Current: 5, Destination: 20, Step: 1})
	st.Stacks.Integer.Push(3)
	fn, _ := st.Instructions.Lookup("INDEX.INCREASE")
	fn(st)
	i, ok := st.Stacks.Index.Peek()
	require.True(t, ok)
	require.Equal(t, int64(8), i.Current)

	st.Stacks.Integer.Push(2)
	fn, _ = st.Instructions.Lookup("INDEX.DECREASE")
	fn(st)
	i, ok = st.Stacks.Index.Peek()
	require.True(t, ok)
	require.Equal(t, int64(6), i.Current)
}

func TestIndexLoopAdvancesUntilDone(t *testing.T) {
	st := newTestState(t)
	st.Stacks.Index.Push(Index{Current: 0, Destination: 2, Step: 1})

	fn, ok := st.Instructions.Lookup("INDEX.LOOP")
	require.True(t, ok)

	fn(st) // 0 -> not done, advances to 1
	fn(st) // 1 -> not done, advances to 2
	fn(st) // 2 -> done, stays at 2

	require.Equal(t, []bool{false, false, true}, st.Stacks.Boolean.Items())
	i, ok := st.Stacks.Index.Peek()
	require.True(t, ok)
	require.Equal(t, int64(2), i.Current)
}

func TestIndexInstructionsNoopOnEmptyStack(t *testing.T) {
	st := newTestState(t)
	for _, name := range []string{"INDEX.CURRENT", "INDEX.DESTINATION", "INDEX.INCREASE", "INDEX.DECREASE", "INDEX.LOOP"} {
		fn, ok := st.Instructions.Lookup(name)
		require.True(t, ok, name)
		fn(st)
	}
	require.Equal(t, 0, st.Stacks.Index.Depth())
	require.Equal(t, 0, st.Stacks.Integer.Depth())
	require.Equal(t, 0, st.Stacks.Boolean.Depth())
}
