package push

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string, opts ...StateOption) *State {
	t.Helper()
	st, err := NewState(opts...)
	require.NoError(t, err)
	program, err := Parse(src, st.Instructions)
	require.NoError(t, err)
	st.Stacks.Exec.Push(program)
	_, err = Run(context.Background(), st, 0)
	require.NoError(t, err)
	return st
}

// Scenario 1 (spec.md §8): ( 2 3 INTEGER.+ ) with empty initial stacks.
func TestRunScenarioAddition(t *testing.T) {
	st := runSource(t, "( 2 3 INTEGER.+ )")
	require.Equal(t, []int64{5}, st.Stacks.Integer.Items())
}

// Scenario 4: division by zero is a NOOP leaving both operands.
func TestRunScenarioDivideByZeroNoop(t *testing.T) {
	st := runSource(t, "( 5 INTEGER.DUP 0 INTEGER./ )")
	require.Equal(t, []int64{5, 5, 0}, st.Stacks.Integer.Items())
}

// Scenario 5: ( TRUE FALSE BOOLEAN.AND ) -> BOOLEAN stack = [false].
func TestRunScenarioBooleanAnd(t *testing.T) {
	st := runSource(t, "( TRUE FALSE BOOLEAN.AND )")
	require.Equal(t, []bool{false}, st.Stacks.Boolean.Items())
}

// EXEC reversal: pushing a list (a b c) then stepping exposes a first, b
// second, c third - here each atom just lands on its own native stack in
// program order.
func TestRunExecReversalOrder(t *testing.T) {
	st := runSource(t, "( 1 2 3 )")
	require.Equal(t, []int64{1, 2, 3}, st.Stacks.Integer.Items())
}

func TestRunDeterministicUnderSeed(t *testing.T) {
	src := "( 10 INTEGER.RAND 3 FLOAT.RAND BOOLEAN.RAND )"
	a := runSource(t, src, WithSeed(42))
	b := runSource(t, src, WithSeed(42))
	require.Equal(t, a.Stacks.Integer.Items(), b.Stacks.Integer.Items())
	require.Equal(t, a.Stacks.Float.Items(), b.Stacks.Float.Items())
	require.Equal(t, a.Stacks.Boolean.Items(), b.Stacks.Boolean.Items())
}

func TestRunStepBudgetHalts(t *testing.T) {
	st, err := NewState()
	require.NoError(t, err)
	program, err := Parse("( EXEC.Y 1 )", st.Instructions)
	require.NoError(t, err)
	st.Stacks.Exec.Push(program)

	outcome, err := Run(context.Background(), st, 100)
	require.NoError(t, err)
	require.True(t, outcome.Halted)
	require.LessOrEqual(t, outcome.Steps, 100)
}

func TestRunContextCancellation(t *testing.T) {
	st, err := NewState()
	require.NoError(t, err)
	program, err := Parse("( EXEC.Y 1 )", st.Instructions)
	require.NoError(t, err)
	st.Stacks.Exec.Push(program)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome, err := Run(ctx, st, 0)
	require.NoError(t, err)
	require.True(t, outcome.Halted)
	require.Equal(t, "context canceled", outcome.Reason)
}

// I5: a List push that would exceed MaxExecDepth drops only the
// offending elements rather than aborting the run (spec.md "causes the
// offending push to be dropped silently"; §4.9 "the loop itself never
// aborts on program errors").
func TestRunExecDepthDropsOffendingPushOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxExecDepth = 2
	st, err := NewState(WithConfig(cfg))
	require.NoError(t, err)
	program, err := Parse("( 1 ( 2 3 4 ) )", st.Instructions)
	require.NoError(t, err)
	st.Stacks.Exec.Push(program)

	outcome, err := Run(context.Background(), st, 0)
	require.NoError(t, err)
	require.False(t, outcome.Halted)
	// the innermost list's first element (2) would push EXEC past
	// MaxExecDepth and is dropped silently; 3 and 4 still run.
	require.Equal(t, []int64{1, 3, 4}, st.Stacks.Integer.Items())
}

func TestRunUnknownNamePushesLiteral(t *testing.T) {
	st := runSource(t, "mystery")
	require.Equal(t, []string{"mystery"}, st.Stacks.Name.Items())
}

func TestRunNameQuoteSuppressesLookup(t *testing.T) {
	st := runSource(t, "( NAME.QUOTE foo )")
	require.Equal(t, []string{"foo"}, st.Stacks.Name.Items())
}
