package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intStack(vals ...int64) *Stack[int64] {
	s := NewStack(func(a, b int64) bool { return a == b })
	for _, v := range vals {
		s.Push(v)
	}
	return s
}

func TestStackDupSwapRot(t *testing.T) {
	s := intStack(1, 2, 3)
	require.True(t, s.Dup())
	require.Equal(t, []int64{1, 2, 3, 3}, s.Items())

	s = intStack(1, 2)
	require.True(t, s.Swap())
	require.Equal(t, []int64{2, 1}, s.Items())

	s = intStack(1, 2, 3)
	require.True(t, s.Rot())
	require.Equal(t, []int64{2, 3, 1}, s.Items())
}

func TestStackNoopOnUnderflow(t *testing.T) {
	s := intStack()
	require.False(t, s.Dup())
	require.False(t, s.Swap())
	require.False(t, s.Rot())
	require.Empty(t, s.Items())

	s = intStack(1)
	require.False(t, s.Swap())
	require.False(t, s.Rot())
	require.Equal(t, []int64{1}, s.Items())
}

func TestStackPopEqual(t *testing.T) {
	s := intStack(5, 5)
	result, ok := s.PopEqual()
	require.True(t, ok)
	require.True(t, result)
	require.Empty(t, s.Items())

	s = intStack(5, 6)
	result, ok = s.PopEqual()
	require.True(t, ok)
	require.False(t, result)

	s = intStack(1)
	_, ok = s.PopEqual()
	require.False(t, ok)
	require.Equal(t, []int64{1}, s.Items(), "PopEqual must not pop on underflow")
}

func TestStackShoveYankYankDup(t *testing.T) {
	s := intStack(1, 2, 3, 4)
	require.True(t, s.Shove(2))
	require.Equal(t, []int64{1, 4, 2, 3}, s.Items())

	s = intStack(1, 2, 3, 4)
	require.True(t, s.Yank(2))
	require.Equal(t, []int64{1, 3, 4, 2}, s.Items())

	s = intStack(1, 2, 3, 4)
	require.True(t, s.YankDup(2))
	require.Equal(t, []int64{1, 2, 3, 4, 2}, s.Items())
}

func TestStackFlushIdempotent(t *testing.T) {
	s := intStack(1, 2, 3)
	s.Flush()
	require.Empty(t, s.Items())
	s.Flush()
	require.Empty(t, s.Items())
}
