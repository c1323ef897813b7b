package push

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindingsDefineLookupHas(t *testing.T) {
	b := NewBindings()
	require.False(t, b.Has("x"))
	_, ok := b.Lookup("x")
	require.False(t, ok)

	b.Define("x", Int(42))
	require.True(t, b.Has("x"))
	v, ok := b.Lookup("x")
	require.True(t, ok)
	require.True(t, v.Equal(Int(42)))
}

func TestBindingsDefineOverwrites(t *testing.T) {
	b := NewBindings()
	b.Define("x", Int(1))
	b.Define("x", Int(2))
	require.Equal(t, 1, b.Len())
	v, _ := b.Lookup("x")
	require.True(t, v.Equal(Int(2)))
}

func TestBindingsNamesAndLen(t *testing.T) {
	b := NewBindings()
	b.Define("a", Int(1))
	b.Define("b", Int(2))
	b.Define("c", Int(3))
	require.Equal(t, 3, b.Len())

	names := b.Names()
	sort.Strings(names)
	require.Equal(t, []string{"a", "b", "c"}, names)
}
