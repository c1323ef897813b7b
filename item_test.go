package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemStringRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		item Item
	}{
		{"bool true", Bool(true)},
		{"bool false", Bool(false)},
		{"int", Int(-42)},
		{"float", Float(1.5)},
		{"name", Name("foo")},
		{"instruction", InstructionRef("INTEGER.+")},
		{"empty list", List()},
		{"nested list", List(Int(1), List(Int(2), Int(3)))},
		{"bool vector", BoolVector([]bool{true, false, true})},
		{"int vector", IntVector([]int64{1, 2, 3})},
		{"float vector", FloatVector([]float64{1.5, 2.5})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rendered := tc.item.String()
			reg := DefaultInstructionSet()
			reparsed, err := Parse(rendered, reg)
			require.NoError(t, err)
			require.Len(t, reparsed.List, 1, "Parse always wraps top-level forms in a List")
			require.True(t, tc.item.Equal(reparsed.List[0]), "round-trip mismatch: %s -> %s", rendered, reparsed.List[0].String())
		})
	}
}

func TestItemPoints(t *testing.T) {
	require.Equal(t, 1, Int(1).Points())
	require.Equal(t, 1, List().Points())
	require.Equal(t, 3, List(Int(1), Int(2)).Points())
	require.Equal(t, 5, List(Int(1), List(Int(2), Int(3))).Points())
}

func TestItemEqualCrossKind(t *testing.T) {
	require.False(t, Int(1).Equal(Float(1)))
	require.True(t, Int(1).Equal(Int(1)))
	require.True(t, List(Int(1), Int(2)).Equal(List(Int(1), Int(2))))
	require.False(t, List(Int(1)).Equal(List(Int(1), Int(2))))
}

func TestItemCloneIsolatesGraph(t *testing.T) {
	g := NewGraph()
	g.AddNode(1)
	item := GraphItem(g)
	clone := item.Clone()
	clone.Graph.StateSet(0, 99)

	orig, _ := item.Graph.StateGet(0)
	require.Equal(t, 1.0, orig, "mutating the clone must not affect the original")
}
