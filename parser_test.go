package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasicForms(t *testing.T) {
	reg := DefaultInstructionSet()
	item, err := Parse("( 2 3 INTEGER.+ )", reg)
	require.NoError(t, err)
	require.Len(t, item.List, 1)
	inner := item.List[0]
	require.Equal(t, KindList, inner.Kind)
	require.Equal(t, []Item{Int(2), Int(3), InstructionRef("INTEGER.+")}, inner.List)
}

func TestParseUnboundNameIsAName(t *testing.T) {
	reg := DefaultInstructionSet()
	item, err := Parse("mystery", reg)
	require.NoError(t, err)
	require.Equal(t, KindName, item.List[0].Kind)
	require.Equal(t, "mystery", item.List[0].Str)
}

func TestParseVectorClassification(t *testing.T) {
	reg := DefaultInstructionSet()

	boolItem, err := Parse("BOOL[T,F,T]", reg)
	require.NoError(t, err)
	require.Equal(t, KindBoolVector, boolItem.List[0].Kind)
	require.Equal(t, []bool{true, false, true}, boolItem.List[0].BoolVec)

	intItem, err := Parse("INT[1,2,3]", reg)
	require.NoError(t, err)
	require.Equal(t, KindIntVector, intItem.List[0].Kind)
	require.Equal(t, []int64{1, 2, 3}, intItem.List[0].IntVec)

	floatItem, err := Parse("FLOAT[1,2.5,3]", reg)
	require.NoError(t, err)
	require.Equal(t, KindFloatVector, floatItem.List[0].Kind)
	require.Equal(t, []float64{1, 2.5, 3}, floatItem.List[0].FloatVec)
}

func TestParseVectorEmptyLiteral(t *testing.T) {
	reg := DefaultInstructionSet()

	item, err := Parse("BOOL[]", reg)
	require.NoError(t, err)
	require.Equal(t, KindBoolVector, item.List[0].Kind)
	require.Empty(t, item.List[0].BoolVec)
}

func TestParseVectorMissingPrefixIsError(t *testing.T) {
	reg := DefaultInstructionSet()
	_, err := Parse("[1,2,3]", reg)
	require.Error(t, err)
}

// spec.md §8 scenario 3's own worked example must parse.
func TestParseScenario3VectorLiterals(t *testing.T) {
	reg := DefaultInstructionSet()
	item, err := Parse("( BOOL[1,0,1] BOOL[0,1,1,0] 1 BOOLVECTOR.AND )", reg)
	require.NoError(t, err)
	inner := item.List[0]
	require.Equal(t, []bool{true, false, true}, inner.List[0].BoolVec)
	require.Equal(t, []bool{false, true, true, false}, inner.List[1].BoolVec)
}

func TestParseUnbalancedParen(t *testing.T) {
	reg := DefaultInstructionSet()
	_, err := Parse("( 1 2", reg)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseIntegerOverflow(t *testing.T) {
	reg := DefaultInstructionSet()
	_, err := Parse("99999999999999999999", reg)
	require.Error(t, err)
}

func TestParseCaseInsensitiveInstruction(t *testing.T) {
	reg := DefaultInstructionSet()
	item, err := Parse("integer.+", reg)
	require.NoError(t, err)
	require.Equal(t, KindInstructionRef, item.List[0].Kind)
	require.Equal(t, "INTEGER.+", item.List[0].Str)
}
