package push

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant of Item is populated. Item is a closed sum
// type: exactly one of its fields is meaningful for a given Kind, selected
// by a switch over Kind rather than by a type assertion on an interface.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindInteger
	KindFloat
	KindName
	KindInstructionRef
	KindList
	KindBoolVector
	KindIntVector
	KindFloatVector
	KindIndex
	KindGraph
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "BOOLEAN"
	case KindInteger:
		return "INTEGER"
	case KindFloat:
		return "FLOAT"
	case KindName:
		return "NAME"
	case KindInstructionRef:
		return "INSTRUCTION"
	case KindList:
		return "CODE"
	case KindBoolVector:
		return "BOOLVECTOR"
	case KindIntVector:
		return "INTVECTOR"
	case KindFloatVector:
		return "FLOATVECTOR"
	case KindIndex:
		return "INDEX"
	case KindGraph:
		return "GRAPH"
	default:
		return "UNKNOWN"
	}
}

// Item is the single value type that moves between every Push stack.
// spec.md §3 enumerates Boolean, Integer, Float, Name, InstructionRef and
// List; Graph and Index are added here to give the GRAPH and INDEX typed
// stacks (also named in spec.md §3) an Item variant to hold, closing a gap
// left by the distillation (see DESIGN.md "Open Question decisions").
type Item struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string // Name and InstructionRef both carry a canonical string

	List []Item

	BoolVec  []bool
	IntVec   []int64
	FloatVec []float64

	Idx   Index
	Graph *Graph
}

func Bool(b bool) Item   { return Item{Kind: KindBoolean, Bool: b} }
func Int(i int64) Item   { return Item{Kind: KindInteger, Int: i} }
func Float(f float64) Item { return Item{Kind: KindFloat, Float: f} }
func Name(s string) Item { return Item{Kind: KindName, Str: s} }

// InstructionRef names a registered instruction by its canonical
// TYPE.OP form, e.g. "INTEGER.+".
func InstructionRef(s string) Item { return Item{Kind: KindInstructionRef, Str: s} }

func List(items ...Item) Item { return Item{Kind: KindList, List: items} }

func BoolVector(v []bool) Item    { return Item{Kind: KindBoolVector, BoolVec: v} }
func IntVector(v []int64) Item    { return Item{Kind: KindIntVector, IntVec: v} }
func FloatVector(v []float64) Item { return Item{Kind: KindFloatVector, FloatVec: v} }

func IndexItem(idx Index) Item { return Item{Kind: KindIndex, Idx: idx} }
func GraphItem(g *Graph) Item  { return Item{Kind: KindGraph, Graph: g} }

// Points returns the point count of an Item for budget accounting
// (spec.md §4.4): an atom counts as one point, a list counts as one plus
// the points of each of its elements, recursively.
func (it Item) Points() int {
	if it.Kind != KindList {
		return 1
	}
	n := 1
	for _, sub := range it.List {
		n += sub.Points()
	}
	return n
}

// Clone returns a copy of it. List and vector fields share their backing
// arrays with it, since nothing mutates a List or vector in place; Graph
// items are mutable (GRAPH.STATE.SET, GRAPH.CONNECT) and must never alias
// across two stack slots, so Clone deep-copies the Graph.
func (it Item) Clone() Item {
	out := it
	if it.Kind == KindGraph && it.Graph != nil {
		out.Graph = it.Graph.Clone()
	}
	return out
}

// Equal implements the EQUAL family of instructions (spec.md §4.2):
// structural equality within a single Kind, false across Kinds.
func (it Item) Equal(other Item) bool {
	if it.Kind != other.Kind {
		return false
	}
	switch it.Kind {
	case KindBoolean:
		return it.Bool == other.Bool
	case KindInteger:
		return it.Int == other.Int
	case KindFloat:
		return it.Float == other.Float
	case KindName, KindInstructionRef:
		return it.Str == other.Str
	case KindList:
		if len(it.List) != len(other.List) {
			return false
		}
		for i := range it.List {
			if !it.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindBoolVector:
		return equalSlice(it.BoolVec, other.BoolVec)
	case KindIntVector:
		return equalSlice(it.IntVec, other.IntVec)
	case KindFloatVector:
		return equalSlice(it.FloatVec, other.FloatVec)
	case KindIndex:
		return it.Idx == other.Idx
	case KindGraph:
		return it.Graph.Equal(other.Graph)
	default:
		return false
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders it back to Push source text. It is used both by the
// stack dumper and by the round-trip-parse test in spec.md §8.
func (it Item) String() string {
	switch it.Kind {
	case KindBoolean:
		if it.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindInteger:
		return strconv.FormatInt(it.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(it.Float, 'g', -1, 64)
	case KindName:
		return it.Str
	case KindInstructionRef:
		return it.Str
	case KindList:
		parts := make([]string, len(it.List))
		for i, sub := range it.List {
			parts[i] = sub.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindBoolVector:
		return formatVector("BOOL", it.BoolVec, func(b bool) string {
			if b {
				return "T"
			}
			return "F"
		})
	case KindIntVector:
		return formatVector("INT", it.IntVec, func(i int64) string { return strconv.FormatInt(i, 10) })
	case KindFloatVector:
		return formatVector("FLOAT", it.FloatVec, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
	case KindIndex:
		return fmt.Sprintf("#%d:%d:%d", it.Idx.Current, it.Idx.Destination, it.Idx.Step)
	case KindGraph:
		return fmt.Sprintf("<graph:%d nodes>", it.Graph.NodeCount())
	default:
		return "?"
	}
}

func formatVector[T any](prefix string, v []T, f func(T) string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = f(x)
	}
	return prefix + "[" + strings.Join(parts, ",") + "]"
}
