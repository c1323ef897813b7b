package push

import "math"

// registerFloatInstructions implements spec.md §4.3's float arithmetic,
// comparisons, casts and FLOAT.RAND. Division and modulo by zero are a
// NOOP (spec.md §7: an unmet precondition, here a zero divisor, is a
// NOOP); any other result, including NaN, is pushed as ordinary
// IEEE-754 output, since spec.md's numeric semantics call for NaN to
// propagate rather than be treated as an error.
func registerFloatInstructions(reg *InstructionSet) {
	f := func(st *State) *Stack[float64] { return st.Stacks.Float }

	binary := func(op func(a, b float64) float64) InstructionFunc {
		return func(st *State) {
			s := f(st)
			if s.Depth() < 2 {
				return
			}
			top, _ := s.Pop()
			second, _ := s.Pop()
			s.Push(op(second, top))
		}
	}

	binaryGuarded := func(op func(a, b float64) (float64, bool)) InstructionFunc {
		return func(st *State) {
			s := f(st)
			if s.Depth() < 2 {
				return
			}
			top, _ := s.Pop()
			second, _ := s.Pop()
			result, ok := op(second, top)
			if !ok {
				s.Push(second)
				s.Push(top)
				return
			}
			s.Push(result)
		}
	}

	reg.Register("FLOAT.+", binary(func(a, b float64) float64 { return a + b }))
	reg.Register("FLOAT.-", binary(func(a, b float64) float64 { return a - b }))
	reg.Register("FLOAT.*", binary(func(a, b float64) float64 { return a * b }))
	reg.Register("FLOAT./", binaryGuarded(func(a, b float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}))
	reg.Register("FLOAT.%", binaryGuarded(func(a, b float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}
		return math.Mod(a, b), true
	}))
	reg.Register("FLOAT.MIN", binary(math.Min))
	reg.Register("FLOAT.MAX", binary(math.Max))

	compare := func(op func(a, b float64) bool) InstructionFunc {
		return func(st *State) {
			s := f(st)
			if s.Depth() < 2 {
				return
			}
			top, _ := s.Pop()
			second, _ := s.Pop()
			st.Stacks.Boolean.Push(op(second, top))
		}
	}
	reg.Register("FLOAT.<", compare(func(a, b float64) bool { return a < b }))
	reg.Register("FLOAT.>", compare(func(a, b float64) bool { return a > b }))
	reg.Register("FLOAT.=", compare(func(a, b float64) bool { return a == b }))

	reg.Register("FLOAT.FROMINTEGER", func(st *State) {
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		f(st).Push(float64(n))
	})
	reg.Register("FLOAT.FROMBOOLEAN", func(st *State) {
		b, ok := st.Stacks.Boolean.Pop()
		if !ok {
			return
		}
		if b {
			f(st).Push(1)
		} else {
			f(st).Push(0)
		}
	})

	reg.Register("FLOAT.RAND", func(st *State) {
		f(st).Push(st.RNG.Float(st.Config.MeanRandomFloat, st.Config.StdRandomFloat))
	})
}
