package push

// registerIntegerInstructions implements spec.md §4.3's integer
// arithmetic, comparisons, casts and INTEGER.RAND. Division and modulo
// by zero are NOOPs (spec.md §4.3, §7), and +/-/* saturate rather than
// wrap or panic on overflow (invariant I3, see int_arith.go).
func registerIntegerInstructions(reg *InstructionSet) {
	i := func(st *State) *Stack[int64] { return st.Stacks.Integer }

	binary := func(op func(a, b int64) int64) InstructionFunc {
		return func(st *State) {
			s := i(st)
			if s.Depth() < 2 {
				return
			}
			top, _ := s.Pop()
			second, _ := s.Pop()
			s.Push(op(second, top))
		}
	}

	binaryGuarded := func(op func(a, b int64) (int64, bool)) InstructionFunc {
		return func(st *State) {
			s := i(st)
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

	reg.Register("INTEGER.+", binary(saturatingAdd))
	reg.Register("INTEGER.-", binary(saturatingSub))
	reg.Register("INTEGER.*", binary(saturatingMul))
	reg.Register("INTEGER./", binaryGuarded(func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}))
	reg.Register("INTEGER.%", binaryGuarded(func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a % b, true
	}))
	reg.Register("INTEGER.MIN", binary(func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	}))
	reg.Register("INTEGER.MAX", binary(func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	}))

	compare := func(op func(a, b int64) bool) InstructionFunc {
		return func(st *State) {
			s := i(st)
			if s.Depth() < 2 {
				return
			}
			top, _ := s.Pop()
			second, _ := s.Pop()
			st.Stacks.Boolean.Push(op(second, top))
		}
	}
	reg.Register("INTEGER.<", compare(func(a, b int64) bool { return a < b }))
	reg.Register("INTEGER.>", compare(func(a, b int64) bool { return a > b }))
	reg.Register("INTEGER.=", compare(func(a, b int64) bool { return a == b }))

	reg.Register("INTEGER.FROMFLOAT", func(st *State) {
		f, ok := st.Stacks.Float.Pop()
		if !ok {
			return
		}
		i(st).Push(int64(f))
	})
	reg.Register("INTEGER.FROMBOOLEAN", func(st *State) {
		boolv, ok := st.Stacks.Boolean.Pop()
		if !ok {
			return
		}
		if boolv {
			i(st).Push(1)
		} else {
			i(st).Push(0)
		}
	})

	reg.Register("INTEGER.RAND", func(st *State) {
		i(st).Push(st.RNG.Int(st.Config.MinRandomInt, st.Config.MaxRandomInt))
	})
}
