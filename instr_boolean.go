package push

// registerBooleanInstructions implements spec.md §4.3's boolean logic
// and conversions, on top of the generic stack ops registerStackOps
// already gave BOOLEAN (DUP/SWAP/.../EQUAL).
func registerBooleanInstructions(reg *InstructionSet) {
	b := func(st *State) *Stack[bool] { return st.Stacks.Boolean }

	binary := func(op func(a, b bool) bool) InstructionFunc {
		return func(st *State) {
			s := b(st)
			if s.Depth() < 2 {
				return
			}
			top, _ := s.Pop()
			second, _ := s.Pop()
			s.Push(op(second, top))
		}
	}

	reg.Register("BOOLEAN.AND", binary(func(a, c bool) bool { return a && c }))
	reg.Register("BOOLEAN.OR", binary(func(a, c bool) bool { return a || c }))
	reg.Register("BOOLEAN.XOR", binary(func(a, c bool) bool { return a != c }))

	reg.Register("BOOLEAN.NOT", func(st *State) {
		s := b(st)
		top, ok := s.Pop()
		if !ok {
			return
		}
		s.Push(!top)
	})

	reg.Register("BOOLEAN.FROMINTEGER", func(st *State) {
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		b(st).Push(n != 0)
	})

	reg.Register("BOOLEAN.FROMFLOAT", func(st *State) {
		f, ok := st.Stacks.Float.Pop()
		if !ok {
			return
		}
		b(st).Push(f != 0)
	})

	reg.Register("BOOLEAN.RAND", func(st *State) {
		b(st).Push(st.RNG.Bool())
	})
}
