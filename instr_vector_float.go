package push

// registerFloatVectorInstructions implements spec.md §4.6 for
// FLOATVECTOR: GET/SET/ONES/ZEROS, offset-overlap arithmetic, and
// FLOATVECTOR.RAND's gonum-backed normal sampling. Division by zero is
// the only guarded element-wise failure (spec.md §7's unmet-precondition
// NOOP); any other result, including NaN, propagates per spec.md's
// IEEE-754 numeric semantics, matching the scalar FLOAT instructions.
func registerFloatVectorInstructions(reg *InstructionSet) {
	get := func(st *State) *Stack[[]float64] { return st.Stacks.FloatVector }
	scalar := func(st *State) *Stack[float64] { return st.Stacks.Float }

	registerVectorGetSet(reg, "FLOATVECTOR", get, scalar)
	registerVectorInit(reg, "FLOATVECTOR", get, 0, 1)

	registerVectorBinary(reg, "FLOATVECTOR.+", get, func(b, a float64) float64 { return a + b })
	registerVectorBinary(reg, "FLOATVECTOR.-", get, func(b, a float64) float64 { return a - b })
	registerVectorBinary(reg, "FLOATVECTOR.*", get, func(b, a float64) float64 { return a * b })
	registerVectorBinaryGuarded(reg, "FLOATVECTOR./", get, func(b, a float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	})

	reg.Register("FLOATVECTOR.RAND", func(st *State) {
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		if n < 0 {
			n = 0
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = st.RNG.Float(st.Config.MeanRandomFloat, st.Config.StdRandomFloat)
		}
		get(st).Push(out)
	})
}
