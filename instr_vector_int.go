package push

// registerIntVectorInstructions implements spec.md §4.6 for INTVECTOR:
// GET/SET/ONES/ZEROS, offset-overlap arithmetic (saturating, matching
// scalar INTEGER semantics), and INTVECTOR.RAND's uniform sampling.
func registerIntVectorInstructions(reg *InstructionSet) {
	get := func(st *State) *Stack[[]int64] { return st.Stacks.IntVector }
	scalar := func(st *State) *Stack[int64] { return st.Stacks.Integer }

	registerVectorGetSet(reg, "INTVECTOR", get, scalar)
	registerVectorInit(reg, "INTVECTOR", get, 0, 1)

	registerVectorBinary(reg, "INTVECTOR.+", get, func(b, a int64) int64 { return saturatingAdd(a, b) })
	registerVectorBinary(reg, "INTVECTOR.-", get, func(b, a int64) int64 { return saturatingSub(a, b) })
	registerVectorBinary(reg, "INTVECTOR.*", get, func(b, a int64) int64 { return saturatingMul(a, b) })
	registerVectorBinaryGuarded(reg, "INTVECTOR./", get, func(b, a int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	})
	registerVectorBinaryGuarded(reg, "INTVECTOR.%", get, func(b, a int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a % b, true
	})

	reg.Register("INTVECTOR.RAND", func(st *State) {
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		if n < 0 {
			n = 0
		}
		out := make([]int64, n)
		for i := range out {
			out[i] = st.RNG.Int(st.Config.MinRandomInt, st.Config.MaxRandomInt)
		}
		get(st).Push(out)
	})
}
