package push

import "math"

// registerBoolVectorInstructions implements spec.md §4.6 for BOOLVECTOR:
// GET/SET/ONES/ZEROS on top of the generic vector helpers, offset-overlap
// AND/OR/XOR, a unary NOT, and BOOLVECTOR.RAND's sparsity-targeted random
// fill.
func registerBoolVectorInstructions(reg *InstructionSet) {
	get := func(st *State) *Stack[[]bool] { return st.Stacks.BoolVector }
	scalar := func(st *State) *Stack[bool] { return st.Stacks.Boolean }

	registerVectorGetSet(reg, "BOOLVECTOR", get, scalar)
	registerVectorInit(reg, "BOOLVECTOR", get, false, true)

	registerVectorBinary(reg, "BOOLVECTOR.AND", get, func(b, a bool) bool { return a && b })
	registerVectorBinary(reg, "BOOLVECTOR.OR", get, func(b, a bool) bool { return a || b })
	registerVectorBinary(reg, "BOOLVECTOR.XOR", get, func(b, a bool) bool { return a != b })

	reg.Register("BOOLVECTOR.NOT", func(st *State) {
		v, ok := get(st).Pop()
		if !ok {
			return
		}
		out := make([]bool, len(v))
		for i, b := range v {
			out[i] = !b
		}
		get(st).Push(out)
	})

	reg.Register("BOOLVECTOR.RAND", func(st *State) {
		if st.Stacks.Integer.Depth() < 1 || st.Stacks.Float.Depth() < 1 {
			return
		}
		sparsity, _ := st.Stacks.Float.Pop()
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			st.Stacks.Float.Push(sparsity)
			return
		}
		if n < 0 {
			n = 0
		}
		s := math.Min(1, math.Max(0, sparsity))
		want := int(math.Round(s * float64(n)))
		out := make([]bool, n)
		positions := st.RNG.Perm(int(n))
		for _, p := range positions[:min(want, int(n))] {
			out[p] = true
		}
		get(st).Push(out)
	})
}
