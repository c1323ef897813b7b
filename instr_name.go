package push

// registerNameInstructions implements the NAME-side half of spec.md
// §4.5: NAME.QUOTE (suppress the next binding lookup) and the two
// DEFINE instructions that populate the bindings table, one consuming
// CODE and one consuming EXEC as the value source.
func registerNameInstructions(reg *InstructionSet) {
	reg.Register("NAME.QUOTE", func(st *State) {
		st.QuoteNext = true
	})

	reg.Register("CODE.DEFINE", func(st *State) {
		name, ok := st.Stacks.Name.Pop()
		if !ok {
			return
		}
		value, ok := st.Stacks.Code.Pop()
		if !ok {
			st.Stacks.Name.Push(name)
			return
		}
		st.Bindings.Define(name, value)
	})

	reg.Register("EXEC.DEFINE", func(st *State) {
		name, ok := st.Stacks.Name.Pop()
		if !ok {
			return
		}
		value, ok := st.Stacks.Exec.Pop()
		if !ok {
			st.Stacks.Name.Push(name)
			return
		}
		st.Bindings.Define(name, value)
	})

	reg.Register("NAME.RAND", func(st *State) {
		if names := st.Bindings.Names(); len(names) > 0 && !st.RNG.Chance(st.Config.NewERCNameProbability) {
			st.Stacks.Name.Push(names[st.RNG.Pick(len(names))])
			return
		}
		st.Stacks.Name.Push(randomName(st.RNG))
	})
}

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz"

func randomName(rng *RNG) string {
	n := 4 + rng.Pick(5)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = nameAlphabet[rng.Pick(len(nameAlphabet))]
	}
	return string(buf)
}
