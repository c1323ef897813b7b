package push

// registerIndexInstructions implements spec.md §4.8: counted loops
// encapsulated in a single INDEX item rather than churning EXEC.
// INDEX.DEFINE builds one from (current, destination, step) popped off
// INTEGER; INDEX.CURRENT reads its Current without consuming it;
// INDEX.INCREASE/INDEX.DECREASE nudge Current by an amount popped from
// INTEGER; INDEX.LOOP advances Current by Step and reports via BOOLEAN
// whether the index is done.
func registerIndexInstructions(reg *InstructionSet) {
	idx := func(st *State) *Stack[Index] { return st.Stacks.Index }

	reg.Register("INDEX.DEFINE", func(st *State) {
		if st.Stacks.Integer.Depth() < 3 {
			return
		}
		step, _ := st.Stacks.Integer.Pop()
		destination, _ := st.Stacks.Integer.Pop()
		current, _ := st.Stacks.Integer.Pop()
		idx(st).Push(Index{Current: current, Destination: destination, Step: step})
	})

	reg.Register("INDEX.CURRENT", func(st *State) {
		i, ok := idx(st).Peek()
		if !ok {
			return
		}
		st.Stacks.Integer.Push(i.Current)
	})

	reg.Register("INDEX.DESTINATION", func(st *State) {
		i, ok := idx(st).Peek()
		if !ok {
			return
		}
		st.Stacks.Integer.Push(i.Destination)
	})

	adjust := func(sign int64) InstructionFunc {
		return func(st *State) {
			i, ok := idx(st).Pop()
			if !ok {
				return
			}
			amount, ok := st.Stacks.Integer.Pop()
			if !ok {
				idx(st).Push(i)
				return
			}
			i.Current = saturatingAdd(i.Current, saturatingMul(sign, amount))
			idx(st).Push(i)
		}
	}
	reg.Register("INDEX.INCREASE", adjust(1))
	reg.Register("INDEX.DECREASE", adjust(-1))

	reg.Register("INDEX.LOOP", func(st *State) {
		i, ok := idx(st).Pop()
		if !ok {
			return
		}
		done := i.Done()
		if !done {
			i = i.Advance()
		}
		idx(st).Push(i)
		st.Stacks.Boolean.Push(done)
	})
}
