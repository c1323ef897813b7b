package push

// registerIOInstructions implements spec.md §6's I/O FIFOs:
// INPUT.DEQUEUE moves the oldest queued BoolVec onto BOOLVECTOR, NOOPing
// (non-blocking) when INPUT is empty; OUTPUT.ENQUEUE moves the top of
// BOOLVECTOR onto OUTPUT, dropping the oldest queued item first if
// OUTPUT is already at capacity.
func registerIOInstructions(reg *InstructionSet) {
	reg.Register("INPUT.DEQUEUE", func(st *State) {
		v, ok := st.Stacks.Input.Dequeue()
		if !ok {
			return
		}
		st.Stacks.BoolVector.Push(v)
	})

	reg.Register("OUTPUT.ENQUEUE", func(st *State) {
		v, ok := st.Stacks.BoolVector.Pop()
		if !ok {
			return
		}
		st.Stacks.Output.Enqueue(v)
	})
}
