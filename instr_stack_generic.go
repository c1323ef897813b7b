package push

// registerStackOps registers the ten stack operations spec.md §4.2
// specifies identically for every typed stack: DUP, SWAP, ROT, POP,
// FLUSH, STACKDEPTH, EQUAL, SHOVE, YANK and YANKDUP. The teacher writes
// this family once per flat-memory opcode (first.go's pick/under0/...);
// here it is written once, generically, and instantiated per type below,
// since spec.md requires the exact same ten operations for every one of
// the eleven typed stacks.
//
// SHOVE/YANK/YANKDUP all take their depth argument by popping an Integer
// off the INTEGER stack, matching standard Push3 convention - even for
// INTEGER.SHOVE itself, where the INTEGER stack supplies both the depth
// argument and the data being moved.
func registerStackOps[T any](reg *InstructionSet, typeName string, get func(*State) *Stack[T]) {
	reg.Register(typeName+".DUP", func(st *State) { get(st).Dup() })
	reg.Register(typeName+".SWAP", func(st *State) { get(st).Swap() })
	reg.Register(typeName+".ROT", func(st *State) { get(st).Rot() })
	reg.Register(typeName+".POP", func(st *State) { get(st).PopDiscard() })
	reg.Register(typeName+".FLUSH", func(st *State) { get(st).Flush() })
	reg.Register(typeName+".STACKDEPTH", func(st *State) {
		st.Stacks.Integer.Push(int64(get(st).Depth()))
	})
	reg.Register(typeName+".EQUAL", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		result, _ := s.PopEqual()
		st.Stacks.Boolean.Push(result)
	})
	reg.Register(typeName+".SHOVE", func(st *State) {
		depth, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		if !get(st).Shove(int(depth)) {
			st.Stacks.Integer.Push(depth)
		}
	})
	reg.Register(typeName+".YANK", func(st *State) {
		depth, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		if !get(st).Yank(int(depth)) {
			st.Stacks.Integer.Push(depth)
		}
	})
	reg.Register(typeName+".YANKDUP", func(st *State) {
		depth, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		if !get(st).YankDup(int(depth)) {
			st.Stacks.Integer.Push(depth)
		}
	})
}

func registerStackInstructions(reg *InstructionSet) {
	registerStackOps(reg, "BOOLEAN", func(st *State) *Stack[bool] { return st.Stacks.Boolean })
	registerStackOps(reg, "INTEGER", func(st *State) *Stack[int64] { return st.Stacks.Integer })
	registerStackOps(reg, "FLOAT", func(st *State) *Stack[float64] { return st.Stacks.Float })
	registerStackOps(reg, "NAME", func(st *State) *Stack[string] { return st.Stacks.Name })
	registerStackOps(reg, "CODE", func(st *State) *Stack[Item] { return st.Stacks.Code })
	registerStackOps(reg, "EXEC", func(st *State) *Stack[Item] { return st.Stacks.Exec })
	registerStackOps(reg, "BOOLVECTOR", func(st *State) *Stack[[]bool] { return st.Stacks.BoolVector })
	registerStackOps(reg, "INTVECTOR", func(st *State) *Stack[[]int64] { return st.Stacks.IntVector })
	registerStackOps(reg, "FLOATVECTOR", func(st *State) *Stack[[]float64] { return st.Stacks.FloatVector })
	registerStackOps(reg, "INDEX", func(st *State) *Stack[Index] { return st.Stacks.Index })
	registerStackOps(reg, "GRAPH", func(st *State) *Stack[*Graph] { return st.Stacks.Graph })
}
