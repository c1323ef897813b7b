package push

// vectorOverlap implements the offset-overlap arithmetic spec.md §4.6
// defines for the three vector types: a is the vector popped first (the
// stack top, shifted by offset), b is the vector popped second (the one
// below it on the stack, left unshifted). The result pairs b[i] with
// a[i-offset] over the overlapping index range; ok is false if that range
// is empty, in which case the instruction must NOOP.
func vectorOverlap[T any](a, b []T, offset int, op func(bVal, aVal T) T) ([]T, bool) {
	lo := offset
	if lo < 0 {
		lo = 0
	}
	hi := len(b)
	if len(a)+offset < hi {
		hi = len(a) + offset
	}
	hi-- // inclusive upper bound
	if hi < lo {
		return nil, false
	}
	result := make([]T, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		result = append(result, op(b[i], a[i-offset]))
	}
	return result, true
}

// registerVectorBinary wires a single offset-overlap binary instruction:
// pop offset from INTEGER, pop a (top) and b (below) from the vector
// stack, push the overlap result. Preconditions failing (depth, empty
// overlap) restore every popped operand, keeping the instruction a NOOP.
func registerVectorBinary[T any](reg *InstructionSet, name string, get func(*State) *Stack[[]T], op func(bVal, aVal T) T) {
	reg.Register(name, func(st *State) {
		s := get(st)
		if s.Depth() < 2 || st.Stacks.Integer.Depth() < 1 {
			return
		}
		offset, _ := st.Stacks.Integer.Pop()
		a, _ := s.Pop()
		b, _ := s.Pop()
		result, ok := vectorOverlap(a, b, int(offset), op)
		if !ok {
			s.Push(b)
			s.Push(a)
			st.Stacks.Integer.Push(offset)
			return
		}
		s.Push(result)
	})
}

// registerVectorBinaryGuarded is registerVectorBinary for operators that
// can fail per element (division, modulo): if op reports false for any
// paired element the whole instruction is a NOOP, restoring every popped
// operand, rather than pushing a partially-computed vector.
func registerVectorBinaryGuarded[T any](reg *InstructionSet, name string, get func(*State) *Stack[[]T], op func(bVal, aVal T) (T, bool)) {
	reg.Register(name, func(st *State) {
		s := get(st)
		if s.Depth() < 2 || st.Stacks.Integer.Depth() < 1 {
			return
		}
		offset, _ := st.Stacks.Integer.Pop()
		a, _ := s.Pop()
		b, _ := s.Pop()
		failed := false
		result, ok := vectorOverlap(a, b, int(offset), func(bVal, aVal T) T {
			v, okElem := op(bVal, aVal)
			if !okElem {
				failed = true
			}
			return v
		})
		if !ok || failed {
			s.Push(b)
			s.Push(a)
			st.Stacks.Integer.Push(offset)
			return
		}
		s.Push(result)
	})
}

// registerVectorGetSet wires the GET/SET instructions shared by all three
// vector types (spec.md §4.6): GET pops an index and pushes v[i mod
// len(v)] onto the matching scalar stack; SET pops an index and a scalar
// and writes it back, modulo length, pushing the updated vector.
func registerVectorGetSet[T any](reg *InstructionSet, typeName string, get func(*State) *Stack[[]T], scalar func(*State) *Stack[T]) {
	reg.Register(typeName+".GET", func(st *State) {
		s := get(st)
		v, ok := s.Peek()
		if !ok || len(v) == 0 || st.Stacks.Integer.Depth() < 1 {
			return
		}
		idx, _ := st.Stacks.Integer.Pop()
		i := int(((idx % int64(len(v))) + int64(len(v))) % int64(len(v)))
		scalar(st).Push(v[i])
	})

	reg.Register(typeName+".SET", func(st *State) {
		s := get(st)
		v, ok := s.Pop()
		if !ok || len(v) == 0 {
			return
		}
		sc := scalar(st)
		value, ok := sc.Pop()
		if !ok {
			s.Push(v)
			return
		}
		idx, ok := st.Stacks.Integer.Pop()
		if !ok {
			s.Push(v)
			sc.Push(value)
			return
		}
		i := int(((idx % int64(len(v))) + int64(len(v))) % int64(len(v)))
		out := append([]T(nil), v...)
		out[i] = value
		s.Push(out)
	})
}

// registerVectorInit wires ONES and ZEROS: pop a length n from INTEGER
// and push a vector of n copies of one/zero.
func registerVectorInit[T any](reg *InstructionSet, typeName string, get func(*State) *Stack[[]T], zero, one T) {
	build := func(n int64, fill T) []T {
		if n < 0 {
			n = 0
		}
		v := make([]T, n)
		for i := range v {
			v[i] = fill
		}
		return v
	}
	reg.Register(typeName+".ONES", func(st *State) {
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		get(st).Push(build(n, one))
	})
	reg.Register(typeName+".ZEROS", func(st *State) {
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			return
		}
		get(st).Push(build(n, zero))
	})
}
