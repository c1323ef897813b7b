package push

// registerListOps implements the Lisp-flavored structural operations
// CODE and EXEC share (spec.md §4.4): LENGTH, NTH, CAR, CDR, CONS,
// APPEND, LIST, MEMBER, CONTAINS, POSITION, EXTRACT, INSERT and
// SUBSTITUTE. A non-List Item is treated as an implicit one-element
// list wherever these operations need list shape, matching the way
// Push3's CODE type blurs atoms and one-element lists.
func registerListOps(reg *InstructionSet, typeName string, get func(*State) *Stack[Item]) {
	reg.Register(typeName+".LENGTH", func(st *State) {
		s := get(st)
		top, ok := s.Pop()
		if !ok {
			return
		}
		st.Stacks.Integer.Push(int64(asList(top, 1)))
		s.Push(top)
	})

	reg.Register(typeName+".NTH", func(st *State) {
		s := get(st)
		top, ok := s.Pop()
		if !ok {
			return
		}
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			s.Push(top)
			return
		}
		elems := elementsOf(top)
		if len(elems) == 0 {
			s.Push(top)
			st.Stacks.Integer.Push(n)
			return
		}
		idx := int(((n % int64(len(elems))) + int64(len(elems))) % int64(len(elems)))
		s.Push(top)
		s.Push(elems[idx])
	})

	reg.Register(typeName+".CAR", func(st *State) {
		s := get(st)
		top, ok := s.Pop()
		if !ok {
			return
		}
		elems := elementsOf(top)
		if len(elems) == 0 {
			s.Push(top)
			return
		}
		s.Push(elems[0])
	})

	reg.Register(typeName+".CDR", func(st *State) {
		s := get(st)
		top, ok := s.Pop()
		if !ok {
			return
		}
		elems := elementsOf(top)
		if len(elems) == 0 {
			s.Push(List())
			return
		}
		s.Push(List(elems[1:]...))
	})

	reg.Register(typeName+".CONS", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		head, _ := s.Pop()
		rest, _ := s.Pop()
		s.Push(List(append([]Item{head}, elementsOf(rest)...)...))
	})

	reg.Register(typeName+".APPEND", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		b, _ := s.Pop()
		a, _ := s.Pop()
		s.Push(List(append(elementsOf(a), elementsOf(b)...)...))
	})

	reg.Register(typeName+".LIST", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		top, _ := s.Pop()
		second, _ := s.Pop()
		s.Push(List(second, top))
	})

	reg.Register(typeName+".MEMBER", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		x, _ := s.Pop()
		container, _ := s.Pop()
		found := false
		for _, e := range elementsOf(container) {
			if e.Equal(x) {
				found = true
				break
			}
		}
		st.Stacks.Boolean.Push(found)
	})

	reg.Register(typeName+".CONTAINS", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		x, _ := s.Pop()
		container, _ := s.Pop()
		st.Stacks.Boolean.Push(containsDeep(container, x))
	})

	reg.Register(typeName+".POSITION", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		x, _ := s.Pop()
		container, _ := s.Pop()
		pos := int64(-1)
		for i, e := range elementsOf(container) {
			if e.Equal(x) {
				pos = int64(i)
				break
			}
		}
		st.Stacks.Integer.Push(pos)
	})

	reg.Register(typeName+".EXTRACT", func(st *State) {
		s := get(st)
		top, ok := s.Pop()
		if !ok {
			return
		}
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			s.Push(top)
			return
		}
		total := top.Points()
		idx := int(((n % int64(total)) + int64(total)) % int64(total))
		s.Push(extractAt(top, idx))
	})

	reg.Register(typeName+".INSERT", func(st *State) {
		s := get(st)
		if s.Depth() < 2 {
			return
		}
		replacement, _ := s.Pop()
		target, _ := s.Pop()
		n, ok := st.Stacks.Integer.Pop()
		if !ok {
			s.Push(target)
			s.Push(replacement)
			return
		}
		total := target.Points()
		idx := int(((n % int64(total)) + int64(total)) % int64(total))
		result := insertAt(target, idx, replacement)
		if result.Points() > st.Config.MaxPointsInProgram {
			s.Push(target)
			s.Push(replacement)
			return
		}
		s.Push(result)
	})

	reg.Register(typeName+".SUBSTITUTE", func(st *State) {
		s := get(st)
		if s.Depth() < 3 {
			return
		}
		newItem, _ := s.Pop()
		oldItem, _ := s.Pop()
		target, _ := s.Pop()
		s.Push(substitute(target, oldItem, newItem))
	})
}

// asList returns the List length of it, or fallback if it is not a List.
func asList(it Item, fallback int) int {
	if it.Kind != KindList {
		return fallback
	}
	return len(it.List)
}

// elementsOf returns it's top-level elements if it is a List, or a
// single-element slice containing it otherwise.
func elementsOf(it Item) []Item {
	if it.Kind == KindList {
		return it.List
	}
	return []Item{it}
}

func containsDeep(haystack, needle Item) bool {
	if haystack.Equal(needle) {
		return true
	}
	if haystack.Kind != KindList {
		return false
	}
	for _, e := range haystack.List {
		if containsDeep(e, needle) {
			return true
		}
	}
	return false
}

// extractAt returns the sub-expression at pre-order index idx, where
// index 0 is it itself, matching standard Push3 CODE.EXTRACT semantics.
func extractAt(it Item, idx int) Item {
	sub, _ := walkPoints(it, idx)
	return sub
}

// insertAt returns a copy of it with the sub-expression at pre-order
// index idx replaced by replacement.
func insertAt(it Item, idx int, replacement Item) Item {
	result, _ := replacePoints(it, idx, replacement)
	return result
}

// walkPoints returns (the sub-expression at pre-order offset idx
// relative to it, the number of points it consumed) by numbering it
// itself as point 0 and then recursing into its elements in order.
func walkPoints(it Item, idx int) (Item, int) {
	if idx == 0 {
		return it, it.Points()
	}
	remaining := idx - 1
	if it.Kind != KindList {
		return it, 1
	}
	for _, sub := range it.List {
		if remaining < sub.Points() {
			return walkPoints(sub, remaining)
		}
		remaining -= sub.Points()
	}
	return it, it.Points()
}

func replacePoints(it Item, idx int, replacement Item) (Item, bool) {
	if idx == 0 {
		return replacement, true
	}
	if it.Kind != KindList {
		return it, false
	}
	remaining := idx - 1
	out := make([]Item, len(it.List))
	copy(out, it.List)
	for i, sub := range it.List {
		if remaining < sub.Points() {
			replaced, ok := replacePoints(sub, remaining, replacement)
			if ok {
				out[i] = replaced
				return List(out...), true
			}
			return it, false
		}
		remaining -= sub.Points()
	}
	return it, false
}

// substitute returns a copy of it with every structural occurrence of
// oldItem replaced by newItem, recursively.
func substitute(it, oldItem, newItem Item) Item {
	if it.Equal(oldItem) {
		return newItem
	}
	if it.Kind != KindList {
		return it
	}
	out := make([]Item, len(it.List))
	for i, sub := range it.List {
		out[i] = substitute(sub, oldItem, newItem)
	}
	return List(out...)
}
