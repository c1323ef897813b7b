package push

// registerCodeExecInstructions implements spec.md §4.4: the reflective
// CODE/EXEC core (QUOTE, DO/DO*, IF, the DO*RANGE/DO*COUNT/DO*TIMES
// expansion family, the K/S/Y combinators) and the Lisp-flavored list
// operations CODE and EXEC share (LENGTH, NTH, CAR, CDR, CONS, APPEND,
// LIST, MEMBER, CONTAINS, POSITION, EXTRACT, INSERT, SUBSTITUTE).
func registerCodeExecInstructions(reg *InstructionSet) {
	// CODE.QUOTE: read the next item EXEC would otherwise run, without
	// running it, and push it onto CODE instead (spec.md §4.4).
	reg.Register("CODE.QUOTE", func(st *State) {
		item, ok := st.Stacks.Exec.Pop()
		if !ok {
			return
		}
		st.Stacks.Code.Push(item)
	})

	// CODE.DO copies the top of CODE onto EXEC without consuming it;
	// CODE.DO* consumes it.
	reg.Register("CODE.DO", func(st *State) {
		item, ok := st.Stacks.Code.Peek()
		if !ok {
			return
		}
		st.Stacks.Exec.Push(item)
	})
	reg.Register("CODE.DO*", func(st *State) {
		item, ok := st.Stacks.Code.Pop()
		if !ok {
			return
		}
		st.Stacks.Exec.Push(item)
	})

	// CODE.IF pops its condition from BOOLEAN first (spec.md §9 OQ-b),
	// then the "then" and "else" branches from CODE (top, then next),
	// and pushes the selected branch onto EXEC to run.
	reg.Register("CODE.IF", func(st *State) {
		if st.Stacks.Boolean.Depth() < 1 || st.Stacks.Code.Depth() < 2 {
			return
		}
		cond, _ := st.Stacks.Boolean.Pop()
		then, _ := st.Stacks.Code.Pop()
		els, _ := st.Stacks.Code.Pop()
		if cond {
			st.Stacks.Exec.Push(then)
		} else {
			st.Stacks.Exec.Push(els)
		}
	})

	registerExecCombinators(reg)
	registerDoRangeFamily(reg)
	registerListOps(reg, "CODE", func(st *State) *Stack[Item] { return st.Stacks.Code })
	registerListOps(reg, "EXEC", func(st *State) *Stack[Item] { return st.Stacks.Exec })
}

// registerExecCombinators implements EXEC.K, EXEC.S and EXEC.Y. Each
// pops its arguments directly off EXEC - the items that would otherwise
// run next, per spec.md §9's "EXEC/CODE reflective duality" - and
// re-pushes a rearrangement of them, per the push-order decision in
// DESIGN.md: the interpreter executes head-of-list first, so to make
// "a" run before "b" the combinator must push b before a.
func registerExecCombinators(reg *InstructionSet) {
	reg.Register("EXEC.K", func(st *State) {
		e := st.Stacks.Exec
		if e.Depth() < 2 {
			return
		}
		a, _ := e.Pop()
		_, _ = e.Pop() // b, discarded: K a b -> a
		e.Push(a)
	})

	reg.Register("EXEC.S", func(st *State) {
		e := st.Stacks.Exec
		if e.Depth() < 3 {
			return
		}
		a, _ := e.Pop()
		b, _ := e.Pop()
		c, _ := e.Pop()
		bc := List(b, c)
		if bc.Points() > st.Config.MaxPointsInProgram {
			e.Push(c)
			e.Push(b)
			e.Push(a)
			return
		}
		e.Push(bc)
		e.Push(c)
		e.Push(a)
	})

	reg.Register("EXEC.Y", func(st *State) {
		e := st.Stacks.Exec
		a, ok := e.Pop()
		if !ok {
			return
		}
		cont := List(InstructionRef("EXEC.Y"), a)
		if cont.Points() > st.Config.MaxPointsInProgram {
			e.Push(a)
			return
		}
		e.Push(cont)
		e.Push(a)
	})
}

// registerDoRangeFamily implements CODE.DO*RANGE/EXEC.DO*RANGE and the
// DO*COUNT/DO*TIMES variants built on top of it (spec.md §4.4). The body
// is always taken from the CODE stack, pre-quoted with CODE.QUOTE, and
// the expansion always runs by pushing onto EXEC - CODE.DO*RANGE and
// EXEC.DO*RANGE are the same operation under two canonical names, as in
// the reference Push3 instruction set, differing only in which name the
// self-re-pushing continuation carries forward. See DESIGN.md for the
// recursive continuation push order.
func registerDoRangeFamily(reg *InstructionSet) {
	doRange := func(opName string) InstructionFunc {
		return func(st *State) {
			if st.Stacks.Integer.Depth() < 2 || st.Stacks.Code.Depth() < 1 {
				return
			}
			destination, _ := st.Stacks.Integer.Pop()
			current, _ := st.Stacks.Integer.Pop()
			body, _ := st.Stacks.Code.Peek()
			runDoRange(st, opName, current, destination, body)
		}
	}
	reg.Register("EXEC.DO*RANGE", doRange("EXEC.DO*RANGE"))
	reg.Register("CODE.DO*RANGE", doRange("CODE.DO*RANGE"))

	doCount := func(opName string) InstructionFunc {
		return func(st *State) {
			if st.Stacks.Integer.Depth() < 1 || st.Stacks.Code.Depth() < 1 {
				return
			}
			count, _ := st.Stacks.Integer.Pop()
			if count <= 0 {
				st.Stacks.Integer.Push(count)
				return
			}
			body, _ := st.Stacks.Code.Peek()
			runDoRange(st, opName, 0, count-1, body)
		}
	}
	reg.Register("EXEC.DO*COUNT", doCount("EXEC.DO*RANGE"))
	reg.Register("CODE.DO*COUNT", doCount("CODE.DO*RANGE"))

	doTimes := func(opName string) InstructionFunc {
		return func(st *State) {
			if st.Stacks.Integer.Depth() < 1 || st.Stacks.Code.Depth() < 1 {
				return
			}
			count, _ := st.Stacks.Integer.Pop()
			if count <= 0 {
				st.Stacks.Integer.Push(count)
				return
			}
			body, _ := st.Stacks.Code.Peek()
			// DO*TIMES discards the loop index instead of exposing it
			// to the body, by wrapping body with an INTEGER.POP.
			wrapped := List(InstructionRef("INTEGER.POP"), body)
			runDoRange(st, opName, 0, count-1, wrapped)
		}
	}
	reg.Register("EXEC.DO*TIMES", doTimes("EXEC.DO*RANGE"))
	reg.Register("CODE.DO*TIMES", doTimes("CODE.DO*RANGE"))
}

func runDoRange(st *State, opName string, current, destination int64, body Item) {
	st.Stacks.Integer.Push(current)
	if current == destination {
		st.Stacks.Exec.Push(body)
		return
	}
	step := int64(1)
	if destination < current {
		step = -1
	}
	cont := List(Int(current+step), Int(destination), InstructionRef(opName), body)
	st.Stacks.Exec.Push(cont)
	st.Stacks.Exec.Push(body)
}
