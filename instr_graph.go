package push

// registerGraphInstructions implements spec.md §4.7: a labeled directed
// multigraph used as associative memory. GRAPH.ADD appends a node with an
// initial state popped from FLOAT; GRAPH.CONNECT, GRAPH.NEIGHBORS and
// GRAPH.EDGE operate on node ids popped from INTEGER; GRAPH.STATE.GET/SET
// read and write a node's float state; GRAPH.WALK is the traversal
// primitive that pushes the node reached onto INTEGER. Every instruction
// is a NOOP (restoring its operands) on a missing node or edge, per
// spec.md §4.9's failure-handling rule.
func registerGraphInstructions(reg *InstructionSet) {
	g := func(st *State) *Stack[*Graph] { return st.Stacks.Graph }

	reg.Register("GRAPH.ADD", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		state, ok := st.Stacks.Float.Pop()
		if !ok {
			g(st).Push(graph)
			return
		}
		id := graph.AddNode(state)
		g(st).Push(graph)
		st.Stacks.Integer.Push(id)
	})

	reg.Register("GRAPH.CONNECT", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		if st.Stacks.Integer.Depth() < 2 || st.Stacks.Float.Depth() < 1 {
			g(st).Push(graph)
			return
		}
		to, _ := st.Stacks.Integer.Pop()
		from, _ := st.Stacks.Integer.Pop()
		weight, _ := st.Stacks.Float.Pop()
		if !graph.Connect(from, to, weight) {
			st.Stacks.Integer.Push(from)
			st.Stacks.Integer.Push(to)
			st.Stacks.Float.Push(weight)
		}
		g(st).Push(graph)
	})

	reg.Register("GRAPH.NEIGHBORS", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		node, ok := st.Stacks.Integer.Pop()
		if !ok {
			g(st).Push(graph)
			return
		}
		edges, ok := graph.Neighbors(node)
		if !ok {
			st.Stacks.Integer.Push(node)
			g(st).Push(graph)
			return
		}
		ids := make([]int64, len(edges))
		for i, e := range edges {
			ids[i] = e.To
		}
		st.Stacks.IntVector.Push(ids)
		g(st).Push(graph)
	})

	reg.Register("GRAPH.EDGE", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		if st.Stacks.Integer.Depth() < 2 {
			g(st).Push(graph)
			return
		}
		to, _ := st.Stacks.Integer.Pop()
		from, _ := st.Stacks.Integer.Pop()
		weight, ok := graph.EdgeWeight(from, to)
		if !ok {
			st.Stacks.Integer.Push(from)
			st.Stacks.Integer.Push(to)
			g(st).Push(graph)
			return
		}
		st.Stacks.Float.Push(weight)
		g(st).Push(graph)
	})

	reg.Register("GRAPH.STATE.GET", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		node, ok := st.Stacks.Integer.Pop()
		if !ok {
			g(st).Push(graph)
			return
		}
		value, ok := graph.StateGet(node)
		if !ok {
			st.Stacks.Integer.Push(node)
			g(st).Push(graph)
			return
		}
		st.Stacks.Float.Push(value)
		g(st).Push(graph)
	})

	reg.Register("GRAPH.STATE.SET", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		if st.Stacks.Integer.Depth() < 1 || st.Stacks.Float.Depth() < 1 {
			g(st).Push(graph)
			return
		}
		node, _ := st.Stacks.Integer.Pop()
		value, _ := st.Stacks.Float.Pop()
		if !graph.StateSet(node, value) {
			st.Stacks.Integer.Push(node)
			st.Stacks.Float.Push(value)
		}
		g(st).Push(graph)
	})

	reg.Register("GRAPH.WALK", func(st *State) {
		graph, ok := g(st).Pop()
		if !ok || graph == nil {
			return
		}
		if st.Stacks.Integer.Depth() < 2 {
			g(st).Push(graph)
			return
		}
		step, _ := st.Stacks.Integer.Pop()
		node, _ := st.Stacks.Integer.Pop()
		next, ok := graph.Walk(node, step)
		if !ok {
			st.Stacks.Integer.Push(node)
			st.Stacks.Integer.Push(step)
			g(st).Push(graph)
			return
		}
		st.Stacks.Integer.Push(next)
		g(st).Push(graph)
	})
}
