package push

// Edge is one directed, weighted arc of a Graph. Graph is a multigraph:
// two nodes may be connected by more than one Edge.
type Edge struct {
	To     int64
	Weight float64
}

// Graph is a labeled directed multigraph (spec.md §4.7). Node ids are
// dense and consecutive starting at 0; nodes are never removed, only
// appended, which keeps every previously-issued node id valid for the
// lifetime of the Graph.
type Graph struct {
	states []float64
	edges  [][]Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// NodeCount returns the number of nodes added so far.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	return len(g.states)
}

// AddNode appends a new node with the given initial state and returns its
// id.
func (g *Graph) AddNode(state float64) int64 {
	g.states = append(g.states, state)
	g.edges = append(g.edges, nil)
	return int64(len(g.states) - 1)
}

func (g *Graph) valid(node int64) bool {
	return node >= 0 && int(node) < len(g.states)
}

// Connect adds a directed weighted edge from -> to. It reports false
// (and adds nothing) if either endpoint does not exist.
func (g *Graph) Connect(from, to int64, weight float64) bool {
	if !g.valid(from) || !g.valid(to) {
		return false
	}
	g.edges[from] = append(g.edges[from], Edge{To: to, Weight: weight})
	return true
}

// Neighbors returns the out-edges of node in insertion order. It reports
// false if node does not exist.
func (g *Graph) Neighbors(node int64) ([]Edge, bool) {
	if !g.valid(node) {
		return nil, false
	}
	return g.edges[node], true
}

// EdgeWeight returns the weight of the first from->to edge found, in
// insertion order. It reports false if no such edge exists.
func (g *Graph) EdgeWeight(from, to int64) (float64, bool) {
	if !g.valid(from) {
		return 0, false
	}
	for _, e := range g.edges[from] {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// StateGet returns the state value stored at node.
func (g *Graph) StateGet(node int64) (float64, bool) {
	if !g.valid(node) {
		return 0, false
	}
	return g.states[node], true
}

// StateSet overwrites the state value stored at node.
func (g *Graph) StateSet(node int64, value float64) bool {
	if !g.valid(node) {
		return false
	}
	g.states[node] = value
	return true
}

// Walk returns the node reached by following the step-th out-edge of
// node (wrapping modulo the out-degree), for use by a bounded graph
// traversal instruction. It reports false if node has no out-edges.
func (g *Graph) Walk(node int64, step int64) (int64, bool) {
	if !g.valid(node) || len(g.edges[node]) == 0 {
		return 0, false
	}
	n := int64(len(g.edges[node]))
	i := ((step % n) + n) % n
	return g.edges[node][i].To, true
}

// Clone returns a deep, independent copy of g.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{
		states: append([]float64(nil), g.states...),
		edges:  make([][]Edge, len(g.edges)),
	}
	for i, es := range g.edges {
		out.edges[i] = append([]Edge(nil), es...)
	}
	return out
}

// Equal reports whether g and other have identical nodes and edges,
// edges compared in insertion order.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.states) != len(other.states) {
		return false
	}
	for i := range g.states {
		if g.states[i] != other.states[i] {
			return false
		}
		if len(g.edges[i]) != len(other.edges[i]) {
			return false
		}
		for j := range g.edges[i] {
			if g.edges[i][j] != other.edges[i][j] {
				return false
			}
		}
	}
	return true
}
