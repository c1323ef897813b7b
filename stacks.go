package push

// Stacks aggregates the eleven typed value stacks and the two bounded I/O
// queues spec.md §3 describes. It is embedded in State; nothing outside
// this package constructs one directly.
type Stacks struct {
	Boolean *Stack[bool]
	Integer *Stack[int64]
	Float   *Stack[float64]
	Name    *Stack[string]
	Code    *Stack[Item]
	Exec    *Stack[Item]

	BoolVector  *Stack[[]bool]
	IntVector   *Stack[[]int64]
	FloatVector *Stack[[]float64]

	Index *Stack[Index]
	Graph *Stack[*Graph]

	Input  *Queue[[]bool]
	Output *Queue[[]bool]
}

func newStacks(queueCap int) *Stacks {
	return &Stacks{
		Boolean: NewStack(func(a, b bool) bool { return a == b }),
		Integer: NewStack(func(a, b int64) bool { return a == b }),
		Float:   NewStack(func(a, b float64) bool { return a == b }),
		Name:    NewStack(func(a, b string) bool { return a == b }),
		Code:    NewStack(func(a, b Item) bool { return a.Equal(b) }),
		Exec:    NewStack(func(a, b Item) bool { return a.Equal(b) }),

		BoolVector:  NewStack(equalSlice[bool]),
		IntVector:   NewStack(equalSlice[int64]),
		FloatVector: NewStack(equalSlice[float64]),

		Index: NewStack(func(a, b Index) bool { return a == b }),
		Graph: NewStack(func(a, b *Graph) bool { return a.Equal(b) }),

		Input:  NewQueue[[]bool](queueCap),
		Output: NewQueue[[]bool](queueCap),
	}
}

// Flush empties every stack and queue (used by a full-state reset; not
// itself a spec instruction, FLUSH operates per-stack).
func (s *Stacks) Flush() {
	s.Boolean.Flush()
	s.Integer.Flush()
	s.Float.Flush()
	s.Name.Flush()
	s.Code.Flush()
	s.Exec.Flush()
	s.BoolVector.Flush()
	s.IntVector.Flush()
	s.FloatVector.Flush()
	s.Index.Flush()
	s.Graph.Flush()
	s.Input.Flush()
	s.Output.Flush()
}
