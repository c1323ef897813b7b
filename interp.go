package push

import (
	"context"

	"github.com/pushlang/push3/internal/safe"
)

// DefaultStepBudget bounds Run when neither the call nor the State's
// MaxSteps field name an explicit budget, so an accidentally-infinite
// program (e.g. an unbounded EXEC.Y chain) cannot hang a host forever.
const DefaultStepBudget = 1_000_000

// Outcome reports how a Run call ended.
type Outcome struct {
	// Steps is the number of EXEC pops performed.
	Steps int

	// Halted is true when Run stopped because of context cancellation
	// or step-budget exhaustion rather than an empty EXEC stack.
	Halted bool

	// Reason is a short human-readable explanation, set only when
	// Halted is true.
	Reason string
}

// Run drains st.Stacks.Exec, dispatching one Item at a time, until EXEC
// is empty, ctx is canceled, or maxSteps pops have happened (spec.md
// §4.9, §5). maxSteps <= 0 uses st.MaxSteps, falling back to
// DefaultStepBudget if that is also unset.
//
// Run returns a non-nil error only for a host/registration bug: a
// registered InstructionFunc panicking or calling runtime.Goexit. Every
// other outcome - including a program that underflows every stack it
// touches - is reported through Outcome, never through error, per
// spec.md §7's NOOP regime.
func Run(ctx context.Context, st *State, maxSteps int) (Outcome, error) {
	budget := maxSteps
	if budget <= 0 {
		budget = st.MaxSteps
	}
	if budget <= 0 {
		budget = DefaultStepBudget
	}

	steps := 0
	for {
		select {
		case <-ctx.Done():
			return Outcome{Steps: steps, Halted: true, Reason: "context canceled"}, nil
		default:
		}
		if steps >= budget {
			return Outcome{Steps: steps, Halted: true, Reason: "step budget exhausted"}, nil
		}

		item, ok := st.Stacks.Exec.Pop()
		if !ok {
			return Outcome{Steps: steps}, nil
		}
		steps++
		st.logTrace("step %d [%s]: %s", steps, st.RunID, item.String())

		if err := dispatchIsolated(st, item); err != nil {
			return Outcome{Steps: steps}, err
		}
	}
}

func dispatchIsolated(st *State, item Item) error {
	return safe.Run("push.dispatch", func() error {
		dispatch(st, item)
		return nil
	})
}

// dispatch implements spec.md §4.9's per-Kind reaction. The loop itself
// never aborts on program errors (spec.md §4.9). While a List is
// unpacked, each element whose push would take EXEC past MaxExecDepth is
// dropped silently and the run keeps draining EXEC instead of halting;
// pushes onto EXEC made by instructions or by a bound Name are not
// checked against MaxExecDepth.
func dispatch(st *State, item Item) {
	switch item.Kind {
	case KindBoolean:
		st.Stacks.Boolean.Push(item.Bool)
	case KindInteger:
		st.Stacks.Integer.Push(item.Int)
	case KindFloat:
		st.Stacks.Float.Push(item.Float)
	case KindBoolVector:
		st.Stacks.BoolVector.Push(item.BoolVec)
	case KindIntVector:
		st.Stacks.IntVector.Push(item.IntVec)
	case KindFloatVector:
		st.Stacks.FloatVector.Push(item.FloatVec)
	case KindIndex:
		st.Stacks.Index.Push(item.Idx)
	case KindGraph:
		st.Stacks.Graph.Push(item.Graph)

	case KindName:
		dispatchName(st, item)

	case KindInstructionRef:
		if fn, ok := st.Instructions.Lookup(item.Str); ok {
			fn(st)
		}
		// An InstructionRef the registry no longer recognizes (e.g. it
		// was unregistered after parsing) is a NOOP, per spec.md §7.

	case KindList:
		for i := len(item.List) - 1; i >= 0; i-- {
			if st.Stacks.Exec.Depth() >= st.Config.MaxExecDepth {
				continue
			}
			st.Stacks.Exec.Push(item.List[i])
		}
	}
}

// dispatchName implements spec.md §4.5's NAME resolution order, resolved
// per DESIGN.md's "NAME auto-quote timing" decision: look up the binding
// first; only if it is unbound (or QuoteNext is set) does the Name get
// pushed to the NAME stack as a literal.
func dispatchName(st *State, item Item) {
	if st.QuoteNext {
		st.QuoteNext = false
		st.Stacks.Name.Push(item.Str)
		return
	}
	if bound, ok := st.Bindings.Lookup(item.Str); ok {
		st.Stacks.Exec.Push(bound)
		return
	}
	if st.trace {
		if best, dist := st.Instructions.Suggest(item.Str); dist > 0 && dist <= 2 {
			st.logTrace("unbound name %q (did you mean %s?)", item.Str, best)
		}
	}
	st.Stacks.Name.Push(item.Str)
}
