package push

import "github.com/google/uuid"

// LogFunc is the logging hook a State may be configured with (see
// WithTrace). It matches the teacher's vm.logfn shape (options.go,
// internals.go) deliberately: a plain varargs function, not an
// interface, so a caller can pass a stdlib log.Printf, a testing.T.Logf,
// or nothing at all.
type LogFunc func(format string, args ...interface{})

// State is the complete mutable state of one Push3 interpreter: the eleven
// typed stacks and two I/O queues (Stacks), the NAME bindings table, the
// quote-next-name flag, a seeded RNG, and the Config that governs budget
// and random-instruction behavior (spec.md §3 "Push State"). Nothing in
// this package holds interpreter state outside of a State value - there
// is no package-level mutable state, matching the teacher's VM-as-an-
// explicit-object style (api.go's *VM) rather than globals.
type State struct {
	Stacks      *Stacks
	Bindings    *Bindings
	Instructions *InstructionSet
	RNG         *RNG
	Config      Config

	// QuoteNext, when true, makes the next Name the interpreter would
	// otherwise resolve be pushed onto NAME unresolved instead (set by
	// the quoting instruction; consumed and cleared by the dispatch
	// loop - see interp.go and DESIGN.md's NAME auto-quote decision).
	QuoteNext bool

	// MaxSteps is the default step budget Run uses when called with
	// maxSteps <= 0.
	MaxSteps int

	RunID uuid.UUID

	logf  LogFunc
	trace bool
}

// StateOption configures a State at construction time, mirroring the
// teacher's VMOption/options.go functional-options pattern.
type StateOption func(*State)

// WithConfig overrides the default Config.
func WithConfig(cfg Config) StateOption {
	return func(st *State) { st.Config = cfg }
}

// WithSeed seeds the State's RNG deterministically.
func WithSeed(seed int64) StateOption {
	return func(st *State) { st.RNG = NewRNG(seed) }
}

// WithInstructions overrides the default instruction set, e.g. with one
// that has had extra instructions registered onto it.
func WithInstructions(reg *InstructionSet) StateOption {
	return func(st *State) { st.Instructions = reg }
}

// WithMaxSteps sets the default step budget for Run.
func WithMaxSteps(n int) StateOption {
	return func(st *State) { st.MaxSteps = n }
}

// WithTrace installs a logging hook and turns on step-by-step tracing of
// the interpreter loop (SPEC_FULL.md §2.1), grounded on the teacher's
// `if vm.logfn != nil` guard: tracing costs nothing when this option is
// not supplied.
func WithTrace(logf LogFunc) StateOption {
	return func(st *State) {
		st.logf = logf
		st.trace = true
	}
}

// NewState constructs a State, applying DefaultConfig and a fresh default
// instruction set before opts, then validating the resulting Config. It
// mirrors the teacher's `New(opts ...VMOption) *VM` in api.go, except it
// can fail - a bad Config is a ConfigError, not a panic - because
// spec.md §7 requires configuration errors to be reported rather than
// discovered mid-run.
func NewState(opts ...StateOption) (*State, error) {
	st := &State{
		Config:       DefaultConfig(),
		Bindings:     NewBindings(),
		Instructions: DefaultInstructionSet(),
		RNG:          NewRNG(1),
		RunID:        uuid.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(st)
		}
	}
	if err := st.Config.Validate(); err != nil {
		return nil, err
	}
	st.Stacks = newStacks(st.Config.QueueCapacity)
	return st, nil
}

// Reset empties every stack and queue and clears QuoteNext, without
// discarding bindings, instructions, RNG state, or configuration. Useful
// for running many programs against one long-lived State; cmd/push3 does
// not call it, since it builds a new State for every program file.
func (st *State) Reset() {
	st.Stacks = newStacks(st.Config.QueueCapacity)
	st.QuoteNext = false
}

func (st *State) logTrace(format string, args ...interface{}) {
	if st.trace && st.logf != nil {
		st.logf(format, args...)
	}
}
