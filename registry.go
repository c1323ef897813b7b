package push

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// InstructionFunc implements one instruction. It receives the State it
// should act on and is responsible for its own NOOP behavior: per
// spec.md §7, an instruction whose stack preconditions are unmet must
// leave every stack exactly as it found it rather than return an error.
type InstructionFunc func(st *State)

// InstructionSet maps canonical TYPE.OP instruction names to their
// implementations. It generalizes the teacher's first.go vmCodeTable -
// a fixed [N]func(*VM) array indexed by a const-iota opcode - into an
// open, runtime-extensible registry, since spec.md requires callers to
// be able to register new instructions and shadow existing ones after
// construction, which a fixed array cannot support.
type InstructionSet struct {
	fns map[string]InstructionFunc
}

// NewInstructionSet returns an empty registry.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{fns: make(map[string]InstructionFunc)}
}

// Register adds or replaces the implementation of name. It reports
// whether it replaced an existing entry, so a caller can log a shadowing
// warning the way spec.md §9 calls for ("shadowing defaults is
// permitted and reported").
func (r *InstructionSet) Register(name string, fn InstructionFunc) (replaced bool) {
	_, replaced = r.fns[name]
	r.fns[name] = fn
	return replaced
}

// Lookup returns the implementation bound to name, if any.
func (r *InstructionSet) Lookup(name string) (InstructionFunc, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// Names returns every registered instruction name, sorted.
func (r *InstructionSet) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the registered name closest to name by Levenshtein
// edit distance, for diagnostic "did you mean" logging when a looks-like
// an instruction NAME fails to resolve (see SPEC_FULL.md §3). It never
// affects NOOP dispatch semantics - it is purely advisory output.
func (r *InstructionSet) Suggest(name string) (best string, distance int) {
	distance = -1
	for _, candidate := range r.Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if distance == -1 || d < distance {
			distance, best = d, candidate
		}
	}
	return best, distance
}

// DefaultInstructionSet returns a registry populated with the full
// standard instruction library spec.md §4.2-§4.8 specifies.
func DefaultInstructionSet() *InstructionSet {
	reg := NewInstructionSet()
	registerStackInstructions(reg)
	registerBooleanInstructions(reg)
	registerIntegerInstructions(reg)
	registerFloatInstructions(reg)
	registerNameInstructions(reg)
	registerCodeExecInstructions(reg)
	registerBoolVectorInstructions(reg)
	registerIntVectorInstructions(reg)
	registerFloatVectorInstructions(reg)
	registerGraphInstructions(reg)
	registerIndexInstructions(reg)
	registerIOInstructions(reg)
	return reg
}
