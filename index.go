package push

// Index is the value carried by the INDEX stack (spec.md §4.8): a
// current/destination/step triple describing progress through a bounded
// range, independent of any particular loop instruction.
type Index struct {
	Current     int64
	Destination int64
	Step        int64
}

// Done reports whether Current has reached or passed Destination in the
// direction Step moves.
func (idx Index) Done() bool {
	if idx.Step == 0 {
		return idx.Current == idx.Destination
	}
	if idx.Step > 0 {
		return idx.Current >= idx.Destination
	}
	return idx.Current <= idx.Destination
}

// Advance returns idx with Current moved one Step closer to Destination.
// If idx is already Done, Advance is a no-op (returns idx unchanged); the
// caller (INDEX.LOOP) is responsible for deciding whether to keep going.
func (idx Index) Advance() Index {
	if idx.Done() {
		return idx
	}
	idx.Current += idx.Step
	return idx
}
