package push

import "fmt"

// ParseError reports a malformed program (spec.md §4.1, §7): an
// unbalanced paren, a malformed vector literal, or a numeric literal
// that overflows its type. Grounded on the teacher's small named
// error types (e.g. codeError in internals.go) rather than bare
// fmt.Errorf, so callers can type-switch on it.
type ParseError struct {
	Pos    int // byte offset into the source where the error was found
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("push: parse error at byte %d: %s", e.Pos, e.Reason)
}
