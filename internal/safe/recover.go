// Package safe isolates a single call from panics (and runtime.Goexit,
// which a misused testing.T.Fatal inside a registered instruction could
// trigger) without taking down the host process.
//
// It is grounded on the teacher's isolate.go / internal/panicerr
// goroutine-plus-recover pattern: running f on its own goroutine is what
// lets a deferred recover also observe a bare runtime.Goexit, which a
// same-goroutine recover cannot do.
package safe

import (
	"fmt"
	"runtime"
)

// PanicError wraps a recovered panic value so callers can tell a
// programming-bug panic apart from a normal Go error with errors.As.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: panic: %v", e.Name, e.Value)
}

// GoexitError reports that f called runtime.Goexit (directly or via a
// failed testing.T.Fatal) instead of returning.
type GoexitError struct{ Name string }

func (e *GoexitError) Error() string {
	return fmt.Sprintf("%s: exited via runtime.Goexit without returning", e.Name)
}

// Run calls f on an isolated goroutine and returns its error, a
// *PanicError if f panicked, or a *GoexitError if f called
// runtime.Goexit without panicking or returning.
func Run(name string, f func() error) error {
	errch := make(chan error, 1)
	reported := false
	go func() {
		defer func() {
			if reported {
				return
			}
			if r := recover(); r != nil {
				errch <- &PanicError{Name: name, Value: r, Stack: stack()}
				return
			}
			errch <- &GoexitError{Name: name}
		}()
		err := f()
		reported = true
		errch <- err
	}()
	return <-errch
}

func stack() []byte {
	buf := make([]byte, 4096)
	return buf[:runtime.Stack(buf, false)]
}
