// Package telemetry provides the small leveled logger the push CLI and
// library trace hooks use. It is grounded on the teacher's
// internal/logio.Logger: a mutex-guarded writer with a Leveledf
// level-to-printf adapter, rewritten for push3's narrower needs (no
// exit-code tracking, since the library never os.Exits).
package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger writes leveled, timestamped lines to an underlying writer.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Leveledf returns a printf-shaped function that prefixes every message
// with level, matching the teacher's internal/logio.Logger.Leveledf
// shape so call sites don't know about the Logger type directly - this
// is what lets push.WithTrace accept a plain push.LogFunc.
func (l *Logger) Leveledf(level string) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		l.printf(level, format, args...)
	}
}

func (l *Logger) printf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil {
		return
	}
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	fmt.Fprintf(l.out, "%s %s: %s\n", ts, level, fmt.Sprintf(format, args...))
}

// SetOutput redirects subsequent writes to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}
