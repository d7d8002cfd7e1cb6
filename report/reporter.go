// SPDX-License-Identifier: MIT
// Package: report
//
// Purpose:
//   - Provide the error surface for the compatibility API of vector and matrix:
//     operations that cannot fail (Get, Row, Div, ...) hand their sentinel to a
//     Reporter and return a fallback value instead of an error.
//   - Keep the process-wide default swappable without data races.
//
// Determinism & Concurrency:
//   - The default reporter lives in an atomic.Pointer; Report and SetDefault
//     may run from any goroutine.
//   - LogReporter relies on *log.Logger, which serializes writes.
//   - Recorder guards its entries with a mutex.

package report

import (
	"log"
	"sync"
	"sync/atomic"
)

// Reporter receives non-fatal failures. op names the operation
// (e.g. "Vector3D.Get(3)") and err wraps one of the package sentinels.
type Reporter interface {
	Report(op string, err error)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(op string, err error)

// Report calls f(op, err).
func (f ReporterFunc) Report(op string, err error) { f(op, err) }

// Discard drops every report.
var Discard Reporter = ReporterFunc(func(string, error) {})

// LogReporter writes one "<op>: <err>" line per report to a *log.Logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter builds a LogReporter. Without options it writes bare lines
// to standard error.
//
// Complexity: O(len(opts)).
func NewLogReporter(opts ...Option) *LogReporter {
	o := gatherOptions(opts...)

	return &LogReporter{logger: log.New(o.writer, o.prefix, o.flags)}
}

// Report implements Reporter.
func (l *LogReporter) Report(op string, err error) {
	l.logger.Printf("%s: %v", op, err)
}

// Logger exposes the underlying logger (e.g. to redirect it with SetOutput).
func (l *LogReporter) Logger() *log.Logger { return l.logger }

// Entry is one report captured by a Recorder.
type Entry struct {
	Op  string
	Err error
}

// Recorder keeps every report it receives. The zero value is ready to use and
// safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Report implements Reporter.
func (r *Recorder) Report(op string, err error) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Op: op, Err: err})
	r.mu.Unlock()
}

// Entries returns a copy of the captured reports in arrival order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Len returns the number of captured reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Last returns the most recent report; ok is false when nothing was captured.
func (r *Recorder) Last() (e Entry, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return Entry{}, false
	}

	return r.entries[len(r.entries)-1], true
}

// Reset forgets every captured report.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// holder boxes the interface so it fits an atomic.Pointer.
type holder struct{ r Reporter }

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{r: NewLogReporter()})
}

// Default returns the process-wide reporter.
func Default() Reporter {
	return current.Load().r
}

// SetDefault installs r as the process-wide reporter and returns a func that
// restores the previous one. A nil r installs Discard.
//
//	restore := report.SetDefault(rec)
//	defer restore()
func SetDefault(r Reporter) (restore func()) {
	if r == nil {
		r = Discard
	}
	prev := current.Swap(&holder{r: r})

	return func() { current.Store(prev) }
}

// Report forwards to the process-wide reporter.
func Report(op string, err error) {
	current.Load().r.Report(op, err)
}
