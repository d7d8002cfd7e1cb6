// SPDX-License-Identifier: MIT

// Package report: functional configuration for LogReporter.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: options are resolved once, at construction.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package report

import (
	"io"
	"os"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrefix is the log prefix written before every report line.
	DefaultPrefix = ""

	// DefaultFlags are the log flags of the default reporter. Zero keeps the
	// line equal to "<op>: <err>", matching the plain stderr messages callers
	// of the compatibility API have always seen.
	DefaultFlags = 0
)

// DefaultWriter is where a LogReporter writes when WithWriter is not given.
var DefaultWriter io.Writer = os.Stderr

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWriterNil    = "report: WithWriter: writer must not be nil"
	panicFlagsInvalid = "report: WithFlags: flags must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; NewLogReporter resolves them via gatherOptions.
type Options struct {
	writer io.Writer // DefaultWriter
	prefix string    // DefaultPrefix
	flags  int       // DefaultFlags
}

// WithWriter sends report lines to w instead of standard error.
// Panics when w is nil.
//
// Complexity: O(1).
func WithWriter(w io.Writer) Option {
	if w == nil {
		panic(panicWriterNil)
	}

	return func(o *Options) { o.writer = w }
}

// WithPrefix sets the prefix written at the start of every line.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.prefix = prefix }
}

// WithFlags sets the standard log flags (log.LstdFlags, log.Lmsgprefix, ...).
// Panics on negative values.
func WithFlags(flags int) Option {
	if flags < 0 {
		panic(panicFlagsInvalid)
	}

	return func(o *Options) { o.flags = flags }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		writer: DefaultWriter,
		prefix: DefaultPrefix,
		flags:  DefaultFlags,
	}
}

// gatherOptions applies setters in order over the defaults; nil setters are
// skipped. Later options win.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
