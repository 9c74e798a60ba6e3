// SPDX-License-Identifier: MIT
// Package: pattern
//
// options.go — functional options for Compile.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs; the
//     generation methods themselves never panic.
//   • Options apply in order, later ones override earlier ones.

package pattern

import "log/slog"

// Option customizes a compiled pattern.
type Option func(*config)

// WithLogger routes diagnostics and exhausted-retry warnings to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pattern: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithSpaceRetries sets how often a leading or trailing allowed space is
// redrawn. Zero disables the heuristic. Panics if n < 0.
func WithSpaceRetries(n int) Option {
	if n < 0 {
		panic("pattern: WithSpaceRetries(n<0)")
	}
	return func(c *config) {
		c.spaceRetries = n
	}
}

// WithEdgeRetries sets how often a forbidden space at the first or last
// position is redrawn. Zero disables the heuristic. Panics if n < 0.
func WithEdgeRetries(n int) Option {
	if n < 0 {
		panic("pattern: WithEdgeRetries(n<0)")
	}
	return func(c *config) {
		c.edgeRetries = n
	}
}

// WithDistributeAttempts caps the steps Negate spends spreading the input
// length over atoms. Panics if n < 0.
func WithDistributeAttempts(n int) Option {
	if n < 0 {
		panic("pattern: WithDistributeAttempts(n<0)")
	}
	return func(c *config) {
		c.distributeAttempts = n
	}
}

// WithDiagnostics installs a hook receiving every Diagnostic in addition to the
// log record. The hook must be safe for concurrent use if the pattern is.
// Panics on nil.
func WithDiagnostics(fn func(Diagnostic)) Option {
	if fn == nil {
		panic("pattern: WithDiagnostics(nil)")
	}
	return func(c *config) {
		c.onDiagnostic = fn
	}
}
