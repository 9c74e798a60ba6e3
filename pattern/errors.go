// SPDX-License-Identifier: MIT
// Package: pattern
//
// errors.go — sentinel errors and the structured SyntaxError.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX) or errors.As(err, **SyntaxError).
//   • Every returned error carries the method name as a prefix.
//   • Unsatisfiable constraints (empty pools) are NOT errors: they surface as
//     Diagnostics and shorter output.

package pattern

import (
	"errors"
	"fmt"
)

// ErrSyntax classifies every compile-time pattern error. The concrete value is a
// *SyntaxError carrying the offending fragment.
var ErrSyntax = errors.New("pattern: syntax error")

// ErrNilAlphabet indicates Compile was called without an alphabet.
var ErrNilAlphabet = errors.New("pattern: alphabet is nil")

// ErrNeedRandSource indicates Compile was called without a random source.
var ErrNeedRandSource = errors.New("pattern: random source is required")

// ErrNegativeLength indicates a requested total or per-atom length below zero.
var ErrNegativeLength = errors.New("pattern: negative length")

// ErrBadness indicates a badness value below BadnessAll.
var ErrBadness = errors.New("pattern: invalid badness")

// ErrSizeMismatch indicates GenerateSizes got a different number of sizes than
// the pattern has atoms.
var ErrSizeMismatch = errors.New("pattern: sizes do not match atoms")

// SyntaxError describes why a pattern failed to compile.
//
// Offset and Fragment refer to the expression after alternation groups were
// resolved, which equals Pattern when it has no alternation.
type SyntaxError struct {
	Pattern  string // original expression passed to Compile
	Offset   int    // rune offset of the offending fragment
	Fragment string // offending substring
	Reason   string // human readable cause
	Err      error  // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("pattern: %s at offset %d (%q) in %q", e.Reason, e.Offset, e.Fragment, e.Pattern)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrSyntax and the underlying cause to errors.Is.
func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}

	return []error{ErrSyntax, e.Err}
}

// Syntax error reasons.
const (
	reasonUnterminatedClass    = "unterminated character class"
	reasonUnterminatedProperty = "unterminated property class"
	reasonUnterminatedQuant    = "unterminated quantifier"
	reasonBadQuantifier        = "invalid quantifier"
	reasonTrailingEscape       = "trailing escape"
	reasonUnbalancedParen      = "unbalanced parenthesis"
	reasonBadAtom              = "invalid atom expression"
)
