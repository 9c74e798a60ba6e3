// SPDX-License-Identifier: MIT
// Package: alphabet
//
// alphabet.go — the Alphabet type: repertoire enumeration and the
// allowed/forbidden partition.
//
// Contract:
//   • New enumerates the encoding once; the partition never changes afterwards.
//   • bad wins over good: a character matching both is forbidden.
//   • Accessors return copies, so callers cannot mutate shared state.
//
// Complexity:
//   • New: O(R·E) with R ≤ 256 repertoire characters and E the cost of one
//     class match.
//   • IsAllowed: O(1).

package alphabet

import (
	"fmt"
	"slices"
)

// Alphabet is an immutable partition of an encoding's repertoire into allowed
// and forbidden characters.
type Alphabet struct {
	encoding string
	goodExpr string
	badExpr  string

	repertoire []rune        // every enumerated character, byte order
	flags      map[rune]bool // classified characters only: true = allowed
	allowed    []rune
	forbidden  []rune
}

// New builds the alphabet of the named single-byte encoding. Characters that
// full-match badExpr are forbidden; of the rest, those that full-match goodExpr
// are allowed.
func New(encoding, goodExpr, badExpr string) (*Alphabet, error) {
	chars, canonical, err := repertoire(encoding)
	if err != nil {
		return nil, fmt.Errorf("alphabet.New: %w", err)
	}

	good, err := CompileMatcher(goodExpr)
	if err != nil {
		return nil, fmt.Errorf("alphabet.New: good expression: %w", err)
	}
	bad, err := CompileMatcher(badExpr)
	if err != nil {
		return nil, fmt.Errorf("alphabet.New: bad expression: %w", err)
	}

	a := &Alphabet{
		encoding:   canonical,
		goodExpr:   goodExpr,
		badExpr:    badExpr,
		repertoire: chars,
		flags:      make(map[rune]bool, len(chars)),
	}
	for _, r := range chars {
		switch {
		case bad.Matches(r):
			a.flags[r] = false
			a.forbidden = append(a.forbidden, r)
		case good.Matches(r):
			a.flags[r] = true
			a.allowed = append(a.allowed, r)
		}
	}

	return a, nil
}

// Encoding returns the canonical IANA name of the encoding.
func (a *Alphabet) Encoding() string { return a.encoding }

// GoodExpression returns the expression that selects allowed characters.
func (a *Alphabet) GoodExpression() string { return a.goodExpr }

// BadExpression returns the expression that selects forbidden characters.
func (a *Alphabet) BadExpression() string { return a.badExpr }

// Allowed returns a copy of the allowed characters in repertoire order.
func (a *Alphabet) Allowed() []rune { return slices.Clone(a.allowed) }

// Forbidden returns a copy of the forbidden characters in repertoire order.
func (a *Alphabet) Forbidden() []rune { return slices.Clone(a.forbidden) }

// Repertoire returns a copy of every character of the encoding, classified or not.
func (a *Alphabet) Repertoire() []rune { return slices.Clone(a.repertoire) }

// Size returns the number of classified characters.
func (a *Alphabet) Size() int { return len(a.flags) }

// IsAllowed reports whether r is allowed. It fails with ErrUnclassified when r
// matched neither expression or is not part of the encoding.
func (a *Alphabet) IsAllowed(r rune) (bool, error) {
	ok, found := a.flags[r]
	if !found {
		return false, fmt.Errorf("IsAllowed(%q): %w", r, ErrUnclassified)
	}

	return ok, nil
}

// Inverse returns a new Alphabet over the same repertoire with the allowed and
// forbidden sets swapped. The two alphabets share no mutable state.
func (a *Alphabet) Inverse() *Alphabet {
	inv := &Alphabet{
		encoding:   a.encoding,
		goodExpr:   a.badExpr,
		badExpr:    a.goodExpr,
		repertoire: slices.Clone(a.repertoire),
		flags:      make(map[rune]bool, len(a.flags)),
		allowed:    slices.Clone(a.forbidden),
		forbidden:  slices.Clone(a.allowed),
	}
	for r, ok := range a.flags {
		inv.flags[r] = !ok
	}

	return inv
}

// String returns a short description for logs.
func (a *Alphabet) String() string {
	return fmt.Sprintf("%s(allowed=%d, forbidden=%d)", a.encoding, len(a.allowed), len(a.forbidden))
}
