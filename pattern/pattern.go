// SPDX-License-Identifier: MIT
// Package: pattern
//
// pattern.go — Compile and the read-only accessors of a compiled Pattern.
//
// Compile pipeline:
//  1. chooseAlternations — resolve (a|b) groups once, drop group parentheses.
//  2. parseAtoms        — tokenize into (class expression, quantifier) pairs.
//  3. charpool.New      — partition the alphabet for every atom.
//  4. SumBoundaries     — aggregate the overall length range.
//
// A Pattern holds no mutable state: every generation call allocates its own
// buffers, so sharing a Pattern between goroutines is safe as long as its
// Source is (see NewLockedSource).

package pattern

import (
	"fmt"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/charpool"
	"github.com/mgm-tp/jfunk-sub000/lenrange"
)

// Pattern is a compiled generator expression.
type Pattern struct {
	expr     string
	resolved string
	alpha    *alphabet.Alphabet
	atoms    []Atom
	rng      lenrange.Range
	src      Source
	cfg      config
}

// Compile parses expr against a and binds src as the pattern's randomness.
// Alternation groups are resolved here, once, using src.
func Compile(expr string, a *alphabet.Alphabet, src Source, opts ...Option) (*Pattern, error) {
	if a == nil {
		return nil, fmt.Errorf("%s(%q): %w", methodCompile, expr, ErrNilAlphabet)
	}
	if src == nil {
		return nil, fmt.Errorf("%s(%q): %w", methodCompile, expr, ErrNeedRandSource)
	}
	cfg := newConfig(opts...)

	resolved, err := chooseAlternations(expr, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompile, err)
	}
	specs, err := parseAtoms(expr, resolved)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompile, err)
	}

	p := &Pattern{
		expr:     expr,
		resolved: resolved,
		alpha:    a,
		atoms:    make([]Atom, 0, len(specs)),
		rng:      lenrange.Exactly(0),
		src:      src,
		cfg:      cfg,
	}
	for i, spec := range specs {
		pool, err := charpool.New(spec.expr, a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompile, &SyntaxError{
				Pattern:  expr,
				Offset:   spec.offset,
				Fragment: spec.expr,
				Reason:   reasonBadAtom,
				Err:      err,
			})
		}
		if !pool.CanGood() {
			p.cfg.report(Diagnostic{
				Kind:       NoAllowedCharacters,
				Atom:       i,
				Expression: spec.expr,
				Message:    "atom matches no allowed character of the alphabet",
			})
		}
		p.atoms = append(p.atoms, Atom{pool: pool, rng: spec.rng})
		if i == 0 {
			p.rng = spec.rng
		} else {
			p.rng = p.rng.SumBoundaries(spec.rng)
		}
	}

	return p, nil
}

// MustCompile is Compile that panics on error. Intended for tests, examples
// and package-level fixtures with constant expressions.
func MustCompile(expr string, a *alphabet.Alphabet, src Source, opts ...Option) *Pattern {
	p, err := Compile(expr, a, src, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Range returns the aggregated length range of all atoms.
func (p *Pattern) Range() lenrange.Range { return p.rng }

// Expression returns the expression passed to Compile.
func (p *Pattern) Expression() string { return p.expr }

// Resolved returns the expression after alternation resolution.
func (p *Pattern) Resolved() string { return p.resolved }

// Alphabet returns the alphabet the pattern was compiled against.
func (p *Pattern) Alphabet() *alphabet.Alphabet { return p.alpha }

// Atoms returns a copy of the compiled atoms in order.
func (p *Pattern) Atoms() []Atom {
	out := make([]Atom, len(p.atoms))
	copy(out, p.atoms)

	return out
}

// CanBad reports whether any atom can produce a forbidden character.
func (p *Pattern) CanBad() bool {
	for _, a := range p.atoms {
		if a.CanBad() {
			return true
		}
	}

	return false
}

// String returns the resolved expression and its range.
func (p *Pattern) String() string {
	return fmt.Sprintf("%s %s", p.resolved, p.rng)
}
