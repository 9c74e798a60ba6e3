// SPDX-License-Identifier: MIT
// Package: pattern
//
// atom.go — one compiled unit: a character pool plus a length range.
//
// characters(size, badness) contract:
//   • size 0 yields nothing.
//   • size allowed characters are drawn; a space at the first or last position
//     is redrawn up to spaceRetries times.
//   • badness picks how many positions are overwritten with forbidden
//     characters: BadnessAll → all, BadnessRandom → uniform in [1, max(1,size-2)],
//     n ≥ 0 → min(n, size).
//   • Overwritten positions are distinct and shuffled. At the first and last
//     position a forbidden space is redrawn up to edgeRetries times; after
//     that the position keeps its allowed character.
//   • Unsatisfiable requests degrade and report a Diagnostic:
//     BadnessAll without forbidden characters → empty;
//     no allowed characters and not every position forbidden → empty;
//     forbidden characters requested but none exist → allowed output.

package pattern

import (
	"fmt"
	"log/slog"

	"github.com/mgm-tp/jfunk-sub000/charpool"
	"github.com/mgm-tp/jfunk-sub000/lenrange"
)

// Atom couples the character pool of one pattern element with its length range.
type Atom struct {
	pool *charpool.Pool
	rng  lenrange.Range
}

// Range returns the atom's length range.
func (a Atom) Range() lenrange.Range { return a.rng }

// Expression returns the atom's class expression.
func (a Atom) Expression() string { return a.pool.Expression() }

// Pool returns the atom's character pool.
func (a Atom) Pool() *charpool.Pool { return a.pool }

// CanBad reports whether the atom can produce a forbidden character.
func (a Atom) CanBad() bool { return a.pool.CanBad() }

// CanGood reports whether the atom can produce an allowed character.
func (a Atom) CanGood() bool { return a.pool.CanGood() }

// replacementCount maps badness to the number of positions to overwrite.
func replacementCount(size, badness int, src Source) int {
	switch {
	case badness == BadnessAll:
		return size
	case badness == BadnessRandom:
		hi := size - 2
		if hi < 1 {
			hi = 1
		}
		return 1 + src.Intn(hi)
	case badness > size:
		return size
	default:
		return badness
	}
}

// characters emits size characters for atom index idx.
func (a Atom) characters(idx, size, badness int, src Source, cfg *config) []rune {
	if size <= 0 {
		return nil
	}
	if badness == BadnessAll && !a.CanBad() {
		cfg.report(Diagnostic{
			Kind:       NoForbiddenCharacters,
			Atom:       idx,
			Expression: a.Expression(),
			Message:    "atom has no forbidden characters, all-bad output is empty",
		})
		return nil
	}

	out := make([]rune, size)
	if a.CanGood() {
		for i := range out {
			out[i], _ = a.pool.Allowed(src)
		}
		a.avoidEdgeSpaces(out, src, cfg)
	}

	n := replacementCount(size, badness, src)
	if !a.CanGood() && n < size {
		cfg.report(Diagnostic{
			Kind:       NoAllowedCharacters,
			Atom:       idx,
			Expression: a.Expression(),
			Message:    "atom has no allowed characters, contribution is empty",
		})
		return nil
	}
	if n == 0 {
		return out
	}
	if !a.CanBad() {
		cfg.report(Diagnostic{
			Kind:       NoForbiddenCharacters,
			Atom:       idx,
			Expression: a.Expression(),
			Message:    fmt.Sprintf("atom has no forbidden characters, %d replacement(s) skipped", n),
		})
		if !a.CanGood() {
			return nil
		}
		return out
	}

	last := size - 1
	for _, pos := range permutation(src, size)[:n] {
		f, _ := a.pool.Forbidden(src)
		if pos == 0 || pos == last {
			for t := 0; t < cfg.edgeRetries && isSpace(f); t++ {
				f, _ = a.pool.Forbidden(src)
			}
			if isSpace(f) && a.CanGood() {
				cfg.report(Diagnostic{
					Kind:       EdgeSpaceRetained,
					Atom:       idx,
					Expression: a.Expression(),
					Message:    fmt.Sprintf("no non-space forbidden character after %d retries, position %d unchanged", cfg.edgeRetries, pos),
				})
				continue
			}
		}
		out[pos] = f
	}

	return out
}

// avoidEdgeSpaces redraws leading and trailing allowed spaces.
func (a Atom) avoidEdgeSpaces(out []rune, src Source, cfg *config) {
	for _, pos := range [...]int{0, len(out) - 1} {
		for t := 0; t < cfg.spaceRetries && isSpace(out[pos]); t++ {
			out[pos], _ = a.pool.Allowed(src)
		}
		if isSpace(out[pos]) {
			cfg.logger.Warn("edge space kept after retries",
				slog.String("expression", a.Expression()),
				slog.Int("position", pos),
			)
		}
	}
}
