package pattern

import (
	"fmt"
	"strings"
)

// Generate produces a string with every atom at the midpoint of its own range.
func (p *Pattern) Generate(badness int) (string, error) {
	if badness < BadnessAll {
		return "", fmt.Errorf("%s: badness=%d: %w", methodGenerate, badness, ErrBadness)
	}
	sizes := make([]int, len(p.atoms))
	for i, a := range p.atoms {
		sizes[i] = a.rng.Midpoint()
	}

	return p.GenerateSizes(sizes, badness)
}

// GenerateLength produces a string of total characters.
//
// Every atom starts at its minimum. While the sum is short of total, atoms are
// visited round-robin and grown by one behind a coin flip, up to their own
// maximum; when total exceeds the sum of the atom maxima those maxima are
// ignored so the result is deliberately oversized. Shrinking below the sum of
// the atom minima works the same way downwards, ignoring per-atom minima.
//
// The result is shorter than total only when an atom degrades (see Diagnostic).
func (p *Pattern) GenerateLength(total, badness int) (string, error) {
	if total < 0 {
		return "", fmt.Errorf("%s: total=%d: %w", methodGenerateLen, total, ErrNegativeLength)
	}
	if badness < BadnessAll {
		return "", fmt.Errorf("%s: badness=%d: %w", methodGenerateLen, badness, ErrBadness)
	}
	if len(p.atoms) == 0 {
		return "", nil
	}

	return p.GenerateSizes(p.distribute(total), badness)
}

// distribute spreads total over the atoms. The grow and shrink modes are
// decided from the atoms themselves, not from the aggregated range, whose
// upper bound saturates.
func (p *Pattern) distribute(total int) []int {
	n := len(p.atoms)
	sizes := make([]int, n)
	length, ceiling := 0, 0
	for i, a := range p.atoms {
		sizes[i] = a.rng.Min()
		length += sizes[i]
		ceiling += a.rng.Max()
	}

	maxedOut := total > ceiling
	for i := 0; length < total; i++ {
		idx := i % n
		if !coin(p.src) {
			continue
		}
		if maxedOut || sizes[idx] < p.atoms[idx].rng.Max() {
			sizes[idx]++
			length++
		}
	}
	// only reached below the summed minima, so any atom may shrink to zero
	for i := 0; length > total; i++ {
		idx := i % n
		if coin(p.src) && sizes[idx] > 0 {
			sizes[idx]--
			length--
		}
	}

	return sizes
}

// GenerateSizes produces a string with sizes[i] characters from atom i. It is
// the primitive behind Generate and GenerateLength.
func (p *Pattern) GenerateSizes(sizes []int, badness int) (string, error) {
	if len(sizes) != len(p.atoms) {
		return "", fmt.Errorf("%s: %d sizes for %d atoms: %w",
			methodGenerateSize, len(sizes), len(p.atoms), ErrSizeMismatch)
	}
	if badness < BadnessAll {
		return "", fmt.Errorf("%s: badness=%d: %w", methodGenerateSize, badness, ErrBadness)
	}
	total := 0
	for i, n := range sizes {
		if n < 0 {
			return "", fmt.Errorf("%s: sizes[%d]=%d: %w", methodGenerateSize, i, n, ErrNegativeLength)
		}
		total += n
	}

	var b strings.Builder
	b.Grow(total)
	for i, a := range p.atoms {
		for _, r := range a.characters(i, sizes[i], badness, p.src, &p.cfg) {
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

// GenerateBoundaries produces one string per boundary length of the pattern
// range (min-1, min, max, max+1; negative lengths skipped).
func (p *Pattern) GenerateBoundaries(badness int) ([]string, error) {
	lengths := p.rng.Boundaries()
	out := make([]string, 0, len(lengths))
	for _, n := range lengths {
		s, err := p.GenerateLength(n, badness)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
