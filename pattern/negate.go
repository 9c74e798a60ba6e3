package pattern

import (
	"fmt"
	"unicode/utf8"
)

// Negate overwrites badCount characters of input with forbidden characters.
//
// The length of input is spread over the atoms and an all-forbidden reference
// string is generated for that distribution; position i of input is replaced by
// reference character i (cycled when the reference is shorter). badCount
// BadnessAll replaces every position, BadnessRandom a uniform count in
// [1, len-1] (1 for a single character), n ≥ 0 exactly min(n, len).
//
// When no atom can produce a forbidden character input is returned unchanged
// and a NegationImpossible diagnostic is reported.
func (p *Pattern) Negate(input string, badCount int) (string, error) {
	if badCount < BadnessAll {
		return "", fmt.Errorf("%s: badCount=%d: %w", methodNegate, badCount, ErrBadness)
	}
	size := utf8.RuneCountInString(input)
	if size == 0 || len(p.atoms) == 0 {
		return input, nil
	}

	ref, err := p.GenerateSizes(p.spread(size), BadnessAll)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodNegate, err)
	}
	reference := []rune(ref)
	if len(reference) == 0 {
		p.cfg.report(Diagnostic{
			Kind:       NegationImpossible,
			Atom:       -1,
			Expression: p.resolved,
			Message:    "pattern has no forbidden characters, input returned unchanged",
		})
		return input, nil
	}

	out := []rune(input)
	last := size - 1
	for _, pos := range permutation(p.src, size)[:negationCount(size, badCount, p.src)] {
		j := pos
		c := reference[j%len(reference)]
		if pos == 0 || pos == last {
			for t := 0; t < p.cfg.edgeRetries && isSpace(c); t++ {
				j++
				c = reference[j%len(reference)]
			}
			if isSpace(c) {
				p.cfg.report(Diagnostic{
					Kind:       EdgeSpaceRetained,
					Atom:       -1,
					Expression: p.resolved,
					Message:    fmt.Sprintf("no non-space forbidden character after %d retries, position %d unchanged", p.cfg.edgeRetries, pos),
				})
				continue
			}
		}
		out[pos] = c
	}

	return string(out), nil
}

// negationCount maps badCount to the number of positions Negate overwrites.
func negationCount(size, badCount int, src Source) int {
	switch {
	case badCount == BadnessAll:
		return size
	case badCount == BadnessRandom:
		if size == 1 {
			return 1
		}
		return 1 + src.Intn(size-1)
	case badCount > size:
		return size
	default:
		return badCount
	}
}

// spread distributes total over the atoms: minima first, then one step per
// coin-gated visit within the atom maxima, for at most distributeAttempts
// visits. The sum can stay below or above total; Negate cycles the reference.
func (p *Pattern) spread(total int) []int {
	n := len(p.atoms)
	sizes := make([]int, n)
	length := 0
	for i, a := range p.atoms {
		sizes[i] = a.rng.Min()
		length += sizes[i]
	}
	for step := 0; length < total && step < p.cfg.distributeAttempts; step++ {
		idx := step % n
		if coin(p.src) && sizes[idx] < p.atoms[idx].rng.Max() {
			sizes[idx]++
			length++
		}
	}

	return sizes
}
