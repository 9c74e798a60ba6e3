// SPDX-License-Identifier: MIT

package lenrange

import (
	"errors"
	"fmt"
)

const (
	// RangeMax is the ceiling an unbounded range is normalized to.
	RangeMax = 1000

	// Unbounded is the caller-side marker for "no upper bound".
	Unbounded = -1
)

// ErrNoOverlap is returned by Intersect when the two ranges share no value.
var ErrNoOverlap = errors.New("lenrange: ranges do not overlap")

// Range is a closed interval [min,max] of character counts.
type Range struct {
	min int
	max int
}

// New returns the range [min,max]. A max of Unbounded is stored as RangeMax,
// and the bounds are swapped when given in descending order.
func New(min, max int) Range {
	if max == Unbounded {
		max = RangeMax
	}
	if min > max {
		min, max = max, min
	}

	return Range{min: min, max: max}
}

// Exactly returns the zero-width range [n,n].
func Exactly(n int) Range {
	return New(n, n)
}

// Min returns the lower bound.
func (r Range) Min() int { return r.min }

// Max returns the upper bound.
func (r Range) Max() int { return r.max }

// Span returns max-min.
func (r Range) Span() int { return r.max - r.min }

// Midpoint returns min + span/2.
func (r Range) Midpoint() int { return r.min + r.Span()/2 }

// IsZeroRange reports whether the range holds exactly one value.
func (r Range) IsZeroRange() bool { return r.min == r.max }

// IsBounded reports whether max is below the RangeMax ceiling.
func (r Range) IsBounded() bool { return r.max < RangeMax }

// Contains reports whether n lies in [min,max].
func (r Range) Contains(n int) bool { return n >= r.min && n <= r.max }

// String renders the range as "[min,max]".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.min, r.max)
}

// Merge returns the smallest range covering both r and o.
func (r Range) Merge(o Range) Range {
	return New(min(r.min, o.min), max(r.max, o.max))
}

// SumBoundaries returns the range of lengths produced by r followed by o.
// The upper bound saturates at RangeMax once either side is unbounded; it is
// raised to the summed minimum when that already exceeds RangeMax.
func (r Range) SumBoundaries(o Range) Range {
	lo := r.min + o.min
	hi := RangeMax
	if r.max != RangeMax && o.max != RangeMax {
		hi = r.max + o.max
	}

	return New(lo, max(hi, lo))
}

// Intersect returns the overlap of r and o.
func (r Range) Intersect(o Range) (Range, error) {
	if r.min > o.max || r.max < o.min {
		return Range{}, fmt.Errorf("Intersect(%s, %s): %w", r, o, ErrNoOverlap)
	}

	return New(max(r.min, o.min), min(r.max, o.max)), nil
}

// Boundaries returns the ascending, de-duplicated boundary lengths
// min-1, min, max and max+1. Negative values are dropped.
func (r Range) Boundaries() []int {
	cand := [...]int{r.min - 1, r.min, r.max, r.max + 1}
	out := make([]int, 0, len(cand))
	for _, n := range cand {
		if n < 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == n {
			continue
		}
		out = append(out, n)
	}

	return out
}
