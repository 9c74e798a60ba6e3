// Package lenrange implements the closed integer interval used to describe how
// many characters a pattern atom, or a whole compiled pattern, may produce.
//
// A Range is a pure value: every operation returns a new Range and nothing is
// ever mutated in place. The constructor keeps min ≤ max regardless of the
// argument order and maps the Unbounded marker (-1) to RangeMax.
//
// Operations:
//
//	Merge(a, b)         — union hull: [min(a.min,b.min), max(a.max,b.max)]
//	SumBoundaries(a, b) — additive composition, saturating at RangeMax
//	Intersect(a, b)     — overlap, ErrNoOverlap when the ranges are disjoint
//	IsZeroRange()       — min == max
//	Boundaries()        — min-1, min, max, max+1 for boundary-value testing
//
// Example:
//
//	r := lenrange.New(3, lenrange.Unbounded) // [3,1000]
//	s := r.SumBoundaries(lenrange.New(2, 4)) // [5,1000]
package lenrange
