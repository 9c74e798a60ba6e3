package pattern

import (
	"math/rand"
	"sync"
	"unicode"
)

// Source is the injected randomness. *math/rand.Rand satisfies it, so does
// *LockedSource. The pattern never touches a global generator.
type Source interface {
	// Intn returns a uniform value in [0,n). n > 0.
	Intn(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// LockedSource serializes access to a seeded generator so one Pattern can be
// shared between goroutines. Output order then depends on scheduling.
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource returns a goroutine-safe source for seed.
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{rnd: NewSource(seed)}
}

// Intn implements Source.
func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Intn(n)
}

// coin is the fair coin flip gating length growth and branch choice.
func coin(src Source) bool {
	return src.Intn(2) == 0
}

// permutation returns 0..n-1 in Fisher–Yates shuffled order.
func permutation(src Source, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx
}

// isSpace reports the space-separator classes (Zs, Zl, Zp). Tabs and newlines
// are control characters and do not count.
func isSpace(r rune) bool {
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
