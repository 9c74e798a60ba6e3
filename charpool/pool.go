package charpool

import (
	"fmt"
	"slices"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
)

// Source is the randomness a Pool draws with. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0,n). n > 0.
	Intn(n int) int
}

// chooser draws uniformly from a fixed set of characters.
type chooser struct {
	chars []rune
	index map[rune]struct{}
}

func newChooser(chars []rune) chooser {
	c := chooser{chars: chars, index: make(map[rune]struct{}, len(chars))}
	for _, r := range chars {
		c.index[r] = struct{}{}
	}

	return c
}

func (c chooser) empty() bool { return len(c.chars) == 0 }

func (c chooser) has(r rune) bool {
	_, ok := c.index[r]
	return ok
}

func (c chooser) draw(src Source) (rune, bool) {
	if len(c.chars) == 0 {
		return 0, false
	}

	return c.chars[src.Intn(len(c.chars))], true
}

// Pool holds the allowed and forbidden characters of one atom.
type Pool struct {
	expr      string
	allowed   chooser
	forbidden chooser
}

// New classifies a's characters against expr.
func New(expr string, a *alphabet.Alphabet) (*Pool, error) {
	if a == nil {
		return nil, fmt.Errorf("charpool.New(%q): %w", expr, alphabet.ErrNilAlphabet)
	}
	m, err := alphabet.CompileMatcher(expr)
	if err != nil {
		return nil, fmt.Errorf("charpool.New: %w", err)
	}

	globalAllowed := a.Allowed()
	forbidden := a.Forbidden()
	allowed := make([]rune, 0, len(globalAllowed))
	for _, r := range globalAllowed {
		if m.Matches(r) {
			allowed = append(allowed, r)
		} else {
			forbidden = append(forbidden, r)
		}
	}

	return &Pool{
		expr:      expr,
		allowed:   newChooser(allowed),
		forbidden: newChooser(forbidden),
	}, nil
}

// Expression returns the atom expression the pool was built from.
func (p *Pool) Expression() string { return p.expr }

// CanGood reports whether at least one allowed character exists.
func (p *Pool) CanGood() bool { return !p.allowed.empty() }

// CanBad reports whether at least one forbidden character exists.
func (p *Pool) CanBad() bool { return !p.forbidden.empty() }

// Allowed draws a uniformly random allowed character. ok is false when the
// allowed pool is empty.
func (p *Pool) Allowed(src Source) (r rune, ok bool) { return p.allowed.draw(src) }

// Forbidden draws a uniformly random forbidden character. ok is false when the
// forbidden pool is empty.
func (p *Pool) Forbidden(src Source) (r rune, ok bool) { return p.forbidden.draw(src) }

// IsAllowed reports whether r is in the allowed pool.
func (p *Pool) IsAllowed(r rune) bool { return p.allowed.has(r) }

// IsForbidden reports whether r is in the forbidden pool.
func (p *Pool) IsForbidden(r rune) bool { return p.forbidden.has(r) }

// AllowedSet returns a copy of the allowed characters.
func (p *Pool) AllowedSet() []rune { return slices.Clone(p.allowed.chars) }

// ForbiddenSet returns a copy of the forbidden characters.
func (p *Pool) ForbiddenSet() []rune { return slices.Clone(p.forbidden.chars) }

// String returns a short description for logs.
func (p *Pool) String() string {
	return fmt.Sprintf("%s(allowed=%d, forbidden=%d)", p.expr, len(p.allowed.chars), len(p.forbidden.chars))
}
