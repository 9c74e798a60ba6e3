package charpool_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/charpool"
)

func idAlphabet(t *testing.T) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New("US-ASCII", `[A-Za-z0-9-]`, `[^A-Za-z0-9-]`)
	require.NoError(t, err)

	return a
}

func TestNew_Partition(t *testing.T) {
	a := idAlphabet(t)
	p, err := charpool.New(`[0-9]`, a)
	require.NoError(t, err)

	assert.Len(t, p.AllowedSet(), 10)
	// 65 alphabet-forbidden plus 53 locally forbidden (letters and hyphen)
	assert.Len(t, p.ForbiddenSet(), 128-10)
	assert.True(t, p.CanGood())
	assert.True(t, p.CanBad())

	assert.True(t, p.IsAllowed('7'))
	assert.True(t, p.IsForbidden('A'), "locally forbidden")
	assert.True(t, p.IsForbidden('!'), "alphabet forbidden")
	assert.Equal(t, `[0-9]`, p.Expression())
}

func TestNew_EmptyAllowed(t *testing.T) {
	p, err := charpool.New(`[!?]`, idAlphabet(t))
	require.NoError(t, err)

	assert.False(t, p.CanGood())
	_, ok := p.Allowed(rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestNew_NoForbidden(t *testing.T) {
	a, err := alphabet.New("US-ASCII", `.|\n`, `[^\x00-\x7f]`)
	require.NoError(t, err)
	require.Empty(t, a.Forbidden())

	p, err := charpool.New(`.|\n`, a)
	require.NoError(t, err)
	assert.False(t, p.CanBad())
	_, ok := p.Forbidden(rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	_, err := charpool.New(`[a-`, idAlphabet(t))
	assert.ErrorIs(t, err, alphabet.ErrBadExpression)

	_, err = charpool.New(`a`, nil)
	assert.ErrorIs(t, err, alphabet.ErrNilAlphabet)
}

func TestDraws_Membership(t *testing.T) {
	p, err := charpool.New(`[A-Z]`, idAlphabet(t))
	require.NoError(t, err)
	src := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		r, ok := p.Allowed(src)
		require.True(t, ok)
		assert.True(t, r >= 'A' && r <= 'Z', "%q", r)

		f, ok := p.Forbidden(src)
		require.True(t, ok)
		assert.False(t, f >= 'A' && f <= 'Z', "%q", f)
	}
}

func TestDraws_Deterministic(t *testing.T) {
	p, err := charpool.New(`[a-z0-9]`, idAlphabet(t))
	require.NoError(t, err)

	draw := func(seed int64) []rune {
		src := rand.New(rand.NewSource(seed))
		out := make([]rune, 32)
		for i := range out {
			out[i], _ = p.Allowed(src)
		}
		return out
	}
	assert.Equal(t, draw(7), draw(7))
}
