package pattern

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/charpool"
	"github.com/mgm-tp/jfunk-sub000/lenrange"
)

// recorder collects diagnostics.
type recorder struct {
	got []Diagnostic
}

func (r *recorder) hook(d Diagnostic) { r.got = append(r.got, d) }

func (r *recorder) kinds() []DiagnosticKind {
	out := make([]DiagnosticKind, 0, len(r.got))
	for _, d := range r.got {
		out = append(out, d.Kind)
	}

	return out
}

func quietConfig(rec *recorder) config {
	return newConfig(WithLogger(slog.New(slog.DiscardHandler)), WithDiagnostics(rec.hook))
}

func newAtom(t *testing.T, a *alphabet.Alphabet, expr string, rng lenrange.Range) Atom {
	t.Helper()
	pool, err := charpool.New(expr, a)
	require.NoError(t, err)

	return Atom{pool: pool, rng: rng}
}

func TestReplacementCount(t *testing.T) {
	src := NewSource(7)
	assert.Equal(t, 5, replacementCount(5, BadnessAll, src))
	assert.Equal(t, 0, replacementCount(5, BadnessNone, src))
	assert.Equal(t, 3, replacementCount(5, 3, src))
	assert.Equal(t, 5, replacementCount(5, 9, src), "clamped to size")

	for size := 1; size <= 12; size++ {
		for i := 0; i < 50; i++ {
			n := replacementCount(size, BadnessRandom, src)
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, max(1, size-2))
		}
	}
}

func TestAtomCharacters(t *testing.T) {
	a, err := alphabet.New("US-ASCII", `[A-Za-z0-9]`, `[!-/]`)
	require.NoError(t, err)
	atom := newAtom(t, a, "[a-z]", lenrange.New(1, 10))
	src := NewSource(3)

	t.Run("zero size", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		assert.Empty(t, atom.characters(0, 0, BadnessAll, src, &cfg))
		assert.Empty(t, rec.got)
	})

	t.Run("allowed only", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		out := atom.characters(0, 8, BadnessNone, src, &cfg)
		require.Len(t, out, 8)
		for _, r := range out {
			assert.True(t, atom.pool.IsAllowed(r), "%q", r)
		}
		assert.Empty(t, rec.got)
	})

	t.Run("all forbidden", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		out := atom.characters(0, 8, BadnessAll, src, &cfg)
		require.Len(t, out, 8)
		for _, r := range out {
			assert.True(t, atom.pool.IsForbidden(r), "%q", r)
		}
		assert.Empty(t, rec.got)
	})

	t.Run("exact count", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		for i := 0; i < 20; i++ {
			out := atom.characters(0, 6, 2, src, &cfg)
			require.Len(t, out, 6)
			bad := 0
			for _, r := range out {
				if atom.pool.IsForbidden(r) {
					bad++
				}
			}
			assert.Equal(t, 2, bad)
		}
	})
}

func TestAtomCharacters_Degrade(t *testing.T) {
	noBad, err := alphabet.New("US-ASCII", `[a-z]`, `[^\x00-\x7f]`)
	require.NoError(t, err)
	src := NewSource(11)

	t.Run("all bad without forbidden characters", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		atom := newAtom(t, noBad, "[a-z]", lenrange.Exactly(4))
		assert.Empty(t, atom.characters(2, 4, BadnessAll, src, &cfg))
		require.Len(t, rec.got, 1)
		assert.Equal(t, NoForbiddenCharacters, rec.got[0].Kind)
		assert.Equal(t, 2, rec.got[0].Atom)
	})

	t.Run("partial bad without forbidden characters", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		atom := newAtom(t, noBad, "[a-z]", lenrange.Exactly(4))
		out := atom.characters(0, 4, 2, src, &cfg)
		assert.Len(t, out, 4)
		assert.Equal(t, []DiagnosticKind{NoForbiddenCharacters}, rec.kinds())
	})

	t.Run("no allowed characters", func(t *testing.T) {
		rec := &recorder{}
		cfg := quietConfig(rec)
		atom := newAtom(t, noBad, "[0-9]", lenrange.Exactly(4))
		require.False(t, atom.CanGood())
		assert.Empty(t, atom.characters(0, 4, BadnessNone, src, &cfg))
		assert.Equal(t, []DiagnosticKind{NoAllowedCharacters}, rec.kinds())

		// every position forbidden needs no allowed character
		rec.got = nil
		out := atom.characters(0, 4, BadnessAll, src, &cfg)
		assert.Len(t, out, 4)
		assert.Empty(t, rec.got)
	})

	t.Run("neither allowed nor forbidden characters", func(t *testing.T) {
		empty, err := alphabet.New("US-ASCII", `[^\x00-\x7f]`, `[^\x00-\x7f]`)
		require.NoError(t, err)
		rec := &recorder{}
		cfg := quietConfig(rec)
		atom := newAtom(t, empty, "a", lenrange.Exactly(3))
		require.False(t, atom.CanGood())
		require.False(t, atom.CanBad())
		assert.Empty(t, atom.characters(0, 3, 3, src, &cfg))
		assert.Equal(t, []DiagnosticKind{NoForbiddenCharacters}, rec.kinds())
	})
}

func TestAtomCharacters_EdgeSpaces(t *testing.T) {
	// the only forbidden character is a space
	a, err := alphabet.New("US-ASCII", `[a-z]`, ` `)
	require.NoError(t, err)
	atom := newAtom(t, a, "[a-z]", lenrange.Exactly(3))

	rec := &recorder{}
	cfg := quietConfig(rec)
	out := atom.characters(0, 3, BadnessAll, NewSource(5), &cfg)
	require.Len(t, out, 3)

	assert.True(t, atom.pool.IsAllowed(out[0]), "first position keeps its letter")
	assert.Equal(t, ' ', out[1])
	assert.True(t, atom.pool.IsAllowed(out[2]), "last position keeps its letter")
	assert.Equal(t, []DiagnosticKind{EdgeSpaceRetained, EdgeSpaceRetained}, rec.kinds())
}

func TestAtomCharacters_AllowedEdgeSpaces(t *testing.T) {
	a, err := alphabet.New("US-ASCII", `[a-z ]`, `[0-9]`)
	require.NoError(t, err)
	atom := newAtom(t, a, "[a-z ]", lenrange.Exactly(5))

	rec := &recorder{}
	cfg := quietConfig(rec)
	src := NewSource(9)
	trimmed := 0
	for i := 0; i < 200; i++ {
		out := atom.characters(0, 5, BadnessNone, src, &cfg)
		if out[0] != ' ' && out[4] != ' ' {
			trimmed++
		}
	}
	// 10 redraws out of 27 characters make an edge space very unlikely
	assert.Greater(t, trimmed, 190)
	assert.Empty(t, rec.got)
}
