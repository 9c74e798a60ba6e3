package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_NextUnread(t *testing.T) {
	r := newReader("aé}")
	require.True(t, r.hasNext())

	c, ok := r.next()
	require.True(t, ok)
	assert.Equal(t, 'a', c)
	assert.Equal(t, 1, r.pos())
	c, _ = r.next()
	assert.Equal(t, 'é', c, "offsets count runes, not bytes")
	assert.Equal(t, 2, r.pos())

	r.unread()
	c, _ = r.next()
	assert.Equal(t, 'é', c)
	assert.Equal(t, "aé", r.since(0))

	_, _ = r.next()
	assert.False(t, r.hasNext())
	_, ok = r.next()
	assert.False(t, ok)
}

func TestReader_UnreadAtStart(t *testing.T) {
	r := newReader("x")
	r.unread()
	assert.Equal(t, 0, r.pos())
	assert.Equal(t, "", r.since(-3))
}
