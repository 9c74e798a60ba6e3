package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always returns v (mod n): 0 keeps left branches, 1 right ones.
type constSource int

func (s constSource) Intn(n int) int { return int(s) % n }

const (
	keepLeft  = constSource(0)
	keepRight = constSource(1)
)

func TestChooseAlternations(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		left  string
		right string
	}{
		{"no groups", "abc", "abc", "abc"},
		{"plain group dropped", "(ab)c", "abc", "abc"},
		{"two branches", "(a|b)c", "ac", "bc"},
		{"three branches", "x(a|b|c)y", "xay", "xcy"},
		{"top level", "ab|cd", "ab", "cd"},
		{"nested", "((a|b)|c)", "a", "c"},
		{"escaped pipe", `a\|b`, `a\|b`, `a\|b`},
		{"pipe in class", "[|](x|y)", "[|]x", "[|]y"},
		{"escaped paren", `\((a|b)`, `\(a`, `\(b`},
		{"paren in class", "[()](a|b)", "[()]a", "[()]b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := chooseAlternations(tc.expr, keepLeft)
			require.NoError(t, err)
			assert.Equal(t, tc.left, got)

			got, err = chooseAlternations(tc.expr, keepRight)
			require.NoError(t, err)
			assert.Equal(t, tc.right, got)
		})
	}
}

func TestChooseAlternations_Unbalanced(t *testing.T) {
	for _, expr := range []string{"(a|b", "a|b)", "(ab", "a)b", "((a)"} {
		for _, src := range []Source{keepLeft, keepRight} {
			_, err := chooseAlternations(expr, src)
			require.Error(t, err, expr)
			assert.ErrorIs(t, err, ErrSyntax, expr)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, reasonUnbalancedParen, se.Reason)
			assert.Equal(t, expr, se.Pattern)
		}
	}
}

func TestHasTopLevelPipe(t *testing.T) {
	assert.True(t, hasTopLevelPipe([]rune("a|b")))
	assert.False(t, hasTopLevelPipe([]rune("(a|b)")))
	assert.False(t, hasTopLevelPipe([]rune(`a\|b`)))
	assert.False(t, hasTopLevelPipe([]rune("[|]")))
	assert.True(t, hasTopLevelPipe([]rune("(a)|b")))
}

func TestStructural(t *testing.T) {
	s := []rune(`a\(b[(]c`)
	mark := structural(s)
	want := []bool{true, false, false, true, false, false, false, true}
	assert.Equal(t, want, mark)
}
