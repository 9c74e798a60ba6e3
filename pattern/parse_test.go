package pattern

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgm-tp/jfunk-sub000/lenrange"
)

func TestParseAtoms(t *testing.T) {
	unbounded := lenrange.Unbounded
	tests := []struct {
		name string
		expr string
		want []atomSpec
	}{
		{
			name: "fixed shape",
			expr: "[A-Z]{3}-[0-9]{4,4}",
			want: []atomSpec{
				{expr: "[A-Z]", rng: lenrange.Exactly(3), offset: 0},
				{expr: "-", rng: lenrange.Exactly(1), offset: 8},
				{expr: "[0-9]", rng: lenrange.Exactly(4), offset: 9},
			},
		},
		{
			name: "short quantifiers",
			expr: "a?b+c*",
			want: []atomSpec{
				{expr: "a", rng: lenrange.New(0, 1), offset: 0},
				{expr: "b", rng: lenrange.New(1, unbounded), offset: 2},
				{expr: "c", rng: lenrange.New(0, unbounded), offset: 4},
			},
		},
		{
			name: "open and swapped counts",
			expr: "x{2,}y{3,1}",
			want: []atomSpec{
				{expr: "x", rng: lenrange.New(2, unbounded), offset: 0},
				{expr: "y", rng: lenrange.New(1, 3), offset: 5},
			},
		},
		{
			name: "properties and escapes",
			expr: `\p{Lu}{2}\pL\d\.`,
			want: []atomSpec{
				{expr: `\p{Lu}`, rng: lenrange.Exactly(2), offset: 0},
				{expr: `\pL`, rng: lenrange.Exactly(1), offset: 9},
				{expr: `\d`, rng: lenrange.Exactly(1), offset: 12},
				{expr: `\.`, rng: lenrange.Exactly(1), offset: 14},
			},
		},
		{
			name: "nested and escaped classes",
			expr: `[a[bc]d]+[\]x]`,
			want: []atomSpec{
				{expr: "[a[bc]d]", rng: lenrange.New(1, unbounded), offset: 0},
				{expr: `[\]x]`, rng: lenrange.Exactly(1), offset: 9},
			},
		},
		{
			name: "empty",
			expr: "",
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAtoms(tc.expr, tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAtoms_Errors(t *testing.T) {
	tests := []struct {
		expr     string
		reason   string
		fragment string
		offset   int
	}{
		{"ab[cd", reasonUnterminatedClass, "[cd", 2},
		{`[a\`, reasonUnterminatedClass, `[a\`, 0},
		{`x\p{Lu`, reasonUnterminatedProperty, `\p{Lu`, 1},
		{`\p`, reasonUnterminatedProperty, `\p`, 0},
		{"a{3", reasonUnterminatedQuant, "{3", 1},
		{"a{x}", reasonBadQuantifier, "{x}", 1},
		{"a{-1}", reasonBadQuantifier, "{-1}", 1},
		{"a{1,y}", reasonBadQuantifier, "{1,y}", 1},
		{"a{}", reasonBadQuantifier, "{}", 1},
		{`ab\`, reasonTrailingEscape, `\`, 2},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := parseAtoms(tc.expr, tc.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.reason, se.Reason)
			assert.Equal(t, tc.fragment, se.Fragment)
			assert.Equal(t, tc.offset, se.Offset)
			assert.Contains(t, se.Error(), tc.reason)
		})
	}
}

func TestParseAtoms_QuantifierCause(t *testing.T) {
	_, err := parseAtoms("a{1x}", "a{1x}")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
