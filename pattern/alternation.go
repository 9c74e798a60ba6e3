// SPDX-License-Identifier: MIT
// Package: pattern
//
// alternation.go — compile-time resolution of (a|b) groups.
//
// Algorithm (iterative, no recursion):
//  1. Mark structural runes: unescaped and outside [...] classes.
//  2. Find the first structural '|'. Stop when there is none.
//  3. Walk back to the nearest enclosing '(' and forward to its ')' with a
//     depth counter. Without an enclosing group the whole string is the group.
//  4. Flip a coin: keep the left side or the right side of the '|'. A right
//     side that still holds a top-level '|' keeps its parentheses so the next
//     round resolves it inside the same group.
//  5. Splice the choice in place of the group and repeat.
//
// Afterwards the remaining group parentheses are dropped, after a balance check.
//
// One coin flip per '|': choices are made once per Compile and are not
// revisited by later Generate calls.

package pattern

const (
	escapeRune  = '\\'
	pipeRune    = '|'
	openParen   = '('
	closeParen  = ')'
	openClass   = '['
	closeClass  = ']'
	openBrace   = '{'
	closeBrace  = '}'
	rangeSep    = ','
	optionalQ   = '?'
	oneOrMoreQ  = '+'
	zeroOrMoreQ = '*'
)

// structural marks runes that are neither escaped nor inside a character class.
func structural(s []rune) []bool {
	mark := make([]bool, len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == escapeRune {
			// the escape and the escaped rune are both literal
			i++
			continue
		}
		switch {
		case c == openClass:
			depth++
		case c == closeClass && depth > 0:
			depth--
		case depth == 0:
			mark[i] = true
		}
	}

	return mark
}

// firstStructural returns the index of the first structural occurrence of c.
func firstStructural(s []rune, mark []bool, c rune) int {
	for i, r := range s {
		if mark[i] && r == c {
			return i
		}
	}

	return -1
}

// hasTopLevelPipe reports a structural '|' not nested in any group.
func hasTopLevelPipe(s []rune) bool {
	mark := structural(s)
	depth := 0
	for i, r := range s {
		if !mark[i] {
			continue
		}
		switch r {
		case openParen:
			depth++
		case closeParen:
			depth--
		case pipeRune:
			if depth == 0 {
				return true
			}
		}
	}

	return false
}

// enclosingGroup returns the indexes of the '(' and ')' around pos, or -1, -1
// when pos is at the top level.
func enclosingGroup(s []rune, mark []bool, pos int) (openIdx, closeIdx int, ok bool) {
	openIdx, closeIdx = -1, -1
	depth := 0
	for i := pos - 1; i >= 0; i-- {
		if !mark[i] {
			continue
		}
		if s[i] == closeParen {
			depth++
		} else if s[i] == openParen {
			if depth == 0 {
				openIdx = i
				break
			}
			depth--
		}
	}
	if openIdx < 0 {
		return -1, -1, true
	}

	depth = 0
	for i := pos + 1; i < len(s); i++ {
		if !mark[i] {
			continue
		}
		if s[i] == openParen {
			depth++
		} else if s[i] == closeParen {
			if depth == 0 {
				closeIdx = i
				break
			}
			depth--
		}
	}
	if closeIdx < 0 {
		return openIdx, -1, false
	}

	return openIdx, closeIdx, true
}

// chooseAlternations resolves every alternation group of expr with src and
// strips the remaining group parentheses.
func chooseAlternations(expr string, src Source) (string, error) {
	s := []rune(expr)
	// balance is checked up front so the outcome never depends on the coin
	if _, err := stripGroups(expr, s); err != nil {
		return "", err
	}
	for {
		mark := structural(s)
		pipe := firstStructural(s, mark, pipeRune)
		if pipe < 0 {
			break
		}

		lo, hi, ok := enclosingGroup(s, mark, pipe)
		if !ok {
			return "", &SyntaxError{
				Pattern:  expr,
				Offset:   lo,
				Fragment: string(s[lo:]),
				Reason:   reasonUnbalancedParen,
			}
		}

		if lo < 0 {
			// top level: halve the whole expression
			if coin(src) {
				s = s[:pipe]
			} else {
				s = s[pipe+1:]
			}
			continue
		}

		var chosen []rune
		if coin(src) {
			chosen = s[lo+1 : pipe]
		} else {
			chosen = s[pipe+1 : hi]
			if hasTopLevelPipe(chosen) {
				wrapped := make([]rune, 0, len(chosen)+2)
				wrapped = append(wrapped, openParen)
				wrapped = append(wrapped, chosen...)
				chosen = append(wrapped, closeParen)
			}
		}

		next := make([]rune, 0, len(s))
		next = append(next, s[:lo]...)
		next = append(next, chosen...)
		next = append(next, s[hi+1:]...)
		s = next
	}

	return stripGroups(expr, s)
}

// stripGroups removes structural parentheses, failing on imbalance.
func stripGroups(expr string, s []rune) (string, error) {
	mark := structural(s)
	out := make([]rune, 0, len(s))
	depth := 0
	lastOpen := -1
	for i, r := range s {
		if mark[i] && r == openParen {
			depth++
			lastOpen = i
			continue
		}
		if mark[i] && r == closeParen {
			if depth == 0 {
				return "", &SyntaxError{
					Pattern:  expr,
					Offset:   i,
					Fragment: string(s[i:]),
					Reason:   reasonUnbalancedParen,
				}
			}
			depth--
			continue
		}
		out = append(out, r)
	}
	if depth > 0 {
		return "", &SyntaxError{
			Pattern:  expr,
			Offset:   lastOpen,
			Fragment: string(s[lastOpen:]),
			Reason:   reasonUnbalancedParen,
		}
	}

	return string(out), nil
}
