package alphabet

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Matcher tests single characters against a class expression.
// A Matcher is safe for concurrent use.
type Matcher struct {
	expr string
	re   *regexp2.Regexp
}

// CompileMatcher compiles expr so that Matches reports whether one character,
// taken as a whole string, matches it.
func CompileMatcher(expr string) (*Matcher, error) {
	// \A…\z anchors a full match; $ would also accept a trailing newline.
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("CompileMatcher(%q): %v: %w", expr, err, ErrBadExpression)
	}

	return &Matcher{expr: expr, re: re}, nil
}

// Expression returns the source expression.
func (m *Matcher) Expression() string { return m.expr }

// Matches reports whether r full-matches the expression.
func (m *Matcher) Matches(r rune) bool {
	ok, err := m.re.MatchString(string(r))
	// regexp2 only fails a match on timeout, which is never configured here.
	return err == nil && ok
}
