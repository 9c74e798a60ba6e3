package pattern

import (
	"strconv"
	"strings"

	"github.com/mgm-tp/jfunk-sub000/lenrange"
)

// atomSpec is one parsed (expression, quantifier) pair.
type atomSpec struct {
	expr   string
	rng    lenrange.Range
	offset int
}

// parser turns a resolved, group-free expression into atom specs.
type parser struct {
	pattern string // original expression, for error reports
	r       *reader
}

func parseAtoms(original, resolved string) ([]atomSpec, error) {
	p := &parser{pattern: original, r: newReader(resolved)}
	var specs []atomSpec
	for p.r.hasNext() {
		start := p.r.pos()
		expr, err := p.readCharacterExpression()
		if err != nil {
			return nil, err
		}
		rng, err := p.readQuantifier()
		if err != nil {
			return nil, err
		}
		specs = append(specs, atomSpec{expr: expr, rng: rng, offset: start})
	}

	return specs, nil
}

func (p *parser) fail(start int, reason string) error {
	return &SyntaxError{
		Pattern:  p.pattern,
		Offset:   start,
		Fragment: p.r.since(start),
		Reason:   reason,
	}
}

// readCharacterExpression reads a literal, an escape, a bracket class (nested
// brackets copied verbatim) or a \p{Name} / \P{Name} property class.
func (p *parser) readCharacterExpression() (string, error) {
	start := p.r.pos()
	c, _ := p.r.next()

	switch c {
	case openClass:
		depth := 1
		for depth > 0 {
			n, ok := p.r.next()
			if !ok {
				return "", p.fail(start, reasonUnterminatedClass)
			}
			switch n {
			case escapeRune:
				if _, ok := p.r.next(); !ok {
					return "", p.fail(start, reasonUnterminatedClass)
				}
			case openClass:
				depth++
			case closeClass:
				depth--
			}
		}
		return p.r.since(start), nil

	case escapeRune:
		n, ok := p.r.next()
		if !ok {
			return "", p.fail(start, reasonTrailingEscape)
		}
		if n != 'p' && n != 'P' {
			return p.r.since(start), nil
		}
		b, ok := p.r.next()
		if !ok {
			return "", p.fail(start, reasonUnterminatedProperty)
		}
		if b != openBrace {
			// single-letter category, \pL
			return p.r.since(start), nil
		}
		for {
			e, ok := p.r.next()
			if !ok {
				return "", p.fail(start, reasonUnterminatedProperty)
			}
			if e == closeBrace {
				return p.r.since(start), nil
			}
		}

	default:
		return string(c), nil
	}
}

// readQuantifier reads an optional quantifier. Without one the consumed
// lookahead is pushed back and the range is [1,1].
func (p *parser) readQuantifier() (lenrange.Range, error) {
	start := p.r.pos()
	c, ok := p.r.next()
	if !ok {
		return lenrange.Exactly(1), nil
	}

	switch c {
	case optionalQ:
		return lenrange.New(0, 1), nil
	case oneOrMoreQ:
		return lenrange.New(1, lenrange.Unbounded), nil
	case zeroOrMoreQ:
		return lenrange.New(0, lenrange.Unbounded), nil
	case openBrace:
		var body strings.Builder
		for {
			n, ok := p.r.next()
			if !ok {
				return lenrange.Range{}, p.fail(start, reasonUnterminatedQuant)
			}
			if n == closeBrace {
				break
			}
			body.WriteRune(n)
		}
		return p.quantifierRange(start, body.String())
	default:
		p.r.unread()
		return lenrange.Exactly(1), nil
	}
}

// quantifierRange parses the inside of {n}, {n,} or {n,m}.
func (p *parser) quantifierRange(start int, body string) (lenrange.Range, error) {
	lo, hi, hasComma := strings.Cut(body, string(rangeSep))

	n, err := parseCount(lo)
	if err != nil {
		return lenrange.Range{}, p.failWith(start, err)
	}
	if !hasComma {
		return lenrange.Exactly(n), nil
	}
	if hi == "" {
		return lenrange.New(n, lenrange.Unbounded), nil
	}
	m, err := parseCount(hi)
	if err != nil {
		return lenrange.Range{}, p.failWith(start, err)
	}

	return lenrange.New(n, m), nil
}

func (p *parser) failWith(start int, err error) error {
	e := p.fail(start, reasonBadQuantifier).(*SyntaxError)
	e.Err = err

	return e
}

// parseCount accepts unsigned decimal integers only.
func parseCount(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, &strconv.NumError{Func: "parseCount", Num: s, Err: strconv.ErrSyntax}
		}
	}

	return strconv.Atoi(s)
}
