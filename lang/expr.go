// Package lang implements the line-based command language the core is
// driven through (hyp/sub/app/end), its expression grammar, and the
// randomised "scrambled" pretty-printer used to echo hypotheses in visually
// varied form.
package lang

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"vFGB/algebra"
	"vFGB/internal/qfield"
)

// Parse reads one expression string and builds the Polynode it denotes in
// ar, after stripping whitespace and '*' and lowercasing (spec.md §6.1's
// "after the parser strips whitespace and `*` and lowercases").
func Parse(ar *algebra.Arena, expr string) (*algebra.Polynode, error) {
	p := &parser{ar: ar, s: clean(expr)}
	result, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("lang: parse %q: %w", expr, err)
	}
	if p.i != len(p.s) {
		return nil, fmt.Errorf("lang: parse %q: unexpected trailing input at %q", expr, p.s[p.i:])
	}
	return result, nil
}

func clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '*' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

type parser struct {
	ar *algebra.Arena
	s  string
	i  int
}

func (p *parser) peek() byte {
	if p.i >= len(p.s) {
		return 0
	}
	return p.s[p.i]
}

// parseExpr is a top-level summand chain: an optional leading sign, then
// one or more summands separated by top-level '+'/'-'.
func (p *parser) parseExpr() (*algebra.Polynode, error) {
	neg := false
	if c := p.peek(); c == '+' || c == '-' {
		neg = c == '-'
		p.i++
	}
	first, err := p.parseSummand()
	if err != nil {
		return nil, err
	}
	if neg {
		first = p.ar.Neg(first)
	}
	result := first
	for {
		c := p.peek()
		if c != '+' && c != '-' {
			break
		}
		p.i++
		term, err := p.parseSummand()
		if err != nil {
			return nil, err
		}
		if c == '-' {
			term = p.ar.Neg(term)
		}
		result = p.ar.Add(result, term)
	}
	return result, nil
}

// parseSummand is an optional coefficient (integer or a/b rational; empty
// means +1) followed by zero or more juxtaposed factors.
func (p *parser) parseSummand() (*algebra.Polynode, error) {
	coeffStr := p.scanCoeff()
	coeff := qfield.One()
	if coeffStr != "" {
		var err error
		coeff, err = qfield.Parse(coeffStr)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", coeffStr, err)
		}
	}
	result := p.ar.ScaleCoeff(p.ar.OneP(), coeff)
	for {
		c := p.peek()
		if c == 0 || c == '+' || c == '-' || c == ')' {
			break
		}
		factor, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		result = p.ar.Mul(result, factor)
	}
	return result, nil
}

// scanCoeff consumes a leading [0-9]+(/[0-9]+)? run, if present.
func (p *parser) scanCoeff() string {
	start := p.i
	for p.i < len(p.s) && isDigit(p.s[p.i]) {
		p.i++
	}
	if p.i == start {
		return ""
	}
	if p.i < len(p.s) && p.s[p.i] == '/' {
		p.i++
		denStart := p.i
		for p.i < len(p.s) && isDigit(p.s[p.i]) {
			p.i++
		}
		if p.i == denStart {
			p.i = start // no digits after '/': not a fraction, back off
			for p.i < len(p.s) && isDigit(p.s[p.i]) {
				p.i++
			}
		}
	}
	return p.s[start:p.i]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseFactor is x<i>, f(<expr>), or (<expr>).
func (p *parser) parseFactor() (*algebra.Polynode, error) {
	switch p.peek() {
	case 'x':
		p.i++
		start := p.i
		for p.i < len(p.s) && isDigit(p.s[p.i]) {
			p.i++
		}
		if p.i == start {
			return nil, fmt.Errorf("expected a variable index after 'x' at %q", p.s[start:])
		}
		idx, err := strconv.Atoi(p.s[start:p.i])
		if err != nil {
			return nil, err
		}
		v := p.ar.VarNode(idx)
		m := p.ar.MononodeOf(map[*algebra.Node]int{v: 1})
		return p.ar.Scale(p.ar.OneP(), m, qfield.One()), nil
	case 'f':
		p.i++
		if p.peek() != '(' {
			return nil, fmt.Errorf("expected '(' after 'f'")
		}
		p.i++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("unterminated f(...)")
		}
		p.i++
		fn := p.ar.FunNode(inner)
		m := p.ar.MononodeOf(map[*algebra.Node]int{fn: 1})
		return p.ar.Scale(p.ar.OneP(), m, qfield.One()), nil
	case '(':
		p.i++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("unterminated '('")
		}
		p.i++
		return inner, nil
	default:
		return nil, fmt.Errorf("unexpected character %q", string(p.peek()))
	}
}
