package calc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrBadExpression = errors.New("bad expression")
	ErrDivideByZero  = errors.New("division by zero")
)

// Eval evaluates an arithmetic expression over the four ASCII
// operators with the usual precedence (* and / bind tighter than + and
// -) and left-to-right associativity. The grammar is exactly
// "number (op number)*" with decimal numbers: no parentheses, no unary
// minus, no whitespace.
func Eval(s string) (float64, error) {
	p := &parser{input: s}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrBadExpression, p.input[p.pos], p.pos)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) next() byte {
	ch := p.peek()
	p.pos++
	return ch
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseNumber()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.next()
			rhs, err := p.parseNumber()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.next()
			rhs, err := p.parseNumber()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivideByZero
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for ch := p.peek(); ch >= '0' && ch <= '9'; ch = p.peek() {
		p.next()
	}
	if p.peek() == '.' {
		p.next()
		for ch := p.peek(); ch >= '0' && ch <= '9'; ch = p.peek() {
			p.next()
		}
	}
	tok := p.input[start:p.pos]
	if tok == "" || tok == "." {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrBadExpression, start)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadExpression, tok)
	}
	return v, nil
}
