// Package expr evaluates plain arithmetic text: numbers, + - * /, unary
// signs and parentheses, with the usual precedence.
//
//	Expression := Term (("+"|"-") Term)*
//	Term       := Factor (("*"|"/") Factor)*
//	Factor     := ("-"|"+")? Factor | "(" Expression ")" | Number
//	Number     := Digit* ("." Digit*)?
//
// Whitespace is allowed between tokens. Evaluate keeps all parse state on the
// stack, so concurrent calls are safe.
package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Evaluate parses and evaluates text, returning its value.
func Evaluate(text string) (float64, error) {
	p := &parser{src: text}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return 0, &Error{Pos: p.pos, Err: ErrTrailingInput, Detail: strconv.Quote(p.src[p.pos:])}
	}
	return v, nil
}

// parser is a cursor over the input. One parser per Evaluate call.
type parser struct {
	src string
	pos int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.atEnd() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) expression() (float64, error) {
	result, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			t, err := p.term()
			if err != nil {
				return 0, err
			}
			result += t
		case '-':
			p.pos++
			t, err := p.term()
			if err != nil {
				return 0, err
			}
			result -= t
		default:
			return result, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	result, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			f, err := p.factor()
			if err != nil {
				return 0, err
			}
			result *= f
		case '/':
			opPos := p.pos
			p.pos++
			f, err := p.factor()
			if err != nil {
				return 0, err
			}
			if f == 0 {
				return 0, &Error{Pos: opPos, Err: ErrDivisionByZero}
			}
			result /= f
		default:
			return result, nil
		}
	}
}

func (p *parser) factor() (float64, error) {
	p.skipSpace()
	if p.atEnd() {
		return 0, &Error{Pos: p.pos, Err: ErrUnexpectedEnd}
	}

	switch p.peek() {
	case '-':
		p.pos++
		f, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -f, nil
	case '+':
		p.pos++
		return p.factor()
	case '(':
		open := p.pos
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, &Error{Pos: open, Err: ErrMismatchedParentheses}
		}
		p.pos++
		return v, nil
	}
	return p.number()
}

func (p *parser) number() (float64, error) {
	start := p.pos
	c := p.peek()
	if !isDigit(c) && c != '.' {
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		return 0, &Error{Pos: start, Err: ErrExpectedNumber, Detail: strconv.QuoteRune(r)}
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.peek() == '.' {
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
		}
	}
	lit := p.src[start:p.pos]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, &Error{Pos: start, Err: ErrInvalidNumber, Detail: strconv.Quote(lit)}
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
