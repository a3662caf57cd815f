// Package calc implementa la calculadora rápida de la barra lateral como un
// evaluador aritmético restringido: números, + - * /, paréntesis y signo
// negativo. Nada más. La entrada nunca se interpreta como código.
package calc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Eval evalúa una expresión aritmética y devuelve el resultado como decimal.
// Errores: sintaxis inválida, caracteres fuera de la gramática o división por cero.
func Eval(input string) (decimal.Decimal, error) {
	p := &parser{src: []rune(strings.TrimSpace(input))}
	if len(p.src) == 0 {
		return decimal.Zero, fmt.Errorf("expresión vacía")
	}
	result, err := p.expr()
	if err != nil {
		return decimal.Zero, err
	}
	p.skipSpaces()
	if p.pos < len(p.src) {
		return decimal.Zero, fmt.Errorf("carácter inesperado %q en posición %d", p.src[p.pos], p.pos)
	}
	return result, nil
}

type parser struct {
	src []rune
	pos int
}

// expr := term (('+' | '-') term)*
func (p *parser) expr() (decimal.Decimal, error) {
	left, err := p.term()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.term()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Add(right)
		case '-':
			p.pos++
			right, err := p.term()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Sub(right)
		default:
			return left, nil
		}
	}
}

// term := factor (('*' | '/') factor)*
func (p *parser) term() (decimal.Decimal, error) {
	left, err := p.factor()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.factor()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Mul(right)
		case '/':
			p.pos++
			right, err := p.factor()
			if err != nil {
				return decimal.Zero, err
			}
			if right.IsZero() {
				return decimal.Zero, fmt.Errorf("división por cero")
			}
			left = left.Div(right)
		default:
			return left, nil
		}
	}
}

// factor := number | '(' expr ')' | '-' factor
func (p *parser) factor() (decimal.Decimal, error) {
	p.skipSpaces()
	switch {
	case p.peek() == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return decimal.Zero, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return decimal.Zero, fmt.Errorf("falta paréntesis de cierre")
		}
		p.pos++
		return v, nil
	case p.peek() == '-':
		p.pos++
		v, err := p.factor()
		if err != nil {
			return decimal.Zero, err
		}
		return v.Neg(), nil
	default:
		return p.number()
	}
}

// number := dígitos con punto o coma decimal opcional.
func (p *parser) number() (decimal.Decimal, error) {
	p.skipSpaces()
	start := p.pos
	seenSep := false
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if unicode.IsDigit(r) {
			p.pos++
			continue
		}
		if (r == '.' || r == ',') && !seenSep {
			seenSep = true
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		if p.pos < len(p.src) {
			return decimal.Zero, fmt.Errorf("carácter inesperado %q en posición %d", p.src[p.pos], p.pos)
		}
		return decimal.Zero, fmt.Errorf("expresión incompleta")
	}
	// Admitimos coma decimal (formato local) normalizándola a punto.
	lit := strings.ReplaceAll(string(p.src[start:p.pos]), ",", ".")
	v, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número inválido %q", lit)
	}
	return v, nil
}

func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}
