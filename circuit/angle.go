package circuit

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// angleParser evaluates the arithmetic allowed in gate parameters:
// numbers, pi, + - * /, unary minus and parentheses.
type angleParser struct {
	tokens []string
	pos    int
}

func tokenizeAngle(s string) ([]string, error) {
	tokens := []string{}
	i := 0
	for i < len(s) {
		c := rune(s[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case strings.ContainsRune("+-*/()", c):
			tokens = append(tokens, string(c))
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(s) && (unicode.IsDigit(rune(s[j])) || s[j] == '.' || s[j] == 'e' || s[j] == 'E' ||
				((s[j] == '-' || s[j] == '+') && j > i && (s[j-1] == 'e' || s[j-1] == 'E'))) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(s) && (unicode.IsLetter(rune(s[j])) || unicode.IsDigit(rune(s[j]))) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		default:
			return nil, errors.Errorf("unexpected character %q in angle %q", c, s)
		}
	}
	return tokens, nil
}

// ParseAngle evaluates an angle expression such as "-pi/4" or "0.5*pi".
func ParseAngle(s string) (float64, error) {
	tokens, err := tokenizeAngle(s)
	if err != nil {
		return 0, err
	}
	p := &angleParser{tokens: tokens}
	v, err := p.expr()
	if err != nil {
		return 0, errors.Wrapf(err, "angle %q", s)
	}
	if p.pos != len(p.tokens) {
		return 0, errors.Errorf("angle %q: trailing %q", s, p.tokens[p.pos])
	}
	return v, nil
}

func (p *angleParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *angleParser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.peek() == "+" || p.peek() == "-" {
		op := p.tokens[p.pos]
		p.pos++
		r, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			v += r
		} else {
			v -= r
		}
	}
	return v, nil
}

func (p *angleParser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for p.peek() == "*" || p.peek() == "/" {
		op := p.tokens[p.pos]
		p.pos++
		r, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			v *= r
		} else {
			if r == 0 {
				return 0, errors.New("division by zero")
			}
			v /= r
		}
	}
	return v, nil
}

func (p *angleParser) unary() (float64, error) {
	if p.peek() == "-" {
		p.pos++
		v, err := p.unary()
		return -v, err
	}
	if p.peek() == "+" {
		p.pos++
		return p.unary()
	}
	return p.primary()
}

func (p *angleParser) primary() (float64, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return 0, errors.New("unexpected end of expression")
	case tok == "(":
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ")" {
			return 0, errors.New("missing )")
		}
		p.pos++
		return v, nil
	case tok == "pi":
		p.pos++
		return math.Pi, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Errorf("unexpected token %q", tok)
	}
	p.pos++
	return v, nil
}
