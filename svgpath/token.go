package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// Err* are the failures wrapped by ParseError.
var (
	ErrSyntax   = errors.New("syntax error")
	ErrArity    = errors.New("wrong number of arguments")
	ErrCommand  = errors.New("unknown command")
	ErrImplicit = errors.New("number without a command")
)

// ParseError says where parsing stopped. There is never a partial result.
type ParseError struct {
	Pos   int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d (%q)", e.Err, e.Pos, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type token struct {
	pos int
	cmd byte // zero for numbers
	num float64
	raw string
}

func (t token) isCommand() bool {
	return t.cmd != 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenize splits a path into command letters and numbers. Whitespace and
// commas only separate; a sign or a second decimal point also starts a new
// number, so "1-2" and "1.5.5" are two numbers each.
func tokenize(s string) ([]token, error) {
	var toks []token

	for i := 0; i < len(s); {
		c := s[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == ',':
			i++

		case isLetter(c) && c != 'e' && c != 'E':
			toks = append(toks, token{pos: i, cmd: c, raw: string(c)})
			i++

		case isDigit(c) || c == '.' || c == '-' || c == '+':
			n := scanNumber(s, i)
			if n == i {
				return nil, &ParseError{Pos: i, Token: string(c), Err: ErrSyntax}
			}

			raw := s[i:n]
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ParseError{Pos: i, Token: raw, Err: ErrSyntax}
			}

			toks = append(toks, token{pos: i, num: f, raw: raw})
			i = n

		default:
			return nil, &ParseError{Pos: i, Token: string(c), Err: ErrSyntax}
		}
	}

	return toks, nil
}

// scanNumber returns the end of the number starting at i, or i if there isn't
// one.
func scanNumber(s string, i int) int {
	j := i
	if j < len(s) && (s[j] == '-' || s[j] == '+') {
		j++
	}

	digits := 0
	for j < len(s) && isDigit(s[j]) {
		j++
		digits++
	}

	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
	}

	if digits == 0 {
		return i
	}

	// Only consume an exponent if it's complete.
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '-' || s[k] == '+') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			j = k
		}
	}

	return j
}
