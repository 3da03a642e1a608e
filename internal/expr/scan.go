package expr

import (
	"fmt"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

type tokKind uint8

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokLParen
	tokRParen
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokShl
	tokShr
	tokPipe
	tokAmp
	tokCaret
	tokEqEq
	tokLess
)

type token struct {
	kind tokKind
	text string
	pos  uint32
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// scan tokenizes an expression. Input is NFC-normalized first so pasted
// text scans identically regardless of its source normalization form.
func scan(src string) ([]token, error) {
	src = norm.NFC.String(src)
	toks := make([]token, 0, 16)

	emit := func(kind tokKind, start, end int) error {
		pos, err := safecast.Conv[uint32](start)
		if err != nil {
			return fmt.Errorf("expression too long: %w", err)
		}
		toks = append(toks, token{kind: kind, text: src[start:end], pos: pos})
		return nil
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c):
			start := i
			i++
			if c == '0' && i < len(src) && (src[i] == 'x' || src[i] == 'X') {
				i++
				for i < len(src) && isHexDigit(src[i]) {
					i++
				}
			} else {
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			if err := emit(tokNumber, start, i); err != nil {
				return nil, err
			}
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			if err := emit(tokIdent, start, i); err != nil {
				return nil, err
			}
		default:
			start := i
			var kind tokKind
			switch c {
			case '(':
				kind, i = tokLParen, i+1
			case ')':
				kind, i = tokRParen, i+1
			case '+':
				kind, i = tokPlus, i+1
			case '-':
				kind, i = tokMinus, i+1
			case '*':
				kind, i = tokStar, i+1
			case '/':
				kind, i = tokSlash, i+1
			case '%':
				kind, i = tokPercent, i+1
			case '|':
				kind, i = tokPipe, i+1
			case '&':
				kind, i = tokAmp, i+1
			case '^':
				kind, i = tokCaret, i+1
			case '<':
				if i+1 < len(src) && src[i+1] == '<' {
					kind, i = tokShl, i+2
				} else {
					kind, i = tokLess, i+1
				}
			case '>':
				if i+1 < len(src) && src[i+1] == '>' {
					kind, i = tokShr, i+2
				} else {
					return nil, fmt.Errorf("position %d: unexpected character %q", i, c)
				}
			case '=':
				if i+1 < len(src) && src[i+1] == '=' {
					kind, i = tokEqEq, i+2
				} else {
					return nil, fmt.Errorf("position %d: unexpected character %q", i, c)
				}
			default:
				return nil, fmt.Errorf("position %d: unexpected character %q", i, c)
			}
			if err := emit(kind, start, i); err != nil {
				return nil, err
			}
		}
	}
	if err := emit(tokEOF, len(src), len(src)); err != nil {
		return nil, err
	}
	return toks, nil
}
