package token

import (
	"unicode"
	"unicode/utf8"
)

type Type int

const (
	None Type = iota
	Element
	Number
	Plus
	Equals
)

func (t Type) String() string {
	s, ok := map[Type]string{
		Element: "Element",
		Number:  "Number",
		Plus:    "Plus",
		Equals:  "Equals",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

type Token struct {
	Type  Type
	Bytes []byte
	Pos   *Pos
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Tokenize scans d and appends the resulting tokens to dst. Whitespace may
// appear anywhere and separates tokens. Any rune outside the notation
// alphabet stops the scan with an error wrapping [ErrBadRune].
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	doc := NewDoc(d)
	i, n := 0, len(d)
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c >= 'A' && c <= 'Z':
			dst = append(dst, Token{Type: Element, Bytes: d[i : i+1], Pos: doc.Pos(i)})
			i++
		case c >= '0' && c <= '9':
			j := i + 1
			for j < n && d[j] >= '0' && d[j] <= '9' {
				j++
			}
			dst = append(dst, Token{Type: Number, Bytes: d[i:j], Pos: doc.Pos(i)})
			i = j
		case c == '+':
			dst = append(dst, Token{Type: Plus, Bytes: d[i : i+1], Pos: doc.Pos(i)})
			i++
		case c == '=':
			dst = append(dst, Token{Type: Equals, Bytes: d[i : i+1], Pos: doc.Pos(i)})
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return dst, BadRuneErr(rune(c), doc.Pos(i))
			}
			if unicode.IsSpace(r) {
				i += sz
				continue
			}
			return dst, BadRuneErr(r, doc.Pos(i))
		}
	}
	return dst, nil
}
