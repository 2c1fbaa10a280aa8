package ir

import (
	"strconv"
)

// Term is one element letter paired with a positive atom count. A term
// written without digits has count 1.
type Term struct {
	Element byte
	Count   int
}

func NewTerm(element byte, count int) (Term, error) {
	if element < 'A' || element > 'Z' {
		return Term{}, ErrBadElement
	}
	if count < 1 {
		return Term{}, ErrBadCount
	}
	return Term{Element: element, Count: count}, nil
}

// String renders the term in notation form, omitting a count of 1.
func (t Term) String() string {
	if t.Count == 1 {
		return string(t.Element)
	}
	return string(t.Element) + strconv.Itoa(t.Count)
}
