package ir

import (
	"sort"
	"strings"
)

// Formula is an ordered sequence of terms, in parse order. The same element
// may occur in several terms until [Formula.Standardize] folds them together.
type Formula struct {
	terms []Term
}

// NewFormula makes a formula containing a copy of terms.
func NewFormula(terms []Term) *Formula {
	f := &Formula{terms: make([]Term, len(terms))}
	copy(f.terms, terms)
	return f
}

// Terms returns the constituent terms of the formula.
func (f *Formula) Terms() []Term {
	return f.terms
}

// CountElement returns the total number of atoms of element e over all
// terms, 0 if e does not occur.
func (f *Formula) CountElement(e byte) int {
	ttl := 0
	for _, t := range f.terms {
		if t.Element == e {
			ttl += t.Count
		}
	}
	return ttl
}

// Elements returns the distinct elements present, ascending.
func (f *Formula) Elements() []byte {
	seen := map[byte]bool{}
	es := []byte{}
	for _, t := range f.terms {
		if seen[t.Element] {
			continue
		}
		seen[t.Element] = true
		es = append(es, t.Element)
	}
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	return es
}

// Standardize rewrites the term sequence in place so that each element
// present is represented by exactly one term and terms are in alphabetical
// order. Idempotent.
func (f *Formula) Standardize() {
	es := f.Elements()
	std := make([]Term, 0, len(es))
	for _, e := range es {
		std = append(std, Term{Element: e, Count: f.CountElement(e)})
	}
	f.terms = std
}

// Standardized returns the canonical form of f as a new formula, leaving f
// untouched.
func (f *Formula) Standardized() *Formula {
	g := NewFormula(f.terms)
	g.Standardize()
	return g
}

// String renders the formula in notation form, in current term order.
func (f *Formula) String() string {
	var sb strings.Builder
	for _, t := range f.terms {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// LastUpper returns the index of the rightmost upper-case letter in s, or -1
// if there is none.
func LastUpper(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return i
		}
	}
	return -1
}
