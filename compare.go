// Package byd provides the equivalence checks of the Bydysawd chemical
// notation: the isomer test between formulas and the balance test for
// equations.
//
// Both checks are pure; they canonicalize copies and never mutate their
// operands. Callers who want in-place canonicalization use
// [ir.Formula.Standardize] directly.
package byd

import (
	"github.com/bydysawd/byd-format/byd/ir"
)

// Isomer reports whether a and b contain the same number of atoms of every
// element.
func Isomer(a, b *ir.Formula) bool {
	return a.Standardized().String() == b.Standardized().String()
}

// Balanced reports whether eq has the same total atom count of every element
// on each side, regardless of how atoms are grouped into formulas.
func Balanced(eq *ir.Equation) bool {
	lhs := ir.Aggregate(eq.LHS)
	rhs := ir.Aggregate(eq.RHS)
	lhs.Standardize()
	rhs.Standardize()
	return lhs.String() == rhs.String()
}
