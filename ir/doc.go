// Package ir holds the in-memory representation of Bydysawd chemical
// notation: terms, formulas and equations.
//
// A [Term] pairs one element letter with a positive count. A [Formula] is an
// ordered term sequence; [Formula.Standardize] reduces it to canonical form
// with one term per element in alphabetical order. An [Equation] has a
// formula sequence on each side of '='.
package ir
