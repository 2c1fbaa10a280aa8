package ir

import "strings"

// Equation is two non-empty formula sequences separated by '='. Sides are
// not mutated after construction.
type Equation struct {
	LHS, RHS []*Formula
}

// Aggregate folds one side into a single formula holding every term of
// every formula on that side, in order. The result shares no terms with the
// side's formulas.
func Aggregate(side []*Formula) *Formula {
	terms := []Term{}
	for _, f := range side {
		terms = append(terms, f.Terms()...)
	}
	return NewFormula(terms)
}

// String renders the equation with formulas joined by " + " and sides by
// " = ", preserving parse order.
func (eq *Equation) String() string {
	return joinSide(eq.LHS) + " = " + joinSide(eq.RHS)
}

func joinSide(side []*Formula) string {
	ss := make([]string, 0, len(side))
	for _, f := range side {
		ss = append(ss, f.String())
	}
	return strings.Join(ss, " + ")
}

// IndicesOf returns, ascending, every index at which x occurs in s.
func IndicesOf(s string, x byte) []int {
	is := []int{}
	for i := 0; i < len(s); i++ {
		if s[i] == x {
			is = append(is, i)
		}
	}
	return is
}
