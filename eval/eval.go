// Package eval runs expr predicates against parsed equations, e.g.
//
//	balanced && lhs["H"] > 2
//
// The environment exposes "balanced", per-element count maps "lhs" and
// "rhs", the distinct "elements" of the equation, and "formulas", the total
// number of formulas on both sides.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/bydysawd/byd-format/byd"
	"github.com/bydysawd/byd-format/byd/debug"
	"github.com/bydysawd/byd-format/byd/ir"
)

// Env builds the expression environment for eq.
func Env(eq *ir.Equation) map[string]any {
	lhs := ir.Aggregate(eq.LHS)
	rhs := ir.Aggregate(eq.RHS)
	lhs.Standardize()
	rhs.Standardize()
	seen := map[string]bool{}
	elements := []string{}
	for _, f := range []*ir.Formula{lhs, rhs} {
		for _, e := range f.Elements() {
			if seen[string(e)] {
				continue
			}
			seen[string(e)] = true
			elements = append(elements, string(e))
		}
	}
	return map[string]any{
		"balanced": byd.Balanced(eq),
		"lhs":      counts(lhs),
		"rhs":      counts(rhs),
		"elements": elements,
		"formulas": len(eq.LHS) + len(eq.RHS),
	}
}

func counts(f *ir.Formula) map[string]int {
	m := map[string]int{}
	for _, t := range f.Terms() {
		m[string(t.Element)] = t.Count
	}
	return m
}

// Check compiles src as a boolean expression and evaluates it against eq.
func Check(eq *ir.Equation, src string) (bool, error) {
	env := Env(eq)
	if debug.Eval() {
		debug.Logf("eval %q with env %v\n", src, env)
	}
	prg, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("bad predicate %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q returned %T, not bool", src, res)
	}
	return b, nil
}
