// Package libdiff reports how two formulas, or the two sides of an
// equation, differ in atom content.
package libdiff

import (
	"fmt"
	"sort"

	"github.com/bydysawd/byd-format/byd/ir"
)

// Delta is a per-element count difference between two canonicalized
// formulas.
type Delta struct {
	Element  byte
	From, To int
}

func (d Delta) String() string {
	return fmt.Sprintf("%c: %d -> %d", d.Element, d.From, d.To)
}

// Make returns the per-element differences between from and to, ascending
// by element letter. An empty result means from and to are isomers. Neither
// operand is mutated.
func Make(from, to *ir.Formula) []Delta {
	f, t := from.Standardized(), to.Standardized()
	seen := map[byte]bool{}
	es := []byte{}
	for _, e := range append(f.Elements(), t.Elements()...) {
		if seen[e] {
			continue
		}
		seen[e] = true
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	ds := []Delta{}
	for _, e := range es {
		a, b := f.CountElement(e), t.CountElement(e)
		if a != b {
			ds = append(ds, Delta{Element: e, From: a, To: b})
		}
	}
	return ds
}

// Sides returns the element imbalance of eq, left against right, with each
// side aggregated into one formula first. Empty means balanced.
func Sides(eq *ir.Equation) []Delta {
	return Make(ir.Aggregate(eq.LHS), ir.Aggregate(eq.RHS))
}
