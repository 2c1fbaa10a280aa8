// Package parse builds ir values from Bydysawd chemical notation text.
//
// The grammar is deliberately small: element symbols are exactly one
// upper-case letter, so any upper-case letter starts a new term. An equation
// side is a '+'-separated list of segments; a segment beginning with digits
// carries a stoichiometric coefficient that multiplies every term count in
// its body.
package parse

import (
	"fmt"
	"strconv"

	"github.com/bydysawd/byd-format/byd/debug"
	"github.com/bydysawd/byd-format/byd/ir"
	"github.com/bydysawd/byd-format/byd/token"
)

// Term parses a single term: one upper-case letter optionally followed by
// decimal digits, e.g. "X" or "M67".
func Term(d []byte) (ir.Term, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return ir.Term{}, fmt.Errorf("%w: %w", ErrMalformedTerm, err)
	}
	ts, err := terms(toks, 1)
	if err != nil {
		return ir.Term{}, err
	}
	if len(ts) != 1 {
		return ir.Term{}, fmt.Errorf("%w: want exactly one term, got %d", ErrMalformedTerm, len(ts))
	}
	return ts[0], nil
}

// Formula parses a bare concatenation of terms, e.g. "AX3YM67" or "Z".
// No separators and no coefficient are allowed here.
func Formula(d []byte) (*ir.Formula, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFormula, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty formula", ErrMalformedFormula)
	}
	ts, err := terms(toks, 1)
	if err != nil {
		return nil, err
	}
	return ir.NewFormula(ts), nil
}

// Side parses one side of an equation: formulas separated by '+', each
// optionally prefixed with a coefficient. Whitespace may appear anywhere.
func Side(d []byte) ([]*ir.Formula, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFormula, err)
	}
	return side(toks)
}

// Equation parses a full equation, e.g. "X3 + Y2Z = ZX + Y2X4". The text
// must contain exactly one '=' and a non-empty formula list on each side.
func Equation(d []byte) (*ir.Equation, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	eqAt := -1
	for i := range toks {
		if toks[i].Type != token.Equals {
			continue
		}
		if eqAt >= 0 {
			return nil, errAt(ErrMissingEquals, toks[i].Pos)
		}
		eqAt = i
	}
	if eqAt < 0 {
		return nil, ErrMissingEquals
	}
	lhs, err := side(toks[:eqAt])
	if err != nil {
		return nil, err
	}
	rhs, err := side(toks[eqAt+1:])
	if err != nil {
		return nil, err
	}
	eq := &ir.Equation{LHS: lhs, RHS: rhs}
	if debug.Parse() {
		debug.Logf("parsed equation %s\n", eq)
	}
	return eq, nil
}

// segment is one '+'-separated run on an equation side, split into its
// optional leading coefficient and the term tokens of its body.
type segment struct {
	coef int
	body []token.Token
}

func side(toks []token.Token) ([]*ir.Formula, error) {
	if len(toks) == 0 {
		return nil, ErrEmptySide
	}
	fs := []*ir.Formula{}
	last := 0
	flush := func(group []token.Token, pos *token.Pos) error {
		if len(group) == 0 {
			return errAt(ErrEmptySide, pos)
		}
		seg, err := split(group)
		if err != nil {
			return err
		}
		ts, err := terms(seg.body, seg.coef)
		if err != nil {
			return err
		}
		fs = append(fs, ir.NewFormula(ts))
		return nil
	}
	for i := range toks {
		if toks[i].Type != token.Plus {
			continue
		}
		if err := flush(toks[last:i], toks[i].Pos); err != nil {
			return nil, err
		}
		last = i + 1
	}
	var endPos *token.Pos
	if last > 0 {
		endPos = toks[last-1].Pos
	}
	if err := flush(toks[last:], endPos); err != nil {
		return nil, err
	}
	return fs, nil
}

// split separates a segment's leading coefficient, if any, from its body.
// A bare number with no element body is malformed.
func split(group []token.Token) (*segment, error) {
	seg := &segment{coef: 1}
	if group[0].Type == token.Number {
		coefPos := group[0].Pos
		k, err := strconv.Atoi(group[0].String())
		if err != nil {
			return nil, errAt(fmt.Errorf("%w: coefficient %q: %w", ErrMalformedFormula, group[0].String(), err), coefPos)
		}
		if k < 1 {
			return nil, errAt(fmt.Errorf("%w: coefficient must be positive", ErrMalformedFormula), coefPos)
		}
		seg.coef = k
		group = group[1:]
		if len(group) == 0 {
			return nil, errAt(fmt.Errorf("%w: coefficient with no formula body", ErrMalformedFormula), coefPos)
		}
	}
	seg.body = group
	return seg, nil
}

// terms parses a run of Element [Number] pairs, multiplying every count,
// implicit or written, by k.
func terms(toks []token.Token, k int) ([]ir.Term, error) {
	ts := []ir.Term{}
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type != token.Element {
			return nil, errAt(fmt.Errorf("%w: expected element letter, got %q", ErrMalformedTerm, t.String()), t.Pos)
		}
		count := 1
		if i+1 < len(toks) && toks[i+1].Type == token.Number {
			c, err := strconv.Atoi(toks[i+1].String())
			if err != nil {
				return nil, errAt(fmt.Errorf("%w: count %q: %w", ErrMalformedTerm, toks[i+1].String(), err), toks[i+1].Pos)
			}
			if c < 1 {
				return nil, errAt(fmt.Errorf("%w: count must be positive", ErrMalformedTerm), toks[i+1].Pos)
			}
			count = c
			i++
		}
		tm, err := ir.NewTerm(t.Bytes[0], count*k)
		if err != nil {
			return nil, errAt(fmt.Errorf("%w: %w", ErrMalformedTerm, err), t.Pos)
		}
		ts = append(ts, tm)
		i++
	}
	return ts, nil
}
