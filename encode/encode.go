// Package encode renders ir values as Bydysawd chemical notation text,
// optionally canonicalized and colored for terminals.
package encode

import (
	"io"
	"strconv"

	"github.com/bydysawd/byd-format/byd/ir"
)

type encState struct {
	canon bool
	Color func(Class, string) string
}

type Option func(*encState)

// Canonical standardizes each formula before rendering. Grouping into
// separate formulas on an equation side is preserved.
func Canonical(v bool) Option {
	return func(es *encState) { es.canon = v }
}

func WithColors(c *Colors) Option {
	return func(es *encState) { es.Color = c.Color }
}

func newState(opts []Option) *encState {
	es := &encState{Color: plain}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func plain(_ Class, s string) string { return s }

// Formula writes f to w in notation form.
func Formula(f *ir.Formula, w io.Writer, opts ...Option) error {
	return formula(f, w, newState(opts))
}

// Equation writes eq to w with formulas joined by " + " and sides by " = ".
func Equation(eq *ir.Equation, w io.Writer, opts ...Option) error {
	es := newState(opts)
	if err := side(eq.LHS, w, es); err != nil {
		return err
	}
	if err := writeString(w, es.Color(OpClass, " = ")); err != nil {
		return err
	}
	return side(eq.RHS, w, es)
}

func side(fs []*ir.Formula, w io.Writer, es *encState) error {
	for i, f := range fs {
		if i > 0 {
			if err := writeString(w, es.Color(OpClass, " + ")); err != nil {
				return err
			}
		}
		if err := formula(f, w, es); err != nil {
			return err
		}
	}
	return nil
}

func formula(f *ir.Formula, w io.Writer, es *encState) error {
	if es.canon {
		f = f.Standardized()
	}
	for _, t := range f.Terms() {
		if err := writeString(w, es.Color(ElementClass, string(t.Element))); err != nil {
			return err
		}
		if t.Count == 1 {
			continue
		}
		if err := writeString(w, es.Color(CountClass, strconv.Itoa(t.Count))); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
