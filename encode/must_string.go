package encode

import (
	"bytes"

	"github.com/bydysawd/byd-format/byd/ir"
)

func MustFormulaString(f *ir.Formula, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Formula(f, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func MustEquationString(eq *ir.Equation, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Equation(eq, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
