package parse

import (
	"errors"
	"testing"

	"github.com/bydysawd/byd-format/byd/ir"
)

type formulaTest struct {
	in  string
	out string
	e   error
}

func TestFormula(t *testing.T) {
	fts := []formulaTest{
		{
			in:  "AX3YM67",
			out: "AX3YM67",
		},
		{
			in:  "Z",
			out: "Z",
		},
		{
			in:  "H2O",
			out: "H2O",
		},
		{
			in:  "X1",
			out: "X",
		},
		{
			in: "",
			e:  ErrMalformedFormula,
		},
		{
			in: "2X3Y",
			e:  ErrMalformedTerm,
		},
		{
			in: "xY",
			e:  ErrMalformedFormula,
		},
		{
			in: "X0",
			e:  ErrMalformedTerm,
		},
		{
			in: "X+Y",
			e:  ErrMalformedTerm,
		},
	}
	for _, ft := range fts {
		f, err := Formula([]byte(ft.in))
		if ft.e != nil {
			if err == nil {
				t.Errorf("%q: expected error %v", ft.in, ft.e)
			} else if !errors.Is(err, ft.e) {
				t.Errorf("%q: got %v want %v", ft.in, err, ft.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", ft.in, err)
			continue
		}
		if got := f.String(); got != ft.out {
			t.Errorf("%q: got %q want %q", ft.in, got, ft.out)
		}
	}
}

func TestFormulaTerms(t *testing.T) {
	f, err := Formula([]byte("AX3YM67"))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Term{
		{Element: 'A', Count: 1},
		{Element: 'X', Count: 3},
		{Element: 'Y', Count: 1},
		{Element: 'M', Count: 67},
	}
	ts := f.Terms()
	if len(ts) != len(want) {
		t.Fatalf("got %d terms want %d", len(ts), len(want))
	}
	for i := range ts {
		if ts[i] != want[i] {
			t.Errorf("term %d: got %v want %v", i, ts[i], want[i])
		}
	}
}

func TestTerm(t *testing.T) {
	tm, err := Term([]byte("M67"))
	if err != nil {
		t.Fatal(err)
	}
	if tm.Element != 'M' || tm.Count != 67 {
		t.Errorf("got %v", tm)
	}
	tm, err = Term([]byte("Z"))
	if err != nil {
		t.Fatal(err)
	}
	if tm.Element != 'Z' || tm.Count != 1 {
		t.Errorf("got %v", tm)
	}
	if _, err := Term([]byte("ZX")); !errors.Is(err, ErrMalformedTerm) {
		t.Errorf("two terms: got %v", err)
	}
	if _, err := Term([]byte("42")); !errors.Is(err, ErrMalformedTerm) {
		t.Errorf("bare number: got %v", err)
	}
}

type sideTest struct {
	in  string
	out []string
	e   error
}

func TestSide(t *testing.T) {
	sts := []sideTest{
		{
			in:  "X3 + Y2Z2",
			out: []string{"X3", "Y2Z2"},
		},
		{
			in:  "2X3Y",
			out: []string{"X6Y2"},
		},
		{
			in:  "2 X3Y",
			out: []string{"X6Y2"},
		},
		{
			in:  "3H2 + X",
			out: []string{"H6", "X"},
		},
		{
			in:  "2H2O",
			out: []string{"H4O2"},
		},
		{
			in:  "Z",
			out: []string{"Z"},
		},
		{
			in: "",
			e:  ErrEmptySide,
		},
		{
			in: "X + ",
			e:  ErrEmptySide,
		},
		{
			in: "+ X",
			e:  ErrEmptySide,
		},
		{
			in: "3",
			e:  ErrMalformedFormula,
		},
		{
			in: "0X",
			e:  ErrMalformedFormula,
		},
	}
	for _, st := range sts {
		fs, err := Side([]byte(st.in))
		if st.e != nil {
			if err == nil {
				t.Errorf("%q: expected error %v", st.in, st.e)
			} else if !errors.Is(err, st.e) {
				t.Errorf("%q: got %v want %v", st.in, err, st.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", st.in, err)
			continue
		}
		if len(fs) != len(st.out) {
			t.Errorf("%q: got %d formulas want %d", st.in, len(fs), len(st.out))
			continue
		}
		for i := range fs {
			if got := fs[i].String(); got != st.out[i] {
				t.Errorf("%q: formula %d got %q want %q", st.in, i, got, st.out[i])
			}
		}
	}
}

type eqTest struct {
	in  string
	out string
	e   error
}

func TestEquation(t *testing.T) {
	ets := []eqTest{
		{
			in:  "X3 + Y2Z = ZX + Y2X4",
			out: "X3 + Y2Z = ZX + Y2X4",
		},
		{
			in:  "  H2+O2   =H2O ",
			out: "H2 + O2 = H2O",
		},
		{
			in:  "2H2 + O2 = 2H2O",
			out: "H4 + O2 = H4O2",
		},
		{
			in: "H2 + O2",
			e:  ErrMissingEquals,
		},
		{
			in: "A = B = C",
			e:  ErrMissingEquals,
		},
		{
			in: "= H2O",
			e:  ErrEmptySide,
		},
		{
			in: "H2O =",
			e:  ErrEmptySide,
		},
		{
			in: "H2 + = O2",
			e:  ErrEmptySide,
		},
		{
			in: "7 = X",
			e:  ErrMalformedFormula,
		},
	}
	for _, et := range ets {
		eq, err := Equation([]byte(et.in))
		if et.e != nil {
			if err == nil {
				t.Errorf("%q: expected error %v", et.in, et.e)
			} else if !errors.Is(err, et.e) {
				t.Errorf("%q: got %v want %v", et.in, err, et.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if got := eq.String(); got != et.out {
			t.Errorf("%q: got %q want %q", et.in, got, et.out)
		}
	}
}

func TestErrParseWraps(t *testing.T) {
	for _, in := range []string{"", "2X", "x"} {
		if _, err := Formula([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", in, err)
		}
	}
}

func TestPosOf(t *testing.T) {
	_, err := Equation([]byte("H2 + O2 = H2o"))
	if err == nil {
		t.Fatal("expected error")
	}
	pos := PosOf(err)
	if pos == nil {
		t.Fatal("no position on error")
	}
	if pos.I != 12 {
		t.Errorf("got offset %d want 12", pos.I)
	}
}
