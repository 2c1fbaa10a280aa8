package eval

import (
	"testing"

	"github.com/bydysawd/byd-format/byd/parse"
)

type checkTest struct {
	eq  string
	src string
	res bool
	err bool
}

func TestCheck(t *testing.T) {
	cts := []checkTest{
		{
			eq:  "2H2 + O2 = 2H2O",
			src: "balanced",
			res: true,
		},
		{
			eq:  "H2 + O2 = H2O",
			src: "balanced",
			res: false,
		},
		{
			eq:  "H2 + O2 = H2O",
			src: `lhs["H"] == rhs["H"]`,
			res: true,
		},
		{
			eq:  "H2 + O2 = H2O",
			src: `lhs["O"] == rhs["O"]`,
			res: false,
		},
		{
			eq:  "2H2 + O2 = 2H2O",
			src: `lhs["H"] > 2 && formulas == 3`,
			res: true,
		},
		{
			eq:  "X = X",
			src: `"X" in elements`,
			res: true,
		},
		{
			eq:  "X = X",
			src: `lhs["Q"] == 0`,
			res: true,
		},
		{
			eq:  "X = X",
			src: "balanced +",
			err: true,
		},
	}
	for _, ct := range cts {
		eq, err := parse.Equation([]byte(ct.eq))
		if err != nil {
			t.Fatal(err)
		}
		got, err := Check(eq, ct.src)
		if ct.err {
			if err == nil {
				t.Errorf("%q on %q: expected error", ct.src, ct.eq)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q on %q: %v", ct.src, ct.eq, err)
			continue
		}
		if got != ct.res {
			t.Errorf("%q on %q: got %v want %v", ct.src, ct.eq, got, ct.res)
		}
	}
}

func TestCheckPure(t *testing.T) {
	eq, err := parse.Equation([]byte("2H2 + O2 = 2H2O"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Check(eq, "balanced"); err != nil {
		t.Fatal(err)
	}
	if got := eq.String(); got != "H4 + O2 = H4O2" {
		t.Errorf("equation mutated: %q", got)
	}
}
