package byd

import (
	"testing"

	"github.com/bydysawd/byd-format/byd/ir"
	"github.com/bydysawd/byd-format/byd/parse"
)

type isomerTest struct {
	a, b string
	res  bool
}

func TestIsomer(t *testing.T) {
	its := []isomerTest{
		{a: "H2O", b: "OH2", res: true},
		{a: "C3DB2D2C", b: "B2C4D3", res: true},
		{a: "H2O", b: "H2O2", res: false},
		{a: "X", b: "Y", res: false},
		{a: "Z", b: "Z", res: true},
	}
	for _, it := range its {
		a, err := parse.Formula([]byte(it.a))
		if err != nil {
			t.Fatal(err)
		}
		b, err := parse.Formula([]byte(it.b))
		if err != nil {
			t.Fatal(err)
		}
		if got := Isomer(a, b); got != it.res {
			t.Errorf("Isomer(%q, %q) = %v, want %v", it.a, it.b, got, it.res)
		}
		if got := Isomer(b, a); got != it.res {
			t.Errorf("Isomer(%q, %q) = %v, want %v", it.b, it.a, got, it.res)
		}
	}
}

func TestIsomerPure(t *testing.T) {
	a, err := parse.Formula([]byte("OH2"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.Formula([]byte("H2O"))
	if err != nil {
		t.Fatal(err)
	}
	Isomer(a, b)
	if got := a.String(); got != "OH2" {
		t.Errorf("operand mutated: %q", got)
	}
	if got := b.String(); got != "H2O" {
		t.Errorf("operand mutated: %q", got)
	}
}

type balanceTest struct {
	in  string
	res bool
}

func TestBalanced(t *testing.T) {
	bts := []balanceTest{
		{in: "H2 + O2 = H2O", res: false},
		{in: "H2 + H2 = H4", res: true},
		{in: "2H2 + O2 = 2H2O", res: true},
		{in: "X3 + Y2Z2 = ZX + Y2X2 + Z", res: true},
		{in: "X3 + Y2Z = ZX + Y2X4", res: false},
		{in: "Z = Z", res: true},
	}
	for _, bt := range bts {
		eq, err := parse.Equation([]byte(bt.in))
		if err != nil {
			t.Fatal(err)
		}
		if got := Balanced(eq); got != bt.res {
			t.Errorf("Balanced(%q) = %v, want %v", bt.in, got, bt.res)
		}
	}
}

func TestBalancedPure(t *testing.T) {
	eq, err := parse.Equation([]byte("2H2 + O2 = 2H2O"))
	if err != nil {
		t.Fatal(err)
	}
	Balanced(eq)
	if got := eq.String(); got != "H4 + O2 = H4O2" {
		t.Errorf("sides mutated: %q", got)
	}
	if got := eq.LHS[0].Terms()[0]; got != (ir.Term{Element: 'H', Count: 4}) {
		t.Errorf("lhs term changed: %v", got)
	}
}
