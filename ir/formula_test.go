package ir

import "testing"

func mustTerm(t *testing.T, e byte, c int) Term {
	t.Helper()
	tm, err := NewTerm(e, c)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestCountElement(t *testing.T) {
	f := NewFormula([]Term{{'W', 2}, {'X', 1}, {'W', 5}})
	for _, c := range []struct {
		e    byte
		want int
	}{
		{'W', 7},
		{'X', 1},
		{'Q', 0},
	} {
		if got := f.CountElement(c.e); got != c.want {
			t.Errorf("CountElement(%c) = %d, want %d", c.e, got, c.want)
		}
	}
}

func TestStandardize(t *testing.T) {
	f := NewFormula([]Term{{'C', 3}, {'D', 1}, {'B', 2}, {'D', 2}, {'C', 1}})
	f.Standardize()
	if got := f.String(); got != "B2C4D3" {
		t.Errorf("got %q want %q", got, "B2C4D3")
	}
	// idempotent
	f.Standardize()
	if got := f.String(); got != "B2C4D3" {
		t.Errorf("second standardize: got %q want %q", got, "B2C4D3")
	}
}

func TestStandardizedPure(t *testing.T) {
	f := NewFormula([]Term{{'C', 3}, {'B', 2}, {'C', 1}})
	g := f.Standardized()
	if got := g.String(); got != "B2C4" {
		t.Errorf("got %q want %q", got, "B2C4")
	}
	if got := f.String(); got != "C3B2C" {
		t.Errorf("receiver mutated: got %q want %q", got, "C3B2C")
	}
}

func TestFormulaString(t *testing.T) {
	f := NewFormula([]Term{{'B', 22}, {'E', 1}, {'D', 3}})
	if got := f.String(); got != "B22ED3" {
		t.Errorf("got %q want %q", got, "B22ED3")
	}
}

func TestNewFormulaCopies(t *testing.T) {
	ts := []Term{{'A', 1}, {'B', 2}}
	f := NewFormula(ts)
	ts[0] = Term{'Z', 9}
	if got := f.String(); got != "AB2" {
		t.Errorf("formula aliases caller slice: got %q", got)
	}
}

func TestNewTerm(t *testing.T) {
	if _, err := NewTerm('a', 1); err == nil {
		t.Error("lower-case element accepted")
	}
	if _, err := NewTerm('H', 0); err == nil {
		t.Error("zero count accepted")
	}
	tm := mustTerm(t, 'H', 1)
	if got := tm.String(); got != "H" {
		t.Errorf("got %q want %q", got, "H")
	}
}

func TestLastUpper(t *testing.T) {
	for _, c := range []struct {
		in   string
		want int
	}{
		{"AX3YM67", 4},
		{"Z", 0},
		{"123", -1},
		{"", -1},
	} {
		if got := LastUpper(c.in); got != c.want {
			t.Errorf("LastUpper(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
