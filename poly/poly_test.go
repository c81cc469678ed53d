package poly

import (
	"testing"

	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/variable"
)

func TestConstEvaluate(t *testing.T) {
	r := ring.NewBoolRing()
	p := Const(r, true)
	v, err := p.Evaluate()
	if err != nil || v != true {
		t.Fatalf("Evaluate() = %v, %v, want true, nil", v, err)
	}
}

func TestStillSymbolicFails(t *testing.T) {
	r := ring.NewBoolRing()
	p := FromVar(r, variable.MustX(0))
	if _, err := p.Evaluate(); err != ErrStillSymbolic {
		t.Fatalf("Evaluate() err = %v, want ErrStillSymbolic", err)
	}
}

func TestAddMulOverGF256(t *testing.T) {
	r := ring.NewGF256Ring()
	x0 := FromVar(r, variable.MustX(0))
	x1 := FromVar(r, variable.MustX(1))
	sum := x0.Add(x1)
	bindings := map[variable.Variable]Polynomial[byte]{
		variable.MustX(0): Const(r, byte(5)),
		variable.MustX(1): Const(r, byte(9)),
	}
	got, err := sum.Substitute(bindings).Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if want := r.Add(5, 9); got != want {
		t.Fatalf("x0+x1 at (5,9) = %v, want %v", got, want)
	}

	prod := x0.Mul(x1)
	got, err = prod.Substitute(bindings).Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if want := r.Mul(5, 9); got != want {
		t.Fatalf("x0*x1 at (5,9) = %v, want %v", got, want)
	}
}

func TestOptimizedMergesLikeTerms(t *testing.T) {
	r := ring.NewBoolRing()
	x0 := FromVar(r, variable.MustX(0))
	// x0 + x0 == 0 over GF(2).
	sum := x0.Add(x0).Optimized()
	if !sum.IsZero() {
		t.Fatalf("x0+x0 over GF(2) should optimize to zero, got %+v", sum)
	}
}

func TestSubstituteComposesPolynomials(t *testing.T) {
	r := ring.NewGF256Ring()
	x0 := FromVar(r, variable.MustX(0))
	s10 := FromVar(r, variable.MustS(1, 0))
	// p = x0 * s10, substitute x0 -> s10 + 1, s10 -> 3 (constant). The
	// substitution is simultaneous: the s10 inside x0's replacement is not
	// itself replaced, so the result is (s10 + 1) * 3.
	p := x0.Mul(s10)
	bindings := map[variable.Variable]Polynomial[byte]{
		variable.MustX(0):    s10.Add(Const(r, byte(1))),
		variable.MustS(1, 0): Const(r, byte(3)),
	}
	composed := p.Substitute(bindings)
	if want := s10.Add(Const(r, byte(1))).ScaleConst(3); !composed.Equal(want) {
		t.Fatalf("substituted polynomial = %+v, want (s10+1)*3", composed)
	}
	// Binding s10 -> 3 in a second pass collapses it to (3+1)*3.
	got, err := composed.Substitute(map[variable.Variable]Polynomial[byte]{
		variable.MustS(1, 0): Const(r, byte(3)),
	}).Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := r.Mul(r.Add(3, 1), 3)
	if got != want {
		t.Fatalf("substituted value = %v, want %v", got, want)
	}
}

func TestPow(t *testing.T) {
	r := ring.NewGF256Ring()
	x0 := FromVar(r, variable.MustX(0))
	cubed := x0.Pow(3)
	got, err := cubed.Substitute(map[variable.Variable]Polynomial[byte]{
		variable.MustX(0): Const(r, byte(2)),
	}).Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := r.Mul(r.Mul(2, 2), 2)
	if got != want {
		t.Fatalf("2^3 over GF256 = %v, want %v", got, want)
	}
}

func TestEqual(t *testing.T) {
	r := ring.NewBoolRing()
	x0 := FromVar(r, variable.MustX(0))
	x1 := FromVar(r, variable.MustX(1))
	a := x0.Add(x1)
	b := x1.Add(x0)
	if !a.Equal(b) {
		t.Fatalf("x0+x1 should equal x1+x0")
	}
	if a.Equal(x0) {
		t.Fatalf("x0+x1 should not equal x0")
	}
}

func TestCircuitSizeMonotonicUnderOptimize(t *testing.T) {
	r := ring.NewBoolRing()
	x0 := FromVar(r, variable.MustX(0))
	redundant := x0.Add(x0).Add(x0)
	optimized := redundant.Optimized()
	if optimized.CircuitSize() > redundant.CircuitSize() {
		t.Fatalf("optimized circuit size %d should not exceed unoptimized %d", optimized.CircuitSize(), redundant.CircuitSize())
	}
}
