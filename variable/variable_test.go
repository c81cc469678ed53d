package variable

import (
	"errors"
	"testing"
)

func TestXValid(t *testing.T) {
	v, err := X(3)
	if err != nil {
		t.Fatalf("X(3): unexpected error: %v", err)
	}
	if v.Kind != KindX || v.I != 3 {
		t.Fatalf("X(3) = %+v, want Kind=KindX I=3", v)
	}
	if v.String() != "x_3" {
		t.Fatalf("String() = %q, want x_3", v.String())
	}
}

func TestXNegativeRejected(t *testing.T) {
	if _, err := X(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("X(-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestSValid(t *testing.T) {
	v, err := S(2, 5)
	if err != nil {
		t.Fatalf("S(2,5): unexpected error: %v", err)
	}
	if v.Kind != KindS || v.T != 2 || v.I != 5 {
		t.Fatalf("S(2,5) = %+v", v)
	}
	if v.String() != "s_{2,5}" {
		t.Fatalf("String() = %q, want s_{2,5}", v.String())
	}
}

func TestSRejectsNonPositiveT(t *testing.T) {
	if _, err := S(0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("S(0,0) error = %v, want ErrOutOfRange", err)
	}
	if _, err := S(1, -1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("S(1,-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestVariableEquality(t *testing.T) {
	a := MustX(4)
	b := MustX(4)
	if a != b {
		t.Fatalf("two X(4) values should be ==, got %+v != %+v", a, b)
	}
	c := MustS(1, 4)
	if a == c {
		t.Fatalf("x_4 and s_{1,4} must not compare equal")
	}
}

func TestLessTotalOrder(t *testing.T) {
	x0 := MustX(0)
	x1 := MustX(1)
	s11 := MustS(1, 1)
	if !Less(x0, x1) {
		t.Fatalf("expected x_0 < x_1")
	}
	if !Less(x1, s11) {
		t.Fatalf("expected KindX variables to sort before KindS")
	}
	if Less(s11, x1) {
		t.Fatalf("Less should not be symmetric here")
	}
}
