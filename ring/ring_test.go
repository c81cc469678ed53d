package ring

import "testing"

func TestBoolRingArithmetic(t *testing.T) {
	r := NewBoolRing()
	if !r.Equal(r.Add(true, true), false) {
		t.Fatalf("true XOR true should be false")
	}
	if !r.Equal(r.Mul(true, false), false) {
		t.Fatalf("true AND false should be false")
	}
	inv, err := r.Inv(true)
	if err != nil || !inv {
		t.Fatalf("Inv(true) = %v, %v, want true, nil", inv, err)
	}
	if _, err := r.Inv(false); err == nil {
		t.Fatalf("Inv(false) should fail")
	}
}

func TestBoolBitPacking(t *testing.T) {
	b := byte(0b10110001)
	bits := ByteToBits(b)
	if got := BitsToByte(bits); got != b {
		t.Fatalf("BitsToByte(ByteToBits(%v)) = %v, want %v", b, got, b)
	}
}

func TestGF256Inverse(t *testing.T) {
	r := NewGF256Ring()
	for a := 1; a < 256; a++ {
		inv, err := r.Inv(byte(a))
		if err != nil {
			t.Fatalf("Inv(%d) failed: %v", a, err)
		}
		if got := r.Mul(byte(a), inv); got != 1 {
			t.Fatalf("%d * inv(%d) = %d, want 1", a, a, got)
		}
	}
}

func TestGF256ZeroHasNoInverse(t *testing.T) {
	r := NewGF256Ring()
	if _, err := r.Inv(0); err == nil {
		t.Fatalf("Inv(0) should fail over GF(2^8)")
	}
}

func TestOrDerivedOperator(t *testing.T) {
	r := NewBoolRing()
	cases := []struct{ a, b, want bool }{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, c := range cases {
		if got := Or[bool](r, c.a, c.b); got != c.want {
			t.Fatalf("Or(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
