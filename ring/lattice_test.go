package ring

import (
	"math/rand"
	"testing"
)

func TestLatticeRingAddNegRoundTrip(t *testing.T) {
	lr, err := NewLatticeRing(8, 0x1fffffffffe00001)
	if err != nil {
		t.Fatalf("NewLatticeRing: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	a := lr.Random(rng)
	b := lr.Random(rng)

	sum := lr.Add(a, b)
	back := lr.Add(sum, lr.Neg(b))
	if !lr.Equal(a, back) {
		t.Fatalf("a + b - b != a")
	}
}

func TestLatticeRingMulByOneIsIdentity(t *testing.T) {
	lr, err := NewLatticeRing(8, 0x1fffffffffe00001)
	if err != nil {
		t.Fatalf("NewLatticeRing: %v", err)
	}
	rng := rand.New(rand.NewSource(2))
	a := lr.Random(rng)

	got := lr.Mul(a, lr.One())
	if !lr.Equal(a, got) {
		t.Fatalf("a * 1 != a")
	}
}

func TestLatticeRingZeroIsAdditiveIdentity(t *testing.T) {
	lr, err := NewLatticeRing(8, 0x1fffffffffe00001)
	if err != nil {
		t.Fatalf("NewLatticeRing: %v", err)
	}
	rng := rand.New(rand.NewSource(3))
	a := lr.Random(rng)

	if !lr.Equal(a, lr.Add(a, lr.Zero())) {
		t.Fatalf("a + 0 != a")
	}
	if !lr.IsZero(lr.Zero()) {
		t.Fatalf("Zero() is not IsZero")
	}
	if !lr.IsOne(lr.One()) {
		t.Fatalf("One() is not IsOne")
	}
}

func TestLatticeRingInvUnsupported(t *testing.T) {
	lr, err := NewLatticeRing(8, 0x1fffffffffe00001)
	if err != nil {
		t.Fatalf("NewLatticeRing: %v", err)
	}
	if _, err := lr.Inv(lr.One()); err == nil {
		t.Fatalf("expected Inv to report unsupported, got nil error")
	}
}
