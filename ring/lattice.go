package ring

import (
	"errors"
	"math/rand"

	lattigoring "github.com/tuneinsight/lattigo/v4/ring"
)

// LatticeRing is a base ring whose elements are themselves polynomials in
// Z_q[X]/(X^N+1), backed by lattigo's single-limb RNS ring implementation
// (the same construction the teacher repository uses for its NTRU lattice
// arithmetic, see ntru/ring.go and ntru/ntt.go). It gives the symbolic
// automaton algebra a genuine lattice-cryptography ring choice alongside the
// Boolean and Rijndael fields required by the seed scenarios: instantiating
// Automaton[*lattigoring.Poly] over LatticeRing runs the exact same
// composition/mixing/evaluation code against RLWE-style ring elements.
//
// LatticeRing implements Ring[T] only, not Field[T]: Z_q[X]/(X^N+1) has zero
// divisors in general (q is not required to make it a field), so generic
// multiplicative inversion is not offered here. Constructors that need
// Field[T] (the WIFA pairs, which invert matrices over the base ring) are
// therefore only exercised against BoolRing and GF256Ring; LatticeRing is
// for automata that only need Ring[T] (e.g. an automaton whose transitions
// are pure polynomial evaluation with no delayed-inverse construction).
type LatticeRing struct {
	N int
	Q uint64
	r *lattigoring.Ring
}

// NewLatticeRing builds a LatticeRing of ring dimension N (a power of two)
// modulo the single prime Q.
func NewLatticeRing(N int, Q uint64) (*LatticeRing, error) {
	r, err := lattigoring.NewRing(N, []uint64{Q})
	if err != nil {
		return nil, err
	}
	return &LatticeRing{N: N, Q: Q, r: r}, nil
}

func (lr *LatticeRing) Zero() *lattigoring.Poly { return lr.r.NewPoly() }

func (lr *LatticeRing) One() *lattigoring.Poly {
	p := lr.r.NewPoly()
	p.Coeffs[0][0] = 1
	return p
}

func (lr *LatticeRing) Add(a, b *lattigoring.Poly) *lattigoring.Poly {
	out := lr.r.NewPoly()
	lr.r.Add(a, b, out)
	return out
}

func (lr *LatticeRing) Neg(a *lattigoring.Poly) *lattigoring.Poly {
	out := lr.r.NewPoly()
	lr.r.Neg(a, out)
	return out
}

// Mul multiplies two ring elements by lifting to the NTT domain, matching
// the teacher's ConvolveRNS pattern (ntru/ntt.go): Montgomery form, forward
// NTT, coefficient-wise product, inverse NTT, Montgomery form removed.
// Inputs are cloned first since lattigo's NTT/MForm calls mutate in place.
func (lr *LatticeRing) Mul(a, b *lattigoring.Poly) *lattigoring.Poly {
	x := a.CopyNew()
	y := b.CopyNew()
	lr.r.MForm(x, x)
	lr.r.MForm(y, y)
	lr.r.NTT(x, x)
	lr.r.NTT(y, y)
	out := lr.r.NewPoly()
	lr.r.MulCoeffsMontgomery(x, y, out)
	lr.r.InvNTT(out, out)
	lr.r.InvMForm(out, out)
	return out
}

func (lr *LatticeRing) IsZero(a *lattigoring.Poly) bool {
	for _, c := range a.Coeffs[0] {
		if c != 0 {
			return false
		}
	}
	return true
}

func (lr *LatticeRing) IsOne(a *lattigoring.Poly) bool {
	if a.Coeffs[0][0] != 1 {
		return false
	}
	for _, c := range a.Coeffs[0][1:] {
		if c != 0 {
			return false
		}
	}
	return true
}

func (lr *LatticeRing) Equal(a, b *lattigoring.Poly) bool {
	for i := range a.Coeffs[0] {
		if a.Coeffs[0][i] != b.Coeffs[0][i] {
			return false
		}
	}
	return true
}

func (lr *LatticeRing) Random(rng *rand.Rand) *lattigoring.Poly {
	p := lr.r.NewPoly()
	for i := range p.Coeffs[0] {
		p.Coeffs[0][i] = uint64(rng.Int63n(int64(lr.Q)))
	}
	return p
}

func (lr *LatticeRing) Name() string { return "Z_q[X]/(X^N+1) (lattice)" }

// Inv is intentionally unsupported; see the LatticeRing doc comment.
func (lr *LatticeRing) Inv(*lattigoring.Poly) (*lattigoring.Poly, error) {
	return nil, errors.New("ring: LatticeRing is not a field, inversion unsupported")
}

var _ Ring[*lattigoring.Poly] = (*LatticeRing)(nil)
