// Package ring defines the scalar arithmetic capability the rest of the
// module builds on. A Ring[T] is the generic stand-in for the "external
// collaborator" of spec §6(A): it knows how to produce zero/one/random
// elements of T and how to add, multiply and negate them. Automata,
// polynomials and vectors never hard-code a concrete element type; they are
// instantiated once per concrete Ring[T].
package ring

import "math/rand"

// Ring is the minimal arithmetic capability set needed by the polynomial and
// automaton algebra: a commutative ring with identified zero and one
// elements and a source of random elements (used by the WIFA constructors to
// draw random coefficient matrices).
type Ring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	IsZero(a T) bool
	IsOne(a T) bool
	Equal(a, b T) bool
	Random(rng *rand.Rand) T
	Name() string
}

// Sub is a derived operator, a - b = a + (-b), available for any Ring
// without requiring every implementation to define it separately.
func Sub[T any](r Ring[T], a, b T) T {
	return r.Add(a, r.Neg(b))
}

// Or computes the ring-level stand-in for boolean disjunction used by
// Countdown's full adder: a|b = a + b + a*b, which collapses to ordinary
// logical OR whenever a, b range over {Zero, One} in a ring of
// characteristic 2 (e.g. BoolRing). It is a derived operator rather than a
// Ring method because only Boolean-shaped rings give it that meaning; see
// SPEC_FULL.md's supplemented-features note on Countdown.
func Or[T any](r Ring[T], a, b T) T {
	return r.Add(r.Add(a, b), r.Mul(a, b))
}

// Field extends Ring with multiplicative inversion of nonzero elements. The
// vector/matrix collaborator's Inverse, Echelon and random-invertible-pair
// generators all require Field, not just Ring, because computing an inverse
// needs to divide by pivots (spec §6, §9 "echelon with companions").
type Field[T any] interface {
	Ring[T]
	// Inv returns the multiplicative inverse of a. It is only required to
	// behave correctly for a != Zero(); implementations may return any
	// error (including a panic-free zero value) when called on zero.
	Inv(a T) (T, error)
}
