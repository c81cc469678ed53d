// Package vecmat implements the constant vector/matrix collaborator of spec
// §6(C): fixed-dimension vectors and matrices over a base Ring[T], random
// generation (including rank-exact and invertible-pair generation), and the
// block row-echelon primitive the Bao–Igarashi inversion is written in terms
// of.
package vecmat

import (
	"math/rand"

	"github.com/fapkc0/symautomaton/ring"
)

// Vector is a fixed-dimension vector of constant ring elements.
type Vector[T any] struct {
	R ring.Ring[T]
	E []T
}

// NewVector wraps e as a Vector over r.
func NewVector[T any](r ring.Ring[T], e []T) Vector[T] {
	return Vector[T]{R: r, E: append([]T(nil), e...)}
}

// ZeroVector returns the zero vector of dimension n.
func ZeroVector[T any](r ring.Ring[T], n int) Vector[T] {
	e := make([]T, n)
	for i := range e {
		e[i] = r.Zero()
	}
	return Vector[T]{R: r, E: e}
}

// RandomVector returns a vector of n independently random elements.
func RandomVector[T any](r ring.Ring[T], rng *rand.Rand, n int) Vector[T] {
	e := make([]T, n)
	for i := range e {
		e[i] = r.Random(rng)
	}
	return Vector[T]{R: r, E: e}
}

// Dim returns the vector's dimension.
func (v Vector[T]) Dim() int { return len(v.E) }

// Get returns the i-th component.
func (v Vector[T]) Get(i int) T { return v.E[i] }

// Add returns the componentwise sum of v and w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	out := make([]T, len(v.E))
	for i := range v.E {
		out[i] = v.R.Add(v.E[i], w.E[i])
	}
	return Vector[T]{R: v.R, E: out}
}

// Concat implements the vector concatenation operator `|`.
func (v Vector[T]) Concat(w Vector[T]) Vector[T] {
	out := make([]T, 0, len(v.E)+len(w.E))
	out = append(out, v.E...)
	out = append(out, w.E...)
	return Vector[T]{R: v.R, E: out}
}

// Hadamard implements the componentwise-pairing operator `&`: elementwise
// product of two equal-dimension vectors.
func (v Vector[T]) Hadamard(w Vector[T]) Vector[T] {
	out := make([]T, len(v.E))
	for i := range v.E {
		out[i] = v.R.Mul(v.E[i], w.E[i])
	}
	return Vector[T]{R: v.R, E: out}
}

// Equal reports componentwise equality.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v.E) != len(w.E) {
		return false
	}
	for i := range v.E {
		if !v.R.Equal(v.E[i], w.E[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v Vector[T]) Clone() Vector[T] {
	return Vector[T]{R: v.R, E: append([]T(nil), v.E...)}
}
