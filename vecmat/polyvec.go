package vecmat

import (
	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/ring"
)

// PolyVector is the symbolic counterpart of Vector[T]: a fixed-dimension
// vector of polynomials over a base ring, rather than constant ring
// elements. The automaton package's output_transition and state_transition
// vectors (spec §3) are PolyVectors throughout.
type PolyVector[T any] []poly.Polynomial[T]

// NewPolyVector wraps p as a PolyVector, taking ownership of the slice.
func NewPolyVector[T any](p []poly.Polynomial[T]) PolyVector[T] {
	return PolyVector[T](p)
}

// ZeroPolyVector returns the dimension-n vector of zero polynomials.
func ZeroPolyVector[T any](r ring.Ring[T], n int) PolyVector[T] {
	out := make(PolyVector[T], n)
	for i := range out {
		out[i] = poly.Zero(r)
	}
	return out
}

// Dim returns the vector's dimension.
func (v PolyVector[T]) Dim() int { return len(v) }

// Add returns the componentwise sum of v and w.
func (v PolyVector[T]) Add(w PolyVector[T]) PolyVector[T] {
	out := make(PolyVector[T], len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Sub returns the componentwise difference v - w.
func (v PolyVector[T]) Sub(w PolyVector[T]) PolyVector[T] {
	out := make(PolyVector[T], len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

// Hadamard implements the componentwise-pairing operator `&`: elementwise
// polynomial product of two equal-dimension vectors.
func (v PolyVector[T]) Hadamard(w PolyVector[T]) PolyVector[T] {
	out := make(PolyVector[T], len(v))
	for i := range v {
		out[i] = v[i].Mul(w[i])
	}
	return out
}

// Concat implements the vector concatenation operator `|`.
func (v PolyVector[T]) Concat(w PolyVector[T]) PolyVector[T] {
	out := make(PolyVector[T], 0, len(v)+len(w))
	out = append(out, v...)
	out = append(out, w...)
	return out
}

// Optimized returns a copy of v with every component simplified via
// Polynomial.Optimized (spec §4.1 "optimize").
func (v PolyVector[T]) Optimized() PolyVector[T] {
	out := make(PolyVector[T], len(v))
	for i, p := range v {
		out[i] = p.Optimized()
	}
	return out
}

// Clone returns an independent copy of v.
func (v PolyVector[T]) Clone() PolyVector[T] {
	return append(PolyVector[T](nil), v...)
}

// CircuitSize sums the CircuitSize of every component.
func (v PolyVector[T]) CircuitSize() int {
	size := 0
	for _, p := range v {
		size += p.CircuitSize()
	}
	return size
}

// PolyMatrix is a constant matrix viewed as a linear map on PolyVectors: the
// symbolic analogue of Matrix.MulVec, used throughout the WIFA constructors
// to apply a constant coefficient matrix to a vector of state/input
// polynomials (spec §6(C)).
type PolyMatrix[T any] Matrix[T]

// AsPolyMatrix views a constant Matrix as a PolyMatrix.
func AsPolyMatrix[T any](m Matrix[T]) PolyMatrix[T] { return PolyMatrix[T](m) }

// MulVec computes m @ v, a linear combination of the polynomial components
// of v weighted by the constant entries of m.
func (m PolyMatrix[T]) MulVec(v PolyVector[T]) PolyVector[T] {
	out := make(PolyVector[T], m.Rows)
	r := v[0].R
	for i := 0; i < m.Rows; i++ {
		acc := poly.Zero(r)
		for j := 0; j < m.Cols; j++ {
			acc = acc.Add(v[j].ScaleConst(m.D[i][j]))
		}
		out[i] = acc
	}
	return out
}
