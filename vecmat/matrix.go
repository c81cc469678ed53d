package vecmat

import (
	"errors"
	"math/rand"

	"github.com/fapkc0/symautomaton/ring"
)

// ErrNotSquare is returned by Inverse when asked to invert a non-square
// matrix.
var ErrNotSquare = errors.New("vecmat: matrix is not square")

// ErrNotInvertible is returned by Inverse when the matrix has no inverse
// over the given field (its row-echelon form is not the identity).
var ErrNotInvertible = errors.New("vecmat: matrix is not invertible")

// Matrix is a constant Rows x Cols matrix over a base Ring[T].
type Matrix[T any] struct {
	R    ring.Ring[T]
	Rows int
	Cols int
	D    [][]T
}

// ZeroMatrix returns the rows x cols zero matrix.
func ZeroMatrix[T any](r ring.Ring[T], rows, cols int) Matrix[T] {
	d := make([][]T, rows)
	for i := range d {
		row := make([]T, cols)
		for j := range row {
			row[j] = r.Zero()
		}
		d[i] = row
	}
	return Matrix[T]{R: r, Rows: rows, Cols: cols, D: d}
}

// UnitMatrix returns the n x n identity matrix.
func UnitMatrix[T any](r ring.Ring[T], n int) Matrix[T] {
	m := ZeroMatrix(r, n, n)
	for i := 0; i < n; i++ {
		m.D[i][i] = r.One()
	}
	return m
}

// DiagonalMatrix returns a square matrix with diag on the main diagonal and
// zero elsewhere, used to build the psI/psO row-selector matrices of the
// Bao–Igarashi inversion.
func DiagonalMatrix[T any](r ring.Ring[T], diag []T) Matrix[T] {
	n := len(diag)
	m := ZeroMatrix(r, n, n)
	for i := 0; i < n; i++ {
		m.D[i][i] = diag[i]
	}
	return m
}

// RandomMatrix returns a rows x cols matrix of independently random entries.
func RandomMatrix[T any](r ring.Ring[T], rng *rand.Rand, rows, cols int) Matrix[T] {
	m := ZeroMatrix(r, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.D[i][j] = r.Random(rng)
		}
	}
	return m
}

// Clone returns an independent deep copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	d := make([][]T, m.Rows)
	for i := range d {
		d[i] = append([]T(nil), m.D[i]...)
	}
	return Matrix[T]{R: m.R, Rows: m.Rows, Cols: m.Cols, D: d}
}

// RowSlice returns a copy of row i.
func (m Matrix[T]) RowSlice(i int) []T {
	return append([]T(nil), m.D[i]...)
}

// SetRow overwrites row i with vals (which must have Cols elements).
func (m *Matrix[T]) SetRow(i int, vals []T) {
	copy(m.D[i], vals)
}

// SetRowZero overwrites row i with zeros.
func (m *Matrix[T]) SetRowZero(i int) {
	for j := range m.D[i] {
		m.D[i][j] = m.R.Zero()
	}
}

// RowIsZero reports whether row i is entirely zero.
func (m Matrix[T]) RowIsZero(i int) bool {
	for _, v := range m.D[i] {
		if !m.R.IsZero(v) {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry of m is zero.
func (m Matrix[T]) IsZero() bool {
	for i := 0; i < m.Rows; i++ {
		if !m.RowIsZero(i) {
			return false
		}
	}
	return true
}

// IsOne reports whether m is the identity matrix.
func (m Matrix[T]) IsOne() bool {
	if m.Rows != m.Cols {
		return false
	}
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			want := m.R.Zero()
			if i == j {
				want = m.R.One()
			}
			if !m.R.Equal(m.D[i][j], want) {
				return false
			}
		}
	}
	return true
}

// MulVec computes m @ v.
func (m Matrix[T]) MulVec(v Vector[T]) Vector[T] {
	out := make([]T, m.Rows)
	for i := 0; i < m.Rows; i++ {
		acc := m.R.Zero()
		for j := 0; j < m.Cols; j++ {
			acc = m.R.Add(acc, m.R.Mul(m.D[i][j], v.E[j]))
		}
		out[i] = acc
	}
	return Vector[T]{R: m.R, E: out}
}

// MulMat computes m @ n (matrix product).
func (m Matrix[T]) MulMat(n Matrix[T]) Matrix[T] {
	out := ZeroMatrix(m.R, m.Rows, n.Cols)
	for i := 0; i < m.Rows; i++ {
		for k := 0; k < m.Cols; k++ {
			if m.R.IsZero(m.D[i][k]) {
				continue
			}
			for j := 0; j < n.Cols; j++ {
				out.D[i][j] = m.R.Add(out.D[i][j], m.R.Mul(m.D[i][k], n.D[k][j]))
			}
		}
	}
	return out
}

// AddMat computes the entrywise sum m + n.
func (m Matrix[T]) AddMat(n Matrix[T]) Matrix[T] {
	out := ZeroMatrix(m.R, m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.D[i][j] = m.R.Add(m.D[i][j], n.D[i][j])
		}
	}
	return out
}

// SubMat computes the entrywise difference m - n.
func (m Matrix[T]) SubMat(n Matrix[T]) Matrix[T] {
	out := ZeroMatrix(m.R, m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.D[i][j] = ring.Sub(m.R, m.D[i][j], n.D[i][j])
		}
	}
	return out
}

func swapRows[T any](m *Matrix[T], a, b int) {
	m.D[a], m.D[b] = m.D[b], m.D[a]
}

func scaleRow[T any](f ring.Field[T], m *Matrix[T], i int, c T) {
	for j := range m.D[i] {
		m.D[i][j] = f.Mul(m.D[i][j], c)
	}
}

func addRowMultiple[T any](f ring.Field[T], m *Matrix[T], dst, src int, c T) {
	for j := range m.D[dst] {
		m.D[dst][j] = f.Add(m.D[dst][j], f.Mul(c, m.D[src][j]))
	}
}

// Echelon reduces m in place to reduced row-echelon form, applying every
// elementary row operation it performs to each companion matrix as well
// (each companion must have the same Rows as m), and returns the
// accumulated transform pu — the Rows x Rows matrix such that, after the
// call, pu @ m_original equals the new m (and likewise pu @ companion_i
// equals the new companion_i). This is the primitive spec §4.3/§9 describe
// as "echelon(*companions)"; the Bao–Igarashi construction is written
// entirely in terms of it.
func Echelon[T any](f ring.Field[T], m *Matrix[T], companions ...*Matrix[T]) Matrix[T] {
	pu := UnitMatrix[T](f, m.Rows)
	lead := 0
	for r := 0; r < m.Rows && lead < m.Cols; r++ {
		i := r
		for i < m.Rows && f.IsZero(m.D[i][lead]) {
			i++
		}
		if i == m.Rows {
			lead++
			r--
			continue
		}
		if i != r {
			swapRows(m, r, i)
			swapRows(&pu, r, i)
			for _, c := range companions {
				swapRows(c, r, i)
			}
		}
		pivotInv, _ := f.Inv(m.D[r][lead])
		scaleRow(f, m, r, pivotInv)
		scaleRow(f, &pu, r, pivotInv)
		for _, c := range companions {
			scaleRow(f, c, r, pivotInv)
		}
		for i2 := 0; i2 < m.Rows; i2++ {
			if i2 == r {
				continue
			}
			factor := m.D[i2][lead]
			if f.IsZero(factor) {
				continue
			}
			negFactor := f.Neg(factor)
			addRowMultiple(f, m, i2, r, negFactor)
			addRowMultiple(f, &pu, i2, r, negFactor)
			for _, c := range companions {
				addRowMultiple(f, c, i2, r, negFactor)
			}
		}
		lead++
	}
	return pu
}

// Inverse returns m^-1 over the field f, computed as the accumulated
// row-echelon transform: reducing m to reduced echelon form via Echelon
// produces a transform pu with pu @ m = RREF(m); if m is invertible,
// RREF(m) is the identity and pu is exactly m^-1.
func Inverse[T any](f ring.Field[T], m Matrix[T]) (Matrix[T], error) {
	if m.Rows != m.Cols {
		return Matrix[T]{}, ErrNotSquare
	}
	work := m.Clone()
	pu := Echelon[T](f, &work)
	if !work.IsOne() {
		return Matrix[T]{}, ErrNotInvertible
	}
	return pu, nil
}

// RandomInversePair draws a random invertible n x n matrix and returns it
// together with its inverse, retrying with fresh randomness until an
// invertible draw succeeds.
func RandomInversePair[T any](f ring.Field[T], rng *rand.Rand, n int) (Matrix[T], Matrix[T], error) {
	for {
		m := RandomMatrix[T](f, rng, n, n)
		inv, err := Inverse(f, m)
		if err == nil {
			return m, inv, nil
		}
	}
}

// RandomRank returns a random n x n matrix of exact row-rank `rank`,
// constructed as L @ D @ R for random invertible L, R (which preserve rank)
// and a diagonal D with exactly `rank` ones.
func RandomRank[T any](f ring.Field[T], rng *rand.Rand, n, rank int) Matrix[T] {
	diag := make([]T, n)
	for i := 0; i < n; i++ {
		if i < rank {
			diag[i] = f.One()
		} else {
			diag[i] = f.Zero()
		}
	}
	d := DiagonalMatrix[T](f, diag)
	l, _, _ := RandomInversePair[T](f, rng, n) // RandomInversePair always succeeds, retrying internally
	r, _, _ := RandomInversePair[T](f, rng, n)
	return l.MulMat(d).MulMat(r)
}
