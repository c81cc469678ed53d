// Package poly implements the multivariate polynomial algebra over a base
// ring (spec §6(B)): sums of monomials in the two symbolic variable families
// of package variable, substitution (of both constants and other
// polynomials), collapsing to a constant, and simplification.
//
// Design note: the original implementation stringifies variable names to
// build its substitution map ("x_3", "s_2_1", ...); DESIGN.md's
// open-question decisions ("Dense vs. string-keyed substitution maps")
// record this as an artifact of the source language not carried over. Here substitution maps are keyed
// directly by the comparable variable.Variable value, never by string.
package poly

import (
	"errors"
	"sort"

	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/variable"
)

// ErrStillSymbolic is returned by Evaluate when the polynomial still
// references free variables after substitution (spec §7).
var ErrStillSymbolic = errors.New("poly: polynomial still symbolic, cannot evaluate to a constant")

// Term is coeff * prod(variable^exponent). A Term with an empty Powers map
// is a constant.
type Term[T any] struct {
	Coeff  T
	Powers map[variable.Variable]int
}

func cloneTerm[T any](t Term[T]) Term[T] {
	p := make(map[variable.Variable]int, len(t.Powers))
	for k, v := range t.Powers {
		p[k] = v
	}
	return Term[T]{Coeff: t.Coeff, Powers: p}
}

// powersKey builds a canonical, order-independent key for a Powers map so
// that like terms (same variables to the same exponents) can be merged.
func powersKey(p map[variable.Variable]int) string {
	if len(p) == 0 {
		return ""
	}
	vars := make([]variable.Variable, 0, len(p))
	for v := range p {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return variable.Less(vars[i], vars[j]) })
	key := make([]byte, 0, 16*len(vars))
	for _, v := range vars {
		key = append(key, []byte(v.String())...)
		key = append(key, '^')
		key = appendInt(key, p[v])
		key = append(key, ';')
	}
	return string(key)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		n = -n
		b = append(b, '-')
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// Polynomial is a sum of Terms over a fixed base Ring[T].
type Polynomial[T any] struct {
	R     ring.Ring[T]
	Terms []Term[T]
}

// Zero returns the additive identity polynomial (no terms) over r.
func Zero[T any](r ring.Ring[T]) Polynomial[T] {
	return Polynomial[T]{R: r}
}

// One returns the multiplicative identity polynomial over r.
func One[T any](r ring.Ring[T]) Polynomial[T] {
	return Const(r, r.One())
}

// Const lifts a ring constant to a degree-0 polynomial.
func Const[T any](r ring.Ring[T], v T) Polynomial[T] {
	if r.IsZero(v) {
		return Polynomial[T]{R: r}
	}
	return Polynomial[T]{R: r, Terms: []Term[T]{{Coeff: v, Powers: map[variable.Variable]int{}}}}
}

// FromVar lifts a single symbolic variable to a degree-1 polynomial.
func FromVar[T any](r ring.Ring[T], v variable.Variable) Polynomial[T] {
	return Polynomial[T]{R: r, Terms: []Term[T]{{Coeff: r.One(), Powers: map[variable.Variable]int{v: 1}}}}
}

// Variables returns the set of symbolic variables referenced anywhere in p,
// in no particular order.
func (p Polynomial[T]) Variables() []variable.Variable {
	seen := map[variable.Variable]bool{}
	var out []variable.Variable
	for _, t := range p.Terms {
		for v, e := range t.Powers {
			if e != 0 && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	terms := make([]Term[T], 0, len(p.Terms)+len(q.Terms))
	for _, t := range p.Terms {
		terms = append(terms, cloneTerm(t))
	}
	for _, t := range q.Terms {
		terms = append(terms, cloneTerm(t))
	}
	return Polynomial[T]{R: p.R, Terms: terms}.Optimized()
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	terms := make([]Term[T], len(p.Terms))
	for i, t := range p.Terms {
		nt := cloneTerm(t)
		nt.Coeff = p.R.Neg(nt.Coeff)
		terms[i] = nt
	}
	return Polynomial[T]{R: p.R, Terms: terms}
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.Add(q.Neg())
}

// Mul returns p * q, distributing every term of p over every term of q.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	terms := make([]Term[T], 0, len(p.Terms)*len(q.Terms))
	for _, a := range p.Terms {
		for _, b := range q.Terms {
			powers := make(map[variable.Variable]int, len(a.Powers)+len(b.Powers))
			for v, e := range a.Powers {
				powers[v] = e
			}
			for v, e := range b.Powers {
				powers[v] += e
			}
			terms = append(terms, Term[T]{Coeff: p.R.Mul(a.Coeff, b.Coeff), Powers: powers})
		}
	}
	return Polynomial[T]{R: p.R, Terms: terms}.Optimized()
}

// ScaleConst returns c*p for a ring constant c.
func (p Polynomial[T]) ScaleConst(c T) Polynomial[T] {
	return p.Mul(Const(p.R, c))
}

// Pow returns p^n for n >= 0.
func (p Polynomial[T]) Pow(n int) Polynomial[T] {
	result := One(p.R)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Optimized returns a semantically equivalent polynomial with like terms
// combined and zero-coefficient terms dropped (spec §4.1 "optimize").
func (p Polynomial[T]) Optimized() Polynomial[T] {
	byKey := map[string]Term[T]{}
	order := []string{}
	for _, t := range p.Terms {
		k := powersKey(t.Powers)
		if existing, ok := byKey[k]; ok {
			existing.Coeff = p.R.Add(existing.Coeff, t.Coeff)
			byKey[k] = existing
		} else {
			byKey[k] = cloneTerm(t)
			order = append(order, k)
		}
	}
	out := make([]Term[T], 0, len(order))
	for _, k := range order {
		t := byKey[k]
		if !p.R.IsZero(t.Coeff) {
			out = append(out, t)
		}
	}
	return Polynomial[T]{R: p.R, Terms: out}
}

// Substitute replaces every occurrence of a bound variable with its
// replacement polynomial (expanding powers), leaving unbound variables
// untouched, and returns the optimized result. This single operation
// implements both constant evaluation (bind every free variable to a Const
// polynomial) and symbolic composition (bind a variable to another
// automaton's transition polynomial).
func (p Polynomial[T]) Substitute(bindings map[variable.Variable]Polynomial[T]) Polynomial[T] {
	result := Zero(p.R)
	for _, t := range p.Terms {
		acc := Const(p.R, t.Coeff)
		vars := make([]variable.Variable, 0, len(t.Powers))
		for v := range t.Powers {
			vars = append(vars, v)
		}
		sort.Slice(vars, func(i, j int) bool { return variable.Less(vars[i], vars[j]) })
		for _, v := range vars {
			e := t.Powers[v]
			if e == 0 {
				continue
			}
			var factor Polynomial[T]
			if repl, ok := bindings[v]; ok {
				factor = repl.Pow(e)
			} else {
				factor = FromVar(p.R, v).Pow(e)
			}
			acc = acc.Mul(factor)
		}
		result = result.Add(acc)
	}
	return result.Optimized()
}

// Evaluate collapses p to a ring constant, or fails with ErrStillSymbolic if
// free variables remain after optimization.
func (p Polynomial[T]) Evaluate() (T, error) {
	opt := p.Optimized()
	if len(opt.Terms) == 0 {
		return p.R.Zero(), nil
	}
	if len(opt.Terms) == 1 && len(opt.Terms[0].Powers) == 0 {
		return opt.Terms[0].Coeff, nil
	}
	var zero T
	return zero, ErrStillSymbolic
}

// CircuitSize reports an expression-tree node count: one node per monomial
// factor (coefficient and each variable occurrence) plus one combining node
// per extra term, giving a rough but monotonic complexity measure useful for
// comparing automata before and after optimization or composition.
func (p Polynomial[T]) CircuitSize() int {
	if len(p.Terms) == 0 {
		return 1
	}
	size := 0
	for _, t := range p.Terms {
		size++ // the coefficient leaf
		for _, e := range t.Powers {
			size += e // one multiplication node per variable occurrence
		}
	}
	size += len(p.Terms) - 1 // combining addition nodes
	return size
}

// Equal reports whether p and q denote the same polynomial (same terms after
// optimization, compared structurally).
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	a, b := p.Optimized(), q.Optimized()
	if len(a.Terms) != len(b.Terms) {
		return false
	}
	am := map[string]T{}
	for _, t := range a.Terms {
		am[powersKey(t.Powers)] = t.Coeff
	}
	for _, t := range b.Terms {
		k := powersKey(t.Powers)
		av, ok := am[k]
		if !ok || !p.R.Equal(av, t.Coeff) {
			return false
		}
	}
	return true
}

// IsZero reports whether p is identically zero.
func (p Polynomial[T]) IsZero() bool {
	return len(p.Optimized().Terms) == 0
}
