// Package automaton implements the symbolic finite automaton algebra that is
// the core of this module (spec §2 component E, ~100% of the core budget):
// the Automaton data model, the evaluation driver, composition, state
// mixing, and the WIFA/FAPKC0 constructors.
package automaton

import (
	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/variable"
	"github.com/fapkc0/symautomaton/vecmat"
)

// Automaton holds a pair of polynomial vectors: output_transition (dimension
// output_size) and state_transition (dimension memory_width). Both are
// polynomials over the two symbolic variable families x_i and s_{t,j} (spec
// §3).
type Automaton[T any] struct {
	R                ring.Ring[T]
	OutputTransition vecmat.PolyVector[T]
	StateTransition  vecmat.PolyVector[T]
}

// New builds an Automaton from explicit transition vectors. Either may be
// nil, defaulting to the zero vector of dimension 0 (spec §4.1
// "Construction"); no further validation is performed — ill-formed automata
// surface at first use, exactly as spec.md specifies.
func New[T any](r ring.Ring[T], outputTransition, stateTransition vecmat.PolyVector[T]) Automaton[T] {
	return Automaton[T]{R: r, OutputTransition: outputTransition, StateTransition: stateTransition}
}

// OutputSize is B, the dimension of output_transition.
func (a Automaton[T]) OutputSize() int { return len(a.OutputTransition) }

// MemoryWidth is W, the dimension of state_transition.
func (a Automaton[T]) MemoryWidth() int { return len(a.StateTransition) }

// MemoryLength is L, the maximum t such that some s_{t,j} occurs in either
// transition vector (0 if none).
func (a Automaton[T]) MemoryLength() int {
	max := 0
	for _, p := range a.allComponents() {
		for _, v := range p.Variables() {
			if v.Kind == variable.KindS && v.T > max {
				max = v.T
			}
		}
	}
	return max
}

// InputSize is the number of input components a reads: one more than the
// maximum i such that some x_i occurs in either transition vector, or 0 if
// none occurs (a degenerate but valid case for an automaton that ignores its
// input, e.g. Repeater with block_size 0).
func (a Automaton[T]) InputSize() int {
	max := -1
	for _, p := range a.allComponents() {
		for _, v := range p.Variables() {
			if v.Kind == variable.KindX && v.I > max {
				max = v.I
			}
		}
	}
	return max + 1
}

func (a Automaton[T]) allComponents() []poly.Polynomial[T] {
	out := make([]poly.Polynomial[T], 0, len(a.OutputTransition)+len(a.StateTransition))
	out = append(out, a.OutputTransition...)
	out = append(out, a.StateTransition...)
	return out
}

// Optimize simplifies every component of both transition vectors in place
// without changing input/output behavior (spec §4.1 "optimize").
func (a *Automaton[T]) Optimize() {
	for i := range a.OutputTransition {
		a.OutputTransition[i] = a.OutputTransition[i].Optimized()
	}
	for i := range a.StateTransition {
		a.StateTransition[i] = a.StateTransition[i].Optimized()
	}
}

// CircuitSize sums the CircuitSize of every component, a rough but
// monotonic measure of how much bigger composition/mixing made an
// automaton, used by the fapkcviz analysis tool (SPEC_FULL.md domain stack).
func (a Automaton[T]) CircuitSize() int {
	size := 0
	for _, p := range a.allComponents() {
		size += p.CircuitSize()
	}
	return size
}

// xVarsPoly, sVarsPoly and sVarsPolyOffset build the symbolic input/state
// vectors the WIFA constructors are written in terms of; matVecPoly applies
// a constant coefficient matrix to one, via vecmat.PolyMatrix.

func xVarsPoly[T any](r ring.Ring[T], n int) vecmat.PolyVector[T] {
	out := make(vecmat.PolyVector[T], n)
	for i := 0; i < n; i++ {
		out[i] = poly.FromVar(r, variable.MustX(i))
	}
	return out
}

func sVarsPoly[T any](r ring.Ring[T], t, n int) vecmat.PolyVector[T] {
	out := make(vecmat.PolyVector[T], n)
	for j := 0; j < n; j++ {
		out[j] = poly.FromVar(r, variable.MustS(t, j))
	}
	return out
}

// sVarsPolyOffset returns [s_{t,offset}, s_{t,offset+1}, ..., s_{t,offset+n-1}],
// used to read the "other half" of a state vector that packs two logical
// blocks side by side (e.g. x | y in the WIFA constructors).
func sVarsPolyOffset[T any](r ring.Ring[T], t, offset, n int) vecmat.PolyVector[T] {
	out := make(vecmat.PolyVector[T], n)
	for j := 0; j < n; j++ {
		out[j] = poly.FromVar(r, variable.MustS(t, offset+j))
	}
	return out
}

func constZeroPolyVec[T any](r ring.Ring[T], n int) vecmat.PolyVector[T] {
	return vecmat.ZeroPolyVector(r, n)
}

func matVecPoly[T any](m vecmat.Matrix[T], v vecmat.PolyVector[T]) vecmat.PolyVector[T] {
	return vecmat.AsPolyMatrix(m).MulVec(v)
}
