package automaton

import (
	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/variable"
	"github.com/fapkc0/symautomaton/vecmat"
)

// Compose returns a ∘ c ("a after c"): the automaton whose output is a
// applied to c's output stream (spec §4.1 "Composition"). It requires
// a.InputSize() <= c.OutputSize() (a cannot consume more than c produces).
//
// The result has memory_width = a.MemoryWidth() + c.MemoryWidth() and
// memory_length = max(a.MemoryLength(), c.MemoryLength()): c's state occupies
// the low Wc positions of the combined state vector, a's (shifted) state
// occupies the high positions.
func Compose[T any](a, c Automaton[T]) (Automaton[T], error) {
	if a.InputSize() > c.OutputSize() {
		return Automaton[T]{}, ErrDimensionMismatch
	}

	wc := c.MemoryWidth()
	bindings := make(map[variable.Variable]poly.Polynomial[T])
	for i := 0; i < c.OutputSize(); i++ {
		xv, err := variable.X(i)
		if err != nil {
			return Automaton[T]{}, err
		}
		bindings[xv] = c.OutputTransition[i]
	}
	al := a.MemoryLength()
	aw := a.MemoryWidth()
	for t := 1; t <= al; t++ {
		for j := 0; j < aw; j++ {
			sv, err := variable.S(t, j)
			if err != nil {
				return Automaton[T]{}, err
			}
			shifted, err := variable.S(t, j+wc)
			if err != nil {
				return Automaton[T]{}, err
			}
			bindings[sv] = poly.FromVar(a.R, shifted)
		}
	}

	ot := make(vecmat.PolyVector[T], len(a.OutputTransition))
	for k, comp := range a.OutputTransition {
		ot[k] = comp.Substitute(bindings)
	}
	shiftedSt := make(vecmat.PolyVector[T], len(a.StateTransition))
	for k, comp := range a.StateTransition {
		shiftedSt[k] = comp.Substitute(bindings)
	}
	st := c.StateTransition.Concat(shiftedSt)

	return Automaton[T]{R: a.R, OutputTransition: ot, StateTransition: st}, nil
}
