package automaton

import (
	"math/rand"

	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/variable"
	"github.com/fapkc0/symautomaton/vecmat"
)

// MixStates obfuscates a's state basis in place by conjugating it with a
// random invertible memory_width x memory_width matrix (spec §4.1 "State
// mixing"): it is externally indistinguishable from the original over any
// input stream starting from the zero history, but its state polynomials
// are expressed in a randomized basis.
func MixStates[T any](f ring.Field[T], rng *rand.Rand, a *Automaton[T]) error {
	w := a.MemoryWidth()
	mix, unmix, err := vecmat.RandomInversePair[T](f, rng, w)
	if err != nil {
		return err
	}

	l := a.MemoryLength()
	bindings := make(map[variable.Variable]poly.Polynomial[T])
	for t := 1; t <= l; t++ {
		sVars := sVarsPoly(a.R, t, w)
		unmixed := matVecPoly(unmix, sVars)
		for j := 0; j < w; j++ {
			sv, err := variable.S(t, j)
			if err != nil {
				return err
			}
			bindings[sv] = unmixed[j]
		}
	}

	newState := make([]poly.Polynomial[T], w)
	for k, comp := range a.StateTransition {
		newState[k] = comp.Substitute(bindings)
	}
	newOutput := make([]poly.Polynomial[T], len(a.OutputTransition))
	for k, comp := range a.OutputTransition {
		newOutput[k] = comp.Substitute(bindings)
	}

	a.StateTransition = matVecPoly(mix, newState)
	a.OutputTransition = newOutput
	return nil
}
