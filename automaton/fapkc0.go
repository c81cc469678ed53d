package automaton

import (
	"math/rand"

	"github.com/fapkc0/symautomaton/ring"
)

// FAPKC0 builds a public/private automaton pair by composing a nonlinear,
// zero-delay WIFA pair with a linear, delayed WIFA pair (spec §4.4, the
// scheme's namesake construction): the public automaton is nonlinear ∘
// linear-delay, and the private automaton is the corresponding
// linear-delay-inverse ∘ nonlinear-inverse, so that running the private
// automaton over the public automaton's output reproduces the original
// input after the first memorySize steps.
func FAPKC0[T any](f ring.Field[T], rng *rand.Rand, blockSize, memorySize int) (Automaton[T], Automaton[T], error) {
	linearStraight, linearInverse, err := LinearDelayWIFAPair[T](f, rng, blockSize, memorySize)
	if err != nil {
		return Automaton[T]{}, Automaton[T]{}, err
	}
	nonlinearStraight, nonlinearInverse, err := NonlinearNodelayWIFAPair[T](f, rng, blockSize, memorySize)
	if err != nil {
		return Automaton[T]{}, Automaton[T]{}, err
	}

	public, err := Compose(nonlinearStraight, linearStraight)
	if err != nil {
		return Automaton[T]{}, Automaton[T]{}, err
	}
	private, err := Compose(linearInverse, nonlinearInverse)
	if err != nil {
		return Automaton[T]{}, Automaton[T]{}, err
	}

	public.Optimize()
	private.Optimize()
	return public, private, nil
}
