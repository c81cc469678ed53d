package automaton

import (
	"math/rand"

	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/vecmat"
)

// LinearNodelayWIFAPair returns (F, G), a pair of linear, zero-delay finite
// automata that are each other's inverse (spec §4.2): G(F(stream)) = stream
// for every input and zero initial history.
func LinearNodelayWIFAPair[T any](f ring.Field[T], rng *rand.Rand, blockSize, memorySize int) (Automaton[T], Automaton[T], error) {
	r := ring.Ring[T](f)

	ms, mi, err := vecmat.RandomInversePair[T](f, rng, blockSize)
	if err != nil {
		return Automaton[T]{}, Automaton[T]{}, err
	}

	x := xVarsPoly(r, blockSize)
	ya := matVecPoly(ms, x)
	yb := matVecPoly(mi, x)

	for n := 1; n <= memorySize; n++ {
		rn := vecmat.RandomMatrix[T](f, rng, blockSize, blockSize)
		sn := sVarsPoly(r, n, blockSize)
		ya = ya.Add(matVecPoly(rn, sn))
		miRn := mi.MulMat(rn)
		yb = yb.Sub(matVecPoly(miRn, sn))
	}

	forward := Automaton[T]{R: r, OutputTransition: ya, StateTransition: x}
	inverse := Automaton[T]{R: r, OutputTransition: yb, StateTransition: yb}
	return forward, inverse, nil
}
