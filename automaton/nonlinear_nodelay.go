package automaton

import (
	"math/rand"

	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/vecmat"
)

// NonlinearNodelayWIFAPair returns (F, G), a pair of zero-delay finite
// automata that are each other's inverse but, unlike LinearNodelayWIFAPair,
// mix in a Hadamard (componentwise) product term — the nonlinearity that
// makes the public automaton in FAPKC0 resistant to the purely linear-algebra
// attacks that break the linear WIFA pair alone (spec §4.4).
func NonlinearNodelayWIFAPair[T any](f ring.Field[T], rng *rand.Rand, blockSize, memorySize int) (Automaton[T], Automaton[T], error) {
	r := ring.Ring[T](f)
	b, m := blockSize, memorySize

	as, ai, err := vecmat.RandomInversePair[T](f, rng, b)
	if err != nil {
		return Automaton[T]{}, Automaton[T]{}, err
	}

	coeffA := make([]vecmat.Matrix[T], m+1)
	coeffB := make([]vecmat.Matrix[T], m+1)
	coeffC := make([]vecmat.Matrix[T], m+1)
	for n := 1; n <= m; n++ {
		coeffA[n] = vecmat.RandomMatrix[T](f, rng, b, b)
		coeffB[n] = vecmat.RandomMatrix[T](f, rng, b, b)
		coeffC[n] = vecmat.RandomMatrix[T](f, rng, b, b)
	}

	arg := xVarsPoly(r, b)

	// xList[n] = s_{n,*} for n in 1..m; xList[m+1] = a random linear mix of
	// s_{m,*}, giving the Hadamard term a "future" operand without
	// introducing a new free variable (mirrors the Python source's reuse of
	// the oldest history slot through an extra random matrix).
	xList := make([]vecmat.PolyVector[T], m+2)
	for n := 1; n <= m; n++ {
		xList[n] = sVarsPoly(r, n, b)
	}
	randR := vecmat.RandomMatrix[T](f, rng, b, b)
	xList[m+1] = matVecPoly(randR, sVarsPoly(r, m, b))

	yList := make([]vecmat.PolyVector[T], m+1)
	for n := 1; n <= m; n++ {
		yList[n] = sVarsPolyOffset(r, n, b, b)
	}

	yr := matVecPoly(as, arg)
	for n := 1; n <= m; n++ {
		yr = yr.Add(matVecPoly(coeffA[n], xList[n]))
		yr = yr.Add(matVecPoly(coeffB[n], xList[n].Hadamard(xList[n+1])))
		yr = yr.Add(matVecPoly(coeffC[n], yList[n]))
	}
	yr = yr.Optimized()
	forward := Automaton[T]{R: r, OutputTransition: yr, StateTransition: arg.Concat(yr)}

	xr := matVecPoly(ai, arg)
	for n := 1; n <= m; n++ {
		aiA := ai.MulMat(coeffA[n])
		aiB := ai.MulMat(coeffB[n])
		aiC := ai.MulMat(coeffC[n])
		xr = xr.Sub(matVecPoly(aiA, xList[n]))
		xr = xr.Sub(matVecPoly(aiB, xList[n].Hadamard(xList[n+1])))
		xr = xr.Sub(matVecPoly(aiC, yList[n]))
	}
	xr = xr.Optimized()
	inverse := Automaton[T]{R: r, OutputTransition: xr, StateTransition: xr.Concat(arg)}

	return forward, inverse, nil
}
