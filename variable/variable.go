// Package variable defines the two families of symbolic variables shared by
// every automaton over the same base ring: input components x_i and history
// components s_{t,j}.
package variable

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by X and S when the requested index falls
// outside the domain the variable family is defined on (i < 0 for x_i;
// t < 1 or j < 0 for s_{t,j}).
var ErrOutOfRange = errors.New("variable: index outside of allowed range")

// Kind distinguishes the two variable families.
type Kind uint8

const (
	// KindX is the family x_i, the i-th component of the current input.
	KindX Kind = iota
	// KindS is the family s_{t,j}, the j-th component of the state vector
	// from t steps ago.
	KindS
)

// Variable is a single symbolic variable. It is a plain comparable value: two
// Variables constructed with the same Kind and indices are == to each other,
// which gives us the "interned, identity-stable handle" behavior the
// original implementation obtained from a cache of heap-allocated objects,
// without needing to maintain that cache ourselves.
type Variable struct {
	Kind Kind
	T    int // for KindS: t (steps into the past); unused (0) for KindX
	I    int // for KindX: i; for KindS: j
}

// X returns the variable x_i, the i-th component of the current input
// vector. It fails with ErrOutOfRange if i < 0.
func X(i int) (Variable, error) {
	if i < 0 {
		return Variable{}, fmt.Errorf("%w: x_%d", ErrOutOfRange, i)
	}
	return Variable{Kind: KindX, I: i}, nil
}

// MustX is X but panics on error; useful for constructing fixed-shape
// automata where the index is a compile-time constant known to be valid.
func MustX(i int) Variable {
	v, err := X(i)
	if err != nil {
		panic(err)
	}
	return v
}

// S returns the variable s_{t,j}, the j-th component of the state vector
// from t steps ago. It fails with ErrOutOfRange if t < 1 or j < 0.
func S(t, j int) (Variable, error) {
	if t < 1 || j < 0 {
		return Variable{}, fmt.Errorf("%w: s_{%d,%d}", ErrOutOfRange, t, j)
	}
	return Variable{Kind: KindS, T: t, I: j}, nil
}

// MustS is S but panics on error.
func MustS(t, j int) Variable {
	v, err := S(t, j)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the variable using the source notation (x_i or s_{t,j}),
// useful for debug logging only — substitution itself never round-trips
// through this representation (see design note on dense variable-indexed
// substitution maps).
func (v Variable) String() string {
	if v.Kind == KindX {
		return fmt.Sprintf("x_%d", v.I)
	}
	return fmt.Sprintf("s_{%d,%d}", v.T, v.I)
}

// Less gives a total order over variables, used only to produce a
// deterministic iteration/printing order (map iteration in Go is randomized).
func Less(a, b Variable) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.T != b.T {
		return a.T < b.T
	}
	return a.I < b.I
}
