package automaton

import (
	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/variable"
	"github.com/fapkc0/symautomaton/vecmat"
)

// StepResult is the output of a single evaluation step. When Symbolic is
// false, Values holds the fully-evaluated constant output vector; when true
// (because the automaton references variables outside the known families,
// or a caller drove an automaton that was never given concrete input for
// some component), Polys holds the symbolic output vector instead, exactly
// as produced by substitution (spec §4.1 step 2: "it may still contain
// unresolved variables... in that case y remains symbolic").
type StepResult[T any] struct {
	Values   []T
	Polys    []poly.Polynomial[T]
	Symbolic bool
}

// Evaluator is the pull-based evaluation driver of spec §4.1/§5: it owns a
// bounded history of past state vectors and produces exactly one output per
// input consumed. It is not reentrant with respect to its own history, but
// distinct Evaluators over the same Automaton do not interact.
type Evaluator[T any] struct {
	a       *Automaton[T]
	history [][]poly.Polynomial[T] // length L, each of width W
}

// NewEvaluator starts a fresh driver with a zero initial history (L vectors
// of W zeros).
func (a *Automaton[T]) NewEvaluator() *Evaluator[T] {
	l, w := a.MemoryLength(), a.MemoryWidth()
	hist := make([][]poly.Polynomial[T], l)
	for i := range hist {
		hist[i] = constZeroPolyVec(a.R, w)
	}
	return &Evaluator[T]{a: a, history: hist}
}

// NewEvaluatorWithState starts a driver from an explicit initial history. It
// fails with ErrInvalidInitialState unless initial has exactly
// MemoryLength() elements, each of dimension MemoryWidth() (spec §4.1, §7).
func (a *Automaton[T]) NewEvaluatorWithState(initial []vecmat.Vector[T]) (*Evaluator[T], error) {
	l, w := a.MemoryLength(), a.MemoryWidth()
	if len(initial) != l {
		return nil, ErrInvalidInitialState
	}
	hist := make([][]poly.Polynomial[T], l)
	for i, v := range initial {
		if v.Dim() != w {
			return nil, ErrInvalidInitialState
		}
		row := make([]poly.Polynomial[T], w)
		for j := 0; j < w; j++ {
			row[j] = poly.Const(a.R, v.Get(j))
		}
		hist[i] = row
	}
	return &Evaluator[T]{a: a, history: hist}, nil
}

// Step consumes one input vector and produces one output (spec §4.1
// "transition"): it builds the substitution binding x_i -> x[i] and
// s_{t,j} -> history[t-1][j], applies it to both transition vectors,
// prepends the new state to history (truncating the tail), and returns the
// output — evaluated to a constant vector when possible.
//
// Ordering guarantee: this call fully consumes x and produces y before any
// later Step call touches the next input, matching spec §4.1's ordering
// guarantee.
func (e *Evaluator[T]) Step(x vecmat.Vector[T]) (StepResult[T], error) {
	a := e.a
	l, w := a.MemoryLength(), a.MemoryWidth()

	bindings := make(map[variable.Variable]poly.Polynomial[T], x.Dim()+l*w)
	for t := 1; t <= l; t++ {
		row := e.history[t-1]
		for j := 0; j < w; j++ {
			v, err := variable.S(t, j)
			if err != nil {
				return StepResult[T]{}, err
			}
			bindings[v] = row[j]
		}
	}
	for i := 0; i < x.Dim(); i++ {
		v, err := variable.X(i)
		if err != nil {
			return StepResult[T]{}, err
		}
		bindings[v] = poly.Const(a.R, x.Get(i))
	}

	y := make([]poly.Polynomial[T], len(a.OutputTransition))
	for k, comp := range a.OutputTransition {
		y[k] = comp.Substitute(bindings)
	}
	sNew := make([]poly.Polynomial[T], len(a.StateTransition))
	for k, comp := range a.StateTransition {
		sNew[k] = comp.Substitute(bindings)
	}

	e.history = append([][]poly.Polynomial[T]{sNew}, e.history...)
	if len(e.history) > l {
		e.history = e.history[:l]
	}

	vals := make([]T, len(y))
	allConst := true
	for k, p := range y {
		v, err := p.Evaluate()
		if err != nil {
			allConst = false
			break
		}
		vals[k] = v
	}
	if allConst {
		return StepResult[T]{Values: vals}, nil
	}
	return StepResult[T]{Polys: y, Symbolic: true}, nil
}

// Run drives the automaton over a full concrete input stream starting from
// a zero history, and fails if any step produces a symbolic (non-constant)
// output — the common case for fully-specified automata run on well-formed
// streams. Callers needing the symbolic fallback, a custom initial state, or
// a truly lazy pull (processing one input at a time) should drive an
// Evaluator directly instead.
func Run[T any](a *Automaton[T], in []vecmat.Vector[T]) ([]vecmat.Vector[T], error) {
	ev := a.NewEvaluator()
	out := make([]vecmat.Vector[T], len(in))
	for i, x := range in {
		res, err := ev.Step(x)
		if err != nil {
			return nil, err
		}
		if res.Symbolic {
			return nil, poly.ErrStillSymbolic
		}
		out[i] = vecmat.NewVector(a.R, res.Values)
	}
	return out, nil
}
