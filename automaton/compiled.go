package automaton

import (
	"fmt"

	"github.com/fapkc0/symautomaton/compile"
	"github.com/fapkc0/symautomaton/variable"
)

// outputFuncName/stateFuncName name the compiled slots this automaton
// registers in a compile.Module, one per output/state component.
func outputFuncName(i int) string { return fmt.Sprintf("out_%d", i) }
func stateFuncName(i int) string  { return fmt.Sprintf("state_%d", i) }

// Compile registers every component of a's transition vectors into m, one
// compiled function per component (spec §6(D), §8 property 4: "compiled =
// interpreted"). It does not mutate a.
func (a Automaton[T]) Compile(m *compile.Module[T]) {
	for i, p := range a.OutputTransition {
		compile.Compile(m, outputFuncName(i), p)
	}
	for i, p := range a.StateTransition {
		compile.Compile(m, stateFuncName(i), p)
	}
}

// StepCompiled evaluates one step through the compiled functions registered
// by a prior call to Compile, rather than through Evaluator.Step's direct
// Substitute/Evaluate path. For any automaton and input history for which
// every output component can be fully evaluated, its result is identical to
// the corresponding Evaluator.Step result.
func (a Automaton[T]) StepCompiled(m *compile.Module[T], history [][]T, x []T) ([]T, error) {
	l, w := a.MemoryLength(), a.MemoryWidth()
	if len(history) != l {
		return nil, ErrInvalidInitialState
	}
	for _, row := range history {
		if len(row) != w {
			return nil, ErrInvalidInitialState
		}
	}

	args := make(map[variable.Variable]T, len(x)+l*w)
	for t := 1; t <= l; t++ {
		row := history[t-1]
		for j := 0; j < w; j++ {
			v, err := variable.S(t, j)
			if err != nil {
				return nil, err
			}
			args[v] = row[j]
		}
	}
	for i, val := range x {
		v, err := variable.X(i)
		if err != nil {
			return nil, err
		}
		args[v] = val
	}

	out := make([]T, a.OutputSize())
	for i := range out {
		f, err := compile.WrapCompiled[T](m, outputFuncName(i))
		if err != nil {
			return nil, err
		}
		val, err := f(args)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}
