// Package compile stands in for the JIT collaborator of spec §6(D). The
// spec explicitly treats native code generation as an external concern and a
// non-goal ("the JIT code-generator design" is out of scope, spec.md §1);
// this package gives Automaton.Compile/WrapCompiled something concrete to
// call so the compiled/interpreted evaluation paths in spec §8 property 4
// ("compiled = interpreted") are observably exercised, without attempting
// real native code generation.
//
// A "compiled" function here is a closure that captures a Polynomial and, on
// every call, binds the supplied values (a map keyed by variable.Variable) as
// constants and runs the same Substitute/Evaluate pipeline the interpreter
// uses; the only work done ahead of time is registering the closure under a
// named slot in a Module.
package compile

import (
	"fmt"

	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/variable"
)

// Func is a compiled polynomial: given a full binding of every variable the
// polynomial references, it evaluates to a ring constant.
type Func[T any] func(args map[variable.Variable]T) (T, error)

// Module is the compilation unit: a scoped collection of named compiled
// functions, analogous to a scoped JIT module lifecycle. The zero value is ready
// to use; Module holds no OS resources, so there is nothing to release on
// exit, but callers should still treat a *Module as scoped to the lifetime
// of the automaton(s) compiled into it (design note, §9 "Compilation").
type Module[T any] struct {
	funcs map[string]Func[T]
}

// NewModule returns an empty compilation module.
func NewModule[T any]() *Module[T] {
	return &Module[T]{funcs: map[string]Func[T]{}}
}

// Compile registers p under name in m.
func Compile[T any](m *Module[T], name string, p poly.Polynomial[T]) {
	if m.funcs == nil {
		m.funcs = map[string]Func[T]{}
	}
	m.funcs[name] = func(args map[variable.Variable]T) (T, error) {
		bindings := make(map[variable.Variable]poly.Polynomial[T], len(args))
		for v, val := range args {
			bindings[v] = poly.Const(p.R, val)
		}
		return p.Substitute(bindings).Evaluate()
	}
}

// WrapCompiled looks up the function previously registered under name.
func WrapCompiled[T any](m *Module[T], name string) (Func[T], error) {
	f, ok := m.funcs[name]
	if !ok {
		return nil, fmt.Errorf("compile: no function named %q in module", name)
	}
	return f, nil
}
