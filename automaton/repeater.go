package automaton

import (
	"github.com/fapkc0/symautomaton/ring"
)

// Repeater returns an automaton that returns its input unchanged, optionally
// delayed by `delay` steps (spec §9: source had an undefined `width`
// reference, resolved here as blockSize per DESIGN.md's open-question
// decision). With delay 0 it is purely combinational (L=0): the output is the
// input and the state_transition is a zero vector of dimension blockSize, so
// W=blockSize although no state is ever read. The lowercase automaton of
// spec §8's seed scenarios is combinational too, but with an empty
// state_transition (W=0) and a non-identity output_transition.
func Repeater[T any](r ring.Ring[T], blockSize, delay int) Automaton[T] {
	if delay == 0 {
		return Automaton[T]{
			R:                r,
			OutputTransition: xVarsPoly(r, blockSize),
			StateTransition:  constZeroPolyVec(r, blockSize),
		}
	}
	return Automaton[T]{
		R:                r,
		OutputTransition: sVarsPoly(r, delay, blockSize),
		StateTransition:  xVarsPoly(r, blockSize),
	}
}

// And is the reserved parallel-composition operator (spec §3, §7, §9): two
// automata run side by side, input and output sizes adding. Not implemented.
func And[T any](a, b Automaton[T]) (Automaton[T], error) {
	return Automaton[T]{}, ErrNotImplemented
}

// Or is the reserved choice operator (spec §3, §7, §9): a single bit selects
// which of two equal-shaped automata's output is returned. Not implemented.
func Or[T any](a, b Automaton[T]) (Automaton[T], error) {
	return Automaton[T]{}, ErrNotImplemented
}

// Cast is the reserved output-narrowing operator (spec §7, §9). Not
// implemented.
func Cast[T any](a Automaton[T], begin, end int) (Automaton[T], error) {
	return Automaton[T]{}, ErrNotImplemented
}

// Passthrough is the reserved composition of Repeater, Countdown and Or/And
// described in the original source (spec §9): `(repeater|self) @
// (countdown & repeater)`. Since `&` and `|` are unimplemented at the
// automaton level, this is unimplemented too.
func Passthrough[T any](a Automaton[T], offset, length, period int) (Automaton[T], error) {
	return Automaton[T]{}, ErrNotImplemented
}
