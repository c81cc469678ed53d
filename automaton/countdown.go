package automaton

import (
	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/ring"
)

// Countdown returns an automaton whose state is a blockSize-bit binary
// counter that increments once per step until it reaches `period`, after
// which it freezes and blocks its output (spec §9, ported from
// original_source/automaton.py's countdown, which the spec's Open Questions
// section flags as referencing an undefined `width` — resolved as
// blockSize). `offset` and `length` are accepted for signature parity with
// the original but are unused by its algorithm, exactly as in the source
// (the python original passes them through to an unfinished TODO).
//
// The construction is written generically against ring.Ring[T] using the
// derived Or operator (spec §6: "bitwise-or / additive operators as the
// ring requires"), but is only meaningful over a Boolean-shaped ring (every
// element either Zero() or One()) such as ring.BoolRing: `period` is decoded
// into its blockSize-bit binary representation via setPointBits.
func Countdown[T any](r ring.Ring[T], blockSize, memorySize, offset, length, period int) Automaton[T] {
	_ = memorySize // the source's memory_size parameter is unused by the algorithm
	_ = offset
	_ = length

	x := xVarsPoly(r, blockSize)
	s := sVarsPoly(r, 1, blockSize)
	setPoint := setPointBits(r, period, blockSize)

	inSwitch := poly.Zero(r)
	for i := 0; i < blockSize; i++ {
		diff := s[i].Sub(setPoint[i])
		inSwitch = orPoly(inSwitch, diff)
	}

	fullAdder := func(a, b, c poly.Polynomial[T]) (sum, carry poly.Polynomial[T]) {
		sum = a.Add(b).Add(c)
		carry = orPoly(orPoly(a.Mul(b), b.Mul(c)), c.Mul(a))
		return
	}

	// Counter bits are most-significant first, matching setPointBits, so the
	// adder starts at the last index and carries toward index 0.
	bsum := make([]poly.Polynomial[T], blockSize)
	carry := poly.Zero(r)
	for i := blockSize - 1; i >= 0; i-- {
		addend := poly.Zero(r)
		if i == blockSize-1 {
			addend = inSwitch
		}
		var sum poly.Polynomial[T]
		sum, carry = fullAdder(s[i], addend, carry)
		bsum[i] = sum
	}

	outSwitch := poly.Zero(r)
	for i := 0; i < blockSize; i++ {
		diff := s[i].Sub(setPoint[i])
		outSwitch = orPoly(outSwitch, diff)
	}

	output := make([]poly.Polynomial[T], blockSize)
	for i := 0; i < blockSize; i++ {
		output[i] = x[i].Mul(outSwitch)
	}

	return Automaton[T]{R: r, OutputTransition: output, StateTransition: bsum}
}

// orPoly lifts the ring-level Or derived operator (a|b = a+b+ab) to
// polynomials.
func orPoly[T any](a, b poly.Polynomial[T]) poly.Polynomial[T] {
	return a.Add(b).Add(a.Mul(b))
}

// setPointBits decodes period into its blockSize-bit binary representation
// as constant polynomials, most-significant bit first.
func setPointBits[T any](r ring.Ring[T], period, blockSize int) []poly.Polynomial[T] {
	out := make([]poly.Polynomial[T], blockSize)
	for i := 0; i < blockSize; i++ {
		bit := (period >> (blockSize - 1 - i)) & 1
		if bit == 1 {
			out[i] = poly.One(r)
		} else {
			out[i] = poly.Zero(r)
		}
	}
	return out
}
