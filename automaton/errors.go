package automaton

import "errors"

// ErrInvalidInitialState is returned when an explicit initial history does
// not have exactly memory_length elements, each of dimension memory_width
// (spec §7).
var ErrInvalidInitialState = errors.New("automaton: invalid initial state")

// ErrDimensionMismatch is returned by Compose when the left automaton's
// input size exceeds the right automaton's output size (spec §3).
var ErrDimensionMismatch = errors.New("automaton: left automaton consumes more than the right automaton produces")

// ErrNotImplemented is returned by the reserved parallel (&), choice (|) and
// cast operators (spec §7, §9).
var ErrNotImplemented = errors.New("automaton: operator not implemented")

// errBadLuck is the internal Bao–Igarashi retry signal (spec §4.3, §7): the
// random coefficients drawn for this attempt didn't yield an invertible
// leading block, so the whole construction restarts with fresh randomness.
// It is never returned from LinearDelayWIFAPair.
var errBadLuck = errors.New("automaton: bad luck, retrying")
