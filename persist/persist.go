// Package persist serializes automata to opaque JSON blobs on disk, in the
// same spirit as ntru/keys' PublicKey/SavePublic/LoadPublic pair: a flat,
// versioned struct written with json.Encoder/SetIndent, no schema migration
// machinery, the caller responsible for supplying a matching base ring on
// load (SPEC_FULL.md's ambient-stack "Persistence" section).
package persist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fapkc0/symautomaton/automaton"
	"github.com/fapkc0/symautomaton/poly"
	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/variable"
)

// formatVersion is bumped whenever the on-disk term encoding changes shape.
const formatVersion = "fapkc0-automaton/1"

// powerEntry is one (variable, exponent) pair, flattened out of a
// Term.Powers map because JSON object keys must be strings and
// variable.Variable is a struct, not a string.
type powerEntry struct {
	Kind int `json:"kind"`
	T    int `json:"t,omitempty"`
	I    int `json:"i"`
	Exp  int `json:"exp"`
}

type termDoc[T any] struct {
	Coeff  T            `json:"coeff"`
	Powers []powerEntry `json:"powers,omitempty"`
}

type polyDoc[T any] struct {
	Terms []termDoc[T] `json:"terms,omitempty"`
}

// Document is the on-disk representation of an Automaton[T]. RingName is
// informational only (ring.Ring[T].Name()); Load never inspects it to pick a
// ring implementation, matching the teacher's pattern of trusting the caller
// to supply matching parameters out of band (ntru/io.go's LoadParams).
type Document[T any] struct {
	Version    string      `json:"version"`
	RingName   string      `json:"ring"`
	BlockSize  int         `json:"block_size"`
	Output     []polyDoc[T] `json:"output_transition"`
	State      []polyDoc[T] `json:"state_transition"`
}

func toPolyDoc[T any](p poly.Polynomial[T]) polyDoc[T] {
	terms := make([]termDoc[T], len(p.Terms))
	for i, t := range p.Terms {
		var powers []powerEntry
		for v, exp := range t.Powers {
			powers = append(powers, powerEntry{Kind: int(v.Kind), T: v.T, I: v.I, Exp: exp})
		}
		terms[i] = termDoc[T]{Coeff: t.Coeff, Powers: powers}
	}
	return polyDoc[T]{Terms: terms}
}

func fromPolyDoc[T any](r ring.Ring[T], d polyDoc[T]) poly.Polynomial[T] {
	terms := make([]poly.Term[T], len(d.Terms))
	for i, t := range d.Terms {
		powers := make(map[variable.Variable]int, len(t.Powers))
		for _, pe := range t.Powers {
			v := variable.Variable{Kind: variable.Kind(pe.Kind), T: pe.T, I: pe.I}
			powers[v] = pe.Exp
		}
		terms[i] = poly.Term[T]{Coeff: t.Coeff, Powers: powers}
	}
	return poly.Polynomial[T]{R: r, Terms: terms}
}

// ToDocument converts an in-memory Automaton to its serializable form.
func ToDocument[T any](a automaton.Automaton[T]) Document[T] {
	out := make([]polyDoc[T], len(a.OutputTransition))
	for i, p := range a.OutputTransition {
		out[i] = toPolyDoc(p)
	}
	st := make([]polyDoc[T], len(a.StateTransition))
	for i, p := range a.StateTransition {
		st[i] = toPolyDoc(p)
	}
	return Document[T]{
		Version:   formatVersion,
		RingName:  a.R.Name(),
		BlockSize: a.OutputSize(),
		Output:    out,
		State:     st,
	}
}

// FromDocument reconstructs an Automaton over r from a previously-saved
// Document. The caller is responsible for passing a ring matching the one
// the automaton was built over; FromDocument has no way to verify this
// beyond the informational RingName field.
func FromDocument[T any](r ring.Ring[T], d Document[T]) automaton.Automaton[T] {
	out := make([]poly.Polynomial[T], len(d.Output))
	for i, pd := range d.Output {
		out[i] = fromPolyDoc(r, pd)
	}
	st := make([]poly.Polynomial[T], len(d.State))
	for i, pd := range d.State {
		st[i] = fromPolyDoc(r, pd)
	}
	return automaton.New(r, out, st)
}

// Save writes a to path as indented JSON.
func Save[T any](path string, a automaton.Automaton[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(a)); err != nil {
		return fmt.Errorf("persist: encode %s: %w", path, err)
	}
	return nil
}

// Load reads an Automaton previously written by Save, reconstructing it over
// r.
func Load[T any](path string, r ring.Ring[T]) (automaton.Automaton[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return automaton.Automaton[T]{}, fmt.Errorf("persist: read %s: %w", path, err)
	}
	var d Document[T]
	if err := json.Unmarshal(data, &d); err != nil {
		return automaton.Automaton[T]{}, fmt.Errorf("persist: decode %s: %w", path, err)
	}
	return FromDocument(r, d), nil
}
