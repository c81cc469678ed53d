package persist

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/sha3"

	"github.com/fapkc0/symautomaton/automaton"
)

// Fingerprint returns a stable hex-encoded SHA3-256 digest of a's Document
// encoding. Each term's powerEntry slice is flattened out of a Go map and so
// comes out in random order; it is sorted before encoding, so two
// structurally-equal automata (same terms in the same order) fingerprint
// identically regardless of map iteration order. Used by cmd/fapkcviz to label each swept
// memory size and flag accidental duplicate keys across a sweep, and by
// cmd/fapkcctl's "fingerprint" subcommand to identify a saved automaton.
func Fingerprint[T any](a automaton.Automaton[T]) (string, error) {
	doc := ToDocument(a)
	for i := range doc.Output {
		canonicalizePowers(doc.Output[i])
	}
	for i := range doc.State {
		canonicalizePowers(doc.State[i])
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizePowers[T any](p polyDoc[T]) {
	for _, t := range p.Terms {
		sortPowerEntries(t.Powers)
	}
}

func sortPowerEntries(p []powerEntry) {
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && lessPowerEntry(p[j], p[j-1]); j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
}

func lessPowerEntry(a, b powerEntry) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.T != b.T {
		return a.T < b.T
	}
	return a.I < b.I
}
