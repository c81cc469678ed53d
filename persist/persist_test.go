package persist

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/fapkc0/symautomaton/automaton"
	"github.com/fapkc0/symautomaton/ring"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(1))
	forward, _, err := automaton.LinearNodelayWIFAPair[byte](r, rng, 3, 2)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}
	forward.Optimize()

	path := filepath.Join(t.TempDir(), "forward.json")
	if err := Save(path, forward); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load[byte](path, r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.OutputSize() != forward.OutputSize() || loaded.MemoryWidth() != forward.MemoryWidth() {
		t.Fatalf("loaded shape mismatch: got (%d,%d), want (%d,%d)",
			loaded.OutputSize(), loaded.MemoryWidth(), forward.OutputSize(), forward.MemoryWidth())
	}
	for i := range forward.OutputTransition {
		if !loaded.OutputTransition[i].Equal(forward.OutputTransition[i]) {
			t.Fatalf("output component %d changed across round trip", i)
		}
	}
}

func TestFingerprintStableAcrossEqualAutomata(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(2))
	forward, _, err := automaton.LinearNodelayWIFAPair[byte](r, rng, 2, 1)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}

	fp1, err := Fingerprint(forward)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	fp2, err := Fingerprint(forward)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp1 != fp2 {
		t.Fatalf("fingerprint not stable: %s != %s", fp1, fp2)
	}
}

func TestFingerprintDiffersForDifferentAutomata(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(3))
	a, _, err := automaton.LinearNodelayWIFAPair[byte](r, rng, 2, 1)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}
	b, _, err := automaton.LinearNodelayWIFAPair[byte](r, rng, 2, 1)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}
	fpA, err := Fingerprint(a)
	if err != nil {
		t.Fatalf("Fingerprint a: %v", err)
	}
	fpB, err := Fingerprint(b)
	if err != nil {
		t.Fatalf("Fingerprint b: %v", err)
	}
	if fpA == fpB {
		t.Fatalf("two independently-random automata should not fingerprint identically")
	}
}
