package automaton

import (
	"math/rand"
	"testing"

	"github.com/fapkc0/symautomaton/compile"
	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/vecmat"
)

func bitsVec(r ring.BoolRing, bits ...bool) vecmat.Vector[bool] {
	return vecmat.NewVector[bool](r, bits)
}

func TestRepeaterZeroDelayIsIdentity(t *testing.T) {
	r := ring.NewBoolRing()
	a := Repeater[bool](r, 3, 0)
	out, err := Run(&a, []vecmat.Vector[bool]{
		bitsVec(r, true, false, true),
		bitsVec(r, false, false, true),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out[0].Equal(bitsVec(r, true, false, true)) {
		t.Fatalf("step 0 = %v, want passthrough of input", out[0])
	}
	if !out[1].Equal(bitsVec(r, false, false, true)) {
		t.Fatalf("step 1 = %v, want passthrough of input", out[1])
	}
}

func TestRepeaterWithDelayEchoesAfterNSteps(t *testing.T) {
	r := ring.NewBoolRing()
	a := Repeater[bool](r, 2, 2)
	in := []vecmat.Vector[bool]{
		bitsVec(r, true, false),
		bitsVec(r, false, true),
		bitsVec(r, true, true),
		bitsVec(r, false, false),
	}
	out, err := Run(&a, in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// output at step t should be input at step t-2 (zero before that).
	if !out[0].Equal(bitsVec(r, false, false)) {
		t.Fatalf("out[0] = %v, want zero (no history yet)", out[0])
	}
	if !out[2].Equal(in[0]) {
		t.Fatalf("out[2] = %v, want in[0] = %v", out[2], in[0])
	}
	if !out[3].Equal(in[1]) {
		t.Fatalf("out[3] = %v, want in[1] = %v", out[3], in[1])
	}
}

func TestLinearNodelayWIFAPairRoundTrip(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(42))
	forward, inverse, err := LinearNodelayWIFAPair[byte](r, rng, 3, 2)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}
	composed, err := Compose(inverse, forward)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	in := randomByteStream(rng, 3, 6)
	out, err := Run(&composed, in)
	if err != nil {
		t.Fatalf("Run composed: %v", err)
	}
	for i, x := range in {
		if !out[i].Equal(x) {
			t.Fatalf("step %d: composed output %v != input %v", i, out[i], x)
		}
	}
}

func TestLinearDelayWIFAPairRoundTripAfterDelay(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(7))
	b, m := 2, 3
	forward, inverse, err := LinearDelayWIFAPair[byte](r, rng, b, m)
	if err != nil {
		t.Fatalf("LinearDelayWIFAPair: %v", err)
	}
	composed, err := Compose(inverse, forward)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	in := randomByteStream(rng, b, 10)
	out, err := Run(&composed, in)
	if err != nil {
		t.Fatalf("Run composed: %v", err)
	}
	// the composed automaton's output at step t reproduces the input from
	// memorySize steps earlier once enough history has accumulated.
	delay := composed.MemoryLength()
	for i := delay; i < len(in); i++ {
		if !out[i].Equal(in[i-delay]) {
			t.Fatalf("step %d: composed output %v != delayed input %v", i, out[i], in[i-delay])
		}
	}
}

func TestFAPKC0RoundTripAfterDelay(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(99))
	b, m := 2, 2
	public, private, err := FAPKC0[byte](r, rng, b, m)
	if err != nil {
		t.Fatalf("FAPKC0: %v", err)
	}
	composed, err := Compose(private, public)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	in := randomByteStream(rng, b, 12)
	out, err := Run(&composed, in)
	if err != nil {
		t.Fatalf("Run composed: %v", err)
	}
	delay := composed.MemoryLength()
	for i := delay; i < len(in); i++ {
		if !out[i].Equal(in[i-delay]) {
			t.Fatalf("step %d: FAPKC0 round trip output %v != delayed input %v", i, out[i], in[i-delay])
		}
	}
}

func TestCompositionDimensionMismatch(t *testing.T) {
	r := ring.NewBoolRing()
	small := Repeater[bool](r, 1, 0)
	big := Repeater[bool](r, 3, 0)
	if _, err := Compose(big, small); err != ErrDimensionMismatch {
		t.Fatalf("Compose err = %v, want ErrDimensionMismatch", err)
	}
}

func TestMixStatesPreservesBehavior(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(123))
	forward, _, err := LinearNodelayWIFAPair[byte](r, rng, 3, 2)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}

	in := randomByteStream(rng, 3, 8)
	before, err := Run(&forward, in)
	if err != nil {
		t.Fatalf("Run before mix: %v", err)
	}

	cloned := forward
	if err := MixStates[byte](r, rng, &cloned); err != nil {
		t.Fatalf("MixStates: %v", err)
	}
	after, err := Run(&cloned, in)
	if err != nil {
		t.Fatalf("Run after mix: %v", err)
	}
	for i := range in {
		if !before[i].Equal(after[i]) {
			t.Fatalf("step %d: mixed automaton output %v != original %v", i, after[i], before[i])
		}
	}
}

func TestOptimizePreservesBehavior(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(55))
	forward, _, err := LinearNodelayWIFAPair[byte](r, rng, 2, 2)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}
	in := randomByteStream(rng, 2, 5)
	before, err := Run(&forward, in)
	if err != nil {
		t.Fatalf("Run before optimize: %v", err)
	}
	forward.Optimize()
	after, err := Run(&forward, in)
	if err != nil {
		t.Fatalf("Run after optimize: %v", err)
	}
	for i := range in {
		if !before[i].Equal(after[i]) {
			t.Fatalf("step %d: optimized output %v != original %v", i, after[i], before[i])
		}
	}
}

func TestCompiledMatchesInterpreted(t *testing.T) {
	r := ring.NewGF256Ring()
	rng := rand.New(rand.NewSource(321))
	forward, _, err := LinearNodelayWIFAPair[byte](r, rng, 2, 1)
	if err != nil {
		t.Fatalf("LinearNodelayWIFAPair: %v", err)
	}

	m := compileModuleFor(t, forward)
	x := []byte{3, 200}
	history := [][]byte{{0, 0}}
	compiledOut, err := forward.StepCompiled(m, history, x)
	if err != nil {
		t.Fatalf("StepCompiled: %v", err)
	}

	ev := forward.NewEvaluator()
	res, err := ev.Step(vecmat.NewVector[byte](r, x))
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if res.Symbolic {
		t.Fatalf("expected a concrete result from a fully-specified automaton")
	}
	for i := range compiledOut {
		if compiledOut[i] != res.Values[i] {
			t.Fatalf("compiled[%d] = %v, interpreted[%d] = %v", i, compiledOut[i], i, res.Values[i])
		}
	}
}

func TestNotImplementedOperators(t *testing.T) {
	r := ring.NewBoolRing()
	a := Repeater[bool](r, 2, 0)
	b := Repeater[bool](r, 2, 0)
	if _, err := And(a, b); err != ErrNotImplemented {
		t.Fatalf("And err = %v, want ErrNotImplemented", err)
	}
	if _, err := Or(a, b); err != ErrNotImplemented {
		t.Fatalf("Or err = %v, want ErrNotImplemented", err)
	}
	if _, err := Cast(a, 0, 1); err != ErrNotImplemented {
		t.Fatalf("Cast err = %v, want ErrNotImplemented", err)
	}
	if _, err := Passthrough(a, 0, 1, 2); err != ErrNotImplemented {
		t.Fatalf("Passthrough err = %v, want ErrNotImplemented", err)
	}
}

func TestInvalidInitialStateRejected(t *testing.T) {
	r := ring.NewBoolRing()
	a := Repeater[bool](r, 2, 2)
	_, err := a.NewEvaluatorWithState([]vecmat.Vector[bool]{bitsVec(r, true, false)})
	if err != ErrInvalidInitialState {
		t.Fatalf("err = %v, want ErrInvalidInitialState (wrong length)", err)
	}
	_, err = a.NewEvaluatorWithState([]vecmat.Vector[bool]{
		bitsVec(r, true),
		bitsVec(r, true),
	})
	if err != ErrInvalidInitialState {
		t.Fatalf("err = %v, want ErrInvalidInitialState (wrong width)", err)
	}
}

func compileModuleFor(t *testing.T, a Automaton[byte]) *compile.Module[byte] {
	t.Helper()
	m := compile.NewModule[byte]()
	a.Compile(m)
	return m
}

func randomByteStream(rng *rand.Rand, width, n int) []vecmat.Vector[byte] {
	r := ring.NewGF256Ring()
	out := make([]vecmat.Vector[byte], n)
	for i := range out {
		out[i] = vecmat.RandomVector[byte](r, rng, width)
	}
	return out
}
