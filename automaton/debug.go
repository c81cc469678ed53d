package automaton

import (
	"fmt"
	"io"
	"os"
)

// debugOn gates verbose tracing of the Bao–Igarashi retry loop and the
// debug-only algebraic identity check, mirroring ntru/debug.go's
// environment-gated dbg helper in the teacher repository.
var debugOn = os.Getenv("FAPKC_DEBUG") == "1"

func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}
