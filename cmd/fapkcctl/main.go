// Command fapkcctl drives the symbolic automaton algebra from the command
// line: generate a FAPKC0 public/private pair, run a message stream through
// it, and inspect the result, all over the Rijndael-field ring (spec §8's
// "Rijndael-field" seed scenarios run with B=1 per block).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fapkc0/symautomaton/automaton"
	"github.com/fapkc0/symautomaton/persist"
	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/rng"
	"github.com/fapkc0/symautomaton/vecmat"
)

func usage() {
	fmt.Println(`usage: fapkcctl <gen|run|fingerprint> [options]

Subcommands:
  gen          Generate a FAPKC0 public/private automaton pair.
               Flags:
                 -m       <int>    memory size (delay), default 2
                 -seed    <int64>  PRNG seed, default 1
                 -out     <dir>    output directory, default "."

  run          Run a byte message through a previously-generated public
               automaton and print the (delayed) round trip through private.
               Flags:
                 -dir     <dir>    directory holding public.json/private.json
                 -message <string> message to encrypt and recover

  fingerprint  Print the SHA3-256 fingerprint of a saved automaton.
               Flags:
                 -path    <file>   path to a Document JSON file`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "run":
		runRun(os.Args[2:])
	case "fingerprint":
		runFingerprint(os.Args[2:])
	default:
		usage()
	}
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	memorySize := fs.Int("m", 2, "memory size (delay)")
	seed := fs.Int64("seed", 1, "PRNG seed")
	outDir := fs.String("out", ".", "output directory")
	fs.Parse(args)

	r := ring.NewGF256Ring()
	gen := rng.NewRNG(*seed)

	public, private, err := automaton.FAPKC0[byte](r, gen.Rand(), 1, *memorySize)
	if err != nil {
		log.Fatalf("fapkcctl: FAPKC0: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("fapkcctl: mkdir %s: %v", *outDir, err)
	}
	if err := persist.Save(*outDir+"/public.json", public); err != nil {
		log.Fatalf("fapkcctl: save public: %v", err)
	}
	if err := persist.Save(*outDir+"/private.json", private); err != nil {
		log.Fatalf("fapkcctl: save private: %v", err)
	}
	fmt.Printf("wrote %s/public.json and %s/private.json (memory_size=%d, circuit_size=%d/%d)\n",
		*outDir, *outDir, *memorySize, public.CircuitSize(), private.CircuitSize())
}

func runRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dir := fs.String("dir", ".", "directory holding public.json/private.json")
	message := fs.String("message", "", "message to encrypt and recover")
	fs.Parse(args)
	if *message == "" {
		log.Fatalf("fapkcctl: -message is required")
	}

	r := ring.NewGF256Ring()
	public, err := persist.Load[byte](*dir+"/public.json", r)
	if err != nil {
		log.Fatalf("fapkcctl: load public: %v", err)
	}
	private, err := persist.Load[byte](*dir+"/private.json", r)
	if err != nil {
		log.Fatalf("fapkcctl: load private: %v", err)
	}

	composed, err := automaton.Compose(private, public)
	if err != nil {
		log.Fatalf("fapkcctl: compose: %v", err)
	}

	in := make([]vecmat.Vector[byte], len(*message))
	for i, c := range []byte(*message) {
		in[i] = vecmat.NewVector(r, []byte{c})
	}

	out, err := automaton.Run(&composed, in)
	if err != nil {
		log.Fatalf("fapkcctl: run: %v", err)
	}

	delay := composed.MemoryLength()
	recovered := make([]byte, 0, len(out))
	for i := delay; i < len(out); i++ {
		recovered = append(recovered, out[i].Get(0))
	}
	fmt.Printf("delay=%d recovered=%q (hex=%s)\n", delay, recovered, hex.EncodeToString(recovered))
}

func runFingerprint(args []string) {
	fs := flag.NewFlagSet("fingerprint", flag.ExitOnError)
	path := fs.String("path", "", "path to a Document JSON file")
	fs.Parse(args)
	if *path == "" {
		log.Fatalf("fapkcctl: -path is required")
	}

	r := ring.NewGF256Ring()
	a, err := persist.Load[byte](*path, r)
	if err != nil {
		log.Fatalf("fapkcctl: load: %v", err)
	}
	fp, err := persist.Fingerprint(a)
	if err != nil {
		log.Fatalf("fapkcctl: fingerprint: %v", err)
	}
	fmt.Println(fp)
}
