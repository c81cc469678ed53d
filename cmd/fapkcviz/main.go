// Command fapkcviz sweeps memory-size parameters for the Bao–Igarashi
// construction and renders a go-echarts HTML page of the composed
// inverse ∘ forward circuit size before and after optimization, and of the
// retry count per memory size, grounded on cmd/analysis's
// histogram sweep and HTML-page assembly pattern.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fapkc0/symautomaton/automaton"
	"github.com/fapkc0/symautomaton/persist"
	"github.com/fapkc0/symautomaton/ring"
	"github.com/fapkc0/symautomaton/rng"
)

func main() {
	minM := flag.Int("min-m", 1, "smallest memory size to sweep")
	maxM := flag.Int("max-m", 8, "largest memory size to sweep")
	blockSize := flag.Int("block", 4, "block size (bits, over GF(2))")
	seed := flag.Int64("seed", 1, "PRNG seed")
	outDir := flag.String("out", "fapkcviz_reports", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("fapkcviz: mkdir %s: %v", *outDir, err)
	}

	r := ring.NewBoolRing()
	gen := rng.NewRNG(*seed)

	var memorySizes []int
	var rawSize, optimizedSize, attempts []int
	seenFingerprints := make(map[string]int)
	for m := *minM; m <= *maxM; m++ {
		forward, inverse, n, err := automaton.LinearDelayWIFAPairWithAttempts[bool](r, gen.Rand(), *blockSize, m)
		if err != nil {
			log.Fatalf("fapkcviz: LinearDelayWIFAPair(m=%d): %v", m, err)
		}
		composed, err := automaton.Compose(inverse, forward)
		if err != nil {
			log.Fatalf("fapkcviz: Compose(m=%d): %v", m, err)
		}
		raw := composed.CircuitSize()
		composed.Optimize()
		opt := composed.CircuitSize()

		fp, err := persist.Fingerprint(composed)
		if err != nil {
			log.Fatalf("fapkcviz: fingerprint(m=%d): %v", m, err)
		}
		if prev, dup := seenFingerprints[fp]; dup {
			log.Printf("fapkcviz: warning: m=%d fingerprints identically to m=%d (%s)", m, prev, fp)
		}
		seenFingerprints[fp] = m

		memorySizes = append(memorySizes, m)
		rawSize = append(rawSize, raw)
		optimizedSize = append(optimizedSize, opt)
		attempts = append(attempts, n)
		fmt.Printf("m=%d attempts=%d raw_circuit_size=%d optimized_circuit_size=%d fingerprint=%s\n", m, n, raw, opt, fp)
	}

	page := components.NewPage()
	page.AddCharts(
		newCircuitSizeChart(memorySizes, rawSize, optimizedSize),
		newRetryChart(memorySizes, attempts),
	)

	ts := time.Now().Format("20060102_150405")
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("circuit_size_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("fapkcviz: create %s: %v", htmlPath, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("fapkcviz: render %s: %v", htmlPath, err)
	}
	fmt.Printf("wrote %s\n", htmlPath)
}

func newCircuitSizeChart(memorySizes, raw, optimized []int) *charts.Line {
	xLabels := make([]string, len(memorySizes))
	for i, m := range memorySizes {
		xLabels[i] = fmt.Sprintf("%d", m)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Bao–Igarashi composed circuit size",
			Subtitle: "inverse ∘ forward, before and after Optimize()",
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "fapkcviz", Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).
		AddSeries("raw", toLineItems(raw)).
		AddSeries("optimized", toLineItems(optimized))
	return line
}

// newRetryChart plots how many draws LinearDelayWIFAPairWithAttempts needed
// at each swept memory size, the per-construction analogue of the Bao–
// Igarashi "recovers within 32 retries" bound (spec §8 property 8).
func newRetryChart(memorySizes, attempts []int) *charts.Bar {
	xLabels := make([]string, len(memorySizes))
	for i, m := range memorySizes {
		xLabels[i] = fmt.Sprintf("%d", m)
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Bao–Igarashi retry count",
			Subtitle: "draws needed before an invertible leading block, per memory size",
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "fapkcviz-retries", Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).AddSeries("attempts", toBarItems(attempts))
	return bar
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func toLineItems(vals []int) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}
