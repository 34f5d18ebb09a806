// Command rngcheck verifies that the engine's XORShift source reproduces the
// reference streams captured from the foreign engine's legacy generator. It
// takes no flags, prints a comparison table for each reference seed, and
// exits non-zero when any generated value diverges.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/driftlake/driftlake/pkg/engine/random"
)

const tolerance = 1e-15

var referenceStreams = []struct {
	seed     int64
	expected []float64
}{
	{
		seed: 1,
		expected: []float64{
			0.6363787615254752,
			0.5993846534021868,
			0.134842710012538,
			0.07684163905460906,
			0.8539211111755448,
		},
	},
	{
		seed: 24,
		expected: []float64{
			0.3943255396952755,
			0.48619924381941027,
			0.2923951640552428,
			0.33335316633280176,
			0.3981939745854918,
		},
	},
}

// run prints the comparison tables to w and reports whether every generated
// value matched its reference.
func run(w io.Writer) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Verifying XORShift reference streams ===")
	fmt.Fprintln(w)

	allMatch := true
	for _, ref := range referenceStreams {
		src := random.NewSource(ref.seed)

		fmt.Fprintf(w, "Seed = %d:\n", ref.seed)
		fmt.Fprintf(w, "  %3s %22s %22s %8s\n", "i", "Generated", "Expected", "Match?")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 60))

		for i, expected := range ref.expected {
			got := src.Float64()
			verdict := "YES"
			if math.Abs(got-expected) >= tolerance {
				verdict = "NO"
				allMatch = false
			}
			fmt.Fprintf(w, "  %3d %22.16f %22.16f %8s\n", i, got, expected, verdict)
		}
		fmt.Fprintln(w)
	}

	if !allMatch {
		fmt.Fprintln(w, "FAILED: some values do not match the reference streams.")
		return false
	}
	fmt.Fprintln(w, "SUCCESS: all generated values match the reference streams.")
	return true
}

func main() {
	if !run(os.Stdout) {
		os.Exit(1)
	}
}
