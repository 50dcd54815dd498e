package wave

import (
	"github.com/techlukas42/wave-function-collapse/pkg/rng"
	"github.com/techlukas42/wave-function-collapse/pkg/tile"
)

// genSet builds the circuit-board catalog shared by the solver tests:
// four fixed-rotation tiles with symmetric edge labels.
func genSet() []tile.Field {
	return []tile.Field{
		{
			ImageName: "substrate",
			Sides:     [4]string{"i-substrate", "i-substrate", "i-substrate", "i-substrate"},
			Weight:    1,
		},
		{
			ImageName: "wire",
			Sides:     [4]string{"i-wire", "i-substrate", "i-wire", "i-substrate"},
			Weight:    1,
		},
		{
			ImageName: "track",
			Sides:     [4]string{"i-substrate", "i-track", "i-substrate", "i-track"},
			Weight:    1,
		},
		{
			ImageName: "cross",
			Sides:     [4]string{"i-wire", "i-track", "i-wire", "i-track"},
			Weight:    1,
		},
	}
}

// openSides builds an unconstrained boundary for a width x height grid:
// every virtual cell imposes no constraint.
func openSides(width, height int) Sides {
	var s Sides
	s[tile.North] = make([][]tile.Field, width)
	s[tile.South] = make([][]tile.Field, width)
	s[tile.East] = make([][]tile.Field, height)
	s[tile.West] = make([][]tile.Field, height)
	return s
}

// testRNG builds a deterministic RNG for solver tests.
func testRNG(seed uint64) *rng.RNG {
	return rng.NewRNG(seed, "test", []byte{0})
}

// newTestSolver assembles a solver over a fresh full-entropy wave.
func newTestSolver(set []tile.Field, sides Sides, seed uint64) *solver {
	return &solver{
		wave: newWave(len(sides[tile.North]), len(sides[tile.East]), set),
		side: sides,
		tree: newDecisionTree(),
		full: set,
		rnd:  testRNG(seed),
	}
}

// totalEntropy sums candidate list sizes over the whole wave.
func totalEntropy(w *wave) int {
	total := 0
	for _, c := range w.cells {
		total += len(c)
	}
	return total
}

// fieldsByName returns the catalog entries with the given image name.
func fieldsByName(set []tile.Field, name string) []tile.Field {
	var out []tile.Field
	for _, f := range set {
		if f.ImageName == name {
			out = append(out, f)
		}
	}
	return out
}

// withoutName returns the catalog entries whose image name differs.
func withoutName(set []tile.Field, name string) []tile.Field {
	var out []tile.Field
	for _, f := range set {
		if f.ImageName != name {
			out = append(out, f)
		}
	}
	return out
}
