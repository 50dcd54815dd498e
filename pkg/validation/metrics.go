package validation

import "github.com/techlukas42/wave-function-collapse/pkg/wave"

// Stats summarizes the composition of a solved grid.
type Stats struct {
	// TileCounts maps image names to placement counts.
	TileCounts map[string]int

	// RotationCounts maps rotations (degrees) to placement counts.
	RotationCounts map[int]int

	// Distinct is the number of distinct variants placed.
	Distinct int
}

// Metrics computes composition statistics for a solved grid.
func Metrics(grid *wave.Grid) *Stats {
	stats := &Stats{
		TileCounts:     make(map[string]int),
		RotationCounts: make(map[int]int),
	}
	if grid == nil {
		return stats
	}

	type variant struct {
		name     string
		rotation int
	}
	seen := make(map[variant]struct{})

	for _, f := range grid.Fields {
		stats.TileCounts[f.ImageName]++
		stats.RotationCounts[f.Rotation]++
		seen[variant{f.ImageName, f.Rotation}] = struct{}{}
	}
	stats.Distinct = len(seen)
	return stats
}
