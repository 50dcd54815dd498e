package wfc

import (
	"fmt"

	"github.com/techlukas42/wave-function-collapse/pkg/catalog"
	"github.com/techlukas42/wave-function-collapse/pkg/rng"
	"github.com/techlukas42/wave-function-collapse/pkg/validation"
	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// Artifact is the output of one generation run.
type Artifact struct {
	Grid   *wave.Grid
	Set    *catalog.Set
	Sides  wave.Sides
	Report *validation.Report
	Stats  *validation.Stats
	Seed   uint64
}

// Generate runs the full pipeline: load the catalog, build the
// boundary, collapse the wave with a config-derived RNG, and validate
// the result. Same config, same artifact.
func Generate(cfg *Config) (*Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	set, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}

	return GenerateWithSet(cfg, set)
}

// GenerateWithSet runs the pipeline against an already-loaded catalog.
// Useful when one catalog serves many runs.
func GenerateWithSet(cfg *Config, set *catalog.Set) (*Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	sides, err := cfg.BuildSides(set)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	solverRNG := rng.NewRNG(cfg.Seed, "collapse", cfg.Hash())
	grid, err := wave.CollapseWave(set.Fields, sides, solverRNG)
	if err != nil {
		return nil, fmt.Errorf("solving failed: %w", err)
	}

	return &Artifact{
		Grid:   grid,
		Set:    set,
		Sides:  sides,
		Report: validation.Check(grid, set, sides),
		Stats:  validation.Metrics(grid),
		Seed:   cfg.Seed,
	}, nil
}
