package wfc

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/techlukas42/wave-function-collapse/pkg/catalog"
	"github.com/techlukas42/wave-function-collapse/pkg/tile"
	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// maxGridEdge bounds the output rectangle. The solver's decision tree
// grows with cell count; anything past this is a configuration
// mistake, not a use case.
const maxGridEdge = 512

// Config specifies all generation parameters. It supports YAML
// parsing and validation.
type Config struct {
	// Seed is the master seed for deterministic generation.
	// Use 0 to auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Catalog is the path of the YAML tile-set file.
	Catalog string `yaml:"catalog" json:"catalog"`

	// Grid specifies the output rectangle.
	Grid GridCfg `yaml:"grid" json:"grid"`

	// Boundary names the tiles allowed in each side's virtual cells.
	Boundary BoundaryCfg `yaml:"boundary,omitempty" json:"boundary,omitempty"`
}

// GridCfg specifies the output dimensions in cells.
type GridCfg struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// BoundaryCfg lists, per side, the image names a boundary virtual cell
// may hold. An empty list leaves that side unconstrained.
type BoundaryCfg struct {
	North []string `yaml:"north,omitempty" json:"north,omitempty"`
	East  []string `yaml:"east,omitempty" json:"east,omitempty"`
	South []string `yaml:"south,omitempty" json:"south,omitempty"`
	West  []string `yaml:"west,omitempty" json:"west,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
// Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	if c.Catalog == "" {
		return errors.New("catalog path must not be empty")
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	return nil
}

// Validate checks GridCfg constraints.
func (g *GridCfg) Validate() error {
	if g.Width < 1 || g.Width > maxGridEdge {
		return fmt.Errorf("width must be in range [1, %d], got %d", maxGridEdge, g.Width)
	}
	if g.Height < 1 || g.Height > maxGridEdge {
		return fmt.Errorf("height must be in range [1, %d], got %d", maxGridEdge, g.Height)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used for
// deriving per-stage RNG seeds.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		// Fallback: hash the seed alone.
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}

	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// BuildSides materializes the boundary virtual cells against a loaded
// catalog. The north and south sides span the grid width, east and
// west the height. A side with no named tiles gets nil virtual cells,
// which the solver treats as "any tile"; named tiles must exist in the
// catalog.
func (c *Config) BuildSides(set *catalog.Set) (wave.Sides, error) {
	var sides wave.Sides

	build := func(names []string, length int, label string) ([][]tile.Field, error) {
		cells := make([][]tile.Field, length)
		if len(names) == 0 {
			return cells, nil
		}
		subset, err := fieldsNamed(set, names)
		if err != nil {
			return nil, fmt.Errorf("boundary %s: %w", label, err)
		}
		for i := range cells {
			cells[i] = subset
		}
		return cells, nil
	}

	var err error
	if sides[tile.North], err = build(c.Boundary.North, c.Grid.Width, "north"); err != nil {
		return sides, err
	}
	if sides[tile.East], err = build(c.Boundary.East, c.Grid.Height, "east"); err != nil {
		return sides, err
	}
	if sides[tile.South], err = build(c.Boundary.South, c.Grid.Width, "south"); err != nil {
		return sides, err
	}
	if sides[tile.West], err = build(c.Boundary.West, c.Grid.Height, "west"); err != nil {
		return sides, err
	}
	return sides, nil
}

// fieldsNamed collects every catalog variant of the named tiles,
// preserving catalog order.
func fieldsNamed(set *catalog.Set, names []string) ([]tile.Field, error) {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = false
	}

	var out []tile.Field
	for _, f := range set.Fields {
		if _, ok := allowed[f.ImageName]; ok {
			allowed[f.ImageName] = true
			out = append(out, f)
		}
	}

	for _, n := range names {
		if !allowed[n] {
			return nil, fmt.Errorf("unknown tile %q", n)
		}
	}
	return out, nil
}

// generateSeed creates a seed from the current time.
func generateSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}
