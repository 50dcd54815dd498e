package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/techlukas42/wave-function-collapse/pkg/tile"
)

// Set is a materialized tile catalog: the directory tile images live in
// (relative to the set file) and every tile variant including
// rotations. The solver treats a Set as read-only shared input.
type Set struct {
	Dir    string
	Fields []tile.Field
}

// entry mirrors one tile record in a set file.
type entry struct {
	Name       string   `yaml:"name"`
	Rotateable bool     `yaml:"rotateable"`
	Sides      []string `yaml:"sides"`
	Weight     int      `yaml:"weight"`
}

// setFile mirrors the YAML document layout.
type setFile struct {
	Dir    string  `yaml:"dir"`
	Fields []entry `yaml:"fields"`
}

// Load reads and materializes a YAML tile-set file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading set file: %w", err)
	}
	set, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// LoadFromBytes parses a YAML tile set from a byte slice. Useful for
// testing and programmatic set generation.
func LoadFromBytes(data []byte) (*Set, error) {
	var sf setFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	fields := make([]tile.Field, 0, len(sf.Fields))
	for i, e := range sf.Fields {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("field[%d]: %w", i, err)
		}
		fields = append(fields, e.materialize()...)
	}

	return &Set{Dir: sf.Dir, Fields: fields}, nil
}

// validate checks one raw entry before materialization.
func (e entry) validate() error {
	if e.Name == "" {
		return errors.New("name must not be empty")
	}
	if len(e.Sides) != 4 {
		return fmt.Errorf("expected 4 sides, got %d", len(e.Sides))
	}
	for i, side := range e.Sides {
		if len(strings.Split(side, "-")) < 2 {
			return fmt.Errorf("side[%d]: label %q needs at least <shape>-<class>", i, side)
		}
	}
	if e.Weight < 0 {
		return fmt.Errorf("weight must not be negative, got %d", e.Weight)
	}
	return nil
}

// materialize expands one entry into its tile variants. An omitted or
// zero weight defaults to 1.
func (e entry) materialize() []tile.Field {
	weight := e.Weight
	if weight == 0 {
		weight = 1
	}

	sides := [4]string{e.Sides[0], e.Sides[1], e.Sides[2], e.Sides[3]}
	out := []tile.Field{{ImageName: e.Name, Rotation: 0, Sides: sides, Weight: weight}}
	if !e.Rotateable {
		return out
	}

	for turn := 1; turn <= 3; turn++ {
		out = append(out, tile.Field{
			ImageName: e.Name,
			Rotation:  turn * 90,
			Sides:     rotateRight(sides, turn),
			Weight:    weight,
		})
	}
	return out
}

// rotateRight shifts the side labels clockwise by n quarter turns, so
// after one turn the former west label faces north.
func rotateRight(sides [4]string, n int) [4]string {
	var out [4]string
	for i := range sides {
		out[(i+n)%4] = sides[i]
	}
	return out
}
