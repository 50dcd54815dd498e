package wave

import (
	"fmt"

	"github.com/techlukas42/wave-function-collapse/pkg/rng"
	"github.com/techlukas42/wave-function-collapse/pkg/tile"
)

// solver bundles the mutable state of one CollapseWave run. The wave
// and the decision tree are exclusively owned by the run; the catalog
// and the boundary sides are read-only borrows.
type solver struct {
	wave *wave
	side Sides
	tree *decisionTree
	full []tile.Field
	rnd  *rng.RNG

	decisions int
	undos     int
}

// CollapseWave produces a fully collapsed grid from the tile catalog
// and the boundary sides, or ErrNotCollapsable when the search tree is
// exhausted. The grid width is the length of the north side and the
// height the length of the east side.
//
// Every cell starts with the full catalog. Boundary constraints are
// propagated first; then the loop collapses the lowest-entropy cell to
// a weight-proportional random candidate, propagates, and on
// contradiction rewinds through the decision tree, forbidding the
// failed choice. The result is deterministic for a given catalog,
// boundary, and RNG seed.
func CollapseWave(fields []tile.Field, sides Sides, rnd *rng.RNG) (*Grid, error) {
	width := len(sides[tile.North])
	height := len(sides[tile.East])
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("boundary implies a %dx%d grid", width, height)
	}

	s := &solver{
		wave: newWave(width, height, fields),
		side: sides,
		tree: newDecisionTree(),
		full: fields,
		rnd:  rnd,
	}

	if err := s.seedBoundary(); err != nil {
		return nil, ErrNotCollapsable
	}

	for {
		pos, done, err := s.findLowestEntropy()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		remaining := excludeFields(s.wave.at(pos), s.tree.forbiddenOptions(pos))
		chosen := chooseWeighted(s.rnd, remaining)

		s.tree.decide(s.wave, pos, chosen)
		s.wave.set(pos, []tile.Field{chosen})
		s.decisions++

		if err := s.propagate([]Coord{pos}); err != nil {
			if err := s.undo(); err != nil {
				return nil, err
			}
		}
	}

	grid := s.wave.grid()
	grid.Decisions = s.decisions
	grid.Undos = s.undos
	return grid, nil
}

// seedBoundary propagates the boundary constraints into the wave:
// every cell of the first and last row, then of the first and last
// column excluding the corners already queued.
func (s *solver) seedBoundary() error {
	next := make([]Coord, 0, 2*s.wave.width+2*s.wave.height)
	for x := 0; x < s.wave.width; x++ {
		next = append(next, Coord{X: x, Y: 0}, Coord{X: x, Y: s.wave.height - 1})
	}
	for y := 1; y < s.wave.height-1; y++ {
		next = append(next, Coord{X: 0, Y: y}, Coord{X: s.wave.width - 1, Y: y})
	}
	return s.propagate(dedupCoords(next))
}

// undo rewinds the undo log, restoring each cell's candidate list,
// until the most recent collapse has been restored, then forbids that
// decision so the next pass at the cell tries another field. Fails
// with ErrNotCollapsable when there is no decision left to reverse.
func (s *solver) undo() error {
	for len(s.tree.changes) > 0 {
		c := s.tree.changes[len(s.tree.changes)-1]
		s.tree.changes = s.tree.changes[:len(s.tree.changes)-1]
		s.wave.set(c.pos, c.old)
		if c.chosen {
			break
		}
	}
	s.undos++
	return s.tree.forbidLastDecision()
}

// chooseWeighted draws one field with probability proportional to its
// weight.
func chooseWeighted(rnd *rng.RNG, fields []tile.Field) tile.Field {
	weights := make([]int, len(fields))
	for i, f := range fields {
		weights[i] = f.Weight
	}
	return fields[rnd.WeightedIndex(weights)]
}

// excludeFields returns candidates minus the excluded fields,
// preserving order.
func excludeFields(candidates, excluded []tile.Field) []tile.Field {
	if len(excluded) == 0 {
		return candidates
	}
	out := make([]tile.Field, 0, len(candidates))
	for _, c := range candidates {
		if !tile.Contains(excluded, c) {
			out = append(out, c)
		}
	}
	return out
}
