package wave

import "github.com/techlukas42/wave-function-collapse/pkg/tile"

// opposing maps a direction to the side index a neighbor in that
// direction faces us with: the north neighbor presents its south edge,
// and so on.
var opposing = [4]int{tile.South, tile.West, tile.North, tile.East}

// boundary returns the virtual cell at index i of the given side, or
// the full catalog when the supplied side has no constraint there.
func (s *solver) boundary(side, i int) []tile.Field {
	cells := s.side[side]
	if i >= len(cells) || cells[i] == nil {
		return s.full
	}
	return cells[i]
}

// neighbor returns the candidate list the cell at pos faces in the
// given direction: the adjacent wave cell, or the boundary virtual
// cell when the neighbor is off-grid.
func (s *solver) neighbor(pos Coord, dir int) []tile.Field {
	switch dir {
	case tile.North:
		if pos.Y == 0 {
			return s.boundary(tile.North, pos.X)
		}
		return s.wave.at(Coord{X: pos.X, Y: pos.Y - 1})
	case tile.East:
		if pos.X == s.wave.width-1 {
			return s.boundary(tile.East, pos.Y)
		}
		return s.wave.at(Coord{X: pos.X + 1, Y: pos.Y})
	case tile.South:
		if pos.Y == s.wave.height-1 {
			return s.boundary(tile.South, pos.X)
		}
		return s.wave.at(Coord{X: pos.X, Y: pos.Y + 1})
	default:
		if pos.X == 0 {
			return s.boundary(tile.West, pos.Y)
		}
		return s.wave.at(Coord{X: pos.X - 1, Y: pos.Y})
	}
}

// applyConstraintAt filters the candidate list at pos against the
// labels its four neighbors currently offer. A tile survives iff every
// direction has at least one opposing label it fits against.
//
// When the filter removed something, or forceRecord is set, the
// pre-filter list is recorded on the undo log and the in-bounds
// neighbors of pos are returned for re-examination. An empty result is
// a contradiction.
func (s *solver) applyConstraintAt(pos Coord, forceRecord bool) ([]Coord, error) {
	var offered [4][]string
	for dir := 0; dir < 4; dir++ {
		offered[dir] = uniqueLabels(s.neighbor(pos, dir), opposing[dir])
	}

	old := s.wave.at(pos)
	kept := make([]tile.Field, 0, len(old))
	for _, f := range old {
		ok := true
		for dir := 0; dir < 4 && ok; dir++ {
			ok = anyFits(offered[dir], f.Sides[dir])
		}
		if ok {
			kept = append(kept, f)
		}
	}

	if len(kept) == 0 {
		return nil, errContradiction
	}

	if len(kept) == len(old) && !forceRecord {
		return nil, nil
	}

	s.tree.changes = append(s.tree.changes, change{old: old, chosen: false, pos: pos})
	s.wave.set(pos, kept)
	return s.inBoundsNeighbors(pos), nil
}

// inBoundsNeighbors returns the on-grid neighbors of pos in worklist
// push order: west, south, east, north.
func (s *solver) inBoundsNeighbors(pos Coord) []Coord {
	out := make([]Coord, 0, 4)
	if pos.X > 0 {
		out = append(out, Coord{X: pos.X - 1, Y: pos.Y})
	}
	if pos.Y < s.wave.height-1 {
		out = append(out, Coord{X: pos.X, Y: pos.Y + 1})
	}
	if pos.X < s.wave.width-1 {
		out = append(out, Coord{X: pos.X + 1, Y: pos.Y})
	}
	if pos.Y > 0 {
		out = append(out, Coord{X: pos.X, Y: pos.Y - 1})
	}
	return out
}

// propagate reduces candidate lists to a fixpoint, processing the
// worklist LIFO and deduplicating after each expansion. A single-entry
// worklist is the seed of a fresh collapse and is recorded on the undo
// log even when the filter removes nothing, so a later undo always
// finds an anchor to rewind past.
func (s *solver) propagate(next []Coord) error {
	if len(next) == 1 {
		pos := next[len(next)-1]
		next = next[:len(next)-1]
		grown, err := s.applyConstraintAt(pos, true)
		if err != nil {
			return err
		}
		next = append(next, grown...)
	}

	for len(next) > 0 {
		pos := next[len(next)-1]
		next = next[:len(next)-1]
		grown, err := s.applyConstraintAt(pos, false)
		if err != nil {
			return err
		}
		next = append(next, grown...)
		next = dedupCoords(next)
	}
	return nil
}

// uniqueLabels collects the deduplicated labels the given candidates
// present on one side, preserving first-seen order.
func uniqueLabels(fields []tile.Field, side int) []string {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		label := f.Sides[side]
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

func anyFits(offered []string, mine string) bool {
	for _, label := range offered {
		if tile.Fits(label, mine) {
			return true
		}
	}
	return false
}

// dedupCoords removes duplicate coordinates while preserving order.
func dedupCoords(coords []Coord) []Coord {
	seen := make(map[Coord]struct{}, len(coords))
	out := coords[:0]
	for _, c := range coords {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
