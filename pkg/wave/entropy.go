package wave

import "github.com/techlukas42/wave-function-collapse/pkg/tile"

// findLowestEntropy scans the wave column-major for the uncollapsed
// cell with the fewest remaining candidates. Cells already collapsed
// (one candidate) are skipped. Tied cells are filtered down to those
// that still have an untried candidate on this branch; if none remain
// the search is exhausted. The winner among the survivors is drawn
// uniformly at random.
//
// done is true when every cell is collapsed and no decision is needed.
func (s *solver) findLowestEntropy() (pos Coord, done bool, err error) {
	lowest := len(s.full)
	var ties []Coord
	for x := 0; x < s.wave.width; x++ {
		for y := 0; y < s.wave.height; y++ {
			n := len(s.wave.at(Coord{X: x, Y: y}))
			switch {
			case n < 2:
			case n == lowest:
				ties = append(ties, Coord{X: x, Y: y})
			case n < lowest:
				ties = ties[:0]
				ties = append(ties, Coord{X: x, Y: y})
				lowest = n
			}
		}
	}

	if len(ties) == 0 {
		return Coord{}, true, nil
	}

	open := ties[:0]
	for _, c := range ties {
		if !allForbidden(s.wave.at(c), s.tree.forbiddenOptions(c)) {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return Coord{}, false, ErrNotCollapsable
	}

	return open[s.rnd.Intn(len(open))], false, nil
}

// allForbidden reports whether every candidate has already been tried
// and forbidden on this branch.
func allForbidden(candidates, forbidden []tile.Field) bool {
	if len(forbidden) == 0 {
		return false
	}
	for _, c := range candidates {
		if !tile.Contains(forbidden, c) {
			return false
		}
	}
	return true
}
