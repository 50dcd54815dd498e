package wave

import (
	"errors"

	"github.com/techlukas42/wave-function-collapse/pkg/tile"
)

// ErrNotCollapsable reports an exhausted search: every decision has
// been tried and forbidden, or the boundary constraints alone are
// unsatisfiable.
var ErrNotCollapsable = errors.New("wave is not collapsable")

// errContradiction marks an empty candidate list during propagation.
// It is recovered internally via undo and never escapes CollapseWave.
var errContradiction = errors.New("contradiction")

// Coord addresses a wave cell. The origin is the top-left corner; x
// grows east and y grows south.
type Coord struct {
	X, Y int
}

// Sides holds the boundary constraints for the four edges of the
// output rectangle, indexed by tile.North..tile.West. Each side is a
// sequence of virtual cells, candidate lists indexed along that side:
// north and south by x, east and west by y. A nil virtual cell, or a
// position past the end of a supplied side, imposes no constraint.
//
// The north side's length determines the grid width and the east
// side's length the grid height.
type Sides [4][][]tile.Field

// wave is the W x H grid of per-cell candidate lists during search.
// Cells are stored row-major. Candidate lists are owned clones of
// catalog entries and preserve the catalog's relative order; a
// single-candidate cell is collapsed, an empty cell a contradiction.
type wave struct {
	width  int
	height int
	cells  [][]tile.Field
}

func newWave(width, height int, full []tile.Field) *wave {
	cells := make([][]tile.Field, width*height)
	for i := range cells {
		cells[i] = append([]tile.Field(nil), full...)
	}
	return &wave{width: width, height: height, cells: cells}
}

func (w *wave) at(pos Coord) []tile.Field {
	return w.cells[pos.Y*w.width+pos.X]
}

func (w *wave) set(pos Coord, fields []tile.Field) {
	w.cells[pos.Y*w.width+pos.X] = fields
}

// grid flattens a fully collapsed wave into one field per cell.
func (w *wave) grid() *Grid {
	fields := make([]tile.Field, len(w.cells))
	for i, c := range w.cells {
		fields[i] = c[0]
	}
	return &Grid{Width: w.width, Height: w.height, Fields: fields}
}

// Grid is a solved wave: exactly one field per cell in row-major
// order, together with counters describing the search that produced
// it.
type Grid struct {
	Width  int
	Height int
	Fields []tile.Field

	// Decisions counts every collapse choice made during the solve,
	// including choices that were later undone. Undos counts the
	// backtracks taken.
	Decisions int
	Undos     int
}

// At returns the field at column x, row y.
func (g *Grid) At(x, y int) tile.Field {
	return g.Fields[y*g.Width+x]
}
