package validation

import (
	"fmt"

	"github.com/techlukas42/wave-function-collapse/pkg/catalog"
	"github.com/techlukas42/wave-function-collapse/pkg/tile"
	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// Violation describes one failed check in a solved grid.
type Violation struct {
	X       int    // Cell column
	Y       int    // Cell row
	Side    int    // Side index on the offending cell (tile.North..tile.West)
	Message string // Human-readable description
}

func (v Violation) String() string {
	return fmt.Sprintf("(%d,%d) side %d: %s", v.X, v.Y, v.Side, v.Message)
}

// Report is the outcome of validating one solved grid.
type Report struct {
	Passed     bool
	Violations []Violation
}

// Check verifies that every cell of a solved grid holds a catalog
// field, that every adjacent edge pair satisfies the fits predicate,
// and that boundary cells honor the virtual cells they were
// constrained by. A nil or incomplete grid fails wholesale.
func Check(grid *wave.Grid, set *catalog.Set, sides wave.Sides) *Report {
	report := &Report{}

	if grid == nil || len(grid.Fields) != grid.Width*grid.Height {
		report.Violations = append(report.Violations, Violation{
			Message: "grid is nil or not fully collapsed",
		})
		return report
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			f := grid.At(x, y)

			if set != nil && !tile.Contains(set.Fields, f) {
				report.Violations = append(report.Violations, Violation{
					X: x, Y: y,
					Message: fmt.Sprintf("field %q (rotation %d) is not in the catalog", f.ImageName, f.Rotation),
				})
			}

			// Internal seams, checked once per pair.
			if x+1 < grid.Width {
				east := grid.At(x+1, y)
				if !tile.Fits(east.Sides[tile.West], f.Sides[tile.East]) {
					report.Violations = append(report.Violations, Violation{
						X: x, Y: y, Side: tile.East,
						Message: fmt.Sprintf("%q does not fit %q", f.Sides[tile.East], east.Sides[tile.West]),
					})
				}
			}
			if y+1 < grid.Height {
				south := grid.At(x, y+1)
				if !tile.Fits(south.Sides[tile.North], f.Sides[tile.South]) {
					report.Violations = append(report.Violations, Violation{
						X: x, Y: y, Side: tile.South,
						Message: fmt.Sprintf("%q does not fit %q", f.Sides[tile.South], south.Sides[tile.North]),
					})
				}
			}
		}
	}

	checkBoundary(report, grid, sides)

	report.Passed = len(report.Violations) == 0
	return report
}

// checkBoundary verifies the outward-facing edges of the grid against
// the supplied virtual cells. Sides shorter than the grid edge leave
// the remaining positions unconstrained.
func checkBoundary(report *Report, grid *wave.Grid, sides wave.Sides) {
	for x := 0; x < grid.Width; x++ {
		checkVirtualCell(report, sides, tile.North, x, grid.At(x, 0), x, 0)
		checkVirtualCell(report, sides, tile.South, x, grid.At(x, grid.Height-1), x, grid.Height-1)
	}
	for y := 0; y < grid.Height; y++ {
		checkVirtualCell(report, sides, tile.West, y, grid.At(0, y), 0, y)
		checkVirtualCell(report, sides, tile.East, y, grid.At(grid.Width-1, y), grid.Width-1, y)
	}
}

// opposing maps a grid side to the side a boundary virtual cell faces
// it with.
var opposing = [4]int{tile.South, tile.West, tile.North, tile.East}

func checkVirtualCell(report *Report, sides wave.Sides, side, idx int, f tile.Field, x, y int) {
	cells := sides[side]
	if idx >= len(cells) || cells[idx] == nil {
		return
	}
	for _, virtual := range cells[idx] {
		if tile.Fits(virtual.Sides[opposing[side]], f.Sides[side]) {
			return
		}
	}
	report.Violations = append(report.Violations, Violation{
		X: x, Y: y, Side: side,
		Message: fmt.Sprintf("edge %q fits no boundary candidate", f.Sides[side]),
	})
}
