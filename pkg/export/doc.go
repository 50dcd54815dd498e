// Package export renders solved tile grids to SVG, JSON, Tiled Map
// JSON (TMJ), and plain text. Exporters consume a grid and its catalog
// and never touch the solver's internal state.
package export
