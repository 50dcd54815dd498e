// Package validation checks solved grids against the edge
// compatibility rules and the boundary constraints they were generated
// under, and computes summary metrics.
package validation
