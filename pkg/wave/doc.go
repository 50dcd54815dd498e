// Package wave implements the constraint-propagation tile solver: the
// wave of per-cell candidate lists, boundary sides, the fixpoint
// propagator, the entropy-driven cell selector, and a decision tree
// that supports chronological backtracking with learned forbiddings.
//
// CollapseWave is the entry point. It is a pure function of the
// catalog, the boundary, and the RNG seed: identical inputs produce
// identical grids.
package wave
