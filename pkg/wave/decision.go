package wave

import "github.com/techlukas42/wave-function-collapse/pkg/tile"

// change is one reversible mutation of the wave: the candidate list at
// pos as it was immediately before the mutation, and whether the
// mutation was a driver collapse or a propagator reduction.
type change struct {
	old    []tile.Field
	chosen bool
	pos    Coord
}

// decision records one collapse choice on the current branch.
type decision struct {
	id         int
	previousID int // parent context, copied from the top decision's previousID; rootID when the stack was empty
	pos        Coord
	to         tile.Field
}

// rootID is the previousID of decisions made with an empty decision
// stack.
const rootID = -1

// decisionTree holds the undo log and branch state of one solve: the
// stack of reversible changes, the stack of decisions on the current
// branch, and the decisions forbidden at their parent context.
//
// A new decision copies the top decision's previousID rather than its
// id, so a straight-line run of collapses shares a single parent
// context and forbiddings are scoped to that flat sequence of choices.
// The forbidden set stays a slice, scanned linearly, to keep iteration
// order deterministic.
type decisionTree struct {
	changes   []change
	decisions []decision
	forbidden []decision
	idCounter int
}

func newDecisionTree() *decisionTree {
	return &decisionTree{}
}

// currentPreviousID returns the parent context shared by the next
// decision and by forbidden-option lookups.
func (t *decisionTree) currentPreviousID() int {
	if len(t.decisions) == 0 {
		return rootID
	}
	return t.decisions[len(t.decisions)-1].previousID
}

// decide snapshots the pre-collapse candidate list at pos and pushes a
// decision for the chosen field.
func (t *decisionTree) decide(w *wave, pos Coord, to tile.Field) {
	t.changes = append(t.changes, change{old: w.at(pos), chosen: true, pos: pos})
	t.decisions = append(t.decisions, decision{
		id:         t.idCounter,
		previousID: t.currentPreviousID(),
		pos:        pos,
		to:         to,
	})
	t.idCounter++
}

// forbidLastDecision pops the newest decision and adds it to the
// forbidden set. Forbiddings recorded under a different parent context
// belong to branches that are no longer reachable and are dropped
// first. Returns ErrNotCollapsable when there is no decision left to
// forbid.
func (t *decisionTree) forbidLastDecision() error {
	if len(t.decisions) == 0 {
		return ErrNotCollapsable
	}

	top := t.decisions[len(t.decisions)-1]

	kept := t.forbidden[:0]
	for _, d := range t.forbidden {
		if d.previousID == top.previousID {
			kept = append(kept, d)
		}
	}
	t.forbidden = kept

	t.decisions = t.decisions[:len(t.decisions)-1]
	t.forbidden = append(t.forbidden, top)
	return nil
}

// forbiddenOptions returns the fields already tried and forbidden at
// pos within the current parent context.
func (t *decisionTree) forbiddenOptions(pos Coord) []tile.Field {
	cur := t.currentPreviousID()
	var out []tile.Field
	for _, d := range t.forbidden {
		if d.previousID == cur && d.pos == pos {
			out = append(out, d.to)
		}
	}
	return out
}
