package swipe

// State is the derived, render-facing state of a row.
type State struct {
	Offset   float64
	Zone     Zone
	Leading  []Action
	Trailing []Action
}

// Initial is the state of a freshly built row: centered, nothing hidden.
func (l Layout) Initial() State {
	return State{
		Offset:   l.Offset(ZoneCentered),
		Zone:     ZoneCentered,
		Leading:  l.Leading(),
		Trailing: l.Trailing(),
	}
}

// Reconcile folds a new offset into the previous state.
//
// Fully revealing one side hides the other side's actions so only one set can
// be interacted with. Coming back to the center restores both sets from the
// original snapshots, and the second result asks the caller to re-center the
// strip exactly on the content. Offsets between anchors keep the previous
// action lists.
func (l Layout) Reconcile(prev State, offset float64) (State, bool) {
	next := State{
		Offset:   offset,
		Zone:     l.Classify(offset),
		Leading:  prev.Leading,
		Trailing: prev.Trailing,
	}

	if l.isLeadingRevealed(offset) {
		next.Trailing = nil
	} else if l.isTrailingRevealed(offset) {
		next.Leading = nil
	}

	recenter := false
	if l.isCentered(offset) {
		next.Leading = l.Leading()
		next.Trailing = l.Trailing()
		recenter = true
	}
	return next, recenter
}
