package ringshot

// transitionKind names a delayed state change.
type transitionKind int

const (
	transitionClearPin transitionKind = iota // Remove the pinned dart
	transitionWin                            // Play the win cue and report success
	transitionLoss                           // Report failure
)

// transition fires once the tick counter reaches fireAt.
// ref identifies the object the transition belongs to, when it matters.
type transition struct {
	fireAt uint64
	kind   transitionKind
	ref    uint64
}

// firedTransition is a transition whose time has come.
type firedTransition struct {
	kind transitionKind
	ref  uint64
}

// transitionQueue holds delayed transitions keyed on the game's own tick counter.
// Dropping the queue is all teardown needs to do.
type transitionQueue struct {
	pending []transition
}

// schedule queues kind to fire delay ticks after now.
func (q *transitionQueue) schedule(now uint64, delay int, kind transitionKind, ref uint64) {
	if delay < 0 {
		delay = 0
	}
	q.pending = append(q.pending, transition{
		fireAt: now + uint64(delay), //#nosec G115 -- delay is non-negative
		kind:   kind,
		ref:    ref,
	})
}

// due removes and returns the transitions whose time has come, in the order
// they were scheduled.
func (q *transitionQueue) due(now uint64) []firedTransition {
	var fired []firedTransition
	keep := q.pending[:0]
	for _, t := range q.pending {
		if t.fireAt <= now {
			fired = append(fired, firedTransition{kind: t.kind, ref: t.ref})
		} else {
			keep = append(keep, t)
		}
	}
	q.pending = keep
	return fired
}

// drop discards everything pending.
func (q *transitionQueue) drop() {
	q.pending = nil
}

// size returns the number of pending transitions.
func (q *transitionQueue) size() int {
	return len(q.pending)
}
