package klondike

// Event is a state-change notification emitted by the engine after an
// intent has been processed. Delivery is synchronous and fire-and-forget:
// subscribers read committed state, they never mutate it.
type Event interface{ event() }

// Move names a transfer of Count cards from the top of Src onto Dst.
// Used both as a hint suggestion and in event payloads.
type Move struct {
	Src   PileID
	Dst   PileID
	Count int
}

// StateChanged reports a committed mutation: which piles changed, which
// cards moved and which cards changed orientation.
type StateChanged struct {
	Piles   []PileID
	Moved   []Card
	Flipped []Card
}

// MoveRejected reports an illegal move intent. State is unchanged.
type MoveRejected struct {
	Move   Move
	Reason Verdict
}

// GameWon is emitted once, when all four foundations are complete.
type GameWon struct{}

// HintResult carries a hint suggestion; Suggestion is nil when no
// productive move exists.
type HintResult struct {
	Suggestion *Move
}

// NothingToDo reports an intent that had no effect: a draw with stock and
// waste both empty, or an undo with empty history.
type NothingToDo struct {
	Op string // "draw" or "undo"
}

func (StateChanged) event() {}
func (MoveRejected) event() {}
func (GameWon) event()      {}
func (HintResult) event()   {}
func (NothingToDo) event()  {}
