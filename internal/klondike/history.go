package klondike

// entryKind distinguishes the three reversible mutations.
type entryKind int8

const (
	entryMove entryKind = iota
	entryDraw
	entryRecycle
)

// undoEntry captures the delta of one committed mutation, with just
// enough information to reverse it exactly. Entries live on the game's
// history stack and are discarded wholesale at NewGame.
type undoEntry struct {
	kind  entryKind
	src   PileID // entryMove only
	dst   PileID // entryMove only
	count int    // cards moved / drawn / recycled
	// flipped records that committing the move auto-flipped the newly
	// exposed source top card, so undo must turn it back down.
	flipped bool
}

// revert plays the entry backwards against the game state. Orientation
// changes (auto-flips, draw flips, recycle flips) are reversed too, so a
// full unwind restores the pre-move state bit for bit.
func (e undoEntry) revert(g *Game) []PileID {
	switch e.kind {
	case entryMove:
		src := g.pile(e.src)
		dst := g.pile(e.dst)
		if e.flipped {
			src.flipTop()
		}
		src.appendCards(dst.removeTop(e.count))
		return []PileID{e.src, e.dst}

	case entryDraw:
		// A draw pops stock cards one at a time onto the waste, so the
		// inverse pops them back one at a time, face-down again.
		stock := g.pile(PileStock)
		waste := g.pile(PileWaste)
		for i := 0; i < e.count; i++ {
			card := waste.removeTop(1)
			card[0].FaceUp = false
			stock.appendCards(card)
		}
		return []PileID{PileStock, PileWaste}

	case entryRecycle:
		// Recycling reversed the whole waste into the stock face-down;
		// the inverse reverses the stock back into the waste face-up.
		stock := g.pile(PileStock)
		waste := g.pile(PileWaste)
		cards := stock.removeTop(e.count)
		for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
			cards[i], cards[j] = cards[j], cards[i]
		}
		for i := range cards {
			cards[i].FaceUp = true
		}
		waste.appendCards(cards)
		return []PileID{PileStock, PileWaste}

	default:
		panic("klondike: unknown undo entry kind")
	}
}
