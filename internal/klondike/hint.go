package klondike

// Hint searches the current state for one legal, productive move and
// returns it, emitting a HintResult event either way. The search is
// read-only: no pile mutates, no history entry is pushed.
//
// Priority order: waste to foundation, tableau top to foundation,
// tableau run to tableau, then a stock draw as the fallback. A move that
// would exactly reverse the previous one is skipped to avoid suggesting
// an oscillation.
func (g *Game) Hint() *Move {
	suggestion := g.findHint()
	g.emit(HintResult{Suggestion: suggestion})
	return suggestion
}

func (g *Game) findHint() *Move {
	if g.state != StatePlaying {
		return nil
	}

	// Waste top to any foundation.
	if !g.pile(PileWaste).Empty() {
		for f := 0; f < NumFoundations; f++ {
			if m := g.candidate(PileWaste, FoundationID(f), 1); m != nil {
				return m
			}
		}
	}

	// Tableau tops to foundations.
	for t := 0; t < NumTableaus; t++ {
		src := TableauID(t)
		if g.pile(src).Empty() {
			continue
		}
		for f := 0; f < NumFoundations; f++ {
			if m := g.candidate(src, FoundationID(f), 1); m != nil {
				return m
			}
		}
	}

	// Tableau runs between columns, longest run first so whole sequences
	// travel as a unit.
	for t := 0; t < NumTableaus; t++ {
		src := TableauID(t)
		exposed := g.pile(src).ExposedRun()
		for n := exposed; n >= 1; n-- {
			for d := 0; d < NumTableaus; d++ {
				dst := TableauID(d)
				if dst == src {
					continue
				}
				if m := g.candidate(src, dst, n); m != nil {
					return m
				}
			}
		}
	}

	// Drawing is always worth suggesting while any card can still cycle.
	if !g.pile(PileStock).Empty() || !g.pile(PileWaste).Empty() {
		return &Move{Src: PileStock, Dst: PileWaste, Count: g.rules.DrawCount}
	}

	return nil
}

// candidate returns the move if it is legal and productive, nil otherwise.
func (g *Game) candidate(src, dst PileID, n int) *Move {
	if Validate(g, src, dst, n) != Legal {
		return nil
	}
	// Skip the exact reversal of the previous move.
	if last := g.lastMove; last != nil &&
		last.Src == dst && last.Dst == src && last.Count == n {
		return nil
	}
	// Shuffling a column-bottom run onto an empty column exposes nothing
	// and gains nothing; treat it as unproductive.
	if src.Role() == RoleTableau && dst.Role() == RoleTableau &&
		g.pile(dst).Empty() && g.pile(src).Len() == n {
		return nil
	}
	return &Move{Src: src, Dst: dst, Count: n}
}
