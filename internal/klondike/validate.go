package klondike

// Verdict is the outcome of validating a proposed move. Anything other
// than Legal is a user-level rejection, reported through events rather
// than errors.
type Verdict int8

const (
	Legal Verdict = iota
	IllegalSource
	IllegalDestination
	RunBroken
)

// String returns a short reason code for UI feedback.
func (v Verdict) String() string {
	switch v {
	case Legal:
		return "legal"
	case IllegalSource:
		return "illegal source"
	case IllegalDestination:
		return "illegal destination"
	case RunBroken:
		return "run broken"
	default:
		return "unknown"
	}
}

// CanAccept reports whether dst can legally receive run (ordered bottom
// to top) coming from a pile with the given role. Pure; never mutates.
func CanAccept(dst *Pile, run []Card, sourceRole Role, rules Rules) bool {
	if len(run) == 0 {
		return false
	}
	switch dst.Role() {
	case RoleStock, RoleWaste:
		// Only draws and recycles feed these piles.
		return false
	case RoleFoundation:
		if len(run) != 1 {
			return false
		}
		card := run[0]
		top, ok := dst.Top()
		if !ok {
			return card.Rank == Ace
		}
		return card.Suit == top.Suit && card.Rank == top.Rank+1
	case RoleTableau:
		bottom := run[0]
		top, ok := dst.Top()
		if !ok {
			if rules.EmptyTableau == EmptyTableauAny {
				return true
			}
			return bottom.Rank == King
		}
		if !top.FaceUp {
			return false
		}
		return bottom.Color() != top.Color() && bottom.Rank == top.Rank-1
	default:
		return false
	}
}

// Validate decides whether moving the top n cards of src onto dst is
// legal under the given rules. It is pure and idempotent: the same state
// and proposal always yield the same verdict, with no side effects.
//
// Panics on an invalid pile id — that is a caller bug, not user input.
func Validate(g *Game, src, dst PileID, n int) Verdict {
	srcPile := g.pile(src)
	dstPile := g.pile(dst)

	if n < 1 || src == dst {
		return IllegalSource
	}
	if srcPile.Len() < n {
		return IllegalSource
	}

	switch srcPile.Role() {
	case RoleStock:
		// Stock cards leave only through draws.
		return IllegalSource
	case RoleWaste, RoleFoundation:
		if n != 1 {
			return IllegalSource
		}
		top, _ := srcPile.Top()
		if !top.FaceUp {
			return IllegalSource
		}
		if srcPile.Role() == RoleFoundation {
			if !g.rules.FoundationToTableau {
				return IllegalSource
			}
			if dstPile.Role() != RoleTableau {
				return IllegalDestination
			}
		}
	case RoleTableau:
		exposed := srcPile.ExposedRun()
		if n > exposed {
			if top, ok := srcPile.Top(); n == 1 && ok && !top.FaceUp {
				return IllegalSource
			}
			return RunBroken
		}
		if n > 1 && dstPile.Role() != RoleTableau {
			// Runs travel between tableau columns only.
			return IllegalDestination
		}
	}

	run := srcPile.Cards()[srcPile.Len()-n:]
	if !CanAccept(dstPile, run, srcPile.Role(), g.rules) {
		return IllegalDestination
	}
	return Legal
}
