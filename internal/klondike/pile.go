package klondike

import "fmt"

// Role tags a pile with its rule set. Role-specific behavior is dispatched
// through pure functions keyed by this tag rather than through subtypes.
type Role int8

const (
	RoleStock Role = iota
	RoleWaste
	RoleFoundation
	RoleTableau
)

// String returns the lowercase role name, used in save files and events.
func (r Role) String() string {
	switch r {
	case RoleStock:
		return "stock"
	case RoleWaste:
		return "waste"
	case RoleFoundation:
		return "foundation"
	case RoleTableau:
		return "tableau"
	default:
		return "unknown"
	}
}

// PileID densely indexes the 13 piles of a game:
// stock, waste, 4 foundations, 7 tableau columns.
type PileID int8

const (
	PileStock PileID = 0
	PileWaste PileID = 1

	pileFoundationBase PileID = 2
	pileTableauBase    PileID = 6

	// NumFoundations and NumTableaus are the standard Klondike layout.
	NumFoundations = 4
	NumTableaus    = 7

	// NumPiles is the total pile count.
	NumPiles = 2 + NumFoundations + NumTableaus
)

// FoundationID returns the PileID of foundation i (0..3).
func FoundationID(i int) PileID {
	if i < 0 || i >= NumFoundations {
		panic(fmt.Sprintf("klondike: foundation index %d out of range", i))
	}
	return pileFoundationBase + PileID(i)
}

// TableauID returns the PileID of tableau column i (0..6).
func TableauID(i int) PileID {
	if i < 0 || i >= NumTableaus {
		panic(fmt.Sprintf("klondike: tableau index %d out of range", i))
	}
	return pileTableauBase + PileID(i)
}

// Valid reports whether the id addresses one of the 13 piles.
func (id PileID) Valid() bool {
	return id >= 0 && id < NumPiles
}

// Role returns the role of the pile addressed by this id.
func (id PileID) Role() Role {
	switch {
	case id == PileStock:
		return RoleStock
	case id == PileWaste:
		return RoleWaste
	case id >= pileFoundationBase && id < pileFoundationBase+NumFoundations:
		return RoleFoundation
	case id >= pileTableauBase && id < pileTableauBase+NumTableaus:
		return RoleTableau
	default:
		panic(fmt.Sprintf("klondike: invalid pile id %d", id))
	}
}

// String returns labels like "stock", "foundation-2", "tableau-7".
func (id PileID) String() string {
	switch id.Role() {
	case RoleStock:
		return "stock"
	case RoleWaste:
		return "waste"
	case RoleFoundation:
		return fmt.Sprintf("foundation-%d", int(id-pileFoundationBase)+1)
	default:
		return fmt.Sprintf("tableau-%d", int(id-pileTableauBase)+1)
	}
}

// Pile is an ordered sequence of cards with a role. Index 0 is the bottom,
// the last index is the top. Invariant for tableau piles: face-down cards
// are contiguous at the bottom.
type Pile struct {
	id    PileID
	cards []Card
}

// newPile creates an empty pile for the given id.
func newPile(id PileID) *Pile {
	return &Pile{id: id}
}

// ID returns the pile's identifier.
func (p *Pile) ID() PileID { return p.id }

// Role returns the pile's role tag.
func (p *Pile) Role() Role { return p.id.Role() }

// Len returns the number of cards in the pile.
func (p *Pile) Len() int { return len(p.cards) }

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool { return len(p.cards) == 0 }

// Top returns the top card. The boolean is false for an empty pile;
// callers are expected to check emptiness rather than rely on a panic.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Cards returns a copy of the pile's cards, bottom to top.
// The engine owns the authoritative slice; callers get snapshots only.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// At returns the card at index i (0 = bottom). Panics when out of range:
// pile indices come from the engine itself, never from user input.
func (p *Pile) At(i int) Card {
	if i < 0 || i >= len(p.cards) {
		panic(fmt.Sprintf("klondike: card index %d out of range on %s (len %d)", i, p.id, len(p.cards)))
	}
	return p.cards[i]
}

// removeTop removes and returns the top n cards, preserving order
// (result index 0 is the lowest removed card). Asking for more cards than
// the pile holds is a programming error and panics. Unexported together
// with appendCards: all mutation goes through the engine, readers outside
// the package only get snapshots.
func (p *Pile) removeTop(n int) []Card {
	if n < 0 || n > len(p.cards) {
		panic(fmt.Sprintf("klondike: remove %d from %s holding %d", n, p.id, len(p.cards)))
	}
	cut := len(p.cards) - n
	out := make([]Card, n)
	copy(out, p.cards[cut:])
	p.cards = p.cards[:cut]
	return out
}

// appendCards adds cards on top, preserving their order. Orientation is
// not touched here; flipping is an explicit engine action.
func (p *Pile) appendCards(cards []Card) {
	p.cards = append(p.cards, cards...)
}

// flipTop toggles the orientation of the top card and returns it.
// Panics on an empty pile.
func (p *Pile) flipTop() Card {
	if len(p.cards) == 0 {
		panic(fmt.Sprintf("klondike: flip on empty pile %s", p.id))
	}
	i := len(p.cards) - 1
	p.cards[i].FaceUp = !p.cards[i].FaceUp
	return p.cards[i]
}

// setOrientation forces the orientation of all cards in the pile.
// Used by the stock recycle and its undo.
func (p *Pile) setOrientation(faceUp bool) {
	for i := range p.cards {
		p.cards[i].FaceUp = faceUp
	}
}

// reverse flips the order of the pile in place (not the orientation).
func (p *Pile) reverse() {
	for i, j := 0, len(p.cards)-1; i < j; i, j = i+1, j-1 {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	}
}

// ExposedRun returns the length of the maximal face-up suffix that forms a
// valid descending, alternating-color run ending at the top card. Only
// tableau piles expose runs; every other role exposes at most its top card.
func (p *Pile) ExposedRun() int {
	if len(p.cards) == 0 {
		return 0
	}
	if p.Role() != RoleTableau {
		if p.cards[len(p.cards)-1].FaceUp {
			return 1
		}
		return 0
	}
	run := 0
	for i := len(p.cards) - 1; i >= 0; i-- {
		c := p.cards[i]
		if !c.FaceUp {
			break
		}
		if run > 0 {
			above := p.cards[i+1]
			if c.Color() == above.Color() || c.Rank != above.Rank+1 {
				break
			}
		}
		run++
	}
	return run
}

// faceDownContiguous reports whether no face-up card sits below a
// face-down one. Holds for all piles after every committed move.
func (p *Pile) faceDownContiguous() bool {
	seenUp := false
	for _, c := range p.cards {
		if c.FaceUp {
			seenUp = true
		} else if seenUp {
			return false
		}
	}
	return true
}
