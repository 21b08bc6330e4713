package klondike

import (
	"fmt"
	"math/rand"
)

// State is the engine's lifecycle phase.
type State int8

const (
	// StateDealing is the window between New and Deal.
	StateDealing State = iota
	// StatePlaying accepts all move/draw/undo/hint intents.
	StatePlaying
	// StateWon is terminal; only a new game leaves it.
	StateWon
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateDealing:
		return "dealing"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game is a single Klondike session: the 13 piles, the undo history and
// the win flag. It is the single writer of all pile state. Not safe for
// concurrent use; the platform layer drives it from one goroutine.
type Game struct {
	rules   Rules
	piles   [NumPiles]*Pile
	history []undoEntry
	state   State
	seed    int64
	moves   int
	undos   int

	// lastMove is the most recent committed card move, used by the hint
	// search to avoid suggesting its exact reversal.
	lastMove *Move

	subs []func(Event)
}

// New creates a session with empty piles in the Dealing state.
// Call Deal to start playing.
func New(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	g := &Game{rules: rules, state: StateDealing}
	for id := PileID(0); id < NumPiles; id++ {
		g.piles[id] = newPile(id)
	}
	return g, nil
}

// NewGame creates a session and deals it in one step.
func NewGame(rules Rules, seed int64) (*Game, error) {
	g, err := New(rules)
	if err != nil {
		return nil, err
	}
	g.Deal(seed)
	return g, nil
}

// Rules returns the options this session plays under.
func (g *Game) Rules() Rules { return g.rules }

// State returns the current lifecycle phase.
func (g *Game) State() State { return g.state }

// Seed returns the deal seed.
func (g *Game) Seed() int64 { return g.seed }

// Moves returns the number of committed moves and draws.
func (g *Game) Moves() int { return g.moves }

// Undos returns the number of undo operations performed.
func (g *Game) Undos() int { return g.undos }

// CanUndo reports whether the history stack is non-empty.
func (g *Game) CanUndo() bool { return len(g.history) > 0 }

// Subscribe registers a callback for engine events. Callbacks run
// synchronously on the intent-processing goroutine.
func (g *Game) Subscribe(fn func(Event)) {
	g.subs = append(g.subs, fn)
}

func (g *Game) emit(ev Event) {
	for _, fn := range g.subs {
		fn(ev)
	}
}

// pile resolves an id to its pile, panicking on an invalid id: ids are
// produced by this package, so a bad one is an internal bug.
func (g *Game) pile(id PileID) *Pile {
	if !id.Valid() {
		panic(fmt.Sprintf("klondike: invalid pile id %d", id))
	}
	return g.piles[id]
}

// Pile returns the pile with the given id for read access. Callers must
// not hold the pointer across intents if they need a stable snapshot;
// use Cards for copies.
func (g *Game) Pile(id PileID) *Pile {
	return g.pile(id)
}

// Deal shuffles the 52 cards deterministically from seed and lays out
// the standard Klondike start: column i of the tableau gets i+1 cards
// with only the last face-up, the remaining 24 go to the stock face-down.
// Transitions to Playing.
func (g *Game) Deal(seed int64) {
	for _, p := range g.piles {
		p.cards = p.cards[:0]
	}
	g.history = nil
	g.lastMove = nil
	g.moves = 0
	g.undos = 0
	g.seed = seed

	deck := NewDeck()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	idx := 0
	for col := 0; col < NumTableaus; col++ {
		pile := g.pile(TableauID(col))
		for row := 0; row <= col; row++ {
			card := deck[idx]
			idx++
			card.FaceUp = row == col
			pile.appendCards([]Card{card})
		}
	}
	g.pile(PileStock).appendCards(deck[idx:])

	g.assertConservation()
	g.state = StatePlaying

	changed := make([]PileID, 0, NumPiles)
	for id := PileID(0); id < NumPiles; id++ {
		changed = append(changed, id)
	}
	g.emit(StateChanged{Piles: changed})
}

// TryMove validates and, if legal, commits moving the top n cards of src
// onto dst: the transfer, the auto-flip of the newly exposed tableau
// card, the undo entry and the win check happen atomically. Illegal
// moves leave state untouched and are reported as MoveRejected events;
// they are never errors.
func (g *Game) TryMove(src, dst PileID, n int) Verdict {
	if g.state != StatePlaying {
		g.emit(MoveRejected{Move: Move{src, dst, n}, Reason: IllegalSource})
		return IllegalSource
	}
	v := Validate(g, src, dst, n)
	if v != Legal {
		g.emit(MoveRejected{Move: Move{src, dst, n}, Reason: v})
		return v
	}

	srcPile := g.pile(src)
	dstPile := g.pile(dst)

	moved := srcPile.removeTop(n)
	dstPile.appendCards(moved)

	var flipped []Card
	entry := undoEntry{kind: entryMove, src: src, dst: dst, count: n}
	if srcPile.Role() == RoleTableau && !srcPile.Empty() {
		if top, _ := srcPile.Top(); !top.FaceUp {
			flipped = append(flipped, srcPile.flipTop())
			entry.flipped = true
		}
	}

	g.history = append(g.history, entry)
	g.lastMove = &Move{Src: src, Dst: dst, Count: n}
	g.moves++

	g.emit(StateChanged{Piles: []PileID{src, dst}, Moved: moved, Flipped: flipped})

	if g.won() {
		g.state = StateWon
		g.emit(GameWon{})
	}
	return Legal
}

// DrawStock turns over the configured number of cards from the stock to
// the waste. With the stock empty it recycles the waste back into the
// stock face-down in reversed order; with both empty it is a no-op
// reported as a NothingToDo event.
func (g *Game) DrawStock() {
	if g.state != StatePlaying {
		g.emit(NothingToDo{Op: "draw"})
		return
	}
	stock := g.pile(PileStock)
	waste := g.pile(PileWaste)

	switch {
	case !stock.Empty():
		n := g.rules.DrawCount
		if stock.Len() < n {
			n = stock.Len()
		}
		moved := make([]Card, 0, n)
		for i := 0; i < n; i++ {
			card := stock.removeTop(1)
			card[0].FaceUp = true
			waste.appendCards(card)
			moved = append(moved, card[0])
		}
		g.history = append(g.history, undoEntry{kind: entryDraw, count: n})
		g.lastMove = nil
		g.moves++
		g.emit(StateChanged{Piles: []PileID{PileStock, PileWaste}, Moved: moved, Flipped: moved})

	case !waste.Empty():
		n := waste.Len()
		cards := waste.removeTop(n)
		for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
			cards[i], cards[j] = cards[j], cards[i]
		}
		for i := range cards {
			cards[i].FaceUp = false
		}
		stock.appendCards(cards)
		g.history = append(g.history, undoEntry{kind: entryRecycle, count: n})
		g.lastMove = nil
		g.moves++
		g.emit(StateChanged{Piles: []PileID{PileStock, PileWaste}, Moved: cards, Flipped: cards})

	default:
		g.emit(NothingToDo{Op: "draw"})
	}
}

// Undo reverses the most recent committed mutation exactly, including
// auto-flips and stock recycles. With empty history it is a no-op
// reported as a NothingToDo event. Redo is not supported: history is a
// plain stack and undone entries are gone.
func (g *Game) Undo() {
	if g.state != StatePlaying || len(g.history) == 0 {
		g.emit(NothingToDo{Op: "undo"})
		return
	}
	entry := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	changed := entry.revert(g)
	g.undos++
	g.lastMove = nil

	g.emit(StateChanged{Piles: changed})
}

// won reports whether all four foundations hold Ace through King.
func (g *Game) won() bool {
	for i := 0; i < NumFoundations; i++ {
		if g.pile(FoundationID(i)).Len() != 13 {
			return false
		}
	}
	return true
}

// assertConservation panics unless exactly the 52 unique (rank, suit)
// pairs are present across all piles. Any deviation is an internal bug,
// never a user-facing condition.
func (g *Game) assertConservation() {
	var seen [NumSuits * 13]bool
	total := 0
	for _, p := range g.piles {
		for _, c := range p.cards {
			key := int(c.Suit)*13 + int(c.Rank-Ace)
			if key < 0 || key >= len(seen) || seen[key] {
				panic(fmt.Sprintf("klondike: conservation violated at %v", c))
			}
			seen[key] = true
			total++
		}
	}
	if total != DeckSize {
		panic(fmt.Sprintf("klondike: %d cards in play, want %d", total, DeckSize))
	}
}
