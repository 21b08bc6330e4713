// Package klondike implements the rules engine for single-player Klondike
// Solitaire: piles, move legality, stock cycling, undo history and hints.
// It contains no presentation dependencies (especially no Bubble Tea);
// the platform layer drives it through intents and subscribes to events.
package klondike

import "fmt"

// Suit identifies one of the four card suits.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the lowercase suit name, used in save files.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// SuitByName resolves a save-file suit name back to a Suit.
func SuitByName(name string) (Suit, bool) {
	switch name {
	case "clubs":
		return Clubs, true
	case "diamonds":
		return Diamonds, true
	case "hearts":
		return Hearts, true
	case "spades":
		return Spades, true
	}
	return 0, false
}

// Rank is a card rank, Ace (1) through King (13).
type Rank int8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the short rank label ("A", "2".."10", "J", "Q", "K").
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// CardColor is the red/black color derived from a card's suit.
type CardColor int8

const (
	Black CardColor = iota
	Red
)

// Card is a playing card. Rank and Suit form the immutable identity;
// FaceUp is the only mutable field and is owned by the pile operations.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// Color returns Red for diamonds/hearts and Black for clubs/spades.
func (c Card) Color() CardColor {
	if c.Suit == Diamonds || c.Suit == Hearts {
		return Red
	}
	return Black
}

// IsRed reports whether the card is a red suit.
func (c Card) IsRed() bool { return c.Color() == Red }

// IsBlack reports whether the card is a black suit.
func (c Card) IsBlack() bool { return c.Color() == Black }

// Same reports identity equality (rank and suit), ignoring orientation.
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// String returns a short label like "Q♠" or "10♦".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// DeckSize is the number of cards in play at all times.
const DeckSize = 52

// NewDeck returns the 52 unique cards in suit-then-rank order, face-down.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
