package klondike

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// saveVersion guards the save-file layout.
const saveVersion = 1

type savedCard struct {
	Rank   int    `yaml:"rank"`
	Suit   string `yaml:"suit"`
	FaceUp bool   `yaml:"face_up"`
}

type savedPile struct {
	ID    string      `yaml:"id"`
	Cards []savedCard `yaml:"cards"`
}

type savedRules struct {
	DrawCount           int    `yaml:"draw_count"`
	EmptyTableau        string `yaml:"empty_tableau"`
	FoundationToTableau bool   `yaml:"foundation_to_tableau"`
}

type savedGame struct {
	Version int         `yaml:"version"`
	Seed    int64       `yaml:"seed"`
	State   string      `yaml:"state"`
	Moves   int         `yaml:"moves"`
	Rules   savedRules  `yaml:"rules"`
	Piles   []savedPile `yaml:"piles"`
}

// Save serializes the session to YAML: the ordered 13 piles as
// (rank, suit, orientation) triples plus the rules in effect. The undo
// stack is not persisted; history restarts on load.
func (g *Game) Save() ([]byte, error) {
	doc := savedGame{
		Version: saveVersion,
		Seed:    g.seed,
		State:   g.state.String(),
		Moves:   g.moves,
		Rules: savedRules{
			DrawCount:           g.rules.DrawCount,
			EmptyTableau:        string(g.rules.EmptyTableau),
			FoundationToTableau: g.rules.FoundationToTableau,
		},
	}
	for id := PileID(0); id < NumPiles; id++ {
		p := g.pile(id)
		sp := savedPile{ID: id.String(), Cards: make([]savedCard, 0, p.Len())}
		for _, c := range p.cards {
			sp.Cards = append(sp.Cards, savedCard{
				Rank:   int(c.Rank),
				Suit:   c.Suit.Name(),
				FaceUp: c.FaceUp,
			})
		}
		doc.Piles = append(doc.Piles, sp)
	}
	return yaml.Marshal(doc)
}

// SaveFile writes the serialized session to path.
func (g *Game) SaveFile(path string) error {
	data, err := g.Save()
	if err != nil {
		return fmt.Errorf("klondike: cannot serialize game: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("klondike: cannot write save file: %w", err)
	}
	return nil
}

// Load rebuilds a session from Save output. A corrupt file is user
// input, so every deviation — wrong pile count, unknown suit, duplicate
// or missing cards — comes back as an error, never a panic. The loaded
// game starts with empty undo history.
func Load(data []byte) (*Game, error) {
	var doc savedGame
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("klondike: cannot parse save file: %w", err)
	}
	if doc.Version != saveVersion {
		return nil, fmt.Errorf("klondike: unsupported save version %d", doc.Version)
	}
	if len(doc.Piles) != NumPiles {
		return nil, fmt.Errorf("klondike: save has %d piles, want %d", len(doc.Piles), NumPiles)
	}

	rules := Rules{
		DrawCount:           doc.Rules.DrawCount,
		EmptyTableau:        EmptyTableauRule(doc.Rules.EmptyTableau),
		FoundationToTableau: doc.Rules.FoundationToTableau,
	}
	g, err := New(rules)
	if err != nil {
		return nil, err
	}

	var seen [NumSuits * 13]bool
	total := 0
	for id := PileID(0); id < NumPiles; id++ {
		for _, sc := range doc.Piles[id].Cards {
			suit, ok := SuitByName(sc.Suit)
			if !ok {
				return nil, fmt.Errorf("klondike: unknown suit %q in save file", sc.Suit)
			}
			if sc.Rank < int(Ace) || sc.Rank > int(King) {
				return nil, fmt.Errorf("klondike: rank %d out of range in save file", sc.Rank)
			}
			key := int(suit)*13 + sc.Rank - 1
			if seen[key] {
				return nil, fmt.Errorf("klondike: duplicate card %s of %s in save file",
					Rank(sc.Rank), sc.Suit)
			}
			seen[key] = true
			total++
			g.pile(id).appendCards([]Card{{
				Rank:   Rank(sc.Rank),
				Suit:   suit,
				FaceUp: sc.FaceUp,
			}})
		}
	}
	if total != DeckSize {
		return nil, fmt.Errorf("klondike: save holds %d cards, want %d", total, DeckSize)
	}

	switch doc.State {
	case StatePlaying.String():
		g.state = StatePlaying
	case StateWon.String():
		g.state = StateWon
	default:
		return nil, fmt.Errorf("klondike: unknown game state %q in save file", doc.State)
	}
	g.seed = doc.Seed
	g.moves = doc.Moves
	return g, nil
}

// LoadFile reads and rebuilds a session from path.
func LoadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("klondike: cannot read save file: %w", err)
	}
	return Load(data)
}
