package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-klondike/internal/core"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

func dealTestGame(t *testing.T) *klondike.Game {
	t.Helper()
	g, err := klondike.NewGame(klondike.DefaultRules(), 42)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func drawTestBoard(g *klondike.Game, v ViewState) *core.Screen {
	s := core.NewScreen(BoardWidth, BoardHeight)
	DrawBoard(g, v, s)
	return s
}

func TestBoardLayout(t *testing.T) {
	g := dealTestGame(t)
	s := drawTestBoard(g, ViewState{Cursor: klondike.PileStock})

	// Stock holds face-down cards after the deal.
	if s.Get(colX(0), topRowY) != '[' || s.Get(colX(0)+1, topRowY) != '▒' {
		t.Errorf("stock cell wrong: %q", s.Row(topRowY))
	}

	// Waste and foundations are empty placeholders.
	if s.Get(colX(1)+2, topRowY) != '·' {
		t.Errorf("waste should be empty: %q", s.Row(topRowY))
	}
	for i := 0; i < klondike.NumFoundations; i++ {
		if s.Get(colX(3+i)+2, topRowY) != '·' {
			t.Errorf("foundation %d should be empty: %q", i, s.Row(topRowY))
		}
	}

	// Column 1 has one card, face-up.
	if s.Get(colX(0), tableauY) != '[' {
		t.Errorf("tableau 1 missing its card: %q", s.Row(tableauY))
	}
	if s.Get(colX(0)+1, tableauY) == '▒' {
		t.Error("tableau 1 top should be face-up")
	}

	// Column 7 has seven cards: six backs, then the face-up top.
	x := colX(6)
	for row := 0; row < 6; row++ {
		if s.Get(x+1, tableauY+row) != '▒' {
			t.Errorf("tableau 7 row %d should be face-down: %q", row, s.Row(tableauY+row))
		}
	}
	if s.Get(x+1, tableauY+6) == '▒' {
		t.Error("tableau 7 top should be face-up")
	}
}

func TestBoardCursorMarker(t *testing.T) {
	g := dealTestGame(t)

	// Top-row pile: marker sits in the row under the stock.
	s := drawTestBoard(g, ViewState{Cursor: klondike.PileStock})
	if s.Get(colX(0)+2, markerY) != '▲' {
		t.Errorf("missing stock cursor marker: %q", s.Row(markerY))
	}

	// Tableau pile: marker sits under the column's last card.
	s = drawTestBoard(g, ViewState{Cursor: klondike.TableauID(2)})
	if s.Get(colX(2)+2, tableauY+3) != '▲' {
		t.Errorf("missing tableau cursor marker: %q", s.Row(tableauY+3))
	}
}

func TestBoardSelectionHighlight(t *testing.T) {
	g := dealTestGame(t)
	sel := &Selection{Pile: klondike.TableauID(6), Count: 1}
	s := drawTestBoard(g, ViewState{Cursor: sel.Pile, Selected: sel})

	top := s.GetCell(colX(6)+1, tableauY+6)
	if top.Color != core.ColorYellow {
		t.Errorf("selected card color = %v, want yellow", top.Color)
	}
	// Cards below the selection keep their own color.
	below := s.GetCell(colX(6)+1, tableauY+5)
	if below.Color == core.ColorYellow {
		t.Error("unselected card picked up the selection color")
	}
}

func TestBoardHintHighlight(t *testing.T) {
	g := dealTestGame(t)
	hint := &klondike.Move{Src: klondike.PileStock, Dst: klondike.PileWaste, Count: 1}
	s := drawTestBoard(g, ViewState{Cursor: klondike.PileStock, Hint: hint})

	if s.GetCell(colX(0)+1, topRowY).Color != core.ColorCyan {
		t.Error("hint source should be cyan")
	}
	if s.GetCell(colX(1)+1, topRowY).Color != core.ColorCyan {
		t.Error("hint destination should be cyan")
	}
}

func TestBoardHUD(t *testing.T) {
	g := dealTestGame(t)
	s := drawTestBoard(g, ViewState{Cursor: klondike.PileStock})

	hud := s.Row(hudY)
	if !strings.Contains(hud, "KLONDIKE") || !strings.Contains(hud, "seed 42") {
		t.Errorf("HUD = %q", hud)
	}
	if !strings.Contains(hud, "stock 24") {
		t.Errorf("HUD should show the stock count: %q", hud)
	}
}

func TestCardLabelWidths(t *testing.T) {
	cards := []klondike.Card{
		{Rank: klondike.Ace, Suit: klondike.Spades, FaceUp: true},
		{Rank: klondike.Rank(10), Suit: klondike.Diamonds, FaceUp: true},
		{Rank: klondike.King, Suit: klondike.Hearts, FaceUp: false},
	}
	for _, c := range cards {
		label, _ := cardLabel(c)
		if got := len([]rune(label)); got != cardWidth {
			t.Errorf("label %q is %d runes, want %d", label, got, cardWidth)
		}
	}

	if _, color := cardLabel(cards[1]); color != core.ColorRed {
		t.Error("diamonds should render red")
	}
	if _, color := cardLabel(cards[0]); color != core.ColorWhite {
		t.Error("spades should render white")
	}
}
