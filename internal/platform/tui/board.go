// Package tui is the terminal platform for the klondike engine: a
// Bubble Tea model translating keys into engine intents, a board
// painter targeting the core screen buffer, and SSH serving via Wish.
package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-klondike/internal/core"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

// Board layout constants, in screen cells.
const (
	cardWidth = 5 // "[10♦]"
	colGap    = 2
	colStride = cardWidth + colGap
	boardLeft = 1

	hudY     = 0
	topRowY  = 2
	markerY  = 3
	tableauY = 4

	// BoardWidth and BoardHeight are the minimum screen size the board
	// needs: seven columns plus the tallest possible tableau stack.
	BoardWidth  = boardLeft + klondike.NumTableaus*colStride
	BoardHeight = tableauY + 19 + 1
)

// Selection is a picked-up run: the top Count cards of Pile.
type Selection struct {
	Pile  klondike.PileID
	Count int
}

// ViewState is everything the board painter needs beyond the game
// itself: where the cursor is, what is picked up, and an active hint.
type ViewState struct {
	Cursor   klondike.PileID
	Selected *Selection
	Hint     *klondike.Move
}

// pileColumn maps a pile to its tableau-aligned column index. The top
// row places stock, waste, a gap, then the four foundations; the
// tableau occupies all seven columns below.
func pileColumn(id klondike.PileID) int {
	switch id.Role() {
	case klondike.RoleStock:
		return 0
	case klondike.RoleWaste:
		return 1
	case klondike.RoleFoundation:
		return 3 + int(id-klondike.FoundationID(0))
	default:
		return int(id - klondike.TableauID(0))
	}
}

func colX(col int) int { return boardLeft + col*colStride }

// cardLabel formats one card as a fixed-width bracketed cell.
func cardLabel(c klondike.Card) (string, core.Color) {
	if !c.FaceUp {
		return "[▒▒▒]", core.ColorGray
	}
	text := c.String()
	for len([]rune(text)) < 3 {
		text = " " + text
	}
	color := core.ColorWhite
	if c.IsRed() {
		color = core.ColorRed
	}
	return "[" + text + "]", color
}

const emptyLabel = "[ · ]"

// DrawBoard paints the full table onto the screen buffer: HUD, the
// stock/waste/foundation row, the seven tableau columns, the cursor
// marker and any selection or hint highlight.
func DrawBoard(g *klondike.Game, v ViewState, s *core.Screen) {
	s.Clear()
	drawHUD(g, s)

	for i := 0; i < klondike.NumTableaus; i++ {
		drawTableau(g, v, klondike.TableauID(i), s)
	}
	drawTopPile(g, v, klondike.PileStock, s)
	drawTopPile(g, v, klondike.PileWaste, s)
	for i := 0; i < klondike.NumFoundations; i++ {
		drawTopPile(g, v, klondike.FoundationID(i), s)
	}

	if v.Cursor.Role() != klondike.RoleTableau {
		s.SetCell(colX(pileColumn(v.Cursor))+2, markerY, '▲', core.ColorYellow)
	}

	if g.State() == klondike.StateWon {
		banner := fmt.Sprintf(" you won in %d moves — press n for a new deal ", g.Moves())
		s.DrawTextCentered(s.Height()/2, banner)
	}
}

func drawHUD(g *klondike.Game, s *core.Screen) {
	left := fmt.Sprintf("KLONDIKE  draw %d  seed %d", g.Rules().DrawCount, g.Seed())
	right := fmt.Sprintf("stock %-2d  waste %-2d  moves %d",
		g.Pile(klondike.PileStock).Len(), g.Pile(klondike.PileWaste).Len(), g.Moves())
	s.DrawTextColored(boardLeft, hudY, left, core.ColorGreen)
	s.DrawText(core.Max(boardLeft, s.Width()-len(right)-1), hudY, right)
	s.DrawHLine(0, hudY+1, s.Width(), '─')
}

// drawTopPile paints a single-cell pile (stock, waste or a foundation)
// at its slot in the top row.
func drawTopPile(g *klondike.Game, v ViewState, id klondike.PileID, s *core.Screen) {
	x := colX(pileColumn(id))
	pile := g.Pile(id)

	label, color := emptyLabel, core.ColorGray
	if top, ok := pile.Top(); ok {
		label, color = cardLabel(top)
	} else if id == klondike.PileStock && !g.Pile(klondike.PileWaste).Empty() {
		label = "[ ⟳ ]" // recycle available
	}

	if c, ok := highlight(v, id, core.Max(pile.Len()-1, 0), pile.Len()); ok {
		color = c
	}
	s.DrawTextColored(x, topRowY, label, color)
}

// drawTableau paints one tableau column top to bottom, one card per
// row, with the cursor marker under the last card.
func drawTableau(g *klondike.Game, v ViewState, id klondike.PileID, s *core.Screen) {
	x := colX(pileColumn(id))
	pile := g.Pile(id)

	if pile.Empty() {
		color := core.ColorGray
		if c, ok := highlight(v, id, 0, 0); ok {
			color = c
		}
		s.DrawTextColored(x, tableauY, emptyLabel, color)
	}
	for i, card := range pile.Cards() {
		label, color := cardLabel(card)
		if c, ok := highlight(v, id, i, pile.Len()); ok {
			color = c
		}
		s.DrawTextColored(x, tableauY+i, label, color)
	}

	if v.Cursor == id {
		y := tableauY + core.Max(pile.Len(), 1)
		s.SetCell(x+2, y, '▲', core.ColorYellow)
	}
}

// highlight decides whether the card at index i of pile id (of total
// cards) gets a selection or hint color. Selection wins over hint.
func highlight(v ViewState, id klondike.PileID, i, total int) (core.Color, bool) {
	if sel := v.Selected; sel != nil && sel.Pile == id && i >= total-sel.Count {
		return core.ColorYellow, true
	}
	if h := v.Hint; h != nil {
		if id == h.Src && i >= total-h.Count {
			return core.ColorCyan, true
		}
		if id == h.Dst && i == total-1 {
			return core.ColorCyan, true
		}
		if id == h.Dst && total == 0 {
			return core.ColorCyan, true
		}
	}
	return core.ColorDefault, false
}
