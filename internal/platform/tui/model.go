package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klondike/internal/core"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

// eventTap buffers engine events between intents. It is shared by
// pointer so Bubble Tea's value-copied models all see the same stream.
type eventTap struct {
	events []klondike.Event
}

func (t *eventTap) collect(ev klondike.Event) {
	t.events = append(t.events, ev)
}

func (t *eventTap) drain() []klondike.Event {
	evs := t.events
	t.events = nil
	return evs
}

// Model is the Bubble Tea model for a single Klondike table.
type Model struct {
	game   *klondike.Game
	screen *core.Screen
	store  *storage.Store
	keys   KeyMap
	help   help.Model
	tap    *eventTap

	cursor   klondike.PileID
	selected *Selection
	hint     *klondike.Move
	status   string

	savePath    string
	startedAt   time.Time
	resultSaved bool
	quitting    bool
}

// NewModel creates a model for the given (already dealt) game. An empty
// savePath disables ctrl+s, a nil store disables result recording.
func NewModel(g *klondike.Game, store *storage.Store, savePath string) Model {
	tap := &eventTap{}
	g.Subscribe(tap.collect)

	return Model{
		game:      g,
		screen:    core.NewScreen(BoardWidth, BoardHeight),
		store:     store,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		tap:       tap,
		cursor:    klondike.PileStock,
		savePath:  savePath,
		startedAt: time.Now(),
	}
}

// Init implements tea.Model. The table is turn-based, no tick loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// Status and help footer take the two rows under the board.
		w := core.Max(msg.Width, BoardWidth)
		h := core.Max(msg.Height-2, BoardHeight)
		m.screen.Resize(w, h)
		return m, nil
	}

	return m, nil
}

// handleKey translates one key press into an engine intent.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.game.State() == klondike.StatePlaying && m.game.Moves() > 0 {
			m.recordResult(false)
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor + klondike.NumPiles - 1) % klondike.NumPiles
		m.hint = nil

	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % klondike.NumPiles
		m.hint = nil

	case key.Matches(msg, m.keys.Up):
		m.resizeSelection(1)

	case key.Matches(msg, m.keys.Down):
		m.resizeSelection(-1)

	case key.Matches(msg, m.keys.Select):
		m.confirm()

	case key.Matches(msg, m.keys.Cancel):
		m.selected = nil
		m.hint = nil
		m.status = ""

	case key.Matches(msg, m.keys.Draw):
		m.hint = nil
		m.game.DrawStock()
		m.applyEvents(m.tap.drain())

	case key.Matches(msg, m.keys.Undo):
		m.selected = nil
		m.hint = nil
		m.game.Undo()
		m.applyEvents(m.tap.drain())

	case key.Matches(msg, m.keys.Hint):
		m.hint = m.game.Hint()
		m.applyEvents(m.tap.drain())

	case key.Matches(msg, m.keys.Foundation):
		m.sendToFoundation()

	case key.Matches(msg, m.keys.NewGame):
		m.game.Deal(time.Now().UnixNano())
		m.tap.drain()
		m.selected = nil
		m.hint = nil
		m.startedAt = time.Now()
		m.resultSaved = false
		m.status = fmt.Sprintf("new deal, seed %d", m.game.Seed())

	case key.Matches(msg, m.keys.Save):
		m.saveGame()
	}

	return m, nil
}

// confirm is enter/space: draw on the stock, pick up the cursor pile's
// top card, or drop the picked-up run onto the cursor pile.
func (m *Model) confirm() {
	m.hint = nil

	if m.selected == nil {
		if m.cursor == klondike.PileStock {
			m.game.DrawStock()
			m.applyEvents(m.tap.drain())
			return
		}
		if m.game.Pile(m.cursor).Empty() {
			m.status = "nothing to pick up"
			return
		}
		m.selected = &Selection{Pile: m.cursor, Count: 1}
		m.status = ""
		return
	}

	if m.cursor == m.selected.Pile {
		m.selected = nil
		return
	}

	if m.game.TryMove(m.selected.Pile, m.cursor, m.selected.Count) == klondike.Legal {
		m.selected = nil
	}
	m.applyEvents(m.tap.drain())
}

// resizeSelection grows or shrinks a picked-up tableau run, clamped to
// the exposed face-up run of the source column.
func (m *Model) resizeSelection(delta int) {
	sel := m.selected
	if sel == nil || sel.Pile.Role() != klondike.RoleTableau {
		return
	}
	max := m.game.Pile(sel.Pile).ExposedRun()
	sel.Count = core.Min(core.Max(sel.Count+delta, 1), core.Max(max, 1))
}

// sendToFoundation tries the cursor pile's top card against each
// foundation. Only the overall outcome is reported, not the individual
// rejections.
func (m *Model) sendToFoundation() {
	m.hint = nil
	src := m.cursor
	if src.Role() == klondike.RoleStock || src.Role() == klondike.RoleFoundation {
		m.status = "no card to send from here"
		return
	}

	moved := false
	for i := 0; i < klondike.NumFoundations && !moved; i++ {
		moved = m.game.TryMove(src, klondike.FoundationID(i), 1) == klondike.Legal
	}
	evs := m.tap.drain()
	if !moved {
		m.status = "no foundation accepts that card"
		return
	}
	if m.selected != nil && m.selected.Pile == src {
		m.selected = nil
	}
	for _, ev := range evs {
		if _, rejected := ev.(klondike.MoveRejected); rejected {
			continue
		}
		m.applyEvents([]klondike.Event{ev})
	}
}

// applyEvents turns engine events into status text and side effects.
func (m *Model) applyEvents(evs []klondike.Event) {
	for _, ev := range evs {
		switch ev := ev.(type) {
		case klondike.StateChanged:
			m.status = ""

		case klondike.MoveRejected:
			m.status = fmt.Sprintf("cannot move: %s", ev.Reason)

		case klondike.GameWon:
			m.status = fmt.Sprintf("you won in %d moves", m.game.Moves())
			m.recordResult(true)

		case klondike.NothingToDo:
			m.status = "nothing to " + ev.Op

		case klondike.HintResult:
			if ev.Suggestion == nil {
				m.status = "no moves found, try drawing or undoing"
			} else {
				m.status = hintText(*ev.Suggestion)
			}
		}
	}
}

func hintText(mv klondike.Move) string {
	if mv.Src == klondike.PileStock && mv.Dst == klondike.PileWaste {
		return "hint: draw from the stock"
	}
	if mv.Count == 1 {
		return fmt.Sprintf("hint: move the top of %s to %s", mv.Src, mv.Dst)
	}
	return fmt.Sprintf("hint: move %d cards from %s to %s", mv.Count, mv.Src, mv.Dst)
}

// recordResult stores the session outcome once per deal.
func (m *Model) recordResult(won bool) {
	if m.store == nil || m.resultSaved {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.Result{
		Seed:      m.game.Seed(),
		DrawCount: m.game.Rules().DrawCount,
		Moves:     m.game.Moves(),
		Undos:     m.game.Undos(),
		Won:       won,
		Duration:  int(time.Since(m.startedAt).Seconds()),
	})
	m.resultSaved = true
}

// saveGame writes the session to the configured save path.
func (m *Model) saveGame() {
	if m.savePath == "" {
		m.status = "saving is disabled for this session"
		return
	}
	if err := m.game.SaveFile(m.savePath); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = "saved to " + m.savePath
}

// View renders the board, the status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := ViewState{Cursor: m.cursor, Selected: m.selected, Hint: m.hint}
	DrawBoard(m.game, v, m.screen)

	return RenderScreen(m.screen) + "\n " + m.status + "\n " + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(g *klondike.Game, store *storage.Store, savePath string) error {
	p := tea.NewProgram(
		NewModel(g, store, savePath),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
