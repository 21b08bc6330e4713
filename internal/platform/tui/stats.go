package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-klondike/internal/storage"
)

// maxResults is how many recent games the stats screen loads.
const maxResults = 100

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "draw 1/3"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the results screen: aggregate
// stats per draw count on top, the recent games underneath.
type StatsModel struct {
	store     *storage.Store
	drawCount int
	stats     storage.Stats
	results   []storage.Result
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
}

// NewStatsModel creates a stats model showing draw-1 games first.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	m := StatsModel{
		store:     store,
		drawCount: 1,
		keys:      DefaultStatsKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates the results table with fixed columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Seed", Width: 14},
		{Title: "Moves", Width: 6},
		{Title: "Undos", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Result", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-7), // Leave room for header, stats line and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the aggregate stats and the recent-games rows for the
// current draw count.
func (m *StatsModel) load() {
	m.stats = storage.Stats{DrawCount: m.drawCount}
	m.results = nil
	if m.store != nil {
		if stats, err := m.store.StatsFor(m.drawCount); err == nil {
			m.stats = stats
		}
		if results, err := m.store.RecentResults(maxResults); err == nil {
			m.results = results
		}
	}

	rows := make([]table.Row, 0, len(m.results))
	for _, r := range m.results {
		if r.DrawCount != m.drawCount {
			continue
		}
		outcome := "loss"
		if r.Won {
			outcome = "win"
		}
		rows = append(rows, table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Undos),
			formatDuration(r.Duration),
			outcome,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.drawCount == 1 {
				m.drawCount = 3
			} else {
				m.drawCount = 1
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("KLONDIKE RESULTS — draw %d", m.drawCount)))
	b.WriteString("\n")

	summary := fmt.Sprintf("played %d  won %d  win rate %.0f%%",
		m.stats.Played, m.stats.Won, m.stats.WinRate()*100)
	if m.stats.BestMoves > 0 {
		summary += fmt.Sprintf("  best %d moves  fastest %s",
			m.stats.BestMoves, formatDuration(m.stats.FastestWin))
	}
	if m.stats.Streak > 1 {
		summary += fmt.Sprintf("  streak %d", m.stats.Streak)
	}
	b.WriteString(summary)
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunStats starts the Bubble Tea program for the stats screen.
func RunStats(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
