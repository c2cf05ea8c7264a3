package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akulagin/mini-arcade/internal/registry"
	"github.com/akulagin/mini-arcade/internal/storage"
)

// maxScoreboardRows caps how many scores are loaded per game.
const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	scoreboardGameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreboardBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	best       int
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		table:  tbl,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.loadScores()
	return m
}

// currentGame returns the selected game, or an empty GameInfo if none are
// registered.
func (m ScoreboardModel) currentGame() registry.GameInfo {
	if len(m.games) == 0 {
		return registry.GameInfo{}
	}
	return m.games[m.gameCursor]
}

// loadScores refreshes the table rows for the selected game.
func (m *ScoreboardModel) loadScores() {
	m.best = 0
	rows := []table.Row{}

	if m.store != nil && len(m.games) > 0 {
		entries, err := m.store.TopScores(m.currentGame().ID, maxScoreboardRows)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", e.Score),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
		if best, err := m.store.HighScore(m.currentGame().ID); err == nil {
			m.best = best
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadScores()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	game := m.currentGame()
	header := scoreboardTitleStyle.Render("High Scores") + "  " +
		scoreboardGameStyle.Render(fmt.Sprintf("%s (%d/%d)", game.Title, m.gameCursor+1, len(m.games)))

	best := ""
	if m.best > 0 {
		best = scoreboardBestStyle.Render(fmt.Sprintf("Best: %d", m.best))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.table.View(),
		best,
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive scoreboard until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
