package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/delhi-dash/internal/registry"
	"github.com/vovakirdan/delhi-dash/internal/storage"
)

const (
	minWidthForPanel = 80 // Records panel sits beside the table from this width
	panelWidth       = 26
	maxScores        = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = boardDimStyle.Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("130")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the run history of each mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) widePanel() bool {
	return m.width >= minWidthForPanel
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Coins", Width: 6},
		{Title: "Dist", Width: 7},
		{Title: "Played", Width: 12},
	}

	height := m.height - 9 // Title, tabs, frame and help
	if !m.widePanel() {
		height -= 3
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the history of the selected mode. Store errors show as an
// empty board.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.cursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		score := fmt.Sprintf("%d", s.Score)
		if s.NewBest {
			score += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			score,
			fmt.Sprintf("%d", s.Coins),
			fmt.Sprintf("%dm", s.Distance),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) shift(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES"
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle.Render(title), len(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.renderTable())
	records := boardFrameStyle.Width(panelWidth).Render(m.renderRecords())
	if m.widePanel() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, " ", records))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, board, records))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(shortTitle(g.Title))
		} else {
			tabs[i] = tabStyle.Render(shortTitle(g.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 2).
			Render("No runs recorded yet.\nDodge a few rickshaws first!")
	}
	return m.table.View()
}

// renderRecords summarizes every recorded run of the selected mode.
func (m ScoreboardModel) renderRecords() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardDimStyle.Render("Records\n\n-")
	}
	rows := []string{
		boardTitleStyle.Render("Records"),
		"",
		fmt.Sprintf("Best     %d", m.stats.HighScore),
		fmt.Sprintf("Runs     %d", m.stats.GamesCount),
		fmt.Sprintf("Average  %.0f", m.stats.AvgScore),
		fmt.Sprintf("Coins    %d", m.stats.TotalCoins),
		fmt.Sprintf("Longest  %dm", m.stats.LongestRun),
		"",
		boardDimStyle.Render("Last run " + m.stats.LastPlayed.Format("Jan 02 15:04")),
	}
	return strings.Join(rows, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// shortTitle drops the shared product prefix from a mode title.
func shortTitle(title string) string {
	if short := strings.TrimPrefix(title, "Delhi Dash: "); short != title {
		return short
	}
	return "Normal"
}
