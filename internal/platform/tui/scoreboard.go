package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sentient-snake/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxRows            = 100 // Max rows to load per view
)

// boardView selects what the scoreboard table shows.
type boardView int

const (
	viewRuns boardView = iota
	viewScores
)

func (v boardView) title() string {
	if v == viewScores {
		return "HIGH SCORES"
	}
	return "RUN HISTORY"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.SwitchView, k.Quit}}
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
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "runs/scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store       *storage.Store
	gameID      string
	view        boardView
	runs        []storage.Run
	scores      []storage.ScoreEntry
	stats       *storage.RunStats
	gameStats   *storage.GameStats
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model for gameID's scores and
// the shared run history.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		gameID:      gameID,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads runs, scores and stats from the store.
func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	var err error
	if m.runs, err = m.store.RecentRuns(maxRows); err != nil {
		m.err = err
	}
	if m.scores, err = m.store.TopScores(m.gameID, maxRows); err != nil {
		m.err = err
	}
	if m.stats, err = m.store.RunStats(); err != nil {
		m.err = err
	}
	if m.gameStats, err = m.store.GetGameStats(m.gameID); err != nil {
		m.err = err
	}
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewScores {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
	}

	reasonWidth := m.width - 60
	if m.showSidebar {
		reasonWidth -= sidebarWidth + 3
	}
	reasonWidth = max(12, min(reasonWidth, 40))

	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Outcome", Width: 10},
		{Title: "Reason", Width: reasonWidth},
		{Title: "Score", Width: 6},
		{Title: "Len", Width: 4},
		{Title: "Lvl", Width: 4},
		{Title: "Ticks", Width: 7},
	}
}

// createTable creates a table for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
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

// updateTableRows fills the table from the loaded data.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewScores:
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = runRow(r)
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runRow(r storage.Run) table.Row {
	reason := r.Reason
	if reason == "" {
		reason = "-"
	}
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		r.Outcome,
		reason,
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.Length),
		fmt.Sprintf("%d", r.Level),
		fmt.Sprintf("%d", r.Ticks),
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			m.view = (m.view + 1) % 2
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.view.title(), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content))
	} else {
		b.WriteString(centerText(content, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the run summary sidebar.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil {
		return "No stats"
	}
	var b strings.Builder
	b.WriteString("Summary\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Runs:       %d\n", m.stats.Runs)
	fmt.Fprintf(&b, "Escaped:    %d\n", m.stats.Escaped)
	fmt.Fprintf(&b, "Game overs: %d\n", m.stats.GameOvers)
	fmt.Fprintf(&b, "Unfinished: %d\n", m.stats.Unfinished)
	fmt.Fprintf(&b, "Best score: %d\n", m.stats.BestScore)
	fmt.Fprintf(&b, "Avg length: %.1f\n", m.stats.AvgLength)
	for _, name := range sortedKeys(m.stats.Scenarios) {
		fmt.Fprintf(&b, "  %s: %d\n", name, m.stats.Scenarios[name])
	}

	if gs := m.gameStats; gs != nil && gs.GamesCount > 0 {
		b.WriteString("\nScores\n")
		b.WriteString(strings.Repeat("-", sidebarWidth-4))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Games:      %d\n", gs.GamesCount)
		fmt.Fprintf(&b, "High:       %d\n", gs.HighScore)
		fmt.Fprintf(&b, "Average:    %.1f\n", gs.AvgScore)
		fmt.Fprintf(&b, "Total:      %d\n", gs.TotalScore)
		if !gs.LastPlayed.IsZero() {
			fmt.Fprintf(&b, "Last:       %s\n", gs.LastPlayed.Format("Jan 02 15:04"))
		}
	}
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return empty.Render("No database available.")
	case m.err != nil:
		return empty.Render("Could not load history:\n" + m.err.Error())
	case m.view == viewRuns && len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nLet a snake loose to start the history!")
	case m.view == viewScores && len(m.scores) == 0:
		return empty.Render("No scores recorded yet.")
	}
	return m.table.View()
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// centerText pads each line of text to center it within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
