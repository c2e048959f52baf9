// Package scoresui provides the Bubble Tea score and achievement browser.
package scoresui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/stats"
	"github.com/halcyonix/typestorm/internal/store"
)

const (
	tabScores = iota
	tabProgress
	tabAchievements
)

const scoreLimit = 50

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	unlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FBF7F"))
)

// Model implements the score browser UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	tabs      []string
	activeTab int

	scoreTable       table.Model
	achievementTable table.Model
	progress         viewport.Model

	scores       []model.ScoreRow
	sessions     []model.SessionAggregate
	achievements []model.Achievement
	errMsg       string

	width  int
	height int
}

// NewModel constructs the score browser and loads its data.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		tabs:  []string{"High Scores", "Progress", "Achievements"},
	}
	m.scoreTable = buildScoreTable(nil, 1)
	m.achievementTable = buildAchievementTable(nil, 1)
	m.progress = viewport.New(0, 0)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "R":
			m.refresh()
			m.layout()
			return m, nil
		}
		return m.updateActive(msg)
	}
	return m, nil
}

func (m *Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabScores:
		m.scoreTable, cmd = m.scoreTable.Update(msg)
	case tabAchievements:
		m.achievementTable, cmd = m.achievementTable.Update(msg)
	default:
		m.progress, cmd = m.progress.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs()
	footer := footerStyle.Render("←/→ switch · R reload · q quit")
	if m.errMsg != "" {
		footer = errorStyle.Render(m.errMsg)
	}
	var body string
	switch m.activeTab {
	case tabScores:
		body = m.scoreTable.View()
	case tabAchievements:
		body = m.achievementTable.View()
	default:
		body = m.progress.View()
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) moveTab(dir int) {
	m.activeTab = (m.activeTab + dir + len(m.tabs)) % len(m.tabs)
	switch m.activeTab {
	case tabScores:
		m.scoreTable.Focus()
		m.achievementTable.Blur()
	case tabAchievements:
		m.achievementTable.Focus()
		m.scoreTable.Blur()
	default:
		m.scoreTable.Blur()
		m.achievementTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	rendered := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			rendered = append(rendered, activeNavStyle.Render(tab))
		} else {
			rendered = append(rendered, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) refresh() {
	ctx := context.Background()
	m.errMsg = ""

	scores, err := m.store.TopScores(ctx, m.cfg.Mode, m.cfg.Language, scoreLimit)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load scores: %v", err)
		return
	}
	sessions, err := m.store.ListSessions(ctx, m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load sessions: %v", err)
		return
	}
	achievements, err := m.store.ListAchievements(ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load achievements: %v", err)
		return
	}
	m.scores = scores
	m.sessions = sessions
	m.achievements = achievements
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := m.height - lipgloss.Height(m.renderTabs()) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.scoreTable = buildScoreTable(m.scores, bodyHeight)
	m.scoreTable.SetWidth(m.width)
	m.achievementTable = buildAchievementTable(m.achievements, bodyHeight)
	m.achievementTable.SetWidth(m.width)

	m.progress.Width = m.width
	m.progress.Height = bodyHeight
	m.progress.SetContent(m.renderProgress())
	if m.activeTab == tabScores {
		m.scoreTable.Focus()
	}
	if m.activeTab == tabAchievements {
		m.achievementTable.Focus()
	}
}

func (m *Model) renderProgress() string {
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, m.sessions); err != nil {
		return errorStyle.Render(err.Error())
	}
	window := m.cfg.CurveWindow
	if window <= 0 {
		window = 5
	}
	if err := stats.RenderCurves(&buf, m.sessions, window, m.width, 10, false); err != nil {
		return errorStyle.Render(err.Error())
	}
	return buf.String()
}

func buildScoreTable(scores []model.ScoreRow, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Peak WPM", Width: 9},
		{Title: "Mode", Width: 12},
		{Title: "Lang", Width: 10},
		{Title: "Date", Width: 10},
	}
	rows := make([]table.Row, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", s.Rank),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			fmt.Sprintf("%.1f", s.PeakWPM),
			string(s.Mode),
			s.Language,
			s.EndedAt.Format("2006-01-02"),
		})
	}
	return newTable(columns, rows, height)
}

func buildAchievementTable(achievements []model.Achievement, height int) table.Model {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Achievement", Width: 22},
		{Title: "Progress", Width: 12},
	}
	rows := make([]table.Row, 0, len(achievements))
	for _, a := range achievements {
		mark := ""
		if a.Unlocked {
			mark = unlockedStyle.Render("*")
		}
		progress := a.Progress
		if progress > a.Goal {
			progress = a.Goal
		}
		rows = append(rows, table.Row{
			mark,
			a.Name,
			fmt.Sprintf("%d/%d", progress, a.Goal),
		})
	}
	return newTable(columns, rows, height)
}

func newTable(columns []table.Column, rows []table.Row, height int) table.Model {
	if height < 2 {
		height = 2
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height-1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(true)
	t.SetStyles(styles)
	return t
}
