// Package tui provides the Bubble Tea play interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyonix/typestorm/internal/game"
	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/store"
)

// CuePlayer plays fire-and-forget sound cues. A nil player is silent.
type CuePlayer interface {
	Play(cue game.SoundCue)
}

// tickMsg drives the fixed-rate game loop.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/game.TicksPerSecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea play UI around a game session.
type Model struct {
	cfg     model.GameConfig
	session *game.Session
	store   *store.Store
	sound   CuePlayer

	width  int
	height int

	paused    bool
	quitting  bool
	effects   []effect
	notice    string
	noticeTTL int

	nameInput  textinput.Model
	saved      bool
	finalRank  int
	newUnlocks []model.Achievement
}

// NewModel wraps a session in the play UI. The store may be nil, in
// which case nothing is persisted.
func NewModel(cfg model.GameConfig, session *game.Session, st *store.Store, sound CuePlayer) *Model {
	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 24
	input.Width = 24
	if cfg.Player != "" {
		input.SetValue(cfg.Player)
	}
	input.Focus()
	return &Model{
		cfg:       cfg,
		session:   session,
		store:     st,
		sound:     sound,
		nameInput: input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.quitting {
			return m, tea.Quit
		}
		if !m.paused {
			m.session.Tick()
			m.drainEvents()
		}
		m.tickEffects()
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.session.State {
	case game.StateOver:
		return m.handleGameOverKey(msg)
	case game.StateTrivia:
		m.handleTriviaKey(msg)
		return m, nil
	}

	if m.paused {
		m.handlePausedKey(msg)
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.paused = true
	case tea.KeyLeft:
		m.session.CycleTarget(-1)
	case tea.KeyRight:
		m.session.CycleTarget(1)
	case tea.KeyUp:
		m.session.CycleItem(1)
	case tea.KeyDown:
		if err := m.session.ActivateSelected(); err != nil {
			m.notice = err.Error()
			m.noticeTTL = noticeTTL
		}
		m.drainEvents()
	case tea.KeySpace:
		m.session.Keystroke(' ')
		m.drainEvents()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.session.Keystroke(r)
		}
		m.drainEvents()
	}
	return m, nil
}

func (m *Model) handlePausedKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "r":
		m.paused = false
	case "q":
		m.saveSnapshot()
		m.quitting = true
	}
}

func (m *Model) handleTriviaKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "1", "2", "3":
		m.session.TriviaSelect(int(msg.String()[0] - '1'))
	case "up":
		if sel := m.session.Trivia.Selected; sel > 0 {
			m.session.TriviaSelect(sel - 1)
		}
	case "down":
		sel := m.session.Trivia.Selected
		if sel < 0 {
			sel = -1
		}
		m.session.TriviaSelect(sel + 1)
	case "enter":
		m.session.TriviaConfirm()
		m.drainEvents()
	}
}

func (m *Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.saved {
		if msg.Type == tea.KeyEnter {
			m.persistResult()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q", "esc", "enter":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// drainEvents converts core events into sound and visuals.
func (m *Model) drainEvents() {
	for _, ev := range m.session.DrainEvents() {
		if ev.Kind == game.EventSound && m.sound != nil {
			m.sound.Play(ev.Cue)
			continue
		}
		m.addEffect(ev)
	}
}

// saveSnapshot persists the in-progress session into the save slot.
func (m *Model) saveSnapshot() {
	if m.store == nil || m.session.State == game.StateOver {
		return
	}
	if err := m.store.SaveGame(context.Background(), m.session.Snapshot()); err != nil {
		logErrf("failed to save game: %v\n", err)
	}
}

// persistResult stores the finished session, updates achievements, and
// clears the save slot.
func (m *Model) persistResult() {
	m.saved = true
	if m.store == nil {
		return
	}
	ctx := context.Background()
	player := m.nameInput.Value()
	if player == "" {
		player = "anonymous"
	}
	rec := m.session.Record(player, time.Now())
	if _, err := m.store.InsertSession(ctx, rec); err != nil {
		logErrf("failed to save session: %v\n", err)
		return
	}
	rank, err := m.store.ScoreRank(ctx, rec.Score)
	if err != nil {
		logErrf("failed to compute rank: %v\n", err)
	} else {
		m.finalRank = rank
	}
	unlocked, err := m.store.UpdateAchievements(ctx, rec)
	if err != nil {
		logErrf("failed to update achievements: %v\n", err)
	}
	m.newUnlocks = unlocked
	if len(unlocked) > 0 && m.sound != nil {
		m.sound.Play(game.CueAchievement)
	}
	if err := m.store.ClearSave(ctx); err != nil {
		logErrf("failed to clear save slot: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
