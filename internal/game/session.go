package game

import (
	"math/rand"
	"time"

	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/trivia"
	"github.com/halcyonix/typestorm/internal/words"
)

// State is the top-level session phase.
type State int

// Session states. Trivia pre-empts normal gameplay updates; Over freezes
// the session entirely.
const (
	StatePlaying State = iota
	StateTrivia
	StateOver
)

// Session is the aggregate owning all gameplay state for one run.
// All mutation happens on the frame loop goroutine; nothing here is
// safe for concurrent use.
type Session struct {
	Mode     model.Mode
	Language string

	Score  int
	Level  int
	Health int
	Shield int

	MissedShips       int
	WordsDestroyed    int
	TotalKeystrokes   int
	CorrectKeystrokes int
	WPM               float64
	PeakWPM           float64
	Accuracy          float64
	PerfectWords      int
	PerfectStreak     int

	EnemiesDefeatedLevel int
	BossesDefeated       int
	BossDefeatsLifetime  int
	BossSpawned          bool

	TriviaStreak    int
	MaxTriviaStreak int

	Enemies  []*Enemy
	Missiles []*Missile
	Items    Inventory
	Trivia   TriviaSession

	State         State
	CollisionFlag bool

	source *words.Source
	bank   *trivia.Bank
	rnd    *rand.Rand

	frame       int
	clockMs     float64
	lastSpawnMs float64

	active      *Enemy
	lastKeyMs   float64
	hasLastKey  bool
	intervals   []float64
	freezeTicks int

	events []Event
}

// NewSession starts a fresh session at level 1 with full health.
func NewSession(cfg model.GameConfig, source *words.Source, bank *trivia.Bank) *Session {
	return NewSessionWithRand(cfg, source, bank, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSessionWithRand is NewSession with an injected random source for
// deterministic tests.
func NewSessionWithRand(cfg model.GameConfig, source *words.Source, bank *trivia.Bank, rnd *rand.Rand) *Session {
	s := &Session{
		Mode:     cfg.Mode,
		Language: cfg.Language,
		Level:    1,
		Health:   MaxHealth,
		source:   source,
		bank:     bank,
		rnd:      rnd,
	}
	s.Trivia.Selected = -1
	// First enemy appears right away instead of waiting out a full delay.
	s.lastSpawnMs = -spawnDelayBaseMs
	return s
}

// Resume rebuilds a session from a save. Entity lists start empty; only
// progression counters carry over.
func Resume(cfg model.GameConfig, save model.SaveState, source *words.Source, bank *trivia.Bank) *Session {
	s := NewSession(cfg, source, bank)
	s.Mode = save.Mode
	s.Language = save.Language
	s.Score = save.Score
	s.Level = clampI(save.Level, 1, MaxLevel)
	s.Health = clampI(save.Health, 0, MaxHealth)
	s.Shield = clampI(save.Shield, 0, MaxShield)
	s.MissedShips = save.MissedShips
	s.WordsDestroyed = save.WordsDestroyed
	s.TotalKeystrokes = save.TotalKeystrokes
	s.CorrectKeystrokes = save.CorrectKeystrokes
	s.PeakWPM = save.PeakWPM
	s.PerfectWords = save.PerfectWords
	s.EnemiesDefeatedLevel = save.EnemiesDefeatedLevel
	s.BossesDefeated = save.BossesDefeated
	s.BossDefeatsLifetime = save.BossDefeatsLifetime
	s.Items.Counts = save.Items
	// Entity lists start empty, so a persisted boss-spawned flag is
	// cleared to let the scheduler spawn the boss again.
	s.BossSpawned = false
	s.recomputeAccuracy()
	return s
}

// Snapshot captures the persisted shape of the session.
func (s *Session) Snapshot() model.SaveState {
	return model.SaveState{
		Mode:                 s.Mode,
		Language:             s.Language,
		Score:                s.Score,
		Level:                s.Level,
		Health:               s.Health,
		Shield:               s.Shield,
		MissedShips:          s.MissedShips,
		WordsDestroyed:       s.WordsDestroyed,
		TotalKeystrokes:      s.TotalKeystrokes,
		CorrectKeystrokes:    s.CorrectKeystrokes,
		PeakWPM:              s.PeakWPM,
		PerfectWords:         s.PerfectWords,
		BossSpawned:          s.BossSpawned,
		EnemiesDefeatedLevel: s.EnemiesDefeatedLevel,
		BossesDefeated:       s.BossesDefeated,
		BossDefeatsLifetime:  s.BossDefeatsLifetime,
		Items:                s.Items.Counts,
	}
}

// Tick advances the session by exactly one frame: spawn, entity motion,
// bonus timers, escapes, collisions. Trivia and game-over states freeze
// the update pass.
func (s *Session) Tick() {
	if s.State != StatePlaying {
		return
	}
	s.frame++
	s.clockMs += tickMs

	s.tickFreeze()
	s.updateSpawns()
	for _, e := range s.Enemies {
		e.advance()
	}
	s.updateMissiles()
	s.handleEscapes()
	if s.State != StatePlaying {
		return
	}
	s.checkCollisions()
}

// Frame returns the number of ticks simulated so far.
func (s *Session) Frame() int {
	return s.frame
}

// ClockMs returns the session clock in milliseconds.
func (s *Session) ClockMs() float64 {
	return s.clockMs
}

// ActiveTarget returns the enemy currently receiving typed input, or nil.
func (s *Session) ActiveTarget() *Enemy {
	return s.active
}

// FreezeActive reports whether a time-freeze effect is running.
func (s *Session) FreezeActive() bool {
	return s.freezeTicks > 0
}

// FreezeTicksLeft returns the remaining time-freeze ticks.
func (s *Session) FreezeTicksLeft() int {
	return s.freezeTicks
}

// Record summarizes the session for persistence.
func (s *Session) Record(player string, endedAt time.Time) model.SessionRecord {
	return model.SessionRecord{
		EndedAt:        endedAt,
		Player:         player,
		Mode:           s.Mode,
		Language:       s.Language,
		Score:          s.Score,
		Level:          s.Level,
		PeakWPM:        s.PeakWPM,
		Accuracy:       s.Accuracy,
		WordsDestroyed: s.WordsDestroyed,
		BossesDefeated: s.BossesDefeated,
		PerfectWords:   s.PerfectWords,
		DurationMs:     int64(s.clockMs),
	}
}

func (s *Session) liveCount(kind Kind) int {
	n := 0
	for _, e := range s.Enemies {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (s *Session) removeEnemy(target *Enemy) {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e != target {
			kept = append(kept, e)
		}
	}
	s.Enemies = kept
	if s.active == target {
		s.clearActive()
	}
}

func (s *Session) clearActive() {
	if s.active != nil {
		s.active.Active = false
	}
	s.active = nil
}
