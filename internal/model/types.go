// Package model defines shared data structures.
package model

import "time"

// Mode selects the word dictionary family.
type Mode string

// Supported modes.
const (
	ModeNormal      Mode = "normal"
	ModeProgramming Mode = "programming"
)

// GameConfig defines the settings for a play session.
type GameConfig struct {
	Mode     Mode
	Language string
	Player   string
	Sound    bool
	Volume   float64
	Resume   bool
}

// SessionRecord captures a finished play session for persistence.
type SessionRecord struct {
	EndedAt        time.Time
	Player         string
	Mode           Mode
	Language       string
	Score          int
	Level          int
	PeakWPM        float64
	Accuracy       float64
	WordsDestroyed int
	BossesDefeated int
	PerfectWords   int
	DurationMs     int64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Score      int
	Level      int
	PeakWPM    float64
	Accuracy   float64
	DurationMs int64
}

// ScoreRow is one entry of the high-score table.
type ScoreRow struct {
	Rank     int
	Player   string
	Score    int
	Level    int
	PeakWPM  float64
	Mode     Mode
	Language string
	EndedAt  time.Time
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Mode        string
	Language    string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SaveState is the persisted shape of an in-progress session.
// Entity lists (enemies, effects) are never persisted; loading resumes
// the progression counters with empty entity lists.
type SaveState struct {
	Mode                 Mode
	Language             string
	Score                int
	Level                int
	Health               int
	Shield               int
	MissedShips          int
	WordsDestroyed       int
	TotalKeystrokes      int
	CorrectKeystrokes    int
	PeakWPM              float64
	PerfectWords         int
	BossSpawned          bool
	EnemiesDefeatedLevel int
	BossesDefeated       int
	BossDefeatsLifetime  int
	Items                [4]int
}

// Achievement describes an unlockable with a progress threshold.
type Achievement struct {
	ID       string
	Name     string
	Goal     int
	Progress int
	Unlocked bool
}
