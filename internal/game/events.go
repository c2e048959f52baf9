// Package game implements the typestorm gameplay core: enemy lifecycle,
// typing input routing, collision and damage resolution, bonus items, and
// the boss/trivia protocol. The core is frame-driven and deterministic;
// presentation and audio consume its event queue once per frame.
package game

// SoundCue identifies a fire-and-forget sound effect.
type SoundCue int

// Sound cues emitted by the core.
const (
	CueType SoundCue = iota
	CueCorrect
	CueWrong
	CueDestroy
	CueBoss
	CueLevel
	CueCollision
	CueAchievement
	CueMissile
)

// ExplosionSize selects the visual scale of an explosion effect.
type ExplosionSize int

// Explosion sizes.
const (
	ExplosionSmall ExplosionSize = iota
	ExplosionNormal
	ExplosionLarge
)

// EventKind tags an entry of the per-frame event queue.
type EventKind int

// Event kinds.
const (
	EventSound EventKind = iota
	EventLaser
	EventExplosion
	EventWrongKey
	EventEnemyDestroyed
	EventEnemyEscaped
	EventBossDefeated
	EventLevelUp
	EventCollision
	EventTriviaOpened
	EventNotify
	EventGameOver
)

// Event is one tagged entry of the frame event queue. Only the fields
// relevant to the kind are set.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Size  ExplosionSize
	Cue   SoundCue
	Text  string
	Level int
}

func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
}

func (s *Session) emitSound(cue SoundCue) {
	s.emit(Event{Kind: EventSound, Cue: cue})
}

// DrainEvents returns all events queued since the last drain and clears
// the queue. Called once per frame by the presentation layer.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}
