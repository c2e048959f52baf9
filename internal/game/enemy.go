package game

import (
	"math"

	"github.com/halcyonix/typestorm/internal/model"
)

// Kind discriminates regular enemies from bosses.
type Kind int

// Entity kinds.
const (
	KindRegular Kind = iota
	KindBoss
)

// Enemy is a word-carrying hostile entity moving toward the player.
// The typed prefix is always a strict prefix of the word.
type Enemy struct {
	Word  string
	runes []rune
	Typed int

	X, Y   float64
	dirX   float64
	dirY   float64
	Speed  float64
	Frozen bool

	Active     bool
	Kind       Kind
	SpawnLevel int
	Mistakes   int
}

// newEnemy creates an enemy at the spawn position aimed at the target.
// The heading is fixed at spawn time; enemies never re-aim in flight.
func newEnemy(word string, x, y, targetX, targetY, speed float64, level int, kind Kind) *Enemy {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dx, dy, dist = 0, 1, 1
	}
	return &Enemy{
		Word:       word,
		runes:      []rune(word),
		X:          x,
		Y:          y,
		dirX:       dx / dist,
		dirY:       dy / dist,
		Speed:      speed,
		Kind:       kind,
		SpawnLevel: level,
	}
}

// IsBoss reports whether the enemy is a boss.
func (e *Enemy) IsBoss() bool {
	return e.Kind == KindBoss
}

// Len returns the word length in runes.
func (e *Enemy) Len() int {
	return len(e.runes)
}

// NextRune returns the next expected rune, or false when the word is done.
func (e *Enemy) NextRune() (rune, bool) {
	if e.Typed >= len(e.runes) {
		return 0, false
	}
	return e.runes[e.Typed], true
}

// Complete reports whether the full word has been typed.
func (e *Enemy) Complete() bool {
	return e.Typed == len(e.runes)
}

// TypedPrefix returns the typed portion of the word.
func (e *Enemy) TypedPrefix() string {
	return string(e.runes[:e.Typed])
}

// Remaining returns the untyped portion of the word.
func (e *Enemy) Remaining() string {
	return string(e.runes[e.Typed:])
}

// advance moves the enemy one tick along its fixed heading.
func (e *Enemy) advance() {
	if e.Frozen {
		return
	}
	e.X += e.dirX * e.Speed
	e.Y += e.dirY * e.Speed
}

// escaped reports whether the enemy has passed below the visible area.
func (e *Enemy) escaped() bool {
	return e.Y > FieldHeight+escapeMargin
}

// box returns the enemy's bounding box (x1, y1, x2, y2), centered on its
// position and sized by the word it carries.
func (e *Enemy) box() (float64, float64, float64, float64) {
	w := float64(len(e.runes)) * enemyCharWidth
	if w < enemyCharWidth {
		w = enemyCharWidth
	}
	return e.X - w/2, e.Y - enemyBoxHeight/2, e.X + w/2, e.Y + enemyBoxHeight/2
}

// overlapsPlayer reports whether the enemy's box intersects the player's.
func (e *Enemy) overlapsPlayer() bool {
	ex1, ey1, ex2, ey2 := e.box()
	px1 := PlayerX - playerBoxWidth/2
	py1 := PlayerY - playerBoxHeight/2
	px2 := PlayerX + playerBoxWidth/2
	py2 := PlayerY + playerBoxHeight/2
	return ex1 < px2 && ex2 > px1 && ey1 < py2 && ey2 > py1
}

// targetWPM returns the pace the level asks of the player.
func targetWPM(level int) float64 {
	return levelLerp(baseWPM, maxWPM, level)
}

// speedBaseline derives the per-tick pace for a word: time to cross the
// field tracks the time a player typing at the level's target WPM needs
// to finish the word, stretched by the pacing factor.
func speedBaseline(word string, level int) float64 {
	cps := targetWPM(level) * charsPerWord / 60.0
	n := float64(len([]rune(word)))
	if n < 1 {
		n = 1
	}
	travel := PlayerY - spawnY
	ticksToType := n / cps * TicksPerSecond
	return travel / ticksToType * enemyPacingFactor
}

// enemySpeed is the baseline scaled by a level multiplier.
func enemySpeed(word string, level int) float64 {
	speed := speedBaseline(word, level) * levelLerp(1.0, 1.3, level)
	return clampF(speed, enemySpeedMin, enemySpeedMax)
}

// bossSpeed is the same baseline scaled far down so the boss stays
// engageable despite its word count.
func bossSpeed(word string, level int, mode model.Mode) float64 {
	modeFactor := bossModeFactorNormal
	if mode == model.ModeProgramming {
		modeFactor = bossModeFactorProgramming
	}
	lenFactor := 1.0
	if len([]rune(word)) > bossLongWordLen {
		lenFactor = bossLongWordFactor
	}
	speed := speedBaseline(word, level) * modeFactor * lenFactor * levelLerp(0.85, 1.35, level)
	return clampF(speed, bossSpeedMin, bossSpeedMax)
}
