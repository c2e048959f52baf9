package game

// Frame timing. All timed behavior derives from the tick counter so a
// session is reproducible by simulating N ticks.
const (
	TicksPerSecond = 60
	tickMs         = 1000.0 / TicksPerSecond
)

// Logical play field. The renderer scales these to terminal cells.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0

	PlayerX = FieldWidth / 2
	PlayerY = 560.0

	spawnY       = -40.0
	spawnMarginX = 40.0
	escapeMargin = 50.0
)

// Bounding boxes, in field units.
const (
	playerBoxWidth  = 48.0
	playerBoxHeight = 32.0
	enemyCharWidth  = 10.0
	enemyBoxHeight  = 20.0
)

// Progression limits.
const (
	MaxHealth = 100
	MaxShield = 100
	MaxLevel  = 100

	enemiesPerLevel = 10
)

// Spawn pacing. Delay interpolates from the base at level 1 down to the
// floor at level 100.
const (
	spawnDelayBaseMs  = 5200.0
	spawnDelayFloorMs = 1800.0
)

// Enemy speed model. A target WPM interpolated across levels yields a
// characters-per-second pace; per-enemy speed follows from the travel
// distance and word length.
const (
	baseWPM      = 20.0
	maxWPM       = 400.0
	charsPerWord = 5.0

	enemyPacingFactor = 0.35

	enemySpeedMin = 0.35
	enemySpeedMax = 4.0

	bossSpeedMin              = 0.12
	bossSpeedMax              = 1.1
	bossModeFactorNormal      = 0.28
	bossModeFactorProgramming = 0.22
	bossLongWordLen           = 40
	bossLongWordFactor        = 0.8
)

// Damage values. Escape and collision damage are independent tuning
// constants, not derived from each other.
const (
	collisionDamageRegular  = 15
	collisionDamageBossBase = 30
	collisionDamageBossSpan = 50
	escapeDamage            = 10
)

// Typing rewards.
const (
	wordHeal          = 5
	wordHealPerfect   = 8
	perfectScoreBonus = 50
	scorePerChar      = 10
	bossScoreFactor   = 3
)

// Boss defeat rewards and the trivia cadence.
const (
	bossHeal        = 40
	bossShieldBonus = 25
	triviaCadence   = 2
)

// Bonus items.
const (
	missileSalvoSize  = 5
	missileSpeed      = 6.0
	missileTurnRate   = 0.12
	missileHitRadius  = 14.0
	shieldItemBonus   = 50
	healItemBonus     = 30
	freezeDurationTks = 5 * TicksPerSecond
)

// WPM rolling window over inter-keystroke intervals. Intervals outside
// the min/max band are dropped as outliers.
const (
	wpmWindow        = 20
	wpmMinSamples    = 5
	wpmMinIntervalMs = 50.0
	wpmMaxIntervalMs = 5000.0
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// levelLerp interpolates linearly from lo at level 1 to hi at level 100.
func levelLerp(lo, hi float64, level int) float64 {
	level = clampI(level, 1, MaxLevel)
	return lo + (hi-lo)*float64(level-1)/float64(MaxLevel-1)
}
