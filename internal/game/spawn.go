package game

import "github.com/halcyonix/typestorm/internal/words"

// SpawnDelayMs returns the inter-spawn delay for a level, interpolating
// from the base delay at level 1 down to the floor at level 100.
func SpawnDelayMs(level int) float64 {
	level = clampI(level, 1, MaxLevel)
	delay := spawnDelayBaseMs - (spawnDelayBaseMs-spawnDelayFloorMs)*float64(level-1)/float64(MaxLevel-1)
	if delay < spawnDelayFloorMs {
		delay = spawnDelayFloorMs
	}
	return delay
}

// enemyCap limits the live non-boss population. The cap drops while a
// boss is alive to keep boss fights manageable.
func enemyCap(level int, bossAlive bool) int {
	if bossAlive {
		limit := 2 + level/6
		if limit > 5 {
			limit = 5
		}
		return limit
	}
	limit := 6 + level/4
	if limit > 10 {
		limit = 10
	}
	return limit
}

// updateSpawns runs once per tick: the boss trigger fires independently
// of the regular timer, and at most one regular enemy spawns per cycle.
func (s *Session) updateSpawns() {
	if words.IsBossLevel(s.Level) && !s.BossSpawned {
		s.spawnBoss()
	}

	bossAlive := s.liveCount(KindBoss) > 0
	if s.liveCount(KindRegular) >= enemyCap(s.Level, bossAlive) {
		return
	}
	if s.clockMs-s.lastSpawnMs < SpawnDelayMs(s.Level) {
		return
	}
	word, ok := s.source.Pick(s.Level)
	if !ok {
		// Empty pool: skip this spawn cycle, retry next tick.
		return
	}
	s.lastSpawnMs = s.clockMs
	e := newEnemy(word, s.spawnX(), spawnY, PlayerX, PlayerY, enemySpeed(word, s.Level), s.Level, KindRegular)
	if s.freezeTicks > 0 {
		e.Frozen = true
	}
	s.Enemies = append(s.Enemies, e)
}

// spawnBoss creates the level boss. Existing regular enemies are kept;
// clearing them would soften the fight. Idempotent within a frame via
// the boss-spawned flag.
func (s *Session) spawnBoss() {
	word, ok := s.source.BossWord(s.Level)
	if !ok {
		return
	}
	s.BossSpawned = true
	b := newEnemy(word, s.spawnX(), spawnY, PlayerX, PlayerY, bossSpeed(word, s.Level, s.Mode), s.Level, KindBoss)
	if s.freezeTicks > 0 {
		b.Frozen = true
	}
	s.Enemies = append(s.Enemies, b)
	s.emitSound(CueBoss)
}

func (s *Session) spawnX() float64 {
	return spawnMarginX + s.rnd.Float64()*(FieldWidth-2*spawnMarginX)
}
