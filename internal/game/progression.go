package game

import "github.com/halcyonix/typestorm/internal/words"

// completeWord resolves a fully typed word: health restore, perfect
// bonuses, then the shared destruction path.
func (s *Session) completeWord(e *Enemy) {
	if e.Mistakes == 0 {
		s.heal(wordHealPerfect)
		s.PerfectWords++
		s.PerfectStreak++
		s.Score += perfectScoreBonus
	} else {
		s.heal(wordHeal)
		s.PerfectStreak = 0
	}
	s.emitSound(CueCorrect)
	s.destroyEnemy(e)
}

// destroyEnemy removes the enemy with full credit: explosion effects,
// score, and the boss defeat protocol when applicable. Collisions and
// escapes do not come through here.
func (s *Session) destroyEnemy(e *Enemy) {
	s.removeEnemy(e)
	s.WordsDestroyed++

	award := e.Len() * scorePerChar * s.Level
	if e.IsBoss() {
		award *= bossScoreFactor
		s.emit(Event{Kind: EventExplosion, X: e.X - 20, Y: e.Y, Size: ExplosionLarge})
		s.emit(Event{Kind: EventExplosion, X: e.X + 20, Y: e.Y - 10, Size: ExplosionLarge})
		s.emit(Event{Kind: EventExplosion, X: e.X, Y: e.Y + 15, Size: ExplosionLarge})
	} else {
		s.emit(Event{Kind: EventExplosion, X: e.X, Y: e.Y, Size: ExplosionNormal})
	}
	s.Score += award
	s.emitSound(CueDestroy)
	s.emit(Event{Kind: EventEnemyDestroyed, X: e.X, Y: e.Y})

	if e.IsBoss() {
		s.bossDefeated(e)
		return
	}

	s.EnemiesDefeatedLevel++
	if s.EnemiesDefeatedLevel >= enemiesPerLevel && s.Level < MaxLevel {
		s.advanceLevel()
	}
	if words.IsBossLevel(s.Level) && !s.BossSpawned {
		s.spawnBoss()
	}
}

// bossDefeated applies the level-advance side effects of a boss kill and
// opens the trivia gate on the defeat cadence.
func (s *Session) bossDefeated(e *Enemy) {
	wasFullHealth := s.Health == MaxHealth
	if s.Level < MaxLevel {
		s.Level++
	}
	s.heal(bossHeal)
	if wasFullHealth {
		s.addShield(bossShieldBonus)
	}
	s.BossesDefeated++
	s.BossDefeatsLifetime++
	s.EnemiesDefeatedLevel = 0
	s.BossSpawned = false
	s.emitSound(CueLevel)
	s.emit(Event{Kind: EventBossDefeated, X: e.X, Y: e.Y, Level: s.Level})
	s.emit(Event{Kind: EventLevelUp, Level: s.Level})

	if s.BossDefeatsLifetime%triviaCadence == 0 {
		s.openTrivia()
	}
}

func (s *Session) advanceLevel() {
	s.Level++
	s.EnemiesDefeatedLevel = 0
	s.emitSound(CueLevel)
	s.emit(Event{Kind: EventLevelUp, Level: s.Level})
}

// applyDamage drains the shield buffer before health. Health reaching
// zero ends the session.
func (s *Session) applyDamage(damage int) {
	absorbed := damage
	if absorbed > s.Shield {
		absorbed = s.Shield
	}
	s.Shield -= absorbed
	remaining := damage - absorbed
	s.Health -= remaining
	if s.Health <= 0 {
		s.Health = 0
		s.endSession()
	}
}

func (s *Session) heal(amount int) {
	s.Health = clampI(s.Health+amount, 0, MaxHealth)
}

func (s *Session) addShield(amount int) {
	s.Shield = clampI(s.Shield+amount, 0, MaxShield)
}

func (s *Session) endSession() {
	if s.State == StateOver {
		return
	}
	s.State = StateOver
	s.emit(Event{Kind: EventGameOver})
}
