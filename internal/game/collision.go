package game

// checkCollisions resolves at most one player collision per frame.
// Skipped entirely while the time-freeze shield is active.
func (s *Session) checkCollisions() {
	if s.freezeTicks > 0 {
		return
	}
	for _, e := range s.Enemies {
		if !e.overlapsPlayer() {
			continue
		}
		damage := collisionDamageRegular
		size := ExplosionNormal
		if e.IsBoss() {
			// Scaled by the boss's own spawn level, not the current level.
			damage = collisionDamageBossBase + collisionDamageBossSpan*(e.SpawnLevel-1)/(MaxLevel-1)
			size = ExplosionLarge
			s.BossSpawned = false
		}
		s.emit(Event{Kind: EventExplosion, X: e.X, Y: e.Y, Size: size})
		s.emit(Event{Kind: EventExplosion, X: PlayerX, Y: PlayerY, Size: ExplosionSmall})
		s.removeEnemy(e)
		s.CollisionFlag = true
		s.emit(Event{Kind: EventCollision, X: e.X, Y: e.Y})
		s.emitSound(CueCollision)
		s.applyDamage(damage)
		return
	}
}

// handleEscapes removes enemies that passed below the visible area:
// fixed damage, no explosion, no score.
func (s *Session) handleEscapes() {
	var escaped []*Enemy
	for _, e := range s.Enemies {
		if e.escaped() {
			escaped = append(escaped, e)
		}
	}
	for _, e := range escaped {
		if e.IsBoss() {
			s.BossSpawned = false
		}
		s.removeEnemy(e)
		s.MissedShips++
		s.emit(Event{Kind: EventEnemyEscaped, X: e.X, Y: e.Y})
		s.applyDamage(escapeDamage)
		if s.State != StatePlaying {
			return
		}
	}
}
