package game

import (
	"math"
	"sort"
)

// Missile is a homing projectile launched by the Seeking Missiles item.
// It re-targets the nearest live non-boss enemy if its target disappears
// and turns toward it at a bounded angular rate per tick.
type Missile struct {
	X, Y    float64
	heading float64
	target  *Enemy
}

// launchMissiles fires at up to five nearest non-boss enemies. Fails
// without consuming the item when nothing can be targeted.
func (s *Session) launchMissiles() error {
	targets := s.nearestRegulars(missileSalvoSize)
	if len(targets) == 0 {
		return ErrNoTargets
	}
	for i, t := range targets {
		spread := float64(i)*24 - float64(len(targets)-1)*12
		m := &Missile{
			X:       PlayerX + spread,
			Y:       PlayerY - playerBoxHeight/2,
			heading: -math.Pi / 2,
			target:  t,
		}
		s.Missiles = append(s.Missiles, m)
	}
	s.emitSound(CueMissile)
	return nil
}

// nearestRegulars returns up to n live non-boss enemies ordered by
// distance to the player.
func (s *Session) nearestRegulars(n int) []*Enemy {
	var out []*Enemy
	for _, e := range s.Enemies {
		if !e.IsBoss() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return playerDistSq(out[i]) < playerDistSq(out[j])
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func playerDistSq(e *Enemy) float64 {
	dx := e.X - PlayerX
	dy := e.Y - PlayerY
	return dx*dx + dy*dy
}

// updateMissiles advances every missile one tick, retargeting and
// resolving proximity hits with full destruction credit.
func (s *Session) updateMissiles() {
	kept := s.Missiles[:0]
	for _, m := range s.Missiles {
		if m.target == nil || !s.alive(m.target) {
			m.target = s.retarget()
		}
		if m.target == nil {
			// Nothing left to chase; the missile fizzles out.
			s.emit(Event{Kind: EventExplosion, X: m.X, Y: m.Y, Size: ExplosionSmall})
			continue
		}
		m.steer()
		m.X += math.Cos(m.heading) * missileSpeed
		m.Y += math.Sin(m.heading) * missileSpeed
		dx := m.target.X - m.X
		dy := m.target.Y - m.Y
		if math.Hypot(dx, dy) <= missileHitRadius {
			s.destroyEnemy(m.target)
			continue
		}
		kept = append(kept, m)
	}
	s.Missiles = kept
}

func (s *Session) retarget() *Enemy {
	targets := s.nearestRegulars(1)
	if len(targets) == 0 {
		return nil
	}
	return targets[0]
}

// steer turns the missile toward its target, bounded by the turn rate.
func (m *Missile) steer() {
	desired := math.Atan2(m.target.Y-m.Y, m.target.X-m.X)
	diff := desired - m.heading
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	if diff > missileTurnRate {
		diff = missileTurnRate
	} else if diff < -missileTurnRate {
		diff = -missileTurnRate
	}
	m.heading += diff
}

// Pos returns the missile position for rendering.
func (m *Missile) Pos() (float64, float64) {
	return m.X, m.Y
}
