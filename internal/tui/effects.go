package tui

import "github.com/halcyonix/typestorm/internal/game"

// effectKind selects a transient visual effect.
type effectKind int

const (
	effectExplosion effectKind = iota
	effectLaser
)

// effect is a short-lived visual at a logical field position.
type effect struct {
	kind effectKind
	x, y float64
	size game.ExplosionSize
	ttl  int
}

const (
	explosionTTL = 18
	laserTTL     = 4
	noticeTTL    = 150
)

// addEffect appends the visual counterpart of a core event, if any.
func (m *Model) addEffect(ev game.Event) {
	switch ev.Kind {
	case game.EventExplosion:
		m.effects = append(m.effects, effect{kind: effectExplosion, x: ev.X, y: ev.Y, size: ev.Size, ttl: explosionTTL})
	case game.EventLaser:
		m.effects = append(m.effects, effect{kind: effectLaser, x: ev.X, y: ev.Y, ttl: laserTTL})
	case game.EventNotify:
		m.notice = ev.Text
		m.noticeTTL = noticeTTL
	}
}

// tickEffects ages all effects and drops the expired ones.
func (m *Model) tickEffects() {
	live := m.effects[:0]
	for _, e := range m.effects {
		e.ttl--
		if e.ttl > 0 {
			live = append(live, e)
		}
	}
	m.effects = live
	if m.noticeTTL > 0 {
		m.noticeTTL--
		if m.noticeTTL == 0 {
			m.notice = ""
		}
	}
}

// explosionGlyph shrinks the burst as the effect ages.
func explosionGlyph(e effect) rune {
	phase := e.ttl * 3 / explosionTTL
	switch e.size {
	case game.ExplosionLarge:
		return [3]rune{'+', '*', '@'}[phase%3]
	case game.ExplosionSmall:
		return [3]rune{'.', '.', '*'}[phase%3]
	default:
		return [3]rune{'.', '+', '*'}[phase%3]
	}
}
