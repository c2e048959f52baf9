package game

import "testing"

// TestSimulatedPlay runs a few simulated seconds of play, typing the
// nearest word as it appears, and checks the session invariants hold
// throughout.
func TestSimulatedPlay(t *testing.T) {
	s := newTestSession(t)
	prevLevel := s.Level

	for i := 0; i < TicksPerSecond*30 && s.State != StateOver; i++ {
		s.Tick()

		if s.State == StateTrivia {
			s.TriviaSelect(0)
			s.TriviaConfirm()
			s.TriviaConfirm()
			continue
		}

		// Type at most one character per tick against the current or
		// first live enemy.
		target := s.ActiveTarget()
		if target == nil && len(s.Enemies) > 0 {
			target = s.Enemies[0]
		}
		if target != nil {
			if r, ok := target.NextRune(); ok {
				s.Keystroke(r)
			}
		}

		if s.Health < 0 || s.Health > MaxHealth {
			t.Fatalf("tick %d: health out of range: %d", i, s.Health)
		}
		if s.Shield < 0 || s.Shield > MaxShield {
			t.Fatalf("tick %d: shield out of range: %d", i, s.Shield)
		}
		if s.Level < prevLevel {
			t.Fatalf("tick %d: level decreased %d -> %d", i, prevLevel, s.Level)
		}
		prevLevel = s.Level
		for _, e := range s.Enemies {
			if e.Typed >= e.Len() {
				t.Fatalf("tick %d: live enemy with fully typed word %q", i, e.Word)
			}
		}
		if count := s.liveCount(KindBoss); count > 1 {
			t.Fatalf("tick %d: %d bosses alive", i, count)
		}
	}

	if s.WordsDestroyed == 0 {
		t.Fatalf("simulation destroyed no words")
	}
	if s.Score <= 0 {
		t.Fatalf("simulation produced no score")
	}
	if s.Accuracy != 100.0 {
		t.Fatalf("error-free play must report accuracy 100, got %v", s.Accuracy)
	}
}

// TestSimulationIsDeterministic replays the same seed twice and expects
// identical outcomes.
func TestSimulationIsDeterministic(t *testing.T) {
	run := func() (int, int, int) {
		s := newTestSession(t)
		for i := 0; i < TicksPerSecond*10 && s.State == StatePlaying; i++ {
			s.Tick()
			if len(s.Enemies) > 0 {
				if r, ok := s.Enemies[0].NextRune(); ok {
					s.Keystroke(r)
				}
			}
		}
		return s.Score, s.Level, s.WordsDestroyed
	}

	score1, level1, words1 := run()
	score2, level2, words2 := run()
	if score1 != score2 || level1 != level2 || words1 != words2 {
		t.Fatalf("same seed diverged: (%d,%d,%d) vs (%d,%d,%d)",
			score1, level1, words1, score2, level2, words2)
	}
}

func TestIgnoredWhileGameOver(t *testing.T) {
	s := newTestSession(t)
	s.endSession()
	if s.State != StateOver {
		t.Fatalf("expected game over state")
	}

	frame := s.Frame()
	s.Tick()
	if s.Frame() != frame {
		t.Fatalf("ticks must be inert after game over")
	}
	s.Keystroke('x')
	if s.TotalKeystrokes != 0 {
		t.Fatalf("keystrokes must be inert after game over")
	}
	if err := s.ActivateSelected(); err == nil {
		t.Fatalf("item activation must fail after game over")
	}
}
