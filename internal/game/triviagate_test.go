package game

import (
	"testing"

	"github.com/halcyonix/typestorm/internal/trivia"
)

func openTestTrivia(t *testing.T, s *Session) {
	t.Helper()
	s.openTrivia()
	if s.State != StateTrivia || s.Trivia.State != TriviaAwaiting {
		t.Fatalf("trivia gate did not open: state=%v trivia=%v", s.State, s.Trivia.State)
	}
}

func TestTriviaSuspendsPlay(t *testing.T) {
	s := newTestSession(t)
	e := addEnemy(s, "hold", 100, 100)
	e.Speed = 2.0
	openTestTrivia(t, s)

	y := e.Y
	s.Tick()
	if e.Y != y {
		t.Fatalf("enemies must not move while trivia is open")
	}
	s.Keystroke('h')
	if e.Typed != 0 {
		t.Fatalf("gameplay keystrokes must be ignored while trivia is open")
	}
}

func TestTriviaConfirmRequiresSelection(t *testing.T) {
	s := newTestSession(t)
	openTestTrivia(t, s)

	s.TriviaConfirm()
	if s.Trivia.State != TriviaAwaiting {
		t.Fatalf("confirm without a selection must be a no-op")
	}

	s.TriviaSelect(trivia.OptionCount)
	if s.Trivia.Selected != -1 {
		t.Fatalf("out-of-range selection must be rejected, got %d", s.Trivia.Selected)
	}
}

func TestTriviaCorrectAnswerRewardsItem(t *testing.T) {
	s := newTestSession(t)
	openTestTrivia(t, s)

	s.TriviaSelect(s.Trivia.Question.Answer)
	s.TriviaConfirm()
	if s.Trivia.State != TriviaAnswered || !s.Trivia.Correct {
		t.Fatalf("correct selection must grade as correct")
	}
	if s.TriviaStreak != 1 {
		t.Fatalf("streak after correct answer: got %d", s.TriviaStreak)
	}

	before := 0
	for k := 0; k < ItemKindCount; k++ {
		before += s.Items.Count(ItemKind(k))
	}
	s.TriviaConfirm()
	after := 0
	for k := 0; k < ItemKindCount; k++ {
		after += s.Items.Count(ItemKind(k))
	}
	if after != before+1 {
		t.Fatalf("correct answer grants exactly one item: before=%d after=%d", before, after)
	}
	if s.State != StatePlaying || s.Trivia.State != TriviaInactive {
		t.Fatalf("closing the gate must resume play")
	}
}

func TestTriviaWrongAnswerResetsStreak(t *testing.T) {
	s := newTestSession(t)
	s.TriviaStreak = 3
	s.MaxTriviaStreak = 3
	openTestTrivia(t, s)

	wrong := (s.Trivia.Question.Answer + 1) % trivia.OptionCount
	s.TriviaSelect(wrong)
	s.TriviaConfirm()
	if s.Trivia.Correct {
		t.Fatalf("wrong selection graded as correct")
	}
	if s.TriviaStreak != 0 {
		t.Fatalf("wrong answer must reset the streak, got %d", s.TriviaStreak)
	}
	if s.MaxTriviaStreak != 3 {
		t.Fatalf("max streak must survive a reset, got %d", s.MaxTriviaStreak)
	}

	s.TriviaConfirm()
	for k := 0; k < ItemKindCount; k++ {
		if s.Items.Count(ItemKind(k)) != 0 {
			t.Fatalf("wrong answer must not grant items")
		}
	}
	if s.State != StatePlaying {
		t.Fatalf("wrong answer still returns control to play")
	}
}

func TestTriviaSkippedWithoutBank(t *testing.T) {
	s := newTestSession(t)
	s.bank = nil
	b := addBoss(s, "quiet-boss", 100, 100)
	s.BossDefeatsLifetime = 1

	s.destroyEnemy(b)
	if s.State != StatePlaying {
		t.Fatalf("missing question bank must skip the trivia gate")
	}
}
