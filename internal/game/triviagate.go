package game

import "github.com/halcyonix/typestorm/internal/trivia"

// TriviaState is the modal trivia phase.
type TriviaState int

// Trivia gate states.
const (
	TriviaInactive TriviaState = iota
	TriviaAwaiting
	TriviaAnswered
)

// TriviaSession is the modal interrupt opened on the boss-defeat cadence.
// While active the main gameplay update is suspended.
type TriviaSession struct {
	State    TriviaState
	Question trivia.Question
	Selected int
	Correct  bool
	Reward   ItemKind
}

// openTrivia switches the session into trivia mode. Without a question
// bank the gate is skipped and play continues.
func (s *Session) openTrivia() {
	if s.bank == nil {
		return
	}
	s.Trivia = TriviaSession{
		State:    TriviaAwaiting,
		Question: s.bank.Pick(),
		Selected: -1,
	}
	s.State = StateTrivia
	s.emit(Event{Kind: EventTriviaOpened})
}

// TriviaSelect picks one of the three options while awaiting an answer.
func (s *Session) TriviaSelect(option int) {
	if s.State != StateTrivia || s.Trivia.State != TriviaAwaiting {
		return
	}
	if option < 0 || option >= trivia.OptionCount {
		return
	}
	s.Trivia.Selected = option
}

// TriviaConfirm advances the gate: first confirm grades the selected
// answer, second confirm closes the gate and returns control to play.
// Correct answers are rewarded with one random bonus item; control
// returns to the game regardless of correctness.
func (s *Session) TriviaConfirm() {
	if s.State != StateTrivia {
		return
	}
	switch s.Trivia.State {
	case TriviaAwaiting:
		if s.Trivia.Selected < 0 {
			return
		}
		s.Trivia.Correct = s.Trivia.Selected == s.Trivia.Question.Answer
		if s.Trivia.Correct {
			s.TriviaStreak++
			if s.TriviaStreak > s.MaxTriviaStreak {
				s.MaxTriviaStreak = s.TriviaStreak
			}
			s.emitSound(CueCorrect)
		} else {
			s.TriviaStreak = 0
			s.emitSound(CueWrong)
		}
		s.Trivia.State = TriviaAnswered
	case TriviaAnswered:
		if s.Trivia.Correct {
			s.Trivia.Reward = s.grantRandomItem()
			s.emit(Event{Kind: EventNotify, Text: "Bonus: " + itemName(s.Trivia.Reward)})
		}
		s.Trivia.State = TriviaInactive
		s.State = StatePlaying
	}
}
