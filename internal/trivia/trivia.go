// Package trivia provides the embedded trivia question bank.
package trivia

import (
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed questions.toml
var questionsTOML []byte

// OptionCount is the fixed number of answer options per question.
const OptionCount = 3

// Question is a single trivia prompt with three options.
type Question struct {
	Category string   `toml:"category"`
	Prompt   string   `toml:"prompt"`
	Options  []string `toml:"options"`
	Answer   int      `toml:"answer"`
}

type bankFile struct {
	Questions []Question `toml:"question"`
}

// Bank holds the loaded question pool.
type Bank struct {
	questions []Question
	rnd       *rand.Rand
	lastIdx   int
}

// Load parses the embedded question bank.
func Load(rnd *rand.Rand) (*Bank, error) {
	var file bankFile
	if err := toml.Unmarshal(questionsTOML, &file); err != nil {
		return nil, fmt.Errorf("failed to decode question bank: %w", err)
	}
	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for i, q := range file.Questions {
		if len(q.Options) != OptionCount {
			return nil, fmt.Errorf("question %d has %d options, want %d", i, len(q.Options), OptionCount)
		}
		if q.Answer < 0 || q.Answer >= OptionCount {
			return nil, fmt.Errorf("question %d has answer index %d out of range", i, q.Answer)
		}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bank{questions: file.Questions, rnd: rnd, lastIdx: -1}, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Pick returns a random question, avoiding an immediate repeat when the
// bank holds more than one question.
func (b *Bank) Pick() Question {
	idx := b.rnd.Intn(len(b.questions))
	if len(b.questions) > 1 {
		for idx == b.lastIdx {
			idx = b.rnd.Intn(len(b.questions))
		}
	}
	b.lastIdx = idx
	return b.questions[idx]
}
