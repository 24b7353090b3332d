package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Unanswered is the sentinel answer index recorded when a question times
// out with no selection.
const Unanswered = -1

// QuestionSeconds is the per-question countdown duration.
const QuestionSeconds = 30

// Bounds for the requested question count.
const (
	MinQuestions = 1
	MaxQuestions = 20
)

// Level is the difficulty requested for generated content.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels lists the valid difficulty levels in display order.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// Question is a single generated quiz question. Field tags match the
// backend's /ai/quiz response.
type Question struct {
	ID            int      `json:"id,omitempty"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

// Config is the quiz configuration collected on the setup screen.
type Config struct {
	Topic        string
	Level        Level
	NumQuestions int
}

// Validate checks the configuration before any network call is made.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Topic) == "" {
		return errors.New("topic is required")
	}
	if c.NumQuestions < MinQuestions || c.NumQuestions > MaxQuestions {
		return fmt.Errorf("question count must be between %d and %d", MinQuestions, MaxQuestions)
	}
	switch c.Level {
	case LevelEasy, LevelMedium, LevelHard:
	default:
		return fmt.Errorf("unknown level %q", c.Level)
	}
	return nil
}

// ValidateQuestions defends against malformed AI-generated payloads: the
// set must be non-empty, every question needs at least two options, and
// the correct index must address one of them.
func ValidateQuestions(qs []Question) error {
	if len(qs) == 0 {
		return errors.New("quiz contains no questions")
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d has no text", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d has %d options, need at least 2", i+1, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d has correct index %d out of range", i+1, q.CorrectAnswer)
		}
	}
	return nil
}
