package store

import (
	"path/filepath"
	"testing"

	"github.com/edugenie/edugenie/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(topic string, score int) *quiz.Result {
	return &quiz.Result{
		Score:          score,
		TotalQuestions: 3,
		Topic:          topic,
		Level:          "medium",
		TimeSpent:      60,
		Questions: []quiz.QuestionResult{
			{Question: "q1", SelectedAnswer: 0, CorrectAnswer: 0, Options: []string{"a", "b"}, IsCorrect: true},
			{Question: "q2", SelectedAnswer: 1, CorrectAnswer: 0, Options: []string{"a", "b"}, IsCorrect: false},
			{Question: "q3", SelectedAnswer: quiz.Unanswered, CorrectAnswer: 1, Options: []string{"a", "b"}, IsCorrect: false},
		},
	}
}

func TestSaveQuizAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveQuizAttempt(sampleResult("Goroutines", 1)); err != nil {
		t.Fatalf("save: %v", err)
	}

	attempts, err := s.RecentAttempts(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}

	a := attempts[0]
	if a.Topic != "Goroutines" || a.Score != 1 || a.TotalQuestions != 3 {
		t.Errorf("attempt = %q %d/%d", a.Topic, a.Score, a.TotalQuestions)
	}
	if a.TimeSpent != 60 {
		t.Errorf("time spent = %d, want 60", a.TimeSpent)
	}

	detail, err := a.AttemptDetail()
	if err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if len(detail) != 3 {
		t.Fatalf("got %d detail rows, want 3", len(detail))
	}
	if detail[2].SelectedAnswer != quiz.Unanswered {
		t.Errorf("timeout sentinel lost: %d", detail[2].SelectedAnswer)
	}
}

func TestRecentAttemptsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)

	for i, topic := range []string{"first", "second", "third"} {
		if err := s.SaveQuizAttempt(sampleResult(topic, i)); err != nil {
			t.Fatalf("save %q: %v", topic, err)
		}
	}

	attempts, err := s.RecentAttempts(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
}

func TestSaveExplanation(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveExplanation("closures", "easy", "a closure captures variables"); err != nil {
		t.Fatalf("save: %v", err)
	}

	var recs []Explanation
	if err := s.db.Find(&recs).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d explanations, want 1", len(recs))
	}
	if recs[0].Topic != "closures" || recs[0].Level != "easy" {
		t.Errorf("record = %q/%q", recs[0].Topic, recs[0].Level)
	}
}
