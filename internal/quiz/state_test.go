package quiz

import (
	"errors"
	"testing"
)

func threeQuestions() []Question {
	return []Question{
		{Text: "What keyword declares a variable?", Options: []string{"let", "var", "def", "dim"}, CorrectAnswer: 1},
		{Text: "Which type holds text?", Options: []string{"int", "bool", "string", "rune"}, CorrectAnswer: 2},
		{Text: "What starts a goroutine?", Options: []string{"go", "run", "spawn", "fork"}, CorrectAnswer: 0},
	}
}

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := Config{Topic: "JavaScript", Level: LevelEasy, NumQuestions: 3}
	s, err := NewState(cfg, threeQuestions())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func TestNewState_RejectsEmptySet(t *testing.T) {
	_, err := NewState(Config{Topic: "x", Level: LevelEasy}, nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestNewState_Initial(t *testing.T) {
	s := newTestState(t)
	if s.Phase != PhaseActive {
		t.Errorf("phase = %v, want PhaseActive", s.Phase)
	}
	if s.TimeLeft != QuestionSeconds {
		t.Errorf("time left = %d, want %d", s.TimeLeft, QuestionSeconds)
	}
	if s.Selected != Unanswered {
		t.Errorf("selected = %d, want sentinel", s.Selected)
	}
	for i, a := range s.Answers {
		if a != Unanswered {
			t.Errorf("answer %d = %d, want sentinel", i, a)
		}
	}
}

func TestSelect_Overwrites(t *testing.T) {
	s := newTestState(t)
	if err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Select(2); err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if s.Selected != 2 {
		t.Errorf("selected = %d, want 2", s.Selected)
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	s := newTestState(t)
	if err := s.Select(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Select(4) = %v, want ErrOutOfRange", err)
	}
	if err := s.Select(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Select(-1) = %v, want ErrOutOfRange", err)
	}
}

func TestSelect_RejectedInReview(t *testing.T) {
	s := newTestState(t)
	s.Select(1)
	s.Submit()
	if err := s.Select(0); !errors.Is(err, ErrNotActive) {
		t.Errorf("Select in review = %v, want ErrNotActive", err)
	}
}

func TestSubmit_RequiresSelection(t *testing.T) {
	s := newTestState(t)
	if err := s.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("Submit with no selection = %v, want ErrNoSelection", err)
	}
	if s.Phase != PhaseActive {
		t.Errorf("phase changed on rejected submit")
	}
}

func TestSubmit_ScoresCorrectAnswer(t *testing.T) {
	s := newTestState(t)
	s.Select(1)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Phase != PhaseReviewing {
		t.Errorf("phase = %v, want PhaseReviewing", s.Phase)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if s.Answers[0] != 1 {
		t.Errorf("answer recorded = %d, want 1", s.Answers[0])
	}
}

func TestSubmit_DoubleSubmitDoesNotDoubleScore(t *testing.T) {
	s := newTestState(t)
	s.Select(1)
	s.Submit()
	if err := s.Submit(); err != nil {
		t.Fatalf("second submit should be a no-op, got %v", err)
	}
	if s.Score != 1 {
		t.Errorf("score = %d after double submit, want 1", s.Score)
	}
}

func TestTick_CountsDown(t *testing.T) {
	s := newTestState(t)
	if expired := s.Tick(); expired {
		t.Fatal("expired after one tick")
	}
	if s.TimeLeft != QuestionSeconds-1 {
		t.Errorf("time left = %d, want %d", s.TimeLeft, QuestionSeconds-1)
	}
}

func TestTick_TimeoutRecordsSentinel(t *testing.T) {
	s := newTestState(t)
	var expired bool
	for i := 0; i < QuestionSeconds; i++ {
		expired = s.Tick()
	}
	if !expired {
		t.Fatal("expected expiry on final tick")
	}
	if s.Phase != PhaseReviewing {
		t.Errorf("phase = %v, want PhaseReviewing", s.Phase)
	}
	if s.Answers[0] != Unanswered {
		t.Errorf("answer = %d, want sentinel", s.Answers[0])
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0 (timeout is incorrect)", s.Score)
	}
}

func TestTick_TimeoutRecordsPendingSelection(t *testing.T) {
	s := newTestState(t)
	s.Select(1)
	for i := 0; i < QuestionSeconds; i++ {
		s.Tick()
	}
	if s.Answers[0] != 1 {
		t.Errorf("answer = %d, want the pending selection", s.Answers[0])
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
}

func TestTick_InertAfterReview(t *testing.T) {
	s := newTestState(t)
	s.Select(0)
	s.Submit()
	if expired := s.Tick(); expired {
		t.Error("tick expired while reviewing")
	}
	if s.TimeLeft != QuestionSeconds {
		t.Errorf("countdown moved while reviewing: %d", s.TimeLeft)
	}
}

func TestNext_ResetsCountdownAndSelection(t *testing.T) {
	s := newTestState(t)
	s.Tick()
	s.Select(1)
	s.Submit()
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
	if s.TimeLeft != QuestionSeconds {
		t.Errorf("time left = %d, want reset to %d", s.TimeLeft, QuestionSeconds)
	}
	if s.Selected != Unanswered {
		t.Errorf("selected = %d, want sentinel", s.Selected)
	}
	if s.Phase != PhaseActive {
		t.Errorf("phase = %v, want PhaseActive", s.Phase)
	}
}

func TestNext_RequiresReview(t *testing.T) {
	s := newTestState(t)
	if err := s.Next(); !errors.Is(err, ErrNotReviewing) {
		t.Errorf("Next while active = %v, want ErrNotReviewing", err)
	}
}

func TestNext_LastQuestionCompletes(t *testing.T) {
	s := newTestState(t)
	answers := []int{1, 0, 0}
	for _, a := range answers {
		s.Select(a)
		s.Submit()
		s.Next()
	}
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %v, want PhaseComplete", s.Phase)
	}
}

func TestResult_RequiresCompletion(t *testing.T) {
	s := newTestState(t)
	if _, err := s.Result(); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("Result before completion = %v, want ErrNotComplete", err)
	}
}

// One correct answer out of three on an easy JavaScript quiz: 33%,
// grade F, fail.
func TestResult_OneOfThree(t *testing.T) {
	s := newTestState(t)
	answers := []int{1, 0, 2} // only the first is correct
	for _, a := range answers {
		s.Select(a)
		s.Submit()
		s.Next()
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Score != 1 || res.TotalQuestions != 3 {
		t.Fatalf("score = %d/%d, want 1/3", res.Score, res.TotalQuestions)
	}
	if got := res.Percentage(); got != 33 {
		t.Errorf("percentage = %d, want 33", got)
	}
	if got := res.Grade(); got != "F" {
		t.Errorf("grade = %q, want F", got)
	}
	if res.Passed() {
		t.Error("1/3 should not pass")
	}
	if res.Topic != "JavaScript" || res.Level != "easy" {
		t.Errorf("topic/level = %q/%q", res.Topic, res.Level)
	}
	if res.TimeSpent != 3*QuestionSeconds-QuestionSeconds {
		t.Errorf("time spent = %d, want %d", res.TimeSpent, 2*QuestionSeconds)
	}
	for i, d := range res.Questions {
		wantCorrect := i == 0
		if d.IsCorrect != wantCorrect {
			t.Errorf("question %d correctness = %v, want %v", i, d.IsCorrect, wantCorrect)
		}
	}
}

func TestRestart_ReplaysSameSet(t *testing.T) {
	s := newTestState(t)
	questions := s.Questions
	for range questions {
		s.Select(0)
		s.Submit()
		s.Next()
	}
	s.Restart()

	if s.Phase != PhaseActive || s.Index != 0 || s.Score != 0 {
		t.Fatalf("restart left state dirty: phase=%v index=%d score=%d", s.Phase, s.Index, s.Score)
	}
	if s.TimeLeft != QuestionSeconds {
		t.Errorf("time left = %d, want %d", s.TimeLeft, QuestionSeconds)
	}
	if s.Selected != Unanswered {
		t.Errorf("selected = %d, want sentinel", s.Selected)
	}
	for i, a := range s.Answers {
		if a != Unanswered {
			t.Errorf("answer %d = %d, want sentinel", i, a)
		}
	}
	if &s.Questions[0] != &questions[0] {
		t.Error("restart replaced the question set")
	}
}
