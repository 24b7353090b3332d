package quiz

import "errors"

// Phase is the position of a session within the question loop.
type Phase int

const (
	// PhaseActive: a question is on screen and the countdown is running.
	PhaseActive Phase = iota
	// PhaseReviewing: the answer is locked in and correctness is shown.
	PhaseReviewing
	// PhaseComplete: the last question has been reviewed.
	PhaseComplete
)

// Errors returned by state transitions.
var (
	ErrNoQuestions    = errors.New("quiz has no questions")
	ErrNoSelection    = errors.New("select an answer before submitting")
	ErrNotActive      = errors.New("question is not active")
	ErrOutOfRange     = errors.New("option index out of range")
	ErrNotReviewing   = errors.New("no submitted answer to advance from")
	ErrNotComplete    = errors.New("quiz is not complete")
)

// State is the in-progress quiz session. It owns all transient quiz data;
// screens receive a *State from the controller that created it rather
// than round-tripping through any ambient storage.
type State struct {
	Topic     string
	Level     Level
	Questions []Question

	Index    int
	Answers  []int // one slot per question, Unanswered until submitted
	Selected int   // pending selection for the current question
	Score    int
	TimeLeft int // seconds remaining on the current question
	Phase    Phase
}

// NewState starts a session over a fetched question set.
func NewState(cfg Config, questions []Question) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return &State{
		Topic:     cfg.Topic,
		Level:     cfg.Level,
		Questions: questions,
		Answers:   answers,
		Selected:  Unanswered,
		TimeLeft:  QuestionSeconds,
		Phase:     PhaseActive,
	}, nil
}

// Current returns the question at the session index.
func (s *State) Current() *Question {
	return &s.Questions[s.Index]
}

// Select records a pending answer for the active question. Re-selecting
// overwrites the prior choice; selection is rejected once the question is
// in review.
func (s *State) Select(option int) error {
	if s.Phase != PhaseActive {
		return ErrNotActive
	}
	if option < 0 || option >= len(s.Current().Options) {
		return ErrOutOfRange
	}
	s.Selected = option
	return nil
}

// Submit locks in the pending selection and scores it. An explicit submit
// with no selection is rejected. Submitting while already reviewing is a
// no-op so a double keypress cannot double-score.
func (s *State) Submit() error {
	if s.Phase == PhaseReviewing {
		return nil
	}
	if s.Phase != PhaseActive {
		return ErrNotActive
	}
	if s.Selected == Unanswered {
		return ErrNoSelection
	}
	s.record(s.Selected)
	return nil
}

// Tick decrements the countdown by one second. When it reaches zero the
// question is submitted implicitly: whatever is selected is recorded, or
// the unanswered sentinel if nothing was. Expired reports whether the
// implicit submit happened.
func (s *State) Tick() (expired bool) {
	if s.Phase != PhaseActive || s.TimeLeft <= 0 {
		return false
	}
	s.TimeLeft--
	if s.TimeLeft > 0 {
		return false
	}
	s.record(s.Selected)
	return true
}

// record stores the answer (or sentinel), scores it, and enters review.
func (s *State) record(answer int) {
	s.Answers[s.Index] = answer
	if answer == s.Current().CorrectAnswer {
		s.Score++
	}
	s.Phase = PhaseReviewing
}

// Next advances from review to the next question, resetting selection and
// countdown. On the last question it completes the session instead.
func (s *State) Next() error {
	if s.Phase != PhaseReviewing {
		return ErrNotReviewing
	}
	if s.Index == len(s.Questions)-1 {
		s.Phase = PhaseComplete
		return nil
	}
	s.Index++
	s.Selected = Unanswered
	s.TimeLeft = QuestionSeconds
	s.Phase = PhaseActive
	return nil
}

// OnLastQuestion reports whether the session index is at the final question.
func (s *State) OnLastQuestion() bool {
	return s.Index == len(s.Questions)-1
}

// Restart replays the same question set from the top with all progress
// cleared. No new generation call is required.
func (s *State) Restart() {
	for i := range s.Answers {
		s.Answers[i] = Unanswered
	}
	s.Index = 0
	s.Selected = Unanswered
	s.Score = 0
	s.TimeLeft = QuestionSeconds
	s.Phase = PhaseActive
}

// Result assembles the completed session into a Result. It returns an
// error unless the session has reached PhaseComplete.
func (s *State) Result() (*Result, error) {
	if s.Phase != PhaseComplete {
		return nil, ErrNotComplete
	}

	details := make([]QuestionResult, len(s.Questions))
	for i, q := range s.Questions {
		details[i] = QuestionResult{
			Question:       q.Text,
			SelectedAnswer: s.Answers[i],
			CorrectAnswer:  q.CorrectAnswer,
			Options:        q.Options,
			IsCorrect:      s.Answers[i] == q.CorrectAnswer,
		}
	}

	return &Result{
		Score:          s.Score,
		TotalQuestions: len(s.Questions),
		Topic:          s.Topic,
		Level:          string(s.Level),
		Questions:      details,
		TimeSpent:      len(s.Questions)*QuestionSeconds - s.TimeLeft,
	}, nil
}
