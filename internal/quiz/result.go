package quiz

import "math"

// QuestionResult is the per-question correctness detail kept on a
// completed result. Field tags match the /dashboard/save/quiz payload.
type QuestionResult struct {
	Question       string   `json:"question"`
	SelectedAnswer int      `json:"selectedAnswer"`
	CorrectAnswer  int      `json:"correctAnswer"`
	Options        []string `json:"options"`
	IsCorrect      bool     `json:"isCorrect"`
}

// Result is a completed quiz outcome, either freshly assembled from a
// session or mapped from a stored backend record.
type Result struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Topic          string           `json:"topic"`
	Level          string           `json:"level"`
	Questions      []QuestionResult `json:"questions"`
	TimeSpent      int              `json:"timeSpent,omitempty"`
}

// Percentage returns the rounded score percentage.
func (r *Result) Percentage() int {
	if r.TotalQuestions == 0 {
		return 0
	}
	return int(math.Round(float64(r.Score) / float64(r.TotalQuestions) * 100))
}

// Grade maps the percentage onto a letter grade.
func (r *Result) Grade() string {
	switch p := r.Percentage(); {
	case p >= 90:
		return "A"
	case p >= 80:
		return "B"
	case p >= 70:
		return "C"
	case p >= 60:
		return "D"
	default:
		return "F"
	}
}

// Passed reports whether the result clears the 70% pass mark.
func (r *Result) Passed() bool {
	return r.Percentage() >= 70
}
