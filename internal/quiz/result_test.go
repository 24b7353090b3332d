package quiz

import "testing"

func TestPercentage_Rounds(t *testing.T) {
	tests := []struct {
		score, total int
		want         int
	}{
		{0, 0, 0}, // defensive: empty result
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 6, 17},
		{5, 8, 63},
		{7, 10, 70},
	}

	for _, tt := range tests {
		r := Result{Score: tt.score, TotalQuestions: tt.total}
		if got := r.Percentage(); got != tt.want {
			t.Errorf("Percentage(%d/%d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestGrade_Boundaries(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{90, 100, "A"},
		{100, 100, "A"},
		{89, 100, "B"},
		{80, 100, "B"},
		{79, 100, "C"},
		{70, 100, "C"},
		{69, 100, "D"},
		{60, 100, "D"},
		{59, 100, "F"},
		{0, 100, "F"},
	}

	for _, tt := range tests {
		r := Result{Score: tt.score, TotalQuestions: tt.total}
		if got := r.Grade(); got != tt.want {
			t.Errorf("Grade(%d%%) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPassed_At70(t *testing.T) {
	tests := []struct {
		score, total int
		want         bool
	}{
		{70, 100, true},
		{69, 100, false},
		{7, 10, true},
		{2, 3, false}, // 67%
		{3, 4, true},  // 75%
	}

	for _, tt := range tests {
		r := Result{Score: tt.score, TotalQuestions: tt.total}
		if got := r.Passed(); got != tt.want {
			t.Errorf("Passed(%d/%d) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}
