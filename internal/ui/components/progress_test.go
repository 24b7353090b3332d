package components

import (
	"strings"
	"testing"

	"github.com/edugenie/edugenie/internal/ui/theme"
)

func TestProgressBarCellCounts(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		filled  int
		empty   int
	}{
		{"half", 0.5, 5, 5},
		{"empty", 0, 0, 10},
		{"full", 1, 10, 0},
		{"over one clamps", 1.5, 10, 0},
		{"negative clamps", -0.2, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewProgressBar("", tt.percent, false, 10).View()
			if got := strings.Count(view, "█"); got != tt.filled {
				t.Errorf("filled cells = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(view, "░"); got != tt.empty {
				t.Errorf("empty cells = %d, want %d", got, tt.empty)
			}
		})
	}
}

func TestProgressBarShowsPercent(t *testing.T) {
	view := NewProgressBar("", 0.33, true, 20).View()
	if !strings.Contains(view, "33%") {
		t.Errorf("view missing percent readout:\n%s", view)
	}
}

func TestProgressBarLabelAndFillOverride(t *testing.T) {
	bar := NewProgressBar("Score", 1, false, 20)
	bar.Fill = theme.Success
	view := bar.View()
	if !strings.Contains(view, "Score") {
		t.Errorf("view missing label:\n%s", view)
	}
	if !strings.Contains(view, "█") {
		t.Errorf("view missing filled cells:\n%s", view)
	}
}
