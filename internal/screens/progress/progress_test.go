package progress

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short string untouched", "binary trees", 400, "binary trees"},
		{"ascii cut", "abcdef", 3, "abc…"},
		{"exact length untouched", "abc", 3, "abc"},
		{"multibyte cut on rune boundary", "ééééé", 3, "ééé…"},
		{"wide runes within byte limit", "日本語", 9, "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.n)
			}
		})
	}
}

func TestTruncateLongExplanationStaysValid(t *testing.T) {
	long := strings.Repeat("répétition ", 50)
	got := truncate(long, 400)
	if !utf8.ValidString(got) {
		t.Error("truncated explanation is not valid UTF-8")
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated explanation missing ellipsis: %q", got)
	}
}
