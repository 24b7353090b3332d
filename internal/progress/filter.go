// Package progress holds the client-side filtering applied on top of the
// backend's progress list. The type filter is server-side (each change
// re-fetches); the text search narrows the fetched list locally.
package progress

import (
	"strings"

	"github.com/edugenie/edugenie/internal/api"
)

// Type filter values accepted by the backend.
const (
	FilterAll         = "all"
	FilterQuiz        = "quiz"
	FilterExplanation = "explanation"
)

// Filters lists the type filters in display order.
var Filters = []string{FilterAll, FilterQuiz, FilterExplanation}

// Search returns the items whose topic contains query, case-insensitively.
// An empty query returns the input unchanged.
func Search(items []api.ProgressItem, query string) []api.ProgressItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []api.ProgressItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Topic), query) {
			out = append(out, item)
		}
	}
	return out
}
