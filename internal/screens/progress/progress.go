package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/progress"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/screens/result"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

// itemsLoadedMsg carries a fetched progress list. Filter records which
// type filter the request was issued for; a response for a filter the
// user has already moved past is dropped (last response wins).
type itemsLoadedMsg struct {
	Filter string
	Items  []api.ProgressItem
	Err    error
}

// ProgressScreen lists past quizzes and explanations.
type ProgressScreen struct {
	client  *api.Client
	session *auth.Session

	filter    int // index into progress.Filters
	items     []api.ProgressItem
	search    components.TextInput
	searching bool
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(client *api.Client, session *auth.Session) *ProgressScreen {
	return &ProgressScreen{
		client:   client,
		session:  session,
		search:   components.NewTextInput("", "search topics...", 48),
		expanded: make(map[int]bool),
	}
}

func (s *ProgressScreen) Title() string {
	return "My Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Filter"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return s.fetch()
}

// fetch re-queries the backend for the current type filter. No caching
// across filter changes.
func (s *ProgressScreen) fetch() tea.Cmd {
	filter := progress.Filters[s.filter]
	client, token := s.client, s.session.Token()
	s.loaded = false

	return func() tea.Msg {
		items, err := client.Progress(context.Background(), token, filter)
		return itemsLoadedMsg{Filter: filter, Items: items, Err: err}
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.Filter != progress.Filters[s.filter] {
			// Stale response from a superseded filter change.
			return s, nil
		}
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.items = msg.Items
		s.selected = 0
		s.expanded = make(map[int]bool)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ProgressScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.searching {
		switch msg.String() {
		case "enter":
			s.searching = false
			s.search.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		s.selected = 0
		return s, cmd
	}

	switch msg.String() {
	case "left", "h":
		if s.filter > 0 {
			s.filter--
			return s, s.fetch()
		}
	case "right", "l":
		if s.filter < len(progress.Filters)-1 {
			s.filter++
			return s, s.fetch()
		}
	case "/":
		s.searching = true
		return s, s.search.Focus()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.visible())-1 {
			s.selected++
		}
	case "enter":
		return s.open()
	}

	return s, nil
}

// visible applies the client-side topic search to the fetched list.
func (s *ProgressScreen) visible() []api.ProgressItem {
	return progress.Search(s.items, s.search.Value())
}

// open drills into the selected item: quiz results get the full review
// screen, explanations toggle inline.
func (s *ProgressScreen) open() (screen.Screen, tea.Cmd) {
	items := s.visible()
	if s.selected < 0 || s.selected >= len(items) {
		return s, nil
	}
	item := items[s.selected]

	if item.Type == progress.FilterQuiz {
		next := result.NewFromTopic(s.client, s.session, nil, item.Topic)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}

	s.expanded[s.selected] = !s.expanded[s.selected]
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	var b strings.Builder

	// Filter tabs.
	var tabs []string
	for i, f := range progress.Filters {
		if i == s.filter {
			tabs = append(tabs, theme.Selected.Render("["+f+"]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+f+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if s.searching || s.search.Value() != "" {
		b.WriteString(s.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Render("Loading..."))
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
	default:
		b.WriteString(s.renderItems())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *ProgressScreen) renderItems() string {
	items := s.visible()
	if len(items) == 0 {
		return theme.Hint.Render("Nothing here yet — take a quiz or explain a topic!")
	}

	var b strings.Builder
	for i, item := range items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			cursor = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		var line string
		if item.Type == progress.FilterQuiz {
			line = fmt.Sprintf("%s%s — quiz %d/%d (%s)",
				cursor, item.Topic, item.QuizScore, item.TotalQuestions, item.Level)
		} else {
			line = fmt.Sprintf("%s%s — explanation (%s)", cursor, item.Topic, item.Level)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] && item.Explanation != "" {
			b.WriteString(theme.Hint.Render("    " + truncate(item.Explanation, 400)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
