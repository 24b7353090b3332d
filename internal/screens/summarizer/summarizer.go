package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

type summaryMsg struct {
	Source  string
	Summary string
	Err     error
}

const (
	sourceURL = iota
	sourcePDF
)

var languages = []string{"english", "hindi", "spanish", "french", "german"}

// SummarizerScreen summarizes a web page or a local PDF file.
type SummarizerScreen struct {
	client *api.Client

	source   components.OptionPicker
	input    components.TextInput
	language components.OptionPicker
	focus    int // 0 source, 1 input, 2 language
	loading  bool
	summary  string
	from     string
	errMsg   string
}

var _ screen.Screen = (*SummarizerScreen)(nil)
var _ screen.KeyHintProvider = (*SummarizerScreen)(nil)

// New creates the summarizer screen.
func New(client *api.Client) *SummarizerScreen {
	s := &SummarizerScreen{
		client:   client,
		source:   components.NewOptionPicker("Source", []string{"web page", "pdf file"}),
		input:    components.NewTextInput("URL", "https://...", 56),
		language: components.NewOptionPicker("Language", languages),
	}
	s.source.Focus()
	return s
}

func (s *SummarizerScreen) Title() string {
	return "Summarize a Document"
}

func (s *SummarizerScreen) KeyHints() []layout.KeyHint {
	if s.summary != "" {
		return []layout.KeyHint{
			{Key: "N", Description: "New summary"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Summarize"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummarizerScreen) Init() tea.Cmd {
	return nil
}

func (s *SummarizerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summary = msg.Summary
		s.from = msg.Source
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SummarizerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	if s.summary != "" {
		if msg.String() == "n" {
			s.summary = ""
			s.errMsg = ""
			s.input.SetValue("")
			s.setFocus(0)
			return s, nil
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % 3)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + 2) % 3)
	case "enter":
		return s.submit()
	}

	switch s.focus {
	case 0:
		before := s.source.Selected
		var cmd tea.Cmd
		s.source, cmd = s.source.Update(msg)
		if s.source.Selected != before {
			s.relabelInput()
		}
		return s, cmd
	case 1:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	default:
		var cmd tea.Cmd
		s.language, cmd = s.language.Update(msg)
		return s, cmd
	}
}

func (s *SummarizerScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.source.Blur()
	s.input.Blur()
	s.language.Blur()

	switch focus {
	case 0:
		s.source.Focus()
	case 1:
		return s.input.Focus()
	case 2:
		s.language.Focus()
	}
	return nil
}

// relabelInput swaps the text input between URL and file-path mode when
// the source toggles. The typed value is kept in case of a mis-toggle.
func (s *SummarizerScreen) relabelInput() {
	if s.source.Selected == sourcePDF {
		s.input.Label = "PDF path"
		s.input.Model.Placeholder = "~/notes/lecture.pdf"
	} else {
		s.input.Label = "URL"
		s.input.Model.Placeholder = "https://..."
	}
}

func (s *SummarizerScreen) submit() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		if s.source.Selected == sourcePDF {
			s.errMsg = "Please enter a file path"
		} else {
			s.errMsg = "Please enter a URL"
		}
		return s, nil
	}

	s.errMsg = ""
	s.loading = true
	client, language := s.client, s.language.Value()

	if s.source.Selected == sourcePDF {
		path := expandHome(value)
		return s, func() tea.Msg {
			f, err := os.Open(path)
			if err != nil {
				return summaryMsg{Err: fmt.Errorf("open pdf: %w", err)}
			}
			defer f.Close()
			summary, err := client.SummarizePDF(context.Background(), filepath.Base(path), f, language)
			return summaryMsg{Source: filepath.Base(path), Summary: summary, Err: err}
		}
	}

	return s, func() tea.Msg {
		summary, err := client.SummarizeURL(context.Background(), value, language)
		return summaryMsg{Source: value, Summary: summary, Err: err}
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func (s *SummarizerScreen) View(width, height int) string {
	var b strings.Builder

	switch {
	case s.loading:
		b.WriteString(theme.Subtitle.Render("Summarizing..."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("This can take a while for long documents"))

	case s.summary != "":
		wrap := min(width-8, 80)
		if wrap < 20 {
			wrap = 20
		}
		body := lipgloss.NewStyle().Width(wrap).Foreground(theme.Text).Render(s.summary)
		b.WriteString(theme.Title.Render("Summary"))
		b.WriteString("  ")
		b.WriteString(theme.Hint.Render(s.from))
		b.WriteString("\n\n")
		b.WriteString(theme.Card.Render(body))

	default:
		b.WriteString(s.source.View())
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
		b.WriteString("\n\n")
		b.WriteString(s.language.View())
		if s.errMsg != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
