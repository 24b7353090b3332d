package explainer

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/quiz"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/store"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

type explanationMsg struct {
	Topic       string
	Level       string
	Explanation string
	Err         error
}

type saveDoneMsg struct{}

// ExplainerScreen asks for a topic and difficulty level and renders an
// AI-generated explanation.
type ExplainerScreen struct {
	client  *api.Client
	session *auth.Session
	history *store.Store
	log     logrus.FieldLogger

	topic   components.TextInput
	level   components.OptionPicker
	focus   int // 0 topic, 1 level
	loading bool
	text    string
	errMsg  string
	width   int
}

var _ screen.Screen = (*ExplainerScreen)(nil)
var _ screen.KeyHintProvider = (*ExplainerScreen)(nil)

// New creates the topic explainer screen.
func New(client *api.Client, session *auth.Session, history *store.Store, log logrus.FieldLogger) *ExplainerScreen {
	levels := make([]string, len(quiz.Levels))
	for i, l := range quiz.Levels {
		levels[i] = string(l)
	}
	picker := components.NewOptionPicker("Level", levels)
	picker.Selected = 1 // medium

	s := &ExplainerScreen{
		client:  client,
		session: session,
		history: history,
		log:     log,
		topic:   components.NewTextInput("Topic", "e.g. goroutines", 48),
		level:   picker,
	}
	return s
}

func (s *ExplainerScreen) Title() string {
	return "Explain a Topic"
}

func (s *ExplainerScreen) KeyHints() []layout.KeyHint {
	if s.text != "" {
		return []layout.KeyHint{
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Explain"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExplainerScreen) Init() tea.Cmd {
	return s.topic.Focus()
}

func (s *ExplainerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case explanationMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.text = msg.Explanation
		return s, s.persist(msg.Topic, msg.Level, msg.Explanation)

	case saveDoneMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ExplainerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	// Reading mode: the explanation is on screen.
	if s.text != "" {
		if msg.String() == "n" {
			s.text = ""
			s.errMsg = ""
			s.topic.SetValue("")
			s.focus = 0
			return s, s.topic.Focus()
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "down", "up":
		s.focus = 1 - s.focus
		if s.focus == 0 {
			s.level.Blur()
			return s, s.topic.Focus()
		}
		s.topic.Blur()
		s.level.Focus()
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.focus == 0 {
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	}
	var cmd tea.Cmd
	s.level, cmd = s.level.Update(msg)
	return s, cmd
}

func (s *ExplainerScreen) submit() (screen.Screen, tea.Cmd) {
	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		s.errMsg = "Please enter a topic"
		return s, nil
	}

	s.errMsg = ""
	s.loading = true
	client, level := s.client, s.level.Value()

	return s, func() tea.Msg {
		text, err := client.Explain(context.Background(), topic, quiz.Level(level))
		return explanationMsg{Topic: topic, Level: level, Explanation: text, Err: err}
	}
}

// persist records the explanation remotely and locally. Failures are
// logged and never surfaced; the explanation stays on screen.
func (s *ExplainerScreen) persist(topic, level, text string) tea.Cmd {
	client, token := s.client, s.session.Token()
	history, log := s.history, s.log

	rec := api.ExplanationRecord{Topic: topic, Level: level, Explanation: text}

	return func() tea.Msg {
		if token != "" {
			if err := client.SaveExplanation(context.Background(), token, rec); err != nil {
				log.WithError(err).WithField("topic", topic).Warn("failed to save explanation")
			}
		}
		if history != nil {
			if err := history.SaveExplanation(topic, level, text); err != nil {
				log.WithError(err).Warn("failed to record explanation locally")
			}
		}
		return saveDoneMsg{}
	}
}

func (s *ExplainerScreen) View(width, height int) string {
	var b strings.Builder

	switch {
	case s.loading:
		b.WriteString(theme.Subtitle.Render("Thinking..."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Generating an explanation of " + strings.TrimSpace(s.topic.Value())))

	case s.text != "":
		wrap := min(width-8, 80)
		if wrap < 20 {
			wrap = 20
		}
		body := lipgloss.NewStyle().Width(wrap).Foreground(theme.Text).Render(s.text)
		b.WriteString(theme.Title.Render(strings.TrimSpace(s.topic.Value())))
		b.WriteString("  ")
		b.WriteString(theme.Hint.Render("(" + s.level.Value() + ")"))
		b.WriteString("\n\n")
		b.WriteString(theme.Card.Render(body))

	default:
		b.WriteString(s.topic.View())
		b.WriteString("\n\n")
		b.WriteString(s.level.View())
		if s.errMsg != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
