package setup

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	qz "github.com/edugenie/edugenie/internal/quiz"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	quizscreen "github.com/edugenie/edugenie/internal/screens/quiz"
	"github.com/edugenie/edugenie/internal/store"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

// quizReadyMsg is sent when question generation completes.
type quizReadyMsg struct {
	Config    qz.Config
	Questions []qz.Question
	Err       error
}

const (
	fieldTopic = iota
	fieldLevel
	fieldCount
)

// SetupScreen collects the quiz configuration and generates questions.
type SetupScreen struct {
	client  *api.Client
	session *auth.Session
	history *store.Store
	log     logrus.FieldLogger

	topic   components.TextInput
	level   components.OptionPicker
	count   components.TextInput
	focused int
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the quiz setup screen.
func New(client *api.Client, session *auth.Session, history *store.Store, log logrus.FieldLogger) *SetupScreen {
	levels := make([]string, len(qz.Levels))
	for i, l := range qz.Levels {
		levels[i] = string(l)
	}

	s := &SetupScreen{
		client:  client,
		session: session,
		history: history,
		log:     log,
		topic:   components.NewTextInput("Topic", "JavaScript, photosynthesis, ...", 80),
		level:   components.NewOptionPicker("Level", levels),
		count:   components.NewNumericInput("Questions (1-20)", "5", 2),
	}
	s.level.Selected = 1 // medium
	s.count.SetValue("5")
	return s
}

func (s *SetupScreen) Title() string {
	return "Quiz Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Level"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.topic.Focus()
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		// Hand the session object to the quiz screen; nothing is written
		// to ambient storage between screens.
		state, err := qz.NewState(msg.Config, msg.Questions)
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		next := quizscreen.New(s.client, s.session, s.history, s.log, state)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % 3)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + 2) % 3)
		case "enter":
			return s.submit()
		}
	}

	return s, s.routeToFocused(msg)
}

func (s *SetupScreen) routeToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focused {
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	case fieldLevel:
		s.level, cmd = s.level.Update(msg)
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	}
	return cmd
}

func (s *SetupScreen) focusField(i int) tea.Cmd {
	s.topic.Blur()
	s.level.Blur()
	s.count.Blur()
	s.focused = i
	switch i {
	case fieldTopic:
		return s.topic.Focus()
	case fieldLevel:
		s.level.Focus()
	case fieldCount:
		return s.count.Focus()
	}
	return nil
}

// submit validates the configuration client-side, then generates.
func (s *SetupScreen) submit() (screen.Screen, tea.Cmd) {
	count, err := s.count.NumericValue()
	if err != nil {
		count = 0
	}
	cfg := qz.Config{
		Topic:        strings.TrimSpace(s.topic.Value()),
		Level:        qz.Level(s.level.Value()),
		NumQuestions: count,
	}
	if err := cfg.Validate(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.busy = true
	client := s.client

	return s, func() tea.Msg {
		questions, err := client.GenerateQuiz(context.Background(), cfg)
		return quizReadyMsg{Config: cfg, Questions: questions, Err: err}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Create your quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("AI-generated questions on any topic"))
	b.WriteString("\n\n")

	b.WriteString(s.topic.View())
	b.WriteString("\n\n")
	b.WriteString(s.level.View())
	b.WriteString("\n\n")
	b.WriteString(s.count.View())
	b.WriteString("\n\n")

	if s.busy {
		b.WriteString(theme.Hint.Render("Generating questions..."))
	} else if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
