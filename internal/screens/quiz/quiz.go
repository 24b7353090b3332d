package quiz

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	qz "github.com/edugenie/edugenie/internal/quiz"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/screens/result"
	"github.com/edugenie/edugenie/internal/store"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

// timerTickMsg advances the per-question countdown. The sequence number
// ties each tick to the question that scheduled it: any transition out of
// the active question bumps the sequence, so a tick scheduled for an
// earlier question can never fire into a later one.
type timerTickMsg struct {
	seq int
}

// restartMsg replays the current question set from the top. Sent by the
// result screen's retry action after it pops itself.
type restartMsg struct{}

// QuizScreen drives one quiz session.
type QuizScreen struct {
	client  *api.Client
	session *auth.Session
	history *store.Store
	log     logrus.FieldLogger

	state    *qz.State
	choice   components.MultiChoice
	timerSeq int
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over an already-started session state.
func New(client *api.Client, session *auth.Session, history *store.Store, log logrus.FieldLogger, state *qz.State) *QuizScreen {
	return &QuizScreen{
		client:  client,
		session: session,
		history: history,
		log:     log,
		state:   state,
	}
}

func (s *QuizScreen) Title() string {
	if s.state != nil {
		return fmt.Sprintf("Quiz: %s", s.state.Topic)
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state != nil && s.state.Phase == qz.PhaseReviewing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Abandon quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon quiz"},
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	// No session state means the screen was entered without configuration;
	// fall back to the setup screen beneath.
	if s.state == nil || len(s.state.Questions) == 0 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s.enterQuestion()
}

// enterQuestion builds the choice component for the current question and
// starts its countdown.
func (s *QuizScreen) enterQuestion() tea.Cmd {
	q := s.state.Current()
	s.choice = components.NewMultiChoice(q.Options, q.CorrectAnswer)
	s.errMsg = ""
	s.timerSeq++
	return s.tickCmd()
}

func (s *QuizScreen) tickCmd() tea.Cmd {
	seq := s.timerSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{seq: seq}
	})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)

	case restartMsg:
		s.state.Restart()
		return s, s.enterQuestion()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// Stale timer from a question already exited.
	if msg.seq != s.timerSeq || s.state.Phase != qz.PhaseActive {
		return s, nil
	}

	if expired := s.state.Tick(); expired {
		// Implicit submit: reflect the recorded answer (or none) and
		// invalidate the countdown.
		s.choice.ChosenIndex = s.state.Answers[s.state.Index]
		s.choice.Lock()
		s.timerSeq++
		s.errMsg = ""
		return s, nil
	}
	return s, s.tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.state.Phase {
	case qz.PhaseActive:
		if msg.String() == "enter" {
			return s.submit()
		}
		// Arrow/number keys select; re-selecting overwrites.
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.ChosenIndex != qz.Unanswered {
			_ = s.state.Select(s.choice.ChosenIndex)
			s.errMsg = ""
		}
		return s, cmd

	case qz.PhaseReviewing:
		switch msg.String() {
		case "enter", "n":
			return s.next()
		}
	}

	return s, nil
}

// submit locks in the current selection. Without a selection the submit
// is rejected with a validation message and nothing changes.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if err := s.state.Submit(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.choice.Lock()
	s.timerSeq++
	s.errMsg = ""
	return s, nil
}

// next advances to the following question, or completes the session and
// pushes the result screen.
func (s *QuizScreen) next() (screen.Screen, tea.Cmd) {
	if err := s.state.Next(); err != nil {
		return s, nil
	}

	if s.state.Phase != qz.PhaseComplete {
		return s, s.enterQuestion()
	}

	res, err := s.state.Result()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	// Retry pops the result screen and replays this session in place.
	onRetry := tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return restartMsg{} },
	)

	next := result.NewFresh(s.client, s.session, s.history, s.log, res, onRetry)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.state == nil {
		return ""
	}
	q := s.state.Current()
	total := len(s.state.Questions)

	var b strings.Builder

	// Progress and timer row.
	header := fmt.Sprintf("Question %d of %d  •  %s level", s.state.Index+1, total, s.state.Level)
	timer := fmt.Sprintf("⏱ %2ds", s.state.TimeLeft)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	if s.state.TimeLeft <= 5 && s.state.Phase == qz.PhaseActive {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(header))
	b.WriteString("   ")
	b.WriteString(timerStyle.Render(timer))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(s.state.Index+1)/float64(total), false, 50)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	// Question text with difficulty badge.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text))
	if q.Difficulty != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("["+q.Difficulty+"]"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.choice.View())
	b.WriteString("\n")

	if s.state.Phase == qz.PhaseReviewing {
		answered := s.state.Answers[s.state.Index]
		if answered == qz.Unanswered {
			b.WriteString(theme.Incorrect.Render("Time's up — no answer recorded"))
		} else if answered == q.CorrectAnswer {
			b.WriteString(theme.Correct.Render("✓ Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Incorrect"))
		}
		if q.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("💡 " + q.Explanation))
		}
	} else if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Score: %d correct so far", s.state.Score)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
