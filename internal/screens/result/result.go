package result

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	qz "github.com/edugenie/edugenie/internal/quiz"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/store"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

// resultLoadedMsg carries a past result fetched by topic.
type resultLoadedMsg struct {
	Result *qz.Result
	Err    error
}

// saveDoneMsg confirms the fire-and-forget persistence attempt finished.
// Failures are already logged by the command; nothing is surfaced.
type saveDoneMsg struct{}

// ResultScreen renders a completed quiz outcome with grade and review.
type ResultScreen struct {
	client  *api.Client
	session *auth.Session
	history *store.Store
	log     logrus.FieldLogger

	// topic is set when reviewing a past result; empty for a fresh one.
	// A fresh result always takes precedence; NewFromTopic is only used
	// when no just-completed session exists.
	topic   string
	result  *qz.Result
	onRetry tea.Cmd

	showDetails bool
	errMsg      string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// NewFresh shows the result of a just-completed session. onRetry replays
// the same question set when the user chooses to try again.
func NewFresh(client *api.Client, session *auth.Session, history *store.Store, log logrus.FieldLogger, res *qz.Result, onRetry tea.Cmd) *ResultScreen {
	return &ResultScreen{
		client:  client,
		session: session,
		history: history,
		log:     log,
		result:  res,
		onRetry: onRetry,
	}
}

// NewFromTopic reviews a previously saved result fetched from the backend.
func NewFromTopic(client *api.Client, session *auth.Session, log logrus.FieldLogger, topic string) *ResultScreen {
	return &ResultScreen{
		client:  client,
		session: session,
		log:     log,
		topic:   topic,
	}
}

func (s *ResultScreen) Title() string {
	return "Quiz Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "D", Description: "Details"},
	}
	if s.onRetry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Try again"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.result != nil {
		return s.persist()
	}
	if s.topic == "" {
		// No session data and no topic: nothing to show.
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	client, token, topic := s.client, s.session.Token(), s.topic
	return func() tea.Msg {
		stored, err := client.QuizResultByTopic(context.Background(), token, topic)
		if err != nil {
			return resultLoadedMsg{Err: err}
		}
		return resultLoadedMsg{Result: stored.MapResult()}
	}
}

// persist saves the fresh result to the backend and the local history.
// Both are fire-and-forget: failures are logged, never shown, and the
// rendered result does not depend on either succeeding.
func (s *ResultScreen) persist() tea.Cmd {
	client, token := s.client, s.session.Token()
	history, log, res := s.history, s.log, s.result

	return func() tea.Msg {
		if token != "" {
			if err := client.SaveQuizResult(context.Background(), token, res); err != nil {
				log.WithError(err).WithField("topic", res.Topic).Warn("failed to save quiz result")
			}
		}
		if history != nil {
			if err := history.SaveQuizAttempt(res); err != nil {
				log.WithError(err).Warn("failed to record quiz attempt locally")
			}
		}
		return saveDoneMsg{}
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		return s, nil

	case resultLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = msg.Result
		return s, nil

	case tea.KeyMsg:
		// Fetch failure: one notification, then back to safety.
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "d":
			s.showDetails = !s.showDetails
			return s, nil
		case "r":
			if s.onRetry != nil {
				return s, s.onRetry
			}
		}
	}

	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	if s.errMsg != "" {
		content := theme.Incorrect.Render("✗ Could not load quiz result: "+s.errMsg) +
			"\n\n" + theme.Hint.Render("press any key to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if s.result == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading result..."))
	}

	res := s.result
	var b strings.Builder

	headline := "Keep studying and try again!"
	headlineStyle := theme.Incorrect
	if res.Passed() {
		headline = "Congratulations! You passed!"
		headlineStyle = theme.Correct
	}

	b.WriteString(theme.Title.Render("Quiz Complete!"))
	b.WriteString("\n")
	b.WriteString(headlineStyle.Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%d%%", res.Percentage())))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("   %d out of %d correct   •   Grade %s", res.Score, res.TotalQuestions, res.Grade())))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(res.Percentage())/100, true, 50)
	bar.Fill = theme.Error
	if res.Passed() {
		bar.Fill = theme.Success
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s  •  %s level", res.Topic, res.Level)))
	if res.TimeSpent > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  •  %ds", res.TimeSpent)))
	}
	b.WriteString("\n")

	if s.showDetails {
		b.WriteString("\n")
		b.WriteString(renderDetails(res))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderDetails(res *qz.Result) string {
	var b strings.Builder
	for i, q := range res.Questions {
		marker := theme.Incorrect.Render("✗")
		if q.IsCorrect {
			marker = theme.Correct.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", marker, i+1, q.Question))

		yours := "no answer"
		if q.SelectedAnswer >= 0 && q.SelectedAnswer < len(q.Options) {
			yours = q.Options[q.SelectedAnswer]
		}
		correct := ""
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			correct = q.Options[q.CorrectAnswer]
		}

		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("   yours: %s", yours)))
		if !q.IsCorrect {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("   correct: %s", correct)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
