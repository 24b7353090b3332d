package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/screens/explainer"
	progressscreen "github.com/edugenie/edugenie/internal/screens/progress"
	"github.com/edugenie/edugenie/internal/screens/setup"
	"github.com/edugenie/edugenie/internal/screens/summarizer"
	"github.com/edugenie/edugenie/internal/store"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

// statsLoadedMsg carries the /dashboard/ aggregate.
type statsLoadedMsg struct {
	Stats *api.DashboardStats
	Err   error
}

// DashboardScreen is the authenticated home screen.
type DashboardScreen struct {
	client         *api.Client
	session        *auth.Session
	history        *store.Store
	log            logrus.FieldLogger
	landingFactory func() screen.Screen

	menu   components.Menu
	stats  *api.DashboardStats
	loaded bool
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. landingFactory produces the screen the stack
// resets to on logout.
func New(client *api.Client, session *auth.Session, history *store.Store, log logrus.FieldLogger, landingFactory func() screen.Screen) *DashboardScreen {
	d := &DashboardScreen{
		client:         client,
		session:        session,
		history:        history,
		log:            log,
		landingFactory: landingFactory,
	}

	d.menu = components.NewMenu([]components.MenuItem{
		{Label: "START A QUIZ", Hint: "timed multiple-choice questions", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(client, session, history, log)}
			}
		}},
		{Label: "EXPLAIN A TOPIC", Hint: "plain-language explanation", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: explainer.New(client, session, history, log)}
			}
		}},
		{Label: "SUMMARIZE A DOCUMENT", Hint: "web page or PDF", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summarizer.New(client)}
			}
		}},
		{Label: "MY PROGRESS", Hint: "past quizzes and explanations", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(client, session)}
			}
		}},
		{Label: "LOG OUT", Action: func() tea.Cmd {
			session.Logout()
			landing := landingFactory()
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: landing}
			}
		}},
	})

	return d
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	client, token := d.client, d.session.Token()
	return func() tea.Msg {
		stats, err := client.Dashboard(context.Background(), token)
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		d.loaded = true
		if msg.Err != nil {
			var apiErr *api.APIError
			if errors.As(msg.Err, &apiErr) && apiErr.IsAuthError() {
				// The server no longer accepts the stored token.
				d.session.Logout()
				landing := d.landingFactory()
				return d, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: landing}
				}
			}
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.stats = msg.Stats
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	var sections []string

	greeting := "Hello!"
	if u := d.session.User(); u != nil {
		greeting = fmt.Sprintf("Hello, %s!", u.Name)
	}
	sections = append(sections, theme.Title.Render(greeting))

	switch {
	case !d.loaded:
		sections = append(sections, theme.Hint.Render("Loading your stats..."))
	case d.errMsg != "":
		sections = append(sections, theme.Incorrect.Render("✗ "+d.errMsg))
	case d.stats != nil:
		sections = append(sections, renderStats(d.stats))
	}

	sections = append(sections, "")
	sections = append(sections, d.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderStats(stats *api.DashboardStats) string {
	box := func(value, label string) string {
		return theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value) +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		box(fmt.Sprintf("%d", stats.TotalQuizGiven), "quizzes taken"),
		"  ",
		box(fmt.Sprintf("%d", stats.TotalTopicsExplained), "topics explained"),
		"  ",
		box(fmt.Sprintf("%.0f%%", stats.AvgQuizPercent), "average score"),
	)
}
