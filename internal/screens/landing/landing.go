package landing

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/screens/login"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAfter  = 600 * time.Millisecond
)

const lampArt = `   ╭─────────╮
   │  ✦ ✧ ✦  │
   │ ╭─────╮ │
   │ │ ◠ ◡ │ │
   │ ╰─────╯ │
   ╰────┬────╯
     ───┴───`

type tickMsg time.Time

// LandingScreen is shown when no session is active: a short splash, then
// a menu offering login or signup.
type LandingScreen struct {
	client           *api.Client
	session          *auth.Session
	dashboardFactory func() screen.Screen
	menu             components.Menu
	elapsed          time.Duration
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates the landing screen. dashboardFactory produces the screen to
// replace the stack with once authentication succeeds.
func New(client *api.Client, session *auth.Session, dashboardFactory func() screen.Screen) *LandingScreen {
	l := &LandingScreen{
		client:           client,
		session:          session,
		dashboardFactory: dashboardFactory,
	}
	l.menu = components.NewMenu([]components.MenuItem{
		{Label: "LOG IN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: login.New(client, session, login.ModeLogin, dashboardFactory),
				}
			}
		}},
		{Label: "SIGN UP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: login.New(client, session, login.ModeSignup, dashboardFactory),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return l
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if l.elapsed < bannerAfter {
			l.elapsed += tickInterval
			return l, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(lampArt))

	if l.elapsed >= bannerAfter {
		sections = append(sections, "")
		sections = append(sections, theme.Title.Render("EduGenie"))
		sections = append(sections, theme.Subtitle.Render("Learn anything. Quiz everything."))
		sections = append(sections, "")
		sections = append(sections, l.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
