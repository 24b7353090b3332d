package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/screens/dashboard"
	"github.com/edugenie/edugenie/internal/screens/landing"
	"github.com/edugenie/edugenie/internal/store"
	"github.com/edugenie/edugenie/internal/ui/layout"
)

// Options carries the shared dependencies every screen draws from.
type Options struct {
	API     *api.Client
	Session *auth.Session
	History *store.Store
	Log     logrus.FieldLogger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *auth.Session
	width   int
	height  int
}

// newAppModel creates the root model. A restored session opens straight
// on the dashboard, otherwise the landing screen. The landing and
// dashboard screens construct one another through factories so that the
// packages do not import each other.
func newAppModel(opts Options) AppModel {
	var dashboardFactory func() screen.Screen
	landingFactory := func() screen.Screen {
		return landing.New(opts.API, opts.Session, dashboardFactory)
	}
	dashboardFactory = func() screen.Screen {
		return dashboard.New(opts.API, opts.Session, opts.History, opts.Log, landingFactory)
	}

	var initial screen.Screen
	if opts.Session.IsLoggedIn() {
		initial = dashboardFactory()
	} else {
		initial = landingFactory()
	}

	return AppModel{
		router:  router.New(initial),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userName := ""
	if user := m.session.User(); user != nil {
		userName = user.Name
	}

	header := layout.RenderHeader(title, userName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinted.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
