package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
	"github.com/edugenie/edugenie/internal/ui/components"
	"github.com/edugenie/edugenie/internal/ui/layout"
	"github.com/edugenie/edugenie/internal/ui/theme"
)

// Mode selects between the login and signup forms.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

// authDoneMsg is sent when the login/signup round-trip completes.
type authDoneMsg struct {
	Err error
}

// LoginScreen is the combined login/signup form.
type LoginScreen struct {
	client           *api.Client
	session          *auth.Session
	dashboardFactory func() screen.Screen

	mode    Mode
	inputs  []components.TextInput
	focused int
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a login or signup screen.
func New(client *api.Client, session *auth.Session, mode Mode, dashboardFactory func() screen.Screen) *LoginScreen {
	s := &LoginScreen{
		client:           client,
		session:          session,
		dashboardFactory: dashboardFactory,
		mode:             mode,
	}

	email := components.NewTextInput("Email", "you@example.com", 64)
	password := components.NewPasswordInput("Password", "", 64)

	if mode == ModeSignup {
		name := components.NewTextInput("Name", "Your name", 64)
		confirm := components.NewPasswordInput("Confirm password", "", 64)
		s.inputs = []components.TextInput{name, email, password, confirm}
	} else {
		s.inputs = []components.TextInput{email, password}
	}

	return s
}

func (s *LoginScreen) Title() string {
	if s.mode == ModeSignup {
		return "Sign Up"
	}
	return "Log In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.inputs[0].Focus()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		dash := s.dashboardFactory()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: dash}
		}

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % len(s.inputs))
		case "shift+tab", "up":
			return s, s.focusField((s.focused - 1 + len(s.inputs)) % len(s.inputs))
		case "enter":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *LoginScreen) focusField(i int) tea.Cmd {
	s.inputs[s.focused].Blur()
	s.focused = i
	return s.inputs[s.focused].Focus()
}

// submit validates locally, then runs the auth round-trip as a command.
func (s *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	var name, email, password, confirm string
	if s.mode == ModeSignup {
		name = strings.TrimSpace(s.inputs[0].Value())
		email = strings.TrimSpace(s.inputs[1].Value())
		password = s.inputs[2].Value()
		confirm = s.inputs[3].Value()
	} else {
		email = strings.TrimSpace(s.inputs[0].Value())
		password = s.inputs[1].Value()
	}

	// Validation failures never reach the network.
	if s.mode == ModeSignup && name == "" {
		s.errMsg = "name is required"
		return s, nil
	}
	if email == "" || password == "" {
		s.errMsg = "email and password are required"
		return s, nil
	}
	if s.mode == ModeSignup && password != confirm {
		s.errMsg = "passwords do not match"
		return s, nil
	}

	s.errMsg = ""
	s.busy = true
	mode := s.mode
	client, session := s.client, s.session

	return s, func() tea.Msg {
		ctx := context.Background()

		if mode == ModeSignup {
			if err := client.Signup(ctx, name, email, password); err != nil {
				return authDoneMsg{Err: err}
			}
		}

		token, err := client.Login(ctx, email, password)
		if err != nil {
			return authDoneMsg{Err: err}
		}
		if err := session.SetToken(token); err != nil {
			return authDoneMsg{Err: err}
		}
		if err := session.Load(ctx); err != nil {
			return authDoneMsg{Err: err}
		}
		return authDoneMsg{}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	title := "Welcome back"
	if s.mode == ModeSignup {
		title = "Create your account"
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")

	for i := range s.inputs {
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n\n")
	}

	if s.busy {
		b.WriteString(theme.Hint.Render("Signing in..."))
	} else if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
