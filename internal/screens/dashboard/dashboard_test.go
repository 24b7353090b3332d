package dashboard

import (
	"io"
	"net/http"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/router"
	"github.com/edugenie/edugenie/internal/screen"
)

type fakeLanding struct{}

func (f fakeLanding) Init() tea.Cmd                           { return nil }
func (f fakeLanding) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f fakeLanding) View(width, height int) string           { return "" }
func (f fakeLanding) Title() string                           { return "Welcome" }

func newTestDashboard(t *testing.T) (*DashboardScreen, *auth.Session) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	client := api.New(api.DefaultConfig(), log)
	tokens := auth.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	session := auth.NewSession(client, tokens, log)
	d := New(client, session, nil, log, func() screen.Screen { return fakeLanding{} })
	return d, session
}

func TestExpiredTokenReturnsToLanding(t *testing.T) {
	d, session := newTestDashboard(t)
	if err := session.SetToken("stale-token"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	_, cmd := d.Update(statsLoadedMsg{Err: &api.APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "jwt expired",
	}})
	if cmd == nil {
		t.Fatal("expected a command after an unauthorized stats load")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want router.ReplaceScreenMsg", cmd())
	}
	if msg.Screen.Title() != "Welcome" {
		t.Errorf("replaced with %q, want the landing screen", msg.Screen.Title())
	}
	if session.Token() != "" {
		t.Error("session token not cleared after unauthorized response")
	}
	if d.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", d.errMsg)
	}
}

func TestServerErrorStaysOnDashboard(t *testing.T) {
	d, _ := newTestDashboard(t)

	_, cmd := d.Update(statsLoadedMsg{Err: &api.APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "something broke",
	}})
	if cmd != nil {
		t.Fatal("expected no command for a non-auth error")
	}
	if d.errMsg == "" {
		t.Error("errMsg not set for a failed stats load")
	}
}
