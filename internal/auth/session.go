// Package auth owns the authentication session lifecycle: a bearer token
// persisted in durable storage, the profile resolved from it, and the
// logout path that clears both. A *Session is built once at startup and
// injected into the screens that need it; there is no ambient singleton.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
)

// Session holds the authenticated user derived from the stored token.
// All mutation happens on the single TUI event loop; concurrent Load
// calls are not coordinated and the last response wins, which is fine
// because the token only changes on explicit user action.
type Session struct {
	client *api.Client
	tokens *TokenStore
	log    logrus.FieldLogger

	user    *api.User
	token   string
	loading bool
}

// NewSession creates a session over the given client and token store.
func NewSession(client *api.Client, tokens *TokenStore, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		client:  client,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// User returns the authenticated profile, or nil.
func (s *Session) User() *api.User { return s.user }

// Token returns the current bearer token, or "".
func (s *Session) Token() string { return s.token }

// IsLoggedIn reports whether a profile has been resolved.
func (s *Session) IsLoggedIn() bool { return s.user != nil }

// Loading reports whether the initial token check is still in flight.
func (s *Session) Loading() bool { return s.loading }

// Load resolves the stored token into an authenticated user. With no
// token stored it returns immediately without any network call. A token
// that fails structural decode, or that the backend rejects, is cleared
// along with the user; the failure path never re-enters Load.
// Load is idempotent; callers invoke it again after login to refresh.
func (s *Session) Load(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	token, err := s.tokens.Read()
	if err != nil {
		return err
	}
	if token == "" {
		s.user = nil
		s.token = ""
		return nil
	}

	if err := decodeToken(token); err != nil {
		s.log.WithError(err).Warn("stored token failed to decode, clearing session")
		s.clear()
		return err
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		s.log.WithError(err).Warn("profile fetch failed, clearing session")
		s.clear()
		return err
	}

	s.token = token
	s.user = user
	return nil
}

// SetToken persists a freshly issued token. The caller follows up with
// Load to resolve the profile.
func (s *Session) SetToken(token string) error {
	if err := s.tokens.Write(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Logout clears the persisted token and the in-memory user.
func (s *Session) Logout() {
	s.clear()
}

func (s *Session) clear() {
	if err := s.tokens.Clear(); err != nil {
		s.log.WithError(err).Warn("failed to clear stored token")
	}
	s.token = ""
	s.user = nil
}

// decodeToken validates the structural shape of a JWT without verifying
// its signature. Verification is the backend's job; the client only
// guards against storing garbage.
func decodeToken(token string) error {
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, jwt.MapClaims{}); err != nil {
		return fmt.Errorf("decode token: %w", err)
	}
	return nil
}
