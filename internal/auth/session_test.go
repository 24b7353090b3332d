package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/api"
)

// structurally valid JWT (header.payload.signature), not signed by anyone.
const testJWT = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiJ1MSJ9." +
	"c2lnbmF0dXJl"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestSession(t *testing.T, handler http.HandlerFunc) (*Session, *TokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := quietLogger()
	client := api.New(api.Config{BaseURL: srv.URL, Timeout: api.DefaultConfig().Timeout}, log)
	tokens := NewTokenStore(filepath.Join(t.TempDir(), "token"))
	return NewSession(client, tokens, log), tokens
}

func TestLoad_NoToken_NoNetwork(t *testing.T) {
	var calls atomic.Int32
	session, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if session.IsLoggedIn() {
		t.Error("logged in with no token")
	}
	if calls.Load() != 0 {
		t.Errorf("%d network calls with no token, want 0", calls.Load())
	}
}

func TestLoad_ValidToken(t *testing.T) {
	session, tokens := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testJWT {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"_id": "u1", "name": "Ada", "email": "ada@b.com"})
	})

	if err := tokens.Write(testJWT); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !session.IsLoggedIn() {
		t.Fatal("expected logged-in session")
	}
	if session.User().Name != "Ada" {
		t.Errorf("user name = %q", session.User().Name)
	}
	if session.Token() != testJWT {
		t.Error("token not retained")
	}
}

func TestLoad_MalformedTokenClearsWithoutNetwork(t *testing.T) {
	var calls atomic.Int32
	session, tokens := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	if err := tokens.Write("not-a-jwt"); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if err := session.Load(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
	if calls.Load() != 0 {
		t.Errorf("%d network calls for undecodable token, want 0", calls.Load())
	}

	stored, err := tokens.Read()
	if err != nil {
		t.Fatalf("read token: %v", err)
	}
	if stored != "" {
		t.Error("malformed token not cleared from storage")
	}
}

func TestLoad_RejectedTokenClears(t *testing.T) {
	session, tokens := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	})

	if err := tokens.Write(testJWT); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if err := session.Load(context.Background()); err == nil {
		t.Fatal("expected rejection error")
	}
	if session.IsLoggedIn() {
		t.Error("session logged in after rejection")
	}

	stored, _ := tokens.Read()
	if stored != "" {
		t.Error("rejected token not cleared from storage")
	}
}

func TestLogout_ClearsEverything(t *testing.T) {
	session, tokens := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"_id": "u1", "name": "Ada", "email": "ada@b.com"})
	})

	tokens.Write(testJWT)
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	session.Logout()

	if session.IsLoggedIn() || session.Token() != "" {
		t.Error("session state survived logout")
	}
	stored, _ := tokens.Read()
	if stored != "" {
		t.Error("token survived logout")
	}

	// A fresh load after logout must stay signed out with no network call.
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("load after logout: %v", err)
	}
	if session.IsLoggedIn() {
		t.Error("logged in after logout")
	}
}

func TestTokenStore_ReadMissing(t *testing.T) {
	tokens := NewTokenStore(filepath.Join(t.TempDir(), "nope", "token"))
	got, err := tokens.Read()
	if err != nil {
		t.Fatalf("read missing: %v", err)
	}
	if got != "" {
		t.Errorf("read missing = %q, want empty", got)
	}
}

func TestTokenStore_RoundTrip(t *testing.T) {
	tokens := NewTokenStore(filepath.Join(t.TempDir(), "token"))
	if err := tokens.Write("  tok  \n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := tokens.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "tok" {
		t.Errorf("read = %q, want trimmed token", got)
	}
	if err := tokens.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := tokens.Clear(); err != nil {
		t.Fatalf("clear missing: %v", err)
	}
}
