// Package logging configures the application logger. The TUI owns the
// terminal, so diagnostics go to a file: fire-and-forget persistence
// failures and API errors are recorded here instead of interrupting the
// interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DefaultLogPath resolves the log file path in priority order:
// 1. EDUGENIE_LOG_FILE environment variable
// 2. $XDG_STATE_HOME/edugenie/edugenie.log
// 3. ~/.local/state/edugenie/edugenie.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("EDUGENIE_LOG_FILE"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "edugenie", "edugenie.log"), nil
}

// NewFileLogger returns a logger appending to the file at path. When the
// file cannot be opened the logger is silenced instead of failing the app.
func NewFileLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}
