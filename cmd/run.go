package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edugenie/edugenie/internal/api"
	"github.com/edugenie/edugenie/internal/app"
	"github.com/edugenie/edugenie/internal/auth"
	"github.com/edugenie/edugenie/internal/logging"
	"github.com/edugenie/edugenie/internal/store"
)

// runApp builds dependencies, restores the saved session, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	log := newLogger()
	client := buildClient(cmd, log)

	tokens, err := buildTokenStore()
	if err != nil {
		return err
	}
	session := auth.NewSession(client, tokens, log)
	if err := session.Load(ctx); err != nil {
		// A stale or rejected token is not fatal: the app opens on the
		// landing screen instead.
		log.WithError(err).Warn("could not restore session")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve history path: %w", err)
	}
	history, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Local history unavailable:", err)
		history = nil
	} else {
		defer history.Close()
	}

	return app.Run(app.Options{
		API:     client,
		Session: session,
		History: history,
		Log:     log,
	})
}

func newLogger() *logrus.Logger {
	path, err := logging.DefaultLogPath()
	if err != nil {
		path = ""
	}
	return logging.NewFileLogger(path)
}

// buildClient applies the --server flag on top of the environment config.
func buildClient(cmd *cobra.Command, log logrus.FieldLogger) *api.Client {
	cfg := api.ConfigFromEnv()
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.BaseURL = server
	}
	return api.New(cfg, log)
}

func buildTokenStore() (*auth.TokenStore, error) {
	path, err := auth.DefaultTokenPath()
	if err != nil {
		return nil, fmt.Errorf("resolve token path: %w", err)
	}
	return auth.NewTokenStore(path), nil
}
