package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edugenie/edugenie/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edugenie",
	Short: "AI-powered learning companion",
	Long:  "EduGenie — terminal app for AI-generated quizzes, topic explanations, and document summaries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Backend base URL (overrides EDUGENIE_SERVER_URL env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides EDUGENIE_DB env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveDBPath returns the history database path using --db flag
// (highest priority), then EDUGENIE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}
