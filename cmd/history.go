package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edugenie/edugenie/internal/quiz"
	"github.com/edugenie/edugenie/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz attempts from the local history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve history path: %w", err)
		}
		history, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer history.Close()

		attempts, err := history.RecentAttempts(limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No quiz attempts recorded yet.")
			return nil
		}

		for _, a := range attempts {
			res := quiz.Result{Score: a.Score, TotalQuestions: a.TotalQuestions}
			fmt.Printf("%s  %-24s %s  %d/%d (%d%%, %s)\n",
				a.CreatedAt.Format("2006-01-02 15:04"),
				a.Topic,
				a.Level,
				a.Score,
				a.TotalQuestions,
				res.Percentage(),
				res.Grade(),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to list")
}
