package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, err := buildTokenStore()
		if err != nil {
			return err
		}
		if err := tokens.Clear(); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}
