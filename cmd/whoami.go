package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		client := buildClient(cmd, log)

		tokens, err := buildTokenStore()
		if err != nil {
			return err
		}
		token, err := tokens.Read()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token == "" {
			fmt.Println("Not signed in.")
			return nil
		}

		user, err := client.Me(cmd.Context(), token)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}
