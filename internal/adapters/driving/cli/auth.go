package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Webex (re-authenticate if already authenticated)",
	Long: `Removes any stored credentials and runs the browser authorization
flow from scratch. Use this when tokens are stale or you want to switch
accounts.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if err := authService.Reset(); err != nil {
		return fmt.Errorf("remove existing authentication: %w", err)
	}
	cmd.Println("Removed existing authentication")

	if _, err := authService.EnsureToken(context.Background()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	cmd.Println("Authentication complete")
	return nil
}
