package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"test-connectivity"},
	Short:   "Test connectivity to the Webex API and diagnose issues",
	Long: `Probes the Webex API, checks for stored credentials, and tries the
rooms endpoint. Prints diagnostics only; always exits 0.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor never returns an error: the command is purely diagnostic.
func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cmd.Println("Testing Webex API connectivity...")
	if prober == nil {
		cmd.Println("  api client not configured, skipping probe")
	} else if status, err := prober.Ping(ctx); err != nil {
		cmd.Printf("  network connectivity failed: %v\n", err)
		cmd.Println("  check your internet connection and firewall settings")
		return nil
	} else if status == http.StatusUnauthorized {
		cmd.Println("  network connectivity OK (401 expected without auth)")
	} else {
		cmd.Printf("  network connectivity OK (status: %d)\n", status)
	}

	if tokenStore == nil {
		cmd.Println("  token store not configured, skipping credential check")
		return nil
	}
	tokens, err := tokenStore.Load()
	if err != nil {
		cmd.Printf("  reading stored credentials failed: %v\n", err)
		return nil
	}
	if tokens == nil {
		cmd.Println("  no stored credentials; run 'roomctl auth' to authenticate")
		return nil
	}
	cmd.Println("  authentication tokens loaded")

	cmd.Println("Testing rooms API...")
	if roomService == nil {
		cmd.Println("  room service not configured, skipping")
		return nil
	}
	rooms, err := roomService.List(ctx, 1)
	if err != nil {
		cmd.Printf("  rooms API failed: %v\n", err)
		cmd.Println("  possible causes:")
		cmd.Println("    - the integration is missing the spark:rooms_read scope")
		cmd.Println("    - you are not a member of any Webex space")
		cmd.Println("    - the integration needs recreating at https://developer.webex.com/my-apps")
		return nil
	}
	cmd.Printf("  rooms API working, found %d room(s)\n", len(rooms))
	return nil
}
