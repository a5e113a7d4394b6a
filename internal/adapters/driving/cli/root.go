// Package cli implements the roomctl command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roomctl/roomctl/internal/adapters/driven/config"
	tokenexchange "github.com/roomctl/roomctl/internal/adapters/driven/oauth"
	"github.com/roomctl/roomctl/internal/adapters/driven/tokenfile"
	"github.com/roomctl/roomctl/internal/adapters/driven/webex"
	callback "github.com/roomctl/roomctl/internal/adapters/driving/oauth"
	"github.com/roomctl/roomctl/internal/core/ports/driven"
	"github.com/roomctl/roomctl/internal/core/ports/driving"
	"github.com/roomctl/roomctl/internal/core/services"
	"github.com/roomctl/roomctl/internal/logger"
)

var version = "dev"

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Services the commands run against. Wired lazily in the root
// PersistentPreRunE so flag values are available; tests install fakes
// before executing commands, which skips wiring.
var (
	authService driving.AuthService
	roomService driving.RoomService
	tokenStore  driven.TokenStore
	prober      connectivityProber
	maxRooms    = config.DefaultMaxRooms
)

// connectivityProber is what the doctor command needs from the API client.
type connectivityProber interface {
	Ping(ctx context.Context) (int, error)
}

var (
	verbose     bool
	authTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "roomctl",
	Short: "Find Webex room IDs by room name",
	Long: `roomctl authenticates against the Webex API with the OAuth2
authorization-code flow and lets you find room IDs by name or list the
rooms you are a member of, sorted by recent activity.

First-time use needs a Webex Integration (https://developer.webex.com/my-apps)
with redirect URI http://localhost:6001/callback and scope spark:rooms_read;
export its credentials as WEBEX_CLIENT_ID and WEBEX_CLIENT_SECRET.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if roomService != nil {
			return nil
		}
		return wire()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().DurationVar(&authTimeout, "auth-timeout", services.DefaultCallbackTimeout,
		"how long to wait for the browser authorization callback")
}

// wire builds the production service graph.
func wire() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	store, err := tokenfile.NewStore("")
	if err != nil {
		return fmt.Errorf("locate credential file: %w", err)
	}

	client := webex.NewClient("")

	auth := services.NewAuthenticator(
		services.AuthConfig{
			ClientID:        cfg.ClientID,
			ClientSecret:    cfg.ClientSecret,
			AuthURL:         config.AuthURL,
			Scope:           config.Scope,
			CallbackTimeout: authTimeout,
		},
		store,
		tokenexchange.NewExchanger(config.TokenURL),
		func(state string) driven.CallbackListener {
			return callback.NewCallbackServer(config.CallbackPort, state)
		},
		callback.OpenBrowser,
		os.Stdout,
	)

	authService = auth
	roomService = services.NewRooms(auth, client, store)
	tokenStore = store
	prober = client
	maxRooms = cfg.MaxRooms
	return nil
}

// Execute runs the CLI. Any error maps to exit code 1; exit codes are
// decided here and nowhere else.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
