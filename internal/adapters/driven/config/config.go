// Package config loads roomctl configuration from an optional TOML file
// with environment variable overrides. Environment always wins, matching
// how the integration credentials are normally supplied.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/roomctl/roomctl/internal/logger"
)

// Fixed provider configuration. There is exactly one grant type, one scope,
// and one local redirect target; none of these are user-tunable.
const (
	AuthURL  = "https://webexapis.com/v1/authorize"
	TokenURL = "https://webexapis.com/v1/access_token"
	Scope    = "spark:rooms_read"

	// CallbackPort is the fixed loopback port for the OAuth redirect.
	// The integration must be registered with
	// http://localhost:6001/callback as its redirect URI.
	CallbackPort = 6001
)

// DefaultMaxRooms is how many rooms list shows when not overridden.
const DefaultMaxRooms = 100

// Environment variable names.
const (
	EnvClientID     = "WEBEX_CLIENT_ID"
	EnvClientSecret = "WEBEX_CLIENT_SECRET"
	EnvMaxRooms     = "WEBEX_MAX_ROOMS"
)

// Config holds the user-suppliable settings.
type Config struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	MaxRooms     int    `toml:"max_rooms"`
}

// Load reads the config file at path (empty means ~/.roomctl/config.toml)
// and applies environment overrides. A missing file is fine; a malformed
// file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{MaxRooms: DefaultMaxRooms}

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".roomctl", "config.toml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file yet - that's fine, env may cover it.
		case err != nil:
			return nil, err
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
			logger.Debug("loaded config from %s", path)
		}
	}

	if v := os.Getenv(EnvClientID); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		cfg.ClientSecret = v
	}
	if v := os.Getenv(EnvMaxRooms); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			logger.Warn("ignoring invalid %s=%q", EnvMaxRooms, v)
		} else {
			cfg.MaxRooms = n
		}
	}

	if cfg.MaxRooms <= 0 {
		cfg.MaxRooms = DefaultMaxRooms
	}
	return cfg, nil
}
