package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/roomctl/roomctl/internal/core/domain"
	"github.com/roomctl/roomctl/internal/core/ports/driven"
	"github.com/roomctl/roomctl/internal/core/ports/driving"
	"github.com/roomctl/roomctl/internal/logger"
)

// DefaultCallbackTimeout bounds the wait for the browser redirect.
const DefaultCallbackTimeout = 5 * time.Minute

// Ensure Authenticator implements the AuthService interface.
var _ driving.AuthService = (*Authenticator)(nil)

// AuthConfig carries everything the authorization flow needs.
type AuthConfig struct {
	// ClientID and ClientSecret identify the registered integration.
	// Both are required before any listener is started.
	ClientID     string
	ClientSecret string

	// AuthURL is the provider's authorization endpoint.
	AuthURL string

	// Scope is the single scope requested.
	Scope string

	// CallbackTimeout bounds the wait for the browser redirect.
	// Zero means DefaultCallbackTimeout.
	CallbackTimeout time.Duration
}

// Authenticator drives the OAuth2 authorization-code flow: cached
// credentials when available, otherwise browser redirect, local callback,
// code exchange, and persistence.
type Authenticator struct {
	cfg         AuthConfig
	store       driven.TokenStore
	exchanger   driven.TokenExchanger
	newListener func(state string) driven.CallbackListener
	openBrowser func(url string) error
	out         io.Writer
}

// NewAuthenticator wires an authorization orchestrator. newListener builds
// the one-shot callback listener for a given state parameter; openBrowser
// launches the system browser. out receives user-facing progress messages.
func NewAuthenticator(
	cfg AuthConfig,
	store driven.TokenStore,
	exchanger driven.TokenExchanger,
	newListener func(state string) driven.CallbackListener,
	openBrowser func(url string) error,
	out io.Writer,
) *Authenticator {
	if cfg.CallbackTimeout == 0 {
		cfg.CallbackTimeout = DefaultCallbackTimeout
	}
	if out == nil {
		out = io.Discard
	}
	return &Authenticator{
		cfg:         cfg,
		store:       store,
		exchanger:   exchanger,
		newListener: newListener,
		openBrowser: openBrowser,
		out:         out,
	}
}

// EnsureToken returns cached credentials when present, otherwise runs the
// full authorization flow. Cached credentials are trusted with no expiry
// check; a downstream unauthorized response is what invalidates them.
func (a *Authenticator) EnsureToken(ctx context.Context) (*domain.TokenSet, error) {
	tokens, err := a.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if tokens != nil {
		logger.Debug("using cached credentials")
		return tokens, nil
	}
	return a.authorize(ctx)
}

// Reset deletes any cached credentials.
func (a *Authenticator) Reset() error {
	return a.store.Clear()
}

func (a *Authenticator) authorize(ctx context.Context) (*domain.TokenSet, error) {
	if a.cfg.ClientID == "" || a.cfg.ClientSecret == "" {
		return nil, fmt.Errorf(
			"%w: set WEBEX_CLIENT_ID and WEBEX_CLIENT_SECRET\n"+
				"Get these by creating a Webex Integration at https://developer.webex.com/my-apps\n"+
				"Required scope: %s",
			domain.ErrMissingCredentials, a.cfg.Scope)
	}

	state := uuid.New().String()
	listener := a.newListener(state)
	if err := listener.Start(); err != nil {
		return nil, fmt.Errorf("start callback listener: %w", err)
	}
	defer listener.Stop()

	conf := &oauth2.Config{
		ClientID:     a.cfg.ClientID,
		ClientSecret: a.cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{AuthURL: a.cfg.AuthURL},
		RedirectURL:  listener.RedirectURI(),
		Scopes:       []string{a.cfg.Scope},
	}
	authURL := conf.AuthCodeURL(state)

	fmt.Fprintf(a.out, "Opening browser for Webex authentication...\n")
	fmt.Fprintf(a.out, "If the browser doesn't open automatically, visit:\n%s\n", authURL)

	if err := a.openBrowser(authURL); err != nil {
		// The URL was printed; the user can still open it by hand.
		logger.Warn("open browser: %v", err)
	}

	code, err := listener.WaitForCode(a.cfg.CallbackTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthorizationFailed, err)
	}

	logger.Debug("authorization code received, exchanging for tokens")
	tokens, err := a.exchanger.Exchange(ctx, a.cfg.ClientID, a.cfg.ClientSecret, code, listener.RedirectURI())
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	if err := a.store.Save(tokens); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	fmt.Fprintln(a.out, "Authentication successful. Tokens saved.")
	return tokens, nil
}
