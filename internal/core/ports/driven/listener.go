package driven

import "time"

// CallbackListener captures the authorization code delivered by the
// provider's browser redirect to the local loopback address.
//
// A listener is single-use: it serves the redirect exactly once and then
// shuts itself down. Binding failure is fatal to the authorization flow;
// there is no alternate-port fallback.
type CallbackListener interface {
	// Start binds the loopback listener and begins serving on its own
	// goroutine.
	Start() error

	// WaitForCode blocks until the redirect delivers a code, the
	// provider reports an authorization failure, or the timeout
	// elapses.
	WaitForCode(timeout time.Duration) (string, error)

	// Stop shuts the listener down if it is still running. Idempotent.
	Stop() error

	// RedirectURI returns the redirect URI the provider must be
	// configured with.
	RedirectURI() string
}
