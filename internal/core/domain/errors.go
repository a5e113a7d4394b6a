package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. All of them are terminal
// for the current invocation; roomctl never retries.
var (
	// ErrMissingCredentials indicates the OAuth client credentials are
	// not configured. No network activity happens after this.
	ErrMissingCredentials = errors.New("missing OAuth client credentials")

	// ErrAuthorizationFailed indicates the browser flow completed
	// without delivering an authorization code.
	ErrAuthorizationFailed = errors.New("authorization failed")

	// ErrAuthExpired indicates the remote API rejected the cached
	// access token. The credential file is deleted when this surfaces,
	// so the next invocation re-authenticates.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrNoMatch indicates a room search found no matching rooms.
	ErrNoMatch = errors.New("no matching room")
)
