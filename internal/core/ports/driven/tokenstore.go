package driven

import "github.com/roomctl/roomctl/internal/core/domain"

// TokenStore persists the OAuth credential payload on local disk.
// It is the sole source of truth for "are we authenticated": a loadable
// payload is trusted as-is, with no expiry check, until an API call
// proves it invalid.
type TokenStore interface {
	// Load reads the stored credentials. Returns (nil, nil) when no
	// credentials exist, including when the file exists but does not
	// parse; a corrupt file is "not authenticated", never fatal.
	Load() (*domain.TokenSet, error)

	// Save writes the credential payload verbatim, replacing any
	// previous content.
	Save(tokens *domain.TokenSet) error

	// Clear deletes the stored credentials. Idempotent.
	Clear() error
}
