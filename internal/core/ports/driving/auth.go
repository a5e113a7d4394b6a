package driving

import (
	"context"

	"github.com/roomctl/roomctl/internal/core/domain"
)

// AuthService ensures the user holds usable credentials.
type AuthService interface {
	// EnsureToken returns cached credentials when present, otherwise
	// drives the full browser authorization flow and persists the
	// result. Cached credentials are trusted without an expiry check;
	// staleness is only discovered when an API call fails.
	EnsureToken(ctx context.Context) (*domain.TokenSet, error)

	// Reset deletes any cached credentials so the next EnsureToken
	// call re-runs the authorization flow.
	Reset() error
}
