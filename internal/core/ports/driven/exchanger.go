package driven

import (
	"context"

	"github.com/roomctl/roomctl/internal/core/domain"
)

// TokenExchanger trades an authorization code for a credential payload
// at the provider's token endpoint.
type TokenExchanger interface {
	// Exchange performs a single authorization_code grant. A
	// non-success response is returned as an error carrying the raw
	// response body; there is no retry.
	Exchange(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*domain.TokenSet, error)
}
