// Package oauth performs the authorization-code token exchange against
// the provider's token endpoint.
package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/roomctl/roomctl/internal/core/domain"
	"github.com/roomctl/roomctl/internal/core/ports/driven"
)

// Ensure Exchanger implements the interface.
var _ driven.TokenExchanger = (*Exchanger)(nil)

// Exchanger trades an authorization code for tokens with a single form
// POST. The response payload is kept verbatim so the token store can
// persist exactly what the endpoint returned.
type Exchanger struct {
	tokenURL string
	client   *http.Client
}

// NewExchanger creates an exchanger for the given token endpoint.
func NewExchanger(tokenURL string) *Exchanger {
	return &Exchanger{
		tokenURL: tokenURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Exchange performs the authorization_code grant. A non-2xx response is a
// fatal error surfaced with the response body; there is no retry.
func (e *Exchanger) Exchange(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*domain.TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	tokens, err := domain.ParseTokenSet(body)
	if err != nil {
		return nil, fmt.Errorf("token response: %w", err)
	}
	return tokens, nil
}
