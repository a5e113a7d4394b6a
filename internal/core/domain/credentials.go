package domain

import (
	"encoding/json"
	"fmt"
)

// TokenSet holds the credential payload returned by the token endpoint.
// The payload is opaque pass-through: whatever the endpoint returned is
// persisted and reloaded verbatim. Only access_token is interpreted, and
// every consumer treats it as mandatory.
type TokenSet struct {
	// AccessToken is extracted from the payload for API calls.
	AccessToken string

	// Raw is the verbatim JSON payload from the token endpoint.
	Raw json.RawMessage
}

// ParseTokenSet builds a TokenSet from a raw token-endpoint payload.
// It fails if the payload is not JSON or carries no access_token.
func ParseTokenSet(raw []byte) (*TokenSet, error) {
	var fields struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("parse token payload: %w", err)
	}
	if fields.AccessToken == "" {
		return nil, fmt.Errorf("token payload has no access_token")
	}
	return &TokenSet{
		AccessToken: fields.AccessToken,
		Raw:         append(json.RawMessage(nil), raw...),
	}, nil
}
