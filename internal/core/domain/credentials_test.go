package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenSet(t *testing.T) {
	raw := []byte(`{"access_token":"abc","refresh_token":"def","expires_in":1209600}`)

	tokens, err := ParseTokenSet(raw)

	require.NoError(t, err)
	assert.Equal(t, "abc", tokens.AccessToken)
	// The payload is kept verbatim, extra fields included.
	assert.JSONEq(t, string(raw), string(tokens.Raw))
}

func TestParseTokenSet_InvalidJSON(t *testing.T) {
	tokens, err := ParseTokenSet([]byte("not json"))

	require.Error(t, err)
	assert.Nil(t, tokens)
}

func TestParseTokenSet_MissingAccessToken(t *testing.T) {
	tokens, err := ParseTokenSet([]byte(`{"refresh_token":"def"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
	assert.Nil(t, tokens)
}
