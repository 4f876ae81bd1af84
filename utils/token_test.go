package utils

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecodeUsername(t *testing.T) {
	token := makeToken(t, map[string]any{
		UsernameClaim: "admin",
		"exp":         4102444800,
	})

	username, err := DecodeUsername(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestDecodeUsernameMissingClaim(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "1"})
	_, err := DecodeUsername(token)
	assert.EqualError(t, err, "token has no username claim")
}

func TestDecodeUsernameMalformedToken(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b"} {
		_, err := DecodeUsername(token)
		assert.Error(t, err, token)
	}
}
