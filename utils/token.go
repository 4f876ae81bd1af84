package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// UsernameClaim is the claim key the backend uses for the display name.
const UsernameClaim = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"

// DecodeUsername extracts the username claim from a bearer token without
// verifying the signature. The payload is trusted for display purposes
// only; real authorization happens on the backend for every API call.
func DecodeUsername(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}

	username, ok := claims[UsernameClaim].(string)
	if !ok || username == "" {
		return "", errors.New("token has no username claim")
	}
	return username, nil
}
