package services

import (
	"context"
	"errors"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/models"
	"github.com/verdantea/teahouse-web/utils"
)

type AuthService struct {
	client *apiclient.Client
}

func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a bearer token and derives the display
// user from the token's claims. On failure the session is left untouched;
// the caller decides what to store.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, models.SessionUser, error) {
	resp := apiclient.Post[models.LoginResponse](ctx, s.client, "/api/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	})
	if !resp.OK() {
		if resp.Err != "" {
			return "", models.SessionUser{}, errors.New(resp.Err)
		}
		return "", models.SessionUser{}, errors.New("login failed")
	}
	if resp.Data == nil || resp.Data.Token == "" {
		return "", models.SessionUser{}, errors.New("no token received")
	}

	user, err := UserFromToken(resp.Data.Token)
	if err != nil {
		return "", models.SessionUser{}, err
	}
	return resp.Data.Token, user, nil
}

// UserFromToken decodes a stored token's claims into a session user.
// The signature is not verified; the claims are display-only.
func UserFromToken(token string) (models.SessionUser, error) {
	username, err := utils.DecodeUsername(token)
	if err != nil {
		return models.SessionUser{}, err
	}
	return models.SessionUser{Username: username}, nil
}
