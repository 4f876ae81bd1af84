package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expiresAt"`
}

// SessionUser is what the frontend knows about the signed-in admin,
// derived from the token's claims.
type SessionUser struct {
	Username string `json:"username"`
}
