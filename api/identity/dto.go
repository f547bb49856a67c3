// Package identity provides operator authentication for the protected routes.
package identity

// TokenRequest carries the shared operator key.
type TokenRequest struct {
	Key string `json:"key" binding:"required"`
}

// TokenResponse carries the signed operator token.
type TokenResponse struct {
	Token string `json:"token"`
}
