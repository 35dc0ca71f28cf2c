package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims issued by the identity provider.
// Tokens are HS256-signed with the shared secret.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
