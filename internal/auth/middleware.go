package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

const (
	tokenContextKey = "user"
	actorContextKey = "actor"
)

// UserLoader loads the acting user named by a token.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// JWT validates bearer tokens signed with secret and stores them as *jwt.Token with *Claims.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		ContextKey: tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// ResolveActor rejects revoked tokens and loads the user the token belongs to.
// It must run after JWT.
func ResolveActor(users UserLoader, revocations RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return unauthorized("invalid token claims", "INVALID_TOKEN")
			}
			ctx := c.Request().Context()

			if claims.ID != "" {
				if revoked, _ := revocations.IsRevoked(ctx, claims.ID); revoked {
					return unauthorized("token has been revoked", "TOKEN_REVOKED")
				}
			}

			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil {
				return unauthorized("user not found", "USER_NOT_FOUND")
			}

			c.Set(actorContextKey, user)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the validated claims of the current request.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// Actor returns the user resolved for the current request, or nil.
func Actor(c echo.Context) *model.User {
	user, _ := c.Get(actorContextKey).(*model.User)
	return user
}

// SetActor stores user as the acting user. Tests use it to skip token handling.
func SetActor(c echo.Context, user *model.User) {
	c.Set(actorContextKey, user)
}

func unauthorized(message, code string) error {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Error: message, Code: code})
}
