package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/auth"
	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
)

// AuthHandler handles session endpoints. Tokens are issued by the identity provider.
type AuthHandler struct {
	tokens auth.RevocationStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokens auth.RevocationStore) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented access token until it expires.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "INVALID_TOKEN",
		})
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return badRequest("token cannot be revoked: missing jti or exp", "TOKEN_NOT_REVOCABLE")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := h.tokens.Revoke(c.Request().Context(), claims.ID, ttl); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}
