package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "devconnector/internal/delivery/context"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderAuthToken carries the raw credential token.
	HeaderAuthToken = "x-auth-token"

	bearerPrefix = "Bearer "
)

// AuthMiddleware admits requests carrying a valid credential token.
// The token payload is trusted; the identity is not re-read from storage.
type AuthMiddleware struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate rejects the request with 401 unless the token verifies, then
// binds the identity to the echo context, the request context and the request logger.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		token := extractToken(req.Header.Get(HeaderAuthToken), req.Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return domainerrors.ErrNoToken
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Debug("Rejected token", slog.Any("error", err))

			return domainerrors.ErrTokenNotValid
		}

		c.Set(string(deliverycontext.KeyUserID), userID)

		ctx := deliverycontext.WithUserID(req.Context(), userID)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", userID.String()))
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the identity bound by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// extractToken prefers x-auth-token and falls back to an Authorization bearer token.
func extractToken(authToken, authorization string) string {
	if token := strings.TrimSpace(authToken); token != "" {
		return token
	}

	if len(authorization) > len(bearerPrefix) && strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(authorization[len(bearerPrefix):])
	}

	return ""
}
