package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "devconnector/internal/delivery/context"
	"devconnector/internal/domain/service"
	mockSvc "devconnector/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGatedEcho(tokens service.TokenService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	gate := NewAuthMiddleware(tokens, newDiscardLogger())
	e.GET("/me", func(c echo.Context) error {
		echoID, ok := GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		ctxID, _ := deliverycontext.UserIDFromContext(c.Request().Context())

		return c.JSON(http.StatusOK, map[string]string{"echo": echoID.String(), "ctx": ctxID.String()})
	}, gate.Authenticate)

	return e
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "No token, authorization denied",
		},
		{
			name:       "authorization header without bearer scheme",
			headers:    map[string]string{"Authorization": "Basic abc"},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "No token, authorization denied",
		},
		{
			name:    "invalid token",
			headers: map[string]string{HeaderAuthToken: "forged"},
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Verify("forged").Return(uuid.Nil, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token is not valid",
		},
		{
			name:    "x-auth-token",
			headers: map[string]string{HeaderAuthToken: "good"},
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Verify("good").Return(userID, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "bearer fallback",
			headers: map[string]string{"Authorization": "bearer good"},
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Verify("good").Return(userID, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "x-auth-token wins over bearer",
			headers: map[string]string{HeaderAuthToken: "primary", "Authorization": "Bearer secondary"},
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Verify("primary").Return(userID, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			newGatedEcho(tokens).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantMsg != "" {
				assert.Equal(t, map[string]string{"msg": tt.wantMsg}, body)

				return
			}
			assert.Equal(t, userID.String(), body["echo"])
			assert.Equal(t, userID.String(), body["ctx"])
		})
	}
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "a", extractToken(" a ", ""))
	assert.Equal(t, "b", extractToken("", "Bearer b"))
	assert.Equal(t, "", extractToken("", "Bearer "))
	assert.Equal(t, "", extractToken("", "Token c"))
}
