package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"devconnector/internal/delivery/api/middleware"
	"devconnector/internal/delivery/api/validator"
	deliverycontext "devconnector/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the validator and the central error handler like the server does.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// signedIn stands in for the auth gate.
func signedIn(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(string(deliverycontext.KeyUserID), userID)

			return next(c)
		}
	}
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestValidationTable(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name     string
		req      any
		wantMsgs []string
	}{
		{
			name:     "register empty",
			req:      &RegisterRequest{},
			wantMsgs: []string{"Name is required", "Please include a valid email", "Please enter a password with 6 or more characters"},
		},
		{
			name:     "register short password",
			req:      &RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "12345"},
			wantMsgs: []string{"Please enter a password with 6 or more characters"},
		},
		{
			name:     "register password over bcrypt limit",
			req:      &RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: strings.Repeat("p", 73)},
			wantMsgs: []string{"Password must be 72 bytes or fewer"},
		},
		{
			// 40 runes, 80 bytes.
			name:     "register multibyte password over bcrypt limit",
			req:      &RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: strings.Repeat("é", 40)},
			wantMsgs: []string{"Password must be 72 bytes or fewer"},
		},
		{
			name: "register multibyte password at bcrypt limit",
			req:  &RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: strings.Repeat("é", 36)},
		},
		{
			name:     "register name over column limit",
			req:      &RegisterRequest{Name: strings.Repeat("a", 101), Email: "jane@example.com", Password: "123456"},
			wantMsgs: []string{"Name must be 100 characters or fewer"},
		},
		{
			name: "register name at column limit counts characters",
			req:  &RegisterRequest{Name: strings.Repeat("ü", 100), Email: "jane@example.com", Password: "123456"},
		},
		{
			name: "register valid",
			req:  &RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "123456"},
		},
		{
			name:     "login",
			req:      &LoginRequest{Email: "nope"},
			wantMsgs: []string{"Please include a valid email", "Password is required"},
		},
		{
			name:     "profile",
			req:      &ProfileRequest{Company: "Acme"},
			wantMsgs: []string{"Status is required", "Skills is required"},
		},
		{
			name: "profile fields over column limits",
			req: &ProfileRequest{
				Company:        strings.Repeat("c", 256),
				Status:         strings.Repeat("s", 256),
				Skills:         "go",
				GitHubUsername: strings.Repeat("g", 101),
				Twitter:        "https://twitter.com/" + strings.Repeat("t", 236),
			},
			wantMsgs: []string{
				"Company must be 255 characters or fewer",
				"Status must be 255 characters or fewer",
				"Github username must be 100 characters or fewer",
				"Twitter link must be 255 characters or fewer",
			},
		},
		{
			name: "profile fields at column limits",
			req: &ProfileRequest{
				Website:        strings.Repeat("w", 255),
				Status:         "Developer",
				Skills:         "go",
				GitHubUsername: strings.Repeat("g", 100),
			},
		},
		{
			name:     "experience",
			req:      &ExperienceRequest{},
			wantMsgs: []string{"Title is required", "Company is required", "From date is required"},
		},
		{
			name:     "experience over column limits",
			req:      &ExperienceRequest{Title: strings.Repeat("t", 256), Company: "Acme", Location: strings.Repeat("l", 256), From: "2020-01-01"},
			wantMsgs: []string{"Title must be 255 characters or fewer", "Location must be 255 characters or fewer"},
		},
		{
			name:     "education",
			req:      &EducationRequest{},
			wantMsgs: []string{"School is required", "Degree is required", "Field of Study is required", "From date is required"},
		},
		{
			name: "education over column limits",
			req: &EducationRequest{
				School:       strings.Repeat("s", 256),
				Degree:       "BSc",
				FieldOfStudy: strings.Repeat("f", 256),
				From:         "2020-01-01",
			},
			wantMsgs: []string{"School must be 255 characters or fewer", "Field of Study must be 255 characters or fewer"},
		},
		{
			name:     "text",
			req:      &TextRequest{},
			wantMsgs: []string{"Text is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if len(tt.wantMsgs) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			var msgs []string
			for _, fe := range fieldErrors(t, err) {
				msgs = append(msgs, fe.Msg)
			}
			assert.Equal(t, tt.wantMsgs, msgs)
		})
	}
}

func TestEntryPeriod(t *testing.T) {
	from, to, err := entryPeriod("2020-01-02", "")
	require.NoError(t, err)
	assert.Equal(t, 2020, from.Year())
	assert.Nil(t, to)

	_, to, err = entryPeriod("2020-01-02T00:00:00Z", "2021-06-30")
	require.NoError(t, err)
	require.NotNil(t, to)
	assert.Equal(t, 6, int(to.Month()))

	_, _, err = entryPeriod("yesterday", "")
	assert.Equal(t, "From date is invalid", fieldErrors(t, err)[0].Msg)

	_, _, err = entryPeriod("2020-01-02", "soon")
	assert.Equal(t, "to", fieldErrors(t, err)[0].Param)
}
