package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"devconnector/internal/delivery/api/response"
	deliverycontext "devconnector/internal/delivery/context"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Server side failures are logged
// with the request logger and answered with the generic 500 body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnexpected(c, err, slog.String("code", appErr.ErrorCode()), slog.String("details", appErr.Details()))
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
			_ = response.InternalServerError(c)

			return
		}

		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = fmt.Sprint(httpErr.Message)
		}
		_ = response.Message(c, httpErr.Code, msg)

		return
	}

	m.logUnexpected(c, err)
	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error, attrs ...any) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	logger.Error("Unhandled error", append([]any{
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	}, attrs...)...)
}
