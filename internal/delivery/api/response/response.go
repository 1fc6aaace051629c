// Package response renders bodies in the shapes the single page client expects:
// raw payloads on success, {msg} or {errors:[{msg,param}]} on failure.
package response

import (
	"net/http"

	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"

	"github.com/labstack/echo/v4"
)

// ServerErrorMessage is the only text a client sees for a 5xx.
const ServerErrorMessage = "Server Error"

// MessageResponse is the single message error and acknowledgement body.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorsResponse lists validation style failures.
type ErrorsResponse struct {
	Errors []domainerrors.FieldError `json:"errors"`
}

// Success writes data as the raw 200 body.
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Message writes {msg}.
func Message(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, MessageResponse{Msg: msg})
}

// Errors writes {errors:[...]}.
func Errors(c echo.Context, statusCode int, fields []domainerrors.FieldError) error {
	return c.JSON(statusCode, ErrorsResponse{Errors: fields})
}

// InternalServerError writes the generic 500 body.
func InternalServerError(c echo.Context) error {
	return Message(c, http.StatusInternalServerError, ServerErrorMessage)
}

// AppError renders err in its listed or single message shape. 5xx never leak a message.
func AppError(c echo.Context, err domainerrors.AppError) error {
	if err.HTTPCode() >= http.StatusInternalServerError {
		return InternalServerError(c)
	}

	var lister domainerrors.Lister
	if errors.As(err, &lister) {
		if fields := lister.FieldErrors(); len(fields) > 0 {
			return Errors(c, err.HTTPCode(), fields)
		}
	}

	return Message(c, err.HTTPCode(), err.Message())
}

// HandleAppError renders domain errors and hands everything else to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
