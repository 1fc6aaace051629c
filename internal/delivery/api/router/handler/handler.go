// Package handler contains the HTTP handlers for the application.
package handler

import (
	"devconnector/internal/delivery/api/middleware"
	domainerrors "devconnector/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUser returns the identity bound by the auth gate.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrNoToken
	}

	return userID, nil
}
