package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is the only failure Verify reports, whatever the cause.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed, time-limited credential of an identity.
type TokenService interface {
	// Issue returns a signed token binding userID until the configured TTL elapses.
	Issue(userID uuid.UUID) (string, error)

	// Verify returns the identity bound by token or ErrInvalidToken.
	Verify(token string) (uuid.UUID, error)
}
