// Package policy holds the authorization rules for mutating owned resources.
package policy

import (
	domainerrors "devconnector/internal/domain/errors"

	"github.com/google/uuid"
)

// Authorize reports whether actor may mutate a resource owned by owner.
// The nil identity owns nothing and can act on nothing.
func Authorize(actor, owner uuid.UUID) bool {
	if actor == uuid.Nil || owner == uuid.Nil {
		return false
	}

	return actor == owner
}

// RequireOwner returns ErrNotAuthorized unless Authorize allows the mutation.
func RequireOwner(actor, owner uuid.UUID) error {
	if !Authorize(actor, owner) {
		return domainerrors.ErrNotAuthorized
	}

	return nil
}
