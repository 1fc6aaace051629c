package repository

import (
	"context"
	"errors"

	"devconnector/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEntryNotFound is returned when an experience or education id is not on the profile.
	ErrEntryNotFound = errors.New("profile entry not found")
)

// ProfileRepository stores profiles together with their experience and education entries.
// Every read populates the owner summary and returns entries most recent first.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	List(ctx context.Context) ([]*entity.Profile, error)

	// Save inserts the profile or overwrites the scalar fields of the existing one.
	// Entries are left untouched.
	Save(ctx context.Context, profile *entity.Profile) error

	// DeleteByUserID removes the profile and its entries. A missing profile is not an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	AddExperience(ctx context.Context, userID uuid.UUID, exp *entity.Experience) error

	// RemoveExperience deletes the entry only when it belongs to userID's profile.
	RemoveExperience(ctx context.Context, userID, expID uuid.UUID) error

	AddEducation(ctx context.Context, userID uuid.UUID, edu *entity.Education) error

	// RemoveEducation deletes the entry only when it belongs to userID's profile.
	RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) error
}
