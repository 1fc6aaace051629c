package usecase

import (
	"context"
	"time"

	"devconnector/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetMine(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	ShareCode(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// DeleteAccount removes the posts, profile and identity of userID in one transaction.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	AddExperience(ctx context.Context, userID uuid.UUID, input *EntryInput) (*entity.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID uuid.UUID) (*entity.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, input *EntryInput) (*entity.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) (*entity.Profile, error)

	GitHubRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error)
}

// --- Input DTOs ---

// UpsertProfileInput defines the profile fields sent by the client.
// Skills is the raw comma separated list.
type UpsertProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GitHubUsername string
	YouTube        string
	Twitter        string
	Facebook       string
	LinkedIn       string
	Instagram      string
}

// EntryInput is an experience or education entry. Title and Company apply to
// experience, School, Degree and FieldOfStudy to education.
type EntryInput struct {
	Title        string
	Company      string
	Location     string
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}
