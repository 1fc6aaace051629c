package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "devconnector/internal/delivery/context"
	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"
	"devconnector/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	repos       service.RepositoryLister
	qrCodes     service.QRCodeService
	activity    activityNotifier
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Repos       service.RepositoryLister
	QRCodes     service.QRCodeService
	Publisher   service.ActivityPublisher
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		repos:       params.Repos,
		qrCodes:     params.QRCodes,
		activity:    newActivityNotifier(params.Publisher),
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMine returns the profile of the signed in identity.
func (srv *profileService) GetMine(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(domainerrors.ErrNoProfileForUser, "no profile for signed in user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// Upsert creates the profile or merges the given fields into the existing one.
func (srv *profileService) Upsert(ctx context.Context, userID uuid.UUID, input *usecase.UpsertProfileInput) (*entity.Profile, error) {
	fields := entity.ProfileFields{
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Status:         input.Status,
		Skills:         splitSkills(input.Skills),
		Bio:            input.Bio,
		GitHubUsername: input.GitHubUsername,
		Social: entity.SocialLinks{
			YouTube:   input.YouTube,
			Twitter:   input.Twitter,
			Facebook:  input.Facebook,
			LinkedIn:  input.LinkedIn,
			Instagram: input.Instagram,
		},
	}

	var saved *entity.Profile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			profile = &entity.Profile{UserID: userID}
		} else if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		profile.Apply(fields)
		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		saved, err = profileRepo.FindByUserID(ctx, userID)

		return errors.Wrap(err, "failed to reload profile")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Profile saved", slog.String("userID", userID.String()))

	return saved, nil
}

// List returns every profile with its owner summary.
func (srv *profileService) List(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// GetByUserID returns the public profile of userID.
func (srv *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile lookup by user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// ShareCode renders the QR code of an existing profile.
func (srv *profileService) ShareCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateProfileQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile qr code")
	}

	return png, nil
}

// DeleteAccount removes posts, then the profile, then the identity.
// Likes and comments left on other posts keep their snapshot.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	var removedPosts int64
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		removedPosts, err = factory.PostRepo().DeleteByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete posts")
		}

		if err := factory.ProfileRepo().DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		err = factory.UserRepo().Delete(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account already deleted")
		}

		return errors.Wrap(err, "failed to delete user")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.String("userID", userID.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.String("userID", userID.String()), slog.Int64("posts", removedPosts))
	srv.activity.notify(ctx, srv.log(ctx), entity.ActivityAccountDeleted, userID)

	return nil
}

// AddExperience prepends an experience entry to the caller's profile.
func (srv *profileService) AddExperience(ctx context.Context, userID uuid.UUID, input *usecase.EntryInput) (*entity.Profile, error) {
	exp := &entity.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}

	return srv.mutateEntries(ctx, userID, func(repo repository.ProfileRepository) error {
		return repo.AddExperience(ctx, userID, exp)
	})
}

// RemoveExperience deletes one of the caller's experience entries.
func (srv *profileService) RemoveExperience(ctx context.Context, userID, expID uuid.UUID) (*entity.Profile, error) {
	return srv.mutateEntries(ctx, userID, func(repo repository.ProfileRepository) error {
		err := repo.RemoveExperience(ctx, userID, expID)
		if errors.Is(err, repository.ErrEntryNotFound) {
			return errors.Wrap(domainerrors.ErrExperienceNotFound, "experience is not on the caller's profile")
		}

		return err
	})
}

// AddEducation prepends an education entry to the caller's profile.
func (srv *profileService) AddEducation(ctx context.Context, userID uuid.UUID, input *usecase.EntryInput) (*entity.Profile, error) {
	edu := &entity.Education{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}

	return srv.mutateEntries(ctx, userID, func(repo repository.ProfileRepository) error {
		return repo.AddEducation(ctx, userID, edu)
	})
}

// RemoveEducation deletes one of the caller's education entries.
func (srv *profileService) RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) (*entity.Profile, error) {
	return srv.mutateEntries(ctx, userID, func(repo repository.ProfileRepository) error {
		err := repo.RemoveEducation(ctx, userID, eduID)
		if errors.Is(err, repository.ErrEntryNotFound) {
			return errors.Wrap(domainerrors.ErrEducationNotFound, "education is not on the caller's profile")
		}

		return err
	})
}

// mutateEntries applies change and returns the reloaded profile from the same transaction.
func (srv *profileService) mutateEntries(ctx context.Context, userID uuid.UUID, change func(repository.ProfileRepository) error) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.ProfileRepo()

		err := change(profileRepo)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrNoProfileForUser, "no profile to attach the entry to")
		}
		if err != nil {
			return errors.Wrap(err, "failed to change profile entries")
		}

		profile, err = profileRepo.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrNoProfileForUser, "profile vanished")
		}

		return errors.Wrap(err, "failed to reload profile")
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// GitHubRepos lists the latest repositories of a GitHub user.
func (srv *profileService) GitHubRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrGitHubProfileNotFound, "empty username")
	}

	repos, err := srv.repos.ListRepositories(ctx, username)
	if errors.Is(err, service.ErrRepositoryOwnerNotFound) {
		return nil, errors.Wrap(domainerrors.ErrGitHubProfileNotFound, username)
	}
	if err != nil {
		srv.log(ctx).Error("GitHub request failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list repositories")
	}

	return repos, nil
}

// splitSkills turns "Go, SQL ,, Docker" into [Go SQL Docker].
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}
