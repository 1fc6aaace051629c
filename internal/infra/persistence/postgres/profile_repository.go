package postgres

import (
	"context"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/errors"
	"devconnector/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileUpdateColumns are overwritten when a profile is saved again. created_at is kept.
var profileUpdateColumns = []string{
	"company", "website", "location", "status", "skills", "bio", "github_username",
	"youtube", "twitter", "facebook", "linkedin", "instagram",
}

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns the repository as a repository.ProfileRepository interface.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

func ownerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}

func (repo *profileRepository) withEntries(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User", ownerSummary).
		Preload("Experiences", newestFirst).
		Preload("Educations", newestFirst)
}

// FindByUserID retrieves the profile of userID with its owner and entries.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.withEntries(ctx).Where("user_id = ?", userID).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// List returns every profile in creation order.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var profileMs []model.ProfileModel
	if err := repo.withEntries(ctx).Order("created_at").Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for i := range profileMs {
		profiles = append(profiles, toProfileDomain(&profileMs[i]))
	}

	return profiles, nil
}

// Save upserts the scalar columns keyed by user_id.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(profileUpdateColumns),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "profile owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	return nil
}

// DeleteByUserID removes the profile. Entries go with it through ON DELETE CASCADE.
func (repo *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ProfileModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// AddExperience inserts the entry. A missing profile surfaces as ErrProfileNotFound.
func (repo *profileRepository) AddExperience(ctx context.Context, userID uuid.UUID, exp *entity.Experience) error {
	if err := ensureID(&exp.ID); err != nil {
		return err
	}

	expM := fromExperienceDomain(userID, exp)
	if err := repo.db.WithContext(ctx).Create(expM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add experience")
	}

	return nil
}

func (repo *profileRepository) RemoveExperience(ctx context.Context, userID, expID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_user_id = ?", expID, userID).
		Delete(&model.ExperienceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove experience")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// AddEducation inserts the entry. A missing profile surfaces as ErrProfileNotFound.
func (repo *profileRepository) AddEducation(ctx context.Context, userID uuid.UUID, edu *entity.Education) error {
	if err := ensureID(&edu.ID); err != nil {
		return err
	}

	eduM := fromEducationDomain(userID, edu)
	if err := repo.db.WithContext(ctx).Create(eduM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add education")
	}

	return nil
}

func (repo *profileRepository) RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_user_id = ?", eduID, userID).
		Delete(&model.EducationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove education")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// ensureID assigns a fresh UUIDv7 when id is still empty.
func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.WithStack(err)
	}
	*id = generated

	return nil
}

func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	profile := &entity.Profile{
		UserID:         profileM.UserID,
		User:           entity.UserSummary{ID: profileM.UserID},
		Company:        profileM.Company,
		Website:        profileM.Website,
		Location:       profileM.Location,
		Status:         profileM.Status,
		Skills:         []string(profileM.Skills),
		Bio:            profileM.Bio,
		GitHubUsername: profileM.GitHubUsername,
		Social: entity.SocialLinks{
			YouTube:   profileM.YouTube,
			Twitter:   profileM.Twitter,
			Facebook:  profileM.Facebook,
			LinkedIn:  profileM.LinkedIn,
			Instagram: profileM.Instagram,
		},
		Experience: make([]entity.Experience, 0, len(profileM.Experiences)),
		Education:  make([]entity.Education, 0, len(profileM.Educations)),
		CreatedAt:  profileM.CreatedAt,
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profileM.User != nil {
		profile.User.Name = profileM.User.Name
		profile.User.Avatar = profileM.User.Avatar
	}

	for _, expM := range profileM.Experiences {
		profile.Experience = append(profile.Experience, entity.Experience{
			ID:          expM.ID,
			Title:       expM.Title,
			Company:     expM.Company,
			Location:    expM.Location,
			From:        expM.FromDate,
			To:          expM.ToDate,
			Current:     expM.Current,
			Description: expM.Description,
		})
	}
	for _, eduM := range profileM.Educations {
		profile.Education = append(profile.Education, entity.Education{
			ID:           eduM.ID,
			School:       eduM.School,
			Degree:       eduM.Degree,
			FieldOfStudy: eduM.FieldOfStudy,
			From:         eduM.FromDate,
			To:           eduM.ToDate,
			Current:      eduM.Current,
			Description:  eduM.Description,
		})
	}

	return profile
}

func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	skills := pq.StringArray(profile.Skills)
	if skills == nil {
		skills = pq.StringArray{}
	}

	return &model.ProfileModel{
		UserID:         profile.UserID,
		Company:        profile.Company,
		Website:        profile.Website,
		Location:       profile.Location,
		Status:         profile.Status,
		Skills:         skills,
		Bio:            profile.Bio,
		GitHubUsername: profile.GitHubUsername,
		YouTube:        profile.Social.YouTube,
		Twitter:        profile.Social.Twitter,
		Facebook:       profile.Social.Facebook,
		LinkedIn:       profile.Social.LinkedIn,
		Instagram:      profile.Social.Instagram,
		CreatedAt:      profile.CreatedAt,
	}
}

func fromExperienceDomain(userID uuid.UUID, exp *entity.Experience) *model.ExperienceModel {
	return &model.ExperienceModel{
		ID:            exp.ID,
		ProfileUserID: userID,
		Title:         exp.Title,
		Company:       exp.Company,
		Location:      exp.Location,
		FromDate:      exp.From,
		ToDate:        exp.To,
		Current:       exp.Current,
		Description:   exp.Description,
	}
}

func fromEducationDomain(userID uuid.UUID, edu *entity.Education) *model.EducationModel {
	return &model.EducationModel{
		ID:            edu.ID,
		ProfileUserID: userID,
		School:        edu.School,
		Degree:        edu.Degree,
		FieldOfStudy:  edu.FieldOfStudy,
		FromDate:      edu.From,
		ToDate:        edu.To,
		Current:       edu.Current,
		Description:   edu.Description,
	}
}
