package postgres

import (
	"context"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns the repository as a repository.ActivityRepository interface.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Record inserts with ON CONFLICT DO NOTHING so a redelivered event is a no-op.
func (repo *activityRepository) Record(ctx context.Context, activity *entity.Activity) (bool, error) {
	activityM := fromActivityDomain(activity)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(activityM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record activity")
	}

	activity.RecordedAt = activityM.RecordedAt

	return result.RowsAffected > 0, nil
}

func fromActivityDomain(activity *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		EventID:    activity.EventID,
		Type:       string(activity.Type),
		ActorID:    activity.ActorID,
		PostID:     nullableID(activity.PostID),
		OwnerID:    nullableID(activity.OwnerID),
		CommentID:  nullableID(activity.CommentID),
		OccurredAt: activity.OccurredAt,
	}
}

func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}

	return &id
}
