package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "devconnector/internal/delivery/context"
	"devconnector/internal/domain/entity"
	"devconnector/internal/domain/repository"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"
	"devconnector/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// activityLogService implements the ActivityLogUsecase interface.
type activityLogService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ActivityLogServiceParams holds dependencies for ActivityLogService, injected by Fx.
type ActivityLogServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityLogService creates a new activity log service
func NewActivityLogService(params ActivityLogServiceParams) usecase.ActivityLogUsecase {
	return &activityLogService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Record validates the event and appends it to the log once per event id.
func (srv *activityLogService) Record(ctx context.Context, event *service.ActivityEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	activity, err := srv.toActivity(event)
	if err != nil {
		return err
	}

	recorded, err := srv.activityRepo.Record(ctx, activity)
	if err != nil {
		return errors.Wrap(err, "failed to record activity")
	}

	if !recorded {
		logger.Debug("Activity already recorded", slog.String("eventID", event.EventID))

		return nil
	}

	logger.Info("Activity recorded",
		slog.String("eventID", event.EventID),
		slog.String("type", string(activity.Type)),
	)

	return nil
}

func (srv *activityLogService) toActivity(event *service.ActivityEvent) (*entity.Activity, error) {
	if !event.Type.Known() {
		return nil, errors.Wrapf(usecase.ErrMalformedActivity, "unknown type %q", event.Type)
	}

	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return nil, errors.Wrap(usecase.ErrMalformedActivity, "event_id is not a uuid")
	}
	actorID, err := uuid.Parse(event.ActorID)
	if err != nil {
		return nil, errors.Wrap(usecase.ErrMalformedActivity, "actor_id is not a uuid")
	}

	activity := &entity.Activity{
		EventID:    eventID,
		Type:       event.Type,
		ActorID:    actorID,
		OccurredAt: event.OccurredAt,
	}
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = srv.now().UTC()
	}

	for _, ref := range []struct {
		name string
		raw  string
		dst  *uuid.UUID
	}{
		{"post_id", event.PostID, &activity.PostID},
		{"owner_id", event.OwnerID, &activity.OwnerID},
		{"comment_id", event.CommentID, &activity.CommentID},
	} {
		if ref.raw == "" {
			continue
		}
		id, err := uuid.Parse(ref.raw)
		if err != nil {
			return nil, errors.Wrapf(usecase.ErrMalformedActivity, "%s is not a uuid", ref.name)
		}
		*ref.dst = id
	}

	return activity, nil
}
