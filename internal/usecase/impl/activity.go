package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "devconnector/internal/delivery/context"
	"devconnector/internal/domain/entity"
	"devconnector/internal/domain/service"

	"github.com/google/uuid"
)

// activityNotifier publishes feed events after the mutation committed.
// Publishing is best effort: a failure is logged and never reaches the caller.
type activityNotifier struct {
	publisher service.ActivityPublisher
	now       func() time.Time
}

func newActivityNotifier(publisher service.ActivityPublisher) activityNotifier {
	return activityNotifier{publisher: publisher, now: time.Now}
}

func (n activityNotifier) notify(ctx context.Context, logger *slog.Logger, kind entity.ActivityType, actorID uuid.UUID, opts ...func(*service.ActivityEvent)) {
	if n.publisher == nil {
		return
	}

	event := &service.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       kind,
		ActorID:    actorID.String(),
		OccurredAt: n.now().UTC(),
	}
	for _, opt := range opts {
		opt(event)
	}

	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish activity",
			slog.String("type", string(kind)),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

func onPost(post *entity.Post) func(*service.ActivityEvent) {
	return func(e *service.ActivityEvent) {
		e.PostID = post.ID.String()
		e.OwnerID = post.UserID.String()
	}
}

func withComment(commentID uuid.UUID) func(*service.ActivityEvent) {
	return func(e *service.ActivityEvent) {
		e.CommentID = commentID.String()
	}
}
