package usecase

import (
	"context"
	"errors"

	"devconnector/internal/domain/service"
)

// ErrMalformedActivity marks an event that can never be recorded.
// Redelivering it would fail the same way.
var ErrMalformedActivity = errors.New("malformed activity event")

// ActivityLogUsecase records activity events delivered by the message queue.
type ActivityLogUsecase interface {
	Record(ctx context.Context, event *service.ActivityEvent) error
}
