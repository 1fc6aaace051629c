package repository

import (
	"context"

	"devconnector/internal/domain/entity"
)

// ActivityRepository is the append-only log of delivered activity events.
type ActivityRepository interface {
	// Record stores the activity unless its event id is already present.
	// It reports whether a new record was written.
	Record(ctx context.Context, activity *entity.Activity) (bool, error)
}
