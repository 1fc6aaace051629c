package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType names a feed event published after a successful mutation.
type ActivityType string

const (
	ActivityPostCreated    ActivityType = "post.created"
	ActivityPostLiked      ActivityType = "post.liked"
	ActivityPostCommented  ActivityType = "post.commented"
	ActivityAccountDeleted ActivityType = "account.deleted"
)

// Known reports whether t is one of the published activity types.
func (t ActivityType) Known() bool {
	switch t {
	case ActivityPostCreated, ActivityPostLiked, ActivityPostCommented, ActivityAccountDeleted:
		return true
	}

	return false
}

// Activity is a feed event as recorded by the activity worker. EventID is
// assigned by the publisher, so a redelivered event maps to the same record.
// PostID, OwnerID and CommentID are uuid.Nil when the event has none.
type Activity struct {
	EventID    uuid.UUID
	Type       ActivityType
	ActorID    uuid.UUID
	PostID     uuid.UUID
	OwnerID    uuid.UUID
	CommentID  uuid.UUID
	OccurredAt time.Time
	RecordedAt time.Time
}
