package service

import (
	"context"
	"time"

	"devconnector/internal/domain/entity"
)

// ActivityEvent describes a feed mutation for downstream consumers such as notifiers
type ActivityEvent struct {
	RequestID  string              `json:"request_id,omitempty"` // For distributed tracing
	EventID    string              `json:"event_id"`
	Type       entity.ActivityType `json:"type"`
	ActorID    string              `json:"actor_id"`
	PostID     string              `json:"post_id,omitempty"`
	OwnerID    string              `json:"owner_id,omitempty"` // Owner of the post acted upon
	CommentID  string              `json:"comment_id,omitempty"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// ActivityPublisher pushes activity events to a message queue
type ActivityPublisher interface {
	Publish(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
