package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table. Nil references are stored as NULL.
type ActivityModel struct {
	EventID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type       string     `gorm:"type:varchar(50);not null"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	PostID     *uuid.UUID `gorm:"type:uuid"`
	OwnerID    *uuid.UUID `gorm:"type:uuid;index"`
	CommentID  *uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time  `gorm:"not null"`
	RecordedAt time.Time  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
