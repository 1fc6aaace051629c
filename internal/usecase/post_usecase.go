package usecase

import (
	"context"

	"devconnector/internal/domain/entity"

	"github.com/google/uuid"
)

// PostUsecase defines the feed operations. Likes and comments only need an
// authenticated actor, deleting requires ownership.
type PostUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Get(ctx context.Context, postID uuid.UUID) (*entity.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error

	Like(ctx context.Context, userID, postID uuid.UUID) ([]entity.Like, error)
	Unlike(ctx context.Context, userID, postID uuid.UUID) ([]entity.Like, error)

	Comment(ctx context.Context, userID, postID uuid.UUID, text string) ([]entity.Comment, error)
	Uncomment(ctx context.Context, userID, postID, commentID uuid.UUID) ([]entity.Comment, error)
}
