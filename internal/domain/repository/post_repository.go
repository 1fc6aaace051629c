package repository

import (
	"context"
	"errors"

	"devconnector/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPostNotFound is returned when no post matches the id.
	ErrPostNotFound = errors.New("post not found")

	// ErrAlreadyLiked is returned when the (post, user) like already exists.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked is returned when removing a like that does not exist.
	ErrNotLiked = errors.New("post not liked")

	// ErrCommentNotFound is returned when the comment id is not on the post.
	ErrCommentNotFound = errors.New("comment not found")
)

// PostRepository stores posts with their likes and comments.
// Reads return posts, likes and comments newest first.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	List(ctx context.Context) ([]*entity.Post, error)

	// Delete removes the post with its likes and comments.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every post owned by userID and returns how many were removed.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// AddLike fails with ErrAlreadyLiked when userID already liked the post,
	// including when a concurrent request won the race.
	AddLike(ctx context.Context, postID uuid.UUID, like *entity.Like) error

	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error

	ListLikes(ctx context.Context, postID uuid.UUID) ([]entity.Like, error)

	AddComment(ctx context.Context, postID uuid.UUID, comment *entity.Comment) error

	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error

	ListComments(ctx context.Context, postID uuid.UUID) ([]entity.Comment, error)
}
