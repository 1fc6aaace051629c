package postgres

import (
	"context"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/errors"
	"devconnector/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns the repository as a repository.PostRepository interface.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) withReactions(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Likes", newestFirst).
		Preload("Comments", newestFirst)
}

// Create persists the post without likes or comments.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if err := ensureID(&post.ID); err != nil {
		return err
	}

	postM := fromPostDomain(post)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "post owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.CreatedAt = postM.CreatedAt

	return nil
}

func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.withReactions(ctx).Where("id = ?", id).First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// List returns every post newest first.
func (repo *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.withReactions(ctx).Order("id DESC").Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts, nil
}

// Delete removes the post. Likes and comments go with it through ON DELETE CASCADE.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *postRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PostModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete posts of user")
	}

	return result.RowsAffected, nil
}

// AddLike inserts the like. The (post_id, user_id) unique index turns a
// concurrent double like into ErrAlreadyLiked.
func (repo *postRepository) AddLike(ctx context.Context, postID uuid.UUID, like *entity.Like) error {
	if err := ensureID(&like.ID); err != nil {
		return err
	}

	likeM := &model.LikeModel{ID: like.ID, PostID: postID, UserID: like.UserID}
	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyLiked
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return nil
}

func (repo *postRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotLiked
	}

	return nil
}

func (repo *postRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]entity.Like, error) {
	var likeMs []model.LikeModel
	if err := newestFirst(repo.db.WithContext(ctx)).Where("post_id = ?", postID).Find(&likeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	likes := make([]entity.Like, 0, len(likeMs))
	for _, likeM := range likeMs {
		likes = append(likes, entity.Like{ID: likeM.ID, UserID: likeM.UserID})
	}

	return likes, nil
}

// AddComment inserts the comment. A missing post surfaces as ErrPostNotFound.
func (repo *postRepository) AddComment(ctx context.Context, postID uuid.UUID, comment *entity.Comment) error {
	if err := ensureID(&comment.ID); err != nil {
		return err
	}

	commentM := fromCommentDomain(postID, comment)
	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add comment")
	}

	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *postRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func (repo *postRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]entity.Comment, error) {
	var commentMs []model.CommentModel
	if err := newestFirst(repo.db.WithContext(ctx)).Where("post_id = ?", postID).Find(&commentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]entity.Comment, 0, len(commentMs))
	for i := range commentMs {
		comments = append(comments, toCommentDomain(&commentMs[i]))
	}

	return comments, nil
}

func toPostDomain(postM *model.PostModel) *entity.Post {
	post := &entity.Post{
		ID:        postM.ID,
		UserID:    postM.UserID,
		Text:      postM.Text,
		Name:      postM.Name,
		Avatar:    postM.Avatar,
		Likes:     make([]entity.Like, 0, len(postM.Likes)),
		Comments:  make([]entity.Comment, 0, len(postM.Comments)),
		CreatedAt: postM.CreatedAt,
	}
	for _, likeM := range postM.Likes {
		post.Likes = append(post.Likes, entity.Like{ID: likeM.ID, UserID: likeM.UserID})
	}
	for i := range postM.Comments {
		post.Comments = append(post.Comments, toCommentDomain(&postM.Comments[i]))
	}

	return post
}

func fromPostDomain(post *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:        post.ID,
		UserID:    post.UserID,
		Text:      post.Text,
		Name:      post.Name,
		Avatar:    post.Avatar,
		CreatedAt: post.CreatedAt,
	}
}

func toCommentDomain(commentM *model.CommentModel) entity.Comment {
	return entity.Comment{
		ID:        commentM.ID,
		UserID:    commentM.UserID,
		Text:      commentM.Text,
		Name:      commentM.Name,
		Avatar:    commentM.Avatar,
		CreatedAt: commentM.CreatedAt,
	}
}

func fromCommentDomain(postID uuid.UUID, comment *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        comment.ID,
		PostID:    postID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		Name:      comment.Name,
		Avatar:    comment.Avatar,
		CreatedAt: comment.CreatedAt,
	}
}
