package impl

import (
	"context"
	"log/slog"

	deliverycontext "devconnector/internal/delivery/context"
	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/policy"
	"devconnector/internal/domain/repository"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"
	"devconnector/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	activity  activityNotifier
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	PostRepo  repository.PostRepository
	Publisher service.ActivityPublisher
	Logger    *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		postRepo:  params.PostRepo,
		activity:  newActivityNotifier(params.Publisher),
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a post carrying a snapshot of the author's name and avatar.
func (srv *postService) Create(ctx context.Context, userID uuid.UUID, text string) (*entity.Post, error) {
	author, err := srv.author(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		UserID:   userID,
		Text:     text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []entity.Like{},
		Comments: []entity.Comment{},
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.String("postID", post.ID.String()))
	srv.activity.notify(ctx, srv.log(ctx), entity.ActivityPostCreated, userID, onPost(post))

	return post, nil
}

// List returns the whole feed, newest first.
func (srv *postService) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

func (srv *postService) Get(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	return findPost(ctx, srv.postRepo, postID)
}

// Delete removes the post when userID owns it.
func (srv *postService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.PostRepo()

		post, err := findPost(ctx, postRepo, postID)
		if err != nil {
			return err
		}
		if err := policy.RequireOwner(userID, post.UserID); err != nil {
			srv.log(ctx).Warn("Post delete by non-owner", slog.String("postID", postID.String()))

			return errors.Wrap(err, "post belongs to another user")
		}

		err = postRepo.Delete(ctx, postID)
		if errors.Is(err, repository.ErrPostNotFound) {
			return errors.Wrap(domainerrors.ErrPostNotFound, "post deleted concurrently")
		}

		return errors.Wrap(err, "failed to delete post")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Post deleted", slog.String("postID", postID.String()))

	return nil
}

// Like adds the actor's like and returns the post's likes.
func (srv *postService) Like(ctx context.Context, userID, postID uuid.UUID) ([]entity.Like, error) {
	var (
		post  *entity.Post
		likes []entity.Like
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.PostRepo()

		var err error
		post, err = findPost(ctx, postRepo, postID)
		if err != nil {
			return err
		}
		if post.LikedBy(userID) {
			return errors.Wrap(domainerrors.ErrPostAlreadyLiked, "like exists")
		}

		err = postRepo.AddLike(ctx, postID, &entity.Like{UserID: userID})
		switch {
		case errors.Is(err, repository.ErrAlreadyLiked):
			return errors.Wrap(domainerrors.ErrPostAlreadyLiked, "lost like race")
		case errors.Is(err, repository.ErrPostNotFound):
			return errors.Wrap(domainerrors.ErrPostNotFound, "post deleted concurrently")
		case err != nil:
			return errors.Wrap(err, "failed to add like")
		}

		likes, err = postRepo.ListLikes(ctx, postID)

		return errors.Wrap(err, "failed to list likes")
	})
	if err != nil {
		return nil, err
	}

	srv.activity.notify(ctx, srv.log(ctx), entity.ActivityPostLiked, userID, onPost(post))

	return likes, nil
}

// Unlike removes the actor's like and returns the post's likes.
func (srv *postService) Unlike(ctx context.Context, userID, postID uuid.UUID) ([]entity.Like, error) {
	var likes []entity.Like
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.PostRepo()

		post, err := findPost(ctx, postRepo, postID)
		if err != nil {
			return err
		}
		if !post.LikedBy(userID) {
			return errors.Wrap(domainerrors.ErrPostNotLiked, "no like to remove")
		}

		err = postRepo.RemoveLike(ctx, postID, userID)
		if errors.Is(err, repository.ErrNotLiked) {
			return errors.Wrap(domainerrors.ErrPostNotLiked, "like removed concurrently")
		}
		if err != nil {
			return errors.Wrap(err, "failed to remove like")
		}

		likes, err = postRepo.ListLikes(ctx, postID)

		return errors.Wrap(err, "failed to list likes")
	})
	if err != nil {
		return nil, err
	}

	return likes, nil
}

// Comment prepends a comment with the actor's snapshot and returns the post's comments.
func (srv *postService) Comment(ctx context.Context, userID, postID uuid.UUID, text string) ([]entity.Comment, error) {
	var (
		post     *entity.Post
		comment  *entity.Comment
		comments []entity.Comment
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.PostRepo()

		author, err := srv.author(ctx, factory.UserRepo(), userID)
		if err != nil {
			return err
		}
		post, err = findPost(ctx, postRepo, postID)
		if err != nil {
			return err
		}

		comment = &entity.Comment{
			UserID: userID,
			Text:   text,
			Name:   author.Name,
			Avatar: author.Avatar,
		}
		err = postRepo.AddComment(ctx, postID, comment)
		if errors.Is(err, repository.ErrPostNotFound) {
			return errors.Wrap(domainerrors.ErrPostNotFound, "post deleted concurrently")
		}
		if err != nil {
			return errors.Wrap(err, "failed to add comment")
		}

		comments, err = postRepo.ListComments(ctx, postID)

		return errors.Wrap(err, "failed to list comments")
	})
	if err != nil {
		return nil, err
	}

	srv.activity.notify(ctx, srv.log(ctx), entity.ActivityPostCommented, userID, onPost(post), withComment(comment.ID))

	return comments, nil
}

// Uncomment removes the comment identified by commentID when the actor wrote it.
func (srv *postService) Uncomment(ctx context.Context, userID, postID, commentID uuid.UUID) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.PostRepo()

		post, err := findPost(ctx, postRepo, postID)
		if err != nil {
			return err
		}
		comment, ok := post.FindComment(commentID)
		if !ok {
			return errors.Wrap(domainerrors.ErrCommentNotFound, "comment is not on the post")
		}
		if err := policy.RequireOwner(userID, comment.UserID); err != nil {
			srv.log(ctx).Warn("Comment delete by non-author", slog.String("commentID", commentID.String()))

			return errors.Wrap(err, "comment belongs to another user")
		}

		err = postRepo.RemoveComment(ctx, postID, commentID)
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(domainerrors.ErrCommentNotFound, "comment deleted concurrently")
		}
		if err != nil {
			return errors.Wrap(err, "failed to remove comment")
		}

		comments, err = postRepo.ListComments(ctx, postID)

		return errors.Wrap(err, "failed to list comments")
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// author loads the identity whose name and avatar are copied onto posts and comments.
func (srv *postService) author(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "author no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find author")
	}

	return user, nil
}

func findPost(ctx context.Context, postRepo repository.PostRepository, postID uuid.UUID) (*entity.Post, error) {
	post, err := postRepo.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPostNotFound, postID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}
