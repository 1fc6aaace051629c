package memory

import (
	"context"
	"testing"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UserEmailIsUnique(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.UserRepo().Create(ctx, &entity.User{Name: "a", Email: "a@example.com"}))
	err := store.UserRepo().Create(ctx, &entity.User{Name: "b", Email: "a@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestStore_UserDeleteRestrictedWhileOwningData(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	user := &entity.User{Name: "a", Email: "a@example.com"}
	require.NoError(t, store.UserRepo().Create(ctx, user))
	require.NoError(t, store.ProfileRepo().Save(ctx, &entity.Profile{UserID: user.ID, Status: "Dev"}))

	err := store.UserRepo().Delete(ctx, user.ID)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())

	require.NoError(t, store.ProfileRepo().DeleteByUserID(ctx, user.ID))
	assert.NoError(t, store.UserRepo().Delete(ctx, user.ID))
}

func TestStore_ExecuteRollsBack(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	user := &entity.User{Name: "a", Email: "a@example.com"}
	require.NoError(t, store.UserRepo().Create(ctx, user))
	require.NoError(t, store.PostRepo().Create(ctx, &entity.Post{UserID: user.ID, Text: "keep me"}))

	boom := errors.New("boom")
	err := store.Execute(ctx, func(factory repository.RepositoryFactory) error {
		n, err := factory.PostRepo().DeleteByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.CountPostsOf(user.ID))
}

func TestStore_FailOn(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")
	store.FailOn("PostRepo.List", boom)

	_, err := store.PostRepo().List(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestStore_LikesAreUniquePerUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	user := &entity.User{Name: "a", Email: "a@example.com"}
	require.NoError(t, store.UserRepo().Create(ctx, user))
	post := &entity.Post{UserID: user.ID, Text: "hi"}
	require.NoError(t, store.PostRepo().Create(ctx, post))

	require.NoError(t, store.PostRepo().AddLike(ctx, post.ID, &entity.Like{UserID: user.ID}))
	assert.ErrorIs(t, store.PostRepo().AddLike(ctx, post.ID, &entity.Like{UserID: user.ID}), repository.ErrAlreadyLiked)

	likes, err := store.PostRepo().ListLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}
