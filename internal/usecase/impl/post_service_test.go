package impl

import (
	"context"
	"testing"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"
	"devconnector/internal/mocks/memory"
	mockRepo "devconnector/internal/mocks/repository"
	mockSvc "devconnector/internal/mocks/service"
	"devconnector/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service   usecase.PostUsecase
	store     *memory.Store
	publisher *mockSvc.MockActivityPublisher
}

func createTestPostService(t *testing.T) postServiceFixtures {
	f := postServiceFixtures{
		store:     memory.NewStore(),
		publisher: mockSvc.NewMockActivityPublisher(t),
	}
	f.service = NewPostService(PostServiceParams{
		TxManager: f.store,
		UserRepo:  f.store.UserRepo(),
		PostRepo:  f.store.PostRepo(),
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})

	return f
}

func (f postServiceFixtures) allowActivity() {
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func activityOf(kind entity.ActivityType) any {
	return mock.MatchedBy(func(e *service.ActivityEvent) bool { return e.Type == kind })
}

func TestPostService_Create_SnapshotsAuthor(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	jane := seedUser(t, fx.store, "jane")

	var event *service.ActivityEvent
	fx.publisher.EXPECT().Publish(mock.Anything, activityOf(entity.ActivityPostCreated)).
		Run(func(_ context.Context, e *service.ActivityEvent) { event = e }).
		Return(nil).
		Once()

	post, err := fx.service.Create(ctx, jane.ID, "Hello world")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, jane.ID, post.UserID)
	assert.Equal(t, "jane", post.Name)
	assert.Equal(t, "avatar/jane", post.Avatar)
	assert.Empty(t, post.Likes)
	assert.NotNil(t, post.Comments)

	require.NotNil(t, event)
	assert.Equal(t, post.ID.String(), event.PostID)
	assert.Equal(t, jane.ID.String(), event.ActorID)
	assert.NotEmpty(t, event.EventID)
}

func TestPostService_Create_UnknownAuthor(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), "orphan")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPostService_List_NewestFirst(t *testing.T) {
	fx := createTestPostService(t)
	fx.allowActivity()
	ctx := context.Background()
	jane := seedUser(t, fx.store, "jane")

	for _, text := range []string{"first", "second", "third"} {
		_, err := fx.service.Create(ctx, jane.ID, text)
		require.NoError(t, err)
	}

	posts, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Text)
	assert.Equal(t, "first", posts[2].Text)
}

func TestPostService_Get_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Delete_OwnershipGuard(t *testing.T) {
	fx := createTestPostService(t)
	fx.allowActivity()
	ctx := context.Background()
	jane := seedUser(t, fx.store, "jane")
	bob := seedUser(t, fx.store, "bob")

	post, err := fx.service.Create(ctx, jane.ID, "mine")
	require.NoError(t, err)

	err = fx.service.Delete(ctx, bob.ID, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)

	_, err = fx.service.Get(ctx, post.ID)
	require.NoError(t, err, "post survives a non-owner delete")

	require.NoError(t, fx.service.Delete(ctx, jane.ID, post.ID))

	_, err = fx.service.Get(ctx, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	err = fx.service.Delete(ctx, jane.ID, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_LikeUnlike(t *testing.T) {
	fx := createTestPostService(t)
	fx.allowActivity()
	ctx := context.Background()
	jane := seedUser(t, fx.store, "jane")
	bob := seedUser(t, fx.store, "bob")
	post, err := fx.service.Create(ctx, jane.ID, "like me")
	require.NoError(t, err)

	_, err = fx.service.Unlike(ctx, bob.ID, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotLiked)

	likes, err := fx.service.Like(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, bob.ID, likes[0].UserID)

	_, err = fx.service.Like(ctx, bob.ID, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostAlreadyLiked)

	likes, err = fx.service.Like(ctx, jane.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, jane.ID, likes[0].UserID, "newest like first")

	likes, err = fx.service.Unlike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, jane.ID, likes[0].UserID)

	_, err = fx.service.Like(ctx, bob.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Like_LostRaceMapsToAlreadyLiked(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewPostService(PostServiceParams{TxManager: txManager, Logger: newDiscardLogger()})
	ctx := context.Background()
	userID, postID := uuid.New(), uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(postRepo)
		postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New()}, nil)
		postRepo.EXPECT().AddLike(ctx, postID, mock.AnythingOfType("*entity.Like")).Return(repository.ErrAlreadyLiked)
	})

	_, err := srv.Like(ctx, userID, postID)

	assert.ErrorIs(t, err, domainerrors.ErrPostAlreadyLiked)
}

func TestPostService_Like_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	jane := seedUser(t, fx.store, "jane")

	fx.publisher.EXPECT().Publish(mock.Anything, activityOf(entity.ActivityPostCreated)).Return(nil).Once()
	post, err := fx.service.Create(ctx, jane.ID, "hi")
	require.NoError(t, err)

	fx.publisher.EXPECT().Publish(mock.Anything, activityOf(entity.ActivityPostLiked)).
		Return(errors.New("broker down")).
		Once()

	likes, err := fx.service.Like(ctx, jane.ID, post.ID)

	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestPostService_CommentUncomment(t *testing.T) {
	fx := createTestPostService(t)
	fx.allowActivity()
	ctx := context.Background()
	jane := seedUser(t, fx.store, "jane")
	bob := seedUser(t, fx.store, "bob")
	post, err := fx.service.Create(ctx, jane.ID, "discuss")
	require.NoError(t, err)

	_, err = fx.service.Comment(ctx, bob.ID, post.ID, "first from bob")
	require.NoError(t, err)
	comments, err := fx.service.Comment(ctx, bob.ID, post.ID, "second from bob")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second from bob", comments[0].Text, "newest comment first")
	assert.Equal(t, "bob", comments[0].Name)
	assert.Equal(t, "avatar/bob", comments[0].Avatar)

	older := comments[1].ID

	_, err = fx.service.Uncomment(ctx, jane.ID, post.ID, older)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized, "post owner cannot remove other people's comments")

	_, err = fx.service.Uncomment(ctx, bob.ID, post.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)

	_, err = fx.service.Uncomment(ctx, bob.ID, uuid.New(), older)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	comments, err = fx.service.Uncomment(ctx, bob.ID, post.ID, older)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second from bob", comments[0].Text, "the addressed comment is removed, not the actor's first one")
}

func TestPostService_Comment_PostMissing(t *testing.T) {
	fx := createTestPostService(t)
	jane := seedUser(t, fx.store, "jane")

	_, err := fx.service.Comment(context.Background(), jane.ID, uuid.New(), "hello?")

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Delete_RepositoryFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewPostService(PostServiceParams{TxManager: txManager, Logger: newDiscardLogger()})
	ctx := context.Background()
	userID, postID := uuid.New(), uuid.New()
	dbErr := errors.New("db error")

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(postRepo)
		postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: userID}, nil)
		postRepo.EXPECT().Delete(ctx, postID).Return(dbErr)
	})

	err := srv.Delete(ctx, userID, postID)

	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to delete post")
}
