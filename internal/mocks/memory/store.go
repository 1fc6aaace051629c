// Package memory is an in-process implementation of the repository interfaces
// for usecase and HTTP tests that need real state instead of call expectations.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/domain/repository"
	"devconnector/internal/errors"

	"github.com/google/uuid"
)

// Store holds users, profiles and posts. It is also a TransactionManager:
// Execute restores the previous state when the callback fails.
type Store struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	users    map[uuid.UUID]entity.User
	profiles map[uuid.UUID]entity.Profile
	posts    []entity.Post // creation order
	failures map[string]error
	now      func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]entity.User),
		profiles: make(map[uuid.UUID]entity.Profile),
		failures: make(map[string]error),
		now:      time.Now,
	}
}

// FailOn makes the named operation, e.g. "PostRepo.DeleteByUserID", return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

func (s *Store) UserRepo() repository.UserRepository {
	return &userRepo{s: s}
}

func (s *Store) ProfileRepo() repository.ProfileRepository {
	return &profileRepo{s: s}
}

func (s *Store) PostRepo() repository.PostRepository {
	return &postRepo{s: s}
}

// Execute serializes transactions and rolls back on error.
func (s *Store) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.cloneState()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.users, s.profiles, s.posts = snapshot.users, snapshot.profiles, snapshot.posts
		s.mu.Unlock()

		return err
	}

	return nil
}

// CountPostsOf returns how many posts userID owns.
func (s *Store) CountPostsOf(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, post := range s.posts {
		if post.UserID == userID {
			n++
		}
	}

	return n
}

type state struct {
	users    map[uuid.UUID]entity.User
	profiles map[uuid.UUID]entity.Profile
	posts    []entity.Post
}

func (s *Store) cloneState() state {
	st := state{
		users:    make(map[uuid.UUID]entity.User, len(s.users)),
		profiles: make(map[uuid.UUID]entity.Profile, len(s.profiles)),
		posts:    make([]entity.Post, 0, len(s.posts)),
	}
	for id, user := range s.users {
		st.users[id] = user
	}
	for id, profile := range s.profiles {
		st.profiles[id] = cloneProfile(profile)
	}
	for _, post := range s.posts {
		st.posts = append(st.posts, clonePost(post))
	}

	return st
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

func cloneProfile(p entity.Profile) entity.Profile {
	p.Skills = slices.Clone(p.Skills)
	p.Experience = slices.Clone(p.Experience)
	p.Education = slices.Clone(p.Education)

	return p
}

func clonePost(p entity.Post) entity.Post {
	p.Likes = slices.Clone(p.Likes)
	p.Comments = slices.Clone(p.Comments)

	return p
}

func prepend[T any](list []T, item T) []T {
	return append([]T{item}, list...)
}

// errOwnerStillReferenced mimics the RESTRICT foreign keys of profiles and posts.
var errOwnerStillReferenced = errors.New("update or delete on table \"users\" violates foreign key constraint")

type userRepo struct {
	s *Store
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("UserRepo.FindByID"); err != nil {
		return nil, err
	}
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("UserRepo.FindByEmail"); err != nil {
		return nil, err
	}
	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("UserRepo.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	user.CreatedAt = r.s.now()
	r.s.users[user.ID] = *user

	return nil
}

func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("UserRepo.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	if _, ok := r.s.profiles[id]; ok {
		return domainerrors.NewDatabaseExecuteError(errOwnerStillReferenced, "user still owns resources")
	}
	for _, post := range r.s.posts {
		if post.UserID == id {
			return domainerrors.NewDatabaseExecuteError(errOwnerStillReferenced, "user still owns resources")
		}
	}
	delete(r.s.users, id)

	return nil
}

type profileRepo struct {
	s *Store
}

func (r *profileRepo) populated(p entity.Profile) *entity.Profile {
	out := cloneProfile(p)
	out.User = entity.UserSummary{ID: p.UserID}
	if user, ok := r.s.users[p.UserID]; ok {
		out.User = user.Summary()
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Experience == nil {
		out.Experience = []entity.Experience{}
	}
	if out.Education == nil {
		out.Education = []entity.Education{}
	}

	return &out
}

func (r *profileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("ProfileRepo.FindByUserID"); err != nil {
		return nil, err
	}
	profile, ok := r.s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return r.populated(profile), nil
}

func (r *profileRepo) List(_ context.Context) ([]*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("ProfileRepo.List"); err != nil {
		return nil, err
	}
	profiles := make([]*entity.Profile, 0, len(r.s.profiles))
	for _, profile := range r.s.profiles {
		profiles = append(profiles, r.populated(profile))
	}
	slices.SortFunc(profiles, func(a, b *entity.Profile) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return profiles, nil
}

func (r *profileRepo) Save(_ context.Context, profile *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("ProfileRepo.Save"); err != nil {
		return err
	}
	if _, ok := r.s.users[profile.UserID]; !ok {
		return domainerrors.NewDatabaseExecuteError(errors.New("foreign key violation"), "profile owner does not exist")
	}

	stored := cloneProfile(*profile)
	if existing, ok := r.s.profiles[profile.UserID]; ok {
		stored.Experience = existing.Experience
		stored.Education = existing.Education
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.Experience = nil
		stored.Education = nil
		stored.CreatedAt = r.s.now()
	}
	r.s.profiles[profile.UserID] = stored

	return nil
}

func (r *profileRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("ProfileRepo.DeleteByUserID"); err != nil {
		return err
	}
	delete(r.s.profiles, userID)

	return nil
}

func (r *profileRepo) AddExperience(_ context.Context, userID uuid.UUID, exp *entity.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if exp.ID == uuid.Nil {
		exp.ID = newID()
	}
	profile.Experience = prepend(profile.Experience, *exp)
	r.s.profiles[userID] = profile

	return nil
}

func (r *profileRepo) RemoveExperience(_ context.Context, userID, expID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[userID]
	if !ok {
		return repository.ErrEntryNotFound
	}
	i := slices.IndexFunc(profile.Experience, func(e entity.Experience) bool { return e.ID == expID })
	if i < 0 {
		return repository.ErrEntryNotFound
	}
	profile.Experience = slices.Delete(slices.Clone(profile.Experience), i, i+1)
	r.s.profiles[userID] = profile

	return nil
}

func (r *profileRepo) AddEducation(_ context.Context, userID uuid.UUID, edu *entity.Education) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if edu.ID == uuid.Nil {
		edu.ID = newID()
	}
	profile.Education = prepend(profile.Education, *edu)
	r.s.profiles[userID] = profile

	return nil
}

func (r *profileRepo) RemoveEducation(_ context.Context, userID, eduID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[userID]
	if !ok {
		return repository.ErrEntryNotFound
	}
	i := slices.IndexFunc(profile.Education, func(e entity.Education) bool { return e.ID == eduID })
	if i < 0 {
		return repository.ErrEntryNotFound
	}
	profile.Education = slices.Delete(slices.Clone(profile.Education), i, i+1)
	r.s.profiles[userID] = profile

	return nil
}

type postRepo struct {
	s *Store
}

func (r *postRepo) index(id uuid.UUID) int {
	return slices.IndexFunc(r.s.posts, func(p entity.Post) bool { return p.ID == id })
}

func (r *postRepo) Create(_ context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("PostRepo.Create"); err != nil {
		return err
	}
	if _, ok := r.s.users[post.UserID]; !ok {
		return domainerrors.NewDatabaseExecuteError(errors.New("foreign key violation"), "post owner does not exist")
	}
	if post.ID == uuid.Nil {
		post.ID = newID()
	}
	post.CreatedAt = r.s.now()
	if post.Likes == nil {
		post.Likes = []entity.Like{}
	}
	if post.Comments == nil {
		post.Comments = []entity.Comment{}
	}
	r.s.posts = append(r.s.posts, clonePost(*post))

	return nil
}

func (r *postRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("PostRepo.FindByID"); err != nil {
		return nil, err
	}
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrPostNotFound
	}
	post := clonePost(r.s.posts[i])

	return &post, nil
}

func (r *postRepo) List(_ context.Context) ([]*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("PostRepo.List"); err != nil {
		return nil, err
	}
	posts := make([]*entity.Post, 0, len(r.s.posts))
	for i := len(r.s.posts) - 1; i >= 0; i-- {
		post := clonePost(r.s.posts[i])
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *postRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("PostRepo.Delete"); err != nil {
		return err
	}
	i := r.index(id)
	if i < 0 {
		return repository.ErrPostNotFound
	}
	r.s.posts = slices.Delete(r.s.posts, i, i+1)

	return nil
}

func (r *postRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("PostRepo.DeleteByUserID"); err != nil {
		return 0, err
	}
	before := len(r.s.posts)
	r.s.posts = slices.DeleteFunc(r.s.posts, func(p entity.Post) bool { return p.UserID == userID })

	return int64(before - len(r.s.posts)), nil
}

func (r *postRepo) AddLike(_ context.Context, postID uuid.UUID, like *entity.Like) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(postID)
	if i < 0 {
		return repository.ErrPostNotFound
	}
	if r.s.posts[i].LikedBy(like.UserID) {
		return repository.ErrAlreadyLiked
	}
	if like.ID == uuid.Nil {
		like.ID = newID()
	}
	r.s.posts[i].Likes = prepend(r.s.posts[i].Likes, *like)

	return nil
}

func (r *postRepo) RemoveLike(_ context.Context, postID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(postID)
	if i < 0 {
		return repository.ErrPostNotFound
	}
	j := slices.IndexFunc(r.s.posts[i].Likes, func(l entity.Like) bool { return l.UserID == userID })
	if j < 0 {
		return repository.ErrNotLiked
	}
	r.s.posts[i].Likes = slices.Delete(slices.Clone(r.s.posts[i].Likes), j, j+1)

	return nil
}

func (r *postRepo) ListLikes(_ context.Context, postID uuid.UUID) ([]entity.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(postID)
	if i < 0 {
		return []entity.Like{}, nil
	}

	return append([]entity.Like{}, r.s.posts[i].Likes...), nil
}

func (r *postRepo) AddComment(_ context.Context, postID uuid.UUID, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(postID)
	if i < 0 {
		return repository.ErrPostNotFound
	}
	if comment.ID == uuid.Nil {
		comment.ID = newID()
	}
	comment.CreatedAt = r.s.now()
	r.s.posts[i].Comments = prepend(r.s.posts[i].Comments, *comment)

	return nil
}

func (r *postRepo) RemoveComment(_ context.Context, postID, commentID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(postID)
	if i < 0 {
		return repository.ErrCommentNotFound
	}
	j := slices.IndexFunc(r.s.posts[i].Comments, func(c entity.Comment) bool { return c.ID == commentID })
	if j < 0 {
		return repository.ErrCommentNotFound
	}
	r.s.posts[i].Comments = slices.Delete(slices.Clone(r.s.posts[i].Comments), j, j+1)

	return nil
}

func (r *postRepo) ListComments(_ context.Context, postID uuid.UUID) ([]entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(postID)
	if i < 0 {
		return []entity.Comment{}, nil
	}

	return append([]entity.Comment{}, r.s.posts[i].Comments...), nil
}
