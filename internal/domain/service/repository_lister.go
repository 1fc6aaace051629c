package service

import (
	"context"
	"errors"

	"devconnector/internal/domain/entity"
)

// ErrRepositoryOwnerNotFound is returned when the code host does not answer with a listing.
var ErrRepositoryOwnerNotFound = errors.New("repository owner not found")

// RepositoryLister fetches the latest public repositories of a code host user.
type RepositoryLister interface {
	ListRepositories(ctx context.Context, username string) ([]entity.GitHubRepo, error)
}
