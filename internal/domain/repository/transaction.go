package repository

import "context"

// TransactionManager runs use case logic inside a single database transaction
// without exposing the driver to the use case layer.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error rolls back, otherwise it commits.
	// Repositories obtained from the factory share that transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProfileRepo() ProfileRepository
	PostRepo() PostRepository
}
