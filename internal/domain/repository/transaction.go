package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewGameRepository returns a GameRepository bound to the current transaction.
	NewGameRepository() GameRepository

	// NewReviewRepository returns a ReviewRepository bound to the current transaction.
	NewReviewRepository() ReviewRepository

	// NewRefreshTokenRepository returns a RefreshTokenRepository bound to the current transaction.
	NewRefreshTokenRepository() RefreshTokenRepository

	// NewResetTokenRepository returns a ResetTokenRepository bound to the current transaction.
	NewResetTokenRepository() ResetTokenRepository
}
