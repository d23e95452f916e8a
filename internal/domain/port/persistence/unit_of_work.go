package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across the user
// and transaction repositories inside one atomic unit
type UnitOfWork interface {
	// Begin starts a new atomic unit and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the atomic unit in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the atomic unit in the given context
	Rollback(ctx context.Context) error

	// Active reports whether the given context carries an open atomic unit
	Active(ctx context.Context) bool

	// GetUserRepository returns a user repository bound to the current
	// atomic unit, or to the base connection when none is open
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to
	// the current atomic unit, or to the base connection when none is open
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
