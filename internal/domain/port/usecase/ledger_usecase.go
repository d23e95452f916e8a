package usecase

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
)

// LedgerUseCase defines the points ledger operations exposed to the API layer
type LedgerUseCase interface {
	// Earn credits points to the user and records a ledger entry inside
	// one atomic unit, returning the new balance
	//
	// Possible errors:
	// - ErrInvalidAmount: amount is not positive
	// - ErrUserNotFound: no active user has the given id
	// - ErrInvalidTransaction: the ledger entry failed validation
	Earn(ctx context.Context, userID, amount int64, description string) (int64, error)

	// Redeem debits points from the user and records a ledger entry inside
	// one atomic unit, returning the new balance
	//
	// Possible errors:
	// - ErrInvalidAmount: amount is not positive
	// - ErrUserNotFound: no active user has the given id
	// - ErrInsufficientBalance: amount exceeds the current balance
	// - ErrInvalidTransaction: the ledger entry failed validation
	Redeem(ctx context.Context, userID, amount int64, description string) (int64, error)

	// ListTransactions returns the user's ledger history
	//
	// Possible errors:
	// - ErrUserNotFound: no active user has the given id
	ListTransactions(ctx context.Context, userID int64, pagination *query.Pagination) ([]*entity.Transaction, error)
}
