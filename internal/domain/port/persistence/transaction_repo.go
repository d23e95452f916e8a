package persistence

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
)

// TransactionRepository defines the persistence boundary for ledger
// entries. Entries are append-only: the interface deliberately offers no
// update or delete.
type TransactionRepository interface {
	// Create saves a new ledger entry and assigns the storage-generated
	// id back onto the entity
	//
	// Possible errors:
	// - ErrDatabase: if the storage engine fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the user's ledger entries, ordered and bounded
	// by the pagination when supplied
	ListByUser(ctx context.Context, userID int64, pagination *query.Pagination) ([]*entity.Transaction, error)
}
