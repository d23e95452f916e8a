package repository

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/persistence"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"gorm.io/gorm"
)

// TransactionConfig is the table mapping for ledger entries. Deletable is
// off: entries are immutable once written, and physical removal happens
// only through the users foreign key cascade.
var TransactionConfig = Config{
	Table:      "transactions",
	PrimaryKey: "id",
	Fillable:   []string{"userId", "operation", "amount", "description"},
	SoftDelete: false,
	Deletable:  false,
}

// TransactionRepository implements persistence.TransactionRepository on
// top of the generic repository
type TransactionRepository struct {
	generic *Generic[*entity.Transaction]
	logger  core.Logger
}

// NewTransactionRepository creates a transaction repository bound to the
// given connection
func NewTransactionRepository(db *gorm.DB, timer core.TimeProvider, logger core.Logger) (*TransactionRepository, error) {
	generic, err := NewGeneric(db, TransactionConfig, func() *entity.Transaction { return &entity.Transaction{} }, timer, logger)
	if err != nil {
		return nil, err
	}
	return &TransactionRepository{generic: generic, logger: logger}, nil
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// WithDB returns a copy bound to another connection, typically an open
// atomic unit
func (r *TransactionRepository) WithDB(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{generic: r.generic.WithDB(db), logger: r.logger}
}

// Create saves a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	_, err := r.generic.Create(ctx, transaction)
	return err
}

// ListByUser returns the user's ledger entries
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64, pagination *query.Pagination) ([]*entity.Transaction, error) {
	filter, err := query.NewFilter(schema.Transaction, "userId", userID)
	if err != nil {
		return nil, err
	}
	return r.generic.FindAll(ctx, nil, pagination, filter)
}
