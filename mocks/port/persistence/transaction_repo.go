package persistence

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock implementation of
// persistence.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// Create saves a new ledger entry
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// ListByUser returns the user's ledger entries
func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID int64, pagination *query.Pagination) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}
