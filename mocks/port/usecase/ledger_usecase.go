package usecase

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/stretchr/testify/mock"
)

// MockLedgerUseCase is a mock implementation of usecase.LedgerUseCase
type MockLedgerUseCase struct {
	mock.Mock
}

// Earn credits points to a user
func (m *MockLedgerUseCase) Earn(ctx context.Context, userID, amount int64, description string) (int64, error) {
	args := m.Called(ctx, userID, amount, description)
	return args.Get(0).(int64), args.Error(1)
}

// Redeem debits points from a user
func (m *MockLedgerUseCase) Redeem(ctx context.Context, userID, amount int64, description string) (int64, error) {
	args := m.Called(ctx, userID, amount, description)
	return args.Get(0).(int64), args.Error(1)
}

// ListTransactions returns the user's ledger history
func (m *MockLedgerUseCase) ListTransactions(ctx context.Context, userID int64, pagination *query.Pagination) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}
