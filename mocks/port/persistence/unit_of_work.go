package persistence

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of persistence.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

// Begin starts a new atomic unit
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return ctx, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit commits the atomic unit
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback rolls back the atomic unit
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Active reports whether an atomic unit is open
func (m *MockUnitOfWork) Active(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// GetUserRepository returns the user repository bound to the context
func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

// GetTransactionRepository returns the transaction repository bound to the context
func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}
