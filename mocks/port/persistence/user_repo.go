package persistence

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistence.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// GetByID retrieves an active user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// Create inserts a new user
func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Save updates the user's fillable fields by primary key
func (m *MockUserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// List returns active users matching the filters
func (m *MockUserRepository) List(ctx context.Context, pagination *query.Pagination, filters ...query.Filter) ([]*entity.User, error) {
	callArgs := []any{ctx, pagination}
	for _, filter := range filters {
		callArgs = append(callArgs, filter)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

// Delete soft-deletes the user by id
func (m *MockUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
