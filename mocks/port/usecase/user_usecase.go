package usecase

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of usecase.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

// CreateUser registers a new user
func (m *MockUserUseCase) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// GetUser fetches an active user by ID
func (m *MockUserUseCase) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// ListUsers returns a page of active users
func (m *MockUserUseCase) ListUsers(ctx context.Context, pagination *query.Pagination, filters ...query.Filter) ([]*entity.User, error) {
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

// DeleteUser soft-deletes a user by ID
func (m *MockUserUseCase) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
