package user

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/persistence"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/usecase"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
)

// Service implements the user lifecycle. The points balance is deliberately
// out of reach here; it only ever changes through the ledger service.
type Service struct {
	users  persistence.UserRepository
	logger core.Logger
}

// NewService creates the user service
func NewService(users persistence.UserRepository, logger core.Logger) *Service {
	return &Service{users: users, logger: logger}
}

var _ usecase.UserUseCase = (*Service)(nil)

// CreateUser signs up a new user with a zero points balance
func (s *Service) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	user, err := entity.NewUser(name, email)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created", map[string]any{
		"user_id": user.ID(),
		"email":   user.Email(),
	})
	return user, nil
}

// GetUser returns the active user with the given id
func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns active users matching the filters and pagination
func (s *Service) ListUsers(ctx context.Context, pagination *query.Pagination, filters ...query.Filter) ([]*entity.User, error) {
	return s.users.List(ctx, pagination, filters...)
}

// DeleteUser soft-deletes the user with the given id
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	// Existence check first so a missing user surfaces as not-found
	// rather than a silent zero-row delete.
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}

	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("User deleted", map[string]any{
		"user_id":  id,
		"affected": affected,
	})
	return nil
}
