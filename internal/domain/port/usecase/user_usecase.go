package usecase

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
)

// UserUseCase defines the user lifecycle operations exposed to the API layer
type UserUseCase interface {
	// CreateUser signs up a new user with a zero points balance
	//
	// Possible errors:
	// - ErrInvalidName / ErrInvalidEmail: field validation failures
	// - ErrDuplicateEmail: an active user with the same email exists
	CreateUser(ctx context.Context, name, email string) (*entity.User, error)

	// GetUser returns the active user with the given id
	//
	// Possible errors:
	// - ErrUserNotFound: no active user has the given id
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// ListUsers returns active users matching the filters and pagination
	ListUsers(ctx context.Context, pagination *query.Pagination, filters ...query.Filter) ([]*entity.User, error)

	// DeleteUser soft-deletes the user with the given id
	//
	// Possible errors:
	// - ErrUserNotFound: no active user has the given id
	DeleteUser(ctx context.Context, id int64) error
}
