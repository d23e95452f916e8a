package persistence

import (
	"context"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves an active user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no active user has the given id
	// - ErrDatabase: if the storage engine fails
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// Create inserts a new user and assigns the storage-generated id
	// back onto the entity
	//
	// Possible errors:
	// - ErrDuplicateEmail: if an active user with the same email exists
	// - ErrDatabase: if the storage engine fails
	Create(ctx context.Context, user *entity.User) error

	// Save updates the user's fillable fields by primary key, or creates
	// the row when the primary key is not yet set
	//
	// Possible errors:
	// - ErrDuplicateEmail: if the update violates the active-email index
	// - ErrDatabase: if the storage engine fails
	Save(ctx context.Context, user *entity.User) error

	// List returns active users matching the AND of all filters, ordered
	// and bounded by the pagination when supplied. Zero matches yield an
	// empty slice, not an error.
	List(ctx context.Context, pagination *query.Pagination, filters ...query.Filter) ([]*entity.User, error)

	// Delete soft-deletes the user by id, returning the affected row count
	//
	// Possible errors:
	// - ErrDatabase: if the storage engine fails
	Delete(ctx context.Context, id int64) (int64, error)
}
