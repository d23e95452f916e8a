package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/persistence"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"gorm.io/gorm"
)

// UserConfig is the table mapping for users: soft-deletable, with every
// non-key field writable.
var UserConfig = Config{
	Table:      "users",
	PrimaryKey: "id",
	Fillable:   []string{"name", "email", "pointsBalance", "deletedAt"},
	SoftDelete: true,
	Deletable:  true,
}

// UserRepository implements persistence.UserRepository on top of the
// generic repository
type UserRepository struct {
	generic *Generic[*entity.User]
	logger  core.Logger
}

// NewUserRepository creates a user repository bound to the given connection
func NewUserRepository(db *gorm.DB, timer core.TimeProvider, logger core.Logger) (*UserRepository, error) {
	generic, err := NewGeneric(db, UserConfig, func() *entity.User { return &entity.User{} }, timer, logger)
	if err != nil {
		return nil, err
	}
	return &UserRepository{generic: generic, logger: logger}, nil
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// WithDB returns a copy bound to another connection, typically an open
// atomic unit
func (r *UserRepository) WithDB(db *gorm.DB) *UserRepository {
	return &UserRepository{generic: r.generic.WithDB(db), logger: r.logger}
}

// GetByID retrieves an active user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	filter, err := query.NewFilter(schema.User, "id", id)
	if err != nil {
		return nil, err
	}

	user, found, err := r.generic.FindOne(ctx, nil, filter)
	if err != nil {
		return nil, err
	}
	if !found {
		r.logger.Warn("User not found", map[string]any{"user_id": id})
		return nil, errs.NewNotFoundError(id)
	}
	return user, nil
}

// Create inserts a new user, translating a uniqueness violation on the
// active-email index into a conflict error
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.generic.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			return errs.NewConflictError(user.Email())
		}
		return err
	}
	return nil
}

// Save updates the user's fillable fields by primary key, creating the row
// when the key is unset
func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	if err := r.generic.Save(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			return errs.NewConflictError(user.Email())
		}
		return err
	}
	return nil
}

// List returns active users matching the AND of all filters
func (r *UserRepository) List(ctx context.Context, pagination *query.Pagination, filters ...query.Filter) ([]*entity.User, error) {
	return r.generic.FindAll(ctx, nil, pagination, filters...)
}

// Delete soft-deletes the user by id and returns the affected row count
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	filter, err := query.NewFilter(schema.User, "id", id)
	if err != nil {
		return 0, err
	}
	affected, err := r.generic.Delete(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("deleting user %d: %w", id, err)
	}
	return affected, nil
}
