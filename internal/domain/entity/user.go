package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/spf13/cast"
)

// maxFieldLength bounds name, email and description columns
const maxFieldLength = 255

// User represents a loyalty program member with a points balance.
// All mutable state is private and changed only through validating setters,
// so the non-negative balance invariant holds on every write path.
type User struct {
	id            int64
	name          string
	email         string
	pointsBalance int64
	deletedAt     *time.Time
}

// NewUser creates an active user with a zero points balance
func NewUser(name, email string) (*User, error) {
	u := &User{}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

// ID returns the storage-assigned identifier, zero until created
func (u *User) ID() int64 {
	return u.id
}

// Name returns the user's name
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address
func (u *User) Email() string {
	return u.email
}

// PointsBalance returns the current points balance
func (u *User) PointsBalance() int64 {
	return u.pointsBalance
}

// DeletedAt returns the soft-delete marker, nil while the user is active
func (u *User) DeletedAt() *time.Time {
	return u.deletedAt
}

// IsDeleted reports whether the user has been soft-deleted
func (u *User) IsDeleted() bool {
	return u.deletedAt != nil
}

// SetID assigns the storage-generated identifier
func (u *User) SetID(id int64) error {
	if id <= 0 {
		return errs.ErrInvalidUserID
	}
	u.id = id
	return nil
}

// SetName validates and assigns the user's name
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxFieldLength {
		return errs.ErrInvalidName
	}
	u.name = name
	return nil
}

// SetEmail validates and assigns the user's email address
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxFieldLength {
		return errs.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.ErrInvalidEmail
	}
	u.email = email
	return nil
}

// SetBalance assigns the points balance, enforcing the non-negative invariant
func (u *User) SetBalance(balance int64) error {
	if balance < 0 {
		return errs.ErrNegativeBalance
	}
	u.pointsBalance = balance
	return nil
}

// MarkDeleted sets the soft-delete marker
func (u *User) MarkDeleted(at time.Time) {
	u.deletedAt = &at
}

// EntityType implements Record
func (u *User) EntityType() schema.EntityType {
	return schema.User
}

// Fields implements Record
func (u *User) Fields() map[string]any {
	var deletedAt any
	if u.deletedAt != nil {
		deletedAt = *u.deletedAt
	}
	return map[string]any{
		"id":            u.id,
		"name":          u.name,
		"email":         u.email,
		"pointsBalance": u.pointsBalance,
		"deletedAt":     deletedAt,
	}
}

// SetField implements Record, dispatching to the validating setters.
// A value that cannot be cast is a hydration failure, not an invariant
// violation, so the cast error is returned as-is with field context.
func (u *User) SetField(name string, value any) error {
	switch name {
	case "id":
		id, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("id: %w", err)
		}
		return u.SetID(id)
	case "name":
		return u.SetName(cast.ToString(value))
	case "email":
		return u.SetEmail(cast.ToString(value))
	case "pointsBalance":
		balance, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("pointsBalance: %w", err)
		}
		return u.SetBalance(balance)
	case "deletedAt":
		return u.setDeletedAt(value)
	default:
		return nil
	}
}

// setDeletedAt hydrates the soft-delete marker from a row value
func (u *User) setDeletedAt(value any) error {
	if value == nil {
		u.deletedAt = nil
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		u.deletedAt = &v
		return nil
	case *time.Time:
		u.deletedAt = v
		return nil
	case string:
		t, err := time.Parse(schema.TimeLayout, v)
		if err != nil {
			return err
		}
		u.deletedAt = &t
		return nil
	default:
		t, err := cast.ToTimeE(value)
		if err != nil {
			return err
		}
		u.deletedAt = &t
		return nil
	}
}
