package entity

import (
	"fmt"
	"strings"

	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/spf13/cast"
)

// Transaction is one immutable entry in the loyalty ledger. It is created
// exactly once per successful earn/redeem call, inside the same atomic unit
// as the balance update, and never mutated or deleted afterwards.
type Transaction struct {
	id          int64
	userID      int64
	operation   schema.Operation
	amount      int64
	description string
}

// NewTransaction creates a ledger entry with full field validation
func NewTransaction(userID int64, operation schema.Operation, amount int64, description string) (*Transaction, error) {
	t := &Transaction{}
	if err := t.setUserID(userID); err != nil {
		return nil, err
	}
	if err := t.setOperation(operation); err != nil {
		return nil, err
	}
	if err := t.setAmount(amount); err != nil {
		return nil, err
	}
	if err := t.setDescription(description); err != nil {
		return nil, err
	}
	return t, nil
}

// ID returns the storage-assigned identifier, zero until created
func (t *Transaction) ID() int64 {
	return t.id
}

// UserID returns the owning user's identifier
func (t *Transaction) UserID() int64 {
	return t.userID
}

// Operation returns the ledger operation, earn or redeem
func (t *Transaction) Operation() schema.Operation {
	return t.operation
}

// Amount returns the number of points moved, always at least 1
func (t *Transaction) Amount() int64 {
	return t.amount
}

// Description returns the human-readable reason for the entry
func (t *Transaction) Description() string {
	return t.description
}

func (t *Transaction) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.ErrInvalidUserID
	}
	t.userID = userID
	return nil
}

func (t *Transaction) setOperation(operation schema.Operation) error {
	if !schema.IsValidOperation(operation) {
		return errs.ErrInvalidOperation
	}
	t.operation = operation
	return nil
}

func (t *Transaction) setAmount(amount int64) error {
	if amount < 1 {
		return errs.ErrInvalidAmount
	}
	t.amount = amount
	return nil
}

func (t *Transaction) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" || len(description) > maxFieldLength {
		return errs.ErrInvalidDescription
	}
	t.description = description
	return nil
}

// EntityType implements Record
func (t *Transaction) EntityType() schema.EntityType {
	return schema.Transaction
}

// Fields implements Record
func (t *Transaction) Fields() map[string]any {
	return map[string]any{
		"id":          t.id,
		"userId":      t.userID,
		"operation":   t.operation,
		"amount":      t.amount,
		"description": t.description,
	}
}

// SetField implements Record. It exists for hydration only; ledger entries
// are never updated through the repository once written. Cast failures
// return the cast error with field context, not a validation sentinel.
func (t *Transaction) SetField(name string, value any) error {
	switch name {
	case "id":
		id, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("id: %w", err)
		}
		t.id = id
		return nil
	case "userId":
		userID, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("userId: %w", err)
		}
		return t.setUserID(userID)
	case "operation":
		return t.setOperation(schema.Operation(cast.ToString(value)))
	case "amount":
		amount, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		return t.setAmount(amount)
	case "description":
		return t.setDescription(cast.ToString(value))
	default:
		return nil
	}
}
