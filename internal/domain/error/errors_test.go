package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid amount", ErrInvalidAmount, CodeInvalidArgument},
		{"invalid email", ErrInvalidEmail, CodeInvalidArgument},
		{"unknown field", ErrUnknownField, CodeInvalidArgument},
		{"wrapped invalid argument", fmt.Errorf("%w: limit 0", ErrInvalidLimit), CodeInvalidArgument},
		{"insufficient balance sentinel", ErrInsufficientBalance, CodeInsufficientBalance},
		{"insufficient balance detailed", NewInsufficientBalanceError(1, 50, 30), CodeInsufficientBalance},
		{"invalid transaction", NewInvalidTransactionError(ErrInvalidDescription), CodeInvalidTransaction},
		{"invalid transaction wrapping amount sentinel", NewInvalidTransactionError(ErrInvalidAmount), CodeInvalidTransaction},
		{"invalid transaction sentinel", ErrInvalidTransaction, CodeInvalidTransaction},
		{"user not found sentinel", ErrUserNotFound, CodeUserNotFound},
		{"user not found detailed", NewNotFoundError(9), CodeUserNotFound},
		{"duplicate email", ErrDuplicateEmail, CodeConflict},
		{"duplicate key", ErrDuplicateKey, CodeConflict},
		{"conflict detailed", NewConflictError("ada@example.com"), CodeConflict},
		{"database error", ErrDatabase, CodeInternalServer},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ErrorCode(tc.err))
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(42)

	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "42")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(42), nf.UserID)
	assert.Equal(t, CodeUserNotFound, nf.LogFields()["error_code"])
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(7, 50, 30)

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.True(t, IsInsufficientBalanceError(err))

	var ib *InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, int64(7), ib.UserID)
	assert.Equal(t, int64(50), ib.Requested)
	assert.Equal(t, int64(30), ib.Balance)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("ada@example.com")

	assert.True(t, errors.Is(err, ErrDuplicateEmail))
	assert.True(t, IsConflictError(err))
	assert.Contains(t, err.Error(), "ada@example.com")

	assert.True(t, IsConflictError(ErrDuplicateKey))
	assert.False(t, IsConflictError(ErrUserNotFound))
}

func TestInvalidTransactionError(t *testing.T) {
	err := NewInvalidTransactionError(ErrInvalidDescription)

	assert.True(t, errors.Is(err, ErrInvalidTransaction))
	assert.True(t, IsInvalidTransactionError(err))

	// Unwraps to the underlying validation failure
	assert.True(t, errors.Is(err, ErrInvalidDescription))

	// The wrapped sentinel is an invalid argument, but the wrapper's
	// classification wins when mapping to a code
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, CodeInvalidTransaction, ErrorCode(err))
}

func TestIsInvalidArgument(t *testing.T) {
	t.Run("precondition failures", func(t *testing.T) {
		for _, err := range []error{
			ErrInvalidAmount,
			ErrInvalidName,
			ErrInvalidEmail,
			ErrNegativeBalance,
			ErrInvalidDescription,
			ErrInvalidOperation,
			ErrUnknownField,
			ErrUnknownEntity,
			ErrInvalidOperator,
			ErrInvalidLimit,
			ErrInvalidOffset,
			ErrInvalidDirection,
			ErrInvalidUserID,
			ErrMissingFilters,
			ErrNotDeletable,
		} {
			assert.True(t, IsInvalidArgument(err), err.Error())
		}
	})

	t.Run("wrapped precondition failure", func(t *testing.T) {
		assert.True(t, IsInvalidArgument(fmt.Errorf("%w: earned points must be > 0", ErrInvalidAmount)))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, IsInvalidArgument(ErrUserNotFound))
		assert.False(t, IsInvalidArgument(ErrInsufficientBalance))
		assert.False(t, IsInvalidArgument(ErrDatabase))
		assert.False(t, IsInvalidArgument(errors.New("boom")))
	})
}
