package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidArgument     = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidTransaction  = 4002
	CodeUserNotFound        = 4040
	CodeConflict            = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an earn/redeem amount is not positive
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidName is returned when a user name is empty or too long
	ErrInvalidName = errors.New("name must be a non-empty string of at most 255 characters")

	// ErrInvalidEmail is returned when an email is malformed or too long
	ErrInvalidEmail = errors.New("email must be a valid address of at most 255 characters")

	// ErrNegativeBalance is returned when an operation would result in a negative points balance
	ErrNegativeBalance = errors.New("points balance cannot be negative")

	// ErrInvalidDescription is returned when a transaction description is empty or too long
	ErrInvalidDescription = errors.New("description must be a non-empty string of at most 255 characters")

	// ErrInvalidOperation is returned when a ledger operation is not earn or redeem
	ErrInvalidOperation = errors.New("operation must be earn or redeem")

	// ErrUnknownField is returned when a filter or order field is not declared on the entity
	ErrUnknownField = errors.New("unknown entity field")

	// ErrUnknownEntity is returned when an entity type is not declared in the registry
	ErrUnknownEntity = errors.New("unknown entity type")

	// ErrInvalidOperator is returned when a filter operator is not in the allowed set
	ErrInvalidOperator = errors.New("unsupported comparison operator")

	// ErrInvalidLimit is returned when a pagination limit is below 1
	ErrInvalidLimit = errors.New("limit must be at least 1")

	// ErrInvalidOffset is returned when a pagination offset is negative
	ErrInvalidOffset = errors.New("offset cannot be negative")

	// ErrInvalidDirection is returned when an ordering direction is not ASC or DESC
	ErrInvalidDirection = errors.New("direction must be ascending or descending")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientBalance is returned when a redemption exceeds the current balance
	ErrInsufficientBalance = errors.New("insufficient points balance")

	// ErrDuplicateEmail is returned when an active user with the same email already exists
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrInvalidTransaction is returned when a transaction record fails validation
	// inside the atomic unit
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrNotDeletable is returned when delete is called on a non-deletable repository
	ErrNotDeletable = errors.New("repository does not allow deletes")

	// ErrMissingFilters is returned when delete is called without any filter
	ErrMissingFilters = errors.New("delete requires at least one filter")

	// ErrDuplicateKey is returned when the storage engine reports a uniqueness violation
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDatabase is returned for unexpected storage failures
	ErrDatabase = errors.New("database error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// invalidArgumentErrors are the caller-supplied precondition failures;
// they are surfaced to the caller unchanged and never retried.
var invalidArgumentErrors = []error{
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
}

// ErrorCode returns standardized error codes for known errors. The
// invalid-transaction check runs before the invalid-argument one: an
// InvalidTransactionError unwraps to the field sentinel that caused it,
// and the wrapper is the more specific classification.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTransaction):
		return CodeInvalidTransaction
	case IsInvalidArgument(err):
		return CodeInvalidArgument
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateKey):
		return CodeConflict
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// NotFoundError reports a missing user with the identifier embedded
type NotFoundError struct {
	UserID int64
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user with id %d not found", e.UserID)
}

// Is checks if the target error is an ErrUserNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "user_not_found",
		"user_id":    e.UserID,
		"error_code": CodeUserNotFound,
	}
}

// NewNotFoundError creates a not-found error carrying the user id
func NewNotFoundError(userID int64) error {
	return &NotFoundError{UserID: userID}
}

// InsufficientBalanceError provides detailed error information for a
// redemption exceeding the current balance
type InsufficientBalanceError struct {
	UserID    int64
	Requested int64
	Balance   int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: requested %d, available %d",
		e.UserID, e.Requested, e.Balance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"requested":       e.Requested,
		"current_balance": e.Balance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, requested, balance int64) error {
	return &InsufficientBalanceError{UserID: userID, Requested: requested, Balance: balance}
}

// ConflictError reports a uniqueness violation on user creation
type ConflictError struct {
	Email string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("a user with email %q already exists", e.Email)
}

// Is checks if the target error is an ErrDuplicateEmail
func (e *ConflictError) Is(target error) bool {
	return target == ErrDuplicateEmail
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_email",
		"email":      e.Email,
		"error_code": CodeConflict,
	}
}

// NewConflictError creates a conflict error for a duplicate active email
func NewConflictError(email string) error {
	return &ConflictError{Email: email}
}

// InvalidTransactionError wraps a validation failure raised while
// constructing a transaction record inside the atomic unit
type InvalidTransactionError struct {
	Err error
}

// Error implements the error interface
func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("invalid transaction: %v", e.Err)
}

// Is checks if the target error is an ErrInvalidTransaction
func (e *InvalidTransactionError) Is(target error) bool {
	return target == ErrInvalidTransaction
}

// Unwrap returns the underlying validation error
func (e *InvalidTransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InvalidTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_transaction",
		"error":      e.Err.Error(),
		"error_code": CodeInvalidTransaction,
	}
}

// NewInvalidTransactionError wraps a transaction validation failure
func NewInvalidTransactionError(err error) error {
	return &InvalidTransactionError{Err: err}
}

// IsInvalidArgument checks if the error is a caller-supplied precondition failure
func IsInvalidArgument(err error) bool {
	for _, target := range invalidArgumentErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFoundError checks if the error is a user not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsConflictError checks if the error is a uniqueness violation
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateKey)
}

// IsInvalidTransactionError checks if the error wraps a transaction validation failure
func IsInvalidTransactionError(err error) bool {
	return errors.Is(err, ErrInvalidTransaction)
}
