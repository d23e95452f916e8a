package ledger

import (
	"context"
	"fmt"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/persistence"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/usecase"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
)

// Service orchestrates the earn/redeem business transaction: load user,
// apply the balance delta through the validated setter, persist user and
// ledger entry inside one atomic unit, report the new balance.
type Service struct {
	uow    persistence.UnitOfWork
	logger core.Logger
}

// NewService creates the ledger service
func NewService(uow persistence.UnitOfWork, logger core.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// Earn credits points to the user and returns the new balance
func (s *Service) Earn(ctx context.Context, userID, amount int64, description string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: earned points must be > 0", errs.ErrInvalidAmount)
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return s.apply(ctx, user, schema.OperationEarn, amount, description)
}

// Redeem debits points from the user and returns the new balance
func (s *Service) Redeem(ctx context.Context, userID, amount int64, description string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: redeemed points must be > 0", errs.ErrInvalidAmount)
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	// Checked before the atomic unit opens so no rollback is needed.
	// A concurrent redemption racing between this read and the write
	// phase is caught again by the non-negative setter below.
	if user.PointsBalance() < amount {
		return 0, errs.NewInsufficientBalanceError(userID, amount, user.PointsBalance())
	}

	return s.apply(ctx, user, schema.OperationRedeem, amount, description)
}

// ListTransactions returns the user's ledger history
func (s *Service) ListTransactions(ctx context.Context, userID int64, pagination *query.Pagination) ([]*entity.Transaction, error) {
	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, pagination)
}

// apply runs steps 3-8 of the transaction protocol: everything between
// Begin and Commit is all-or-nothing, and every failure path after Begin
// rolls the unit back before re-raising the original error.
func (s *Service) apply(ctx context.Context, user *entity.User, operation schema.Operation, amount int64, description string) (int64, error) {
	delta := amount
	if operation == schema.OperationRedeem {
		delta = -amount
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}

	if err := user.SetBalance(user.PointsBalance() + delta); err != nil {
		// Unreachable for earn and pre-checked for redeem; reaching this
		// is a defect, not a user error.
		s.rollback(txCtx)
		return 0, err
	}

	if err := s.uow.GetUserRepository(txCtx).Save(txCtx, user); err != nil {
		s.rollback(txCtx)
		return 0, err
	}

	record, err := entity.NewTransaction(user.ID(), operation, amount, description)
	if err != nil {
		s.rollback(txCtx)
		return 0, errs.NewInvalidTransactionError(err)
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, record); err != nil {
		s.rollback(txCtx)
		return 0, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx)
		return 0, err
	}

	s.logger.Info("Ledger operation applied", map[string]any{
		"user_id":     user.ID(),
		"operation":   string(operation),
		"amount":      amount,
		"new_balance": user.PointsBalance(),
	})

	return user.PointsBalance(), nil
}

// rollback closes the atomic unit if it is still open; the original error
// always wins over a rollback failure
func (s *Service) rollback(ctx context.Context) {
	if !s.uow.Active(ctx) {
		return
	}
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to roll back atomic unit", map[string]any{
			"error": err.Error(),
		})
	}
}
