package dto

import "github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"

// LedgerRequest is the payload for POST /users/:id/earn and /redeem
type LedgerRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// BalanceResponse reports the balance after a ledger operation
type BalanceResponse struct {
	UserID  int64 `json:"userId"`
	Balance int64 `json:"balance"`
}

// TransactionResponse is the API representation of a ledger entry
type TransactionResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Operation   string `json:"operation"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// NewTransactionResponse maps a ledger entry onto its API representation
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID(),
		UserID:      transaction.UserID(),
		Operation:   string(transaction.Operation()),
		Amount:      transaction.Amount(),
		Description: transaction.Description(),
	}
}

// NewTransactionListResponse maps a slice of ledger entries
func NewTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, NewTransactionResponse(transaction))
	}
	return out
}
