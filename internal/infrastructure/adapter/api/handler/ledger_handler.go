package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/usecase"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/dto"
)

// LedgerHandler handles points ledger HTTP requests
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger core.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger core.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, logger: logger}
}

// Earn handles POST /users/:id/earn
func (h *LedgerHandler) Earn(c *gin.Context) {
	h.apply(c, h.ledger.Earn)
}

// Redeem handles POST /users/:id/redeem
func (h *LedgerHandler) Redeem(c *gin.Context) {
	h.apply(c, h.ledger.Redeem)
}

// ListTransactions handles GET /users/:id/transactions
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	pagination, err := paginationFromQuery(c, schema.Transaction, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	transactions, err := h.ledger.ListTransactions(c.Request.Context(), id, pagination)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// apply runs one ledger operation and reports the resulting balance
func (h *LedgerHandler) apply(c *gin.Context, operation func(ctx context.Context, userID, amount int64, description string) (int64, error)) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	var req dto.LedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidArgument,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	balance, err := operation(c.Request.Context(), id, req.Amount, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: id, Balance: balance})
}
