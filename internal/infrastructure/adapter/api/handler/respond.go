package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error onto an HTTP status code and the
// standardized error payload. Unexpected errors are masked; domain errors
// surface their own message.
func respondError(c *gin.Context, logger core.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsConflictError(err):
		status = http.StatusConflict
		message = err.Error()
	case domainerr.IsInsufficientBalanceError(err):
		status = http.StatusBadRequest
		message = err.Error()
	// Checked before IsInvalidArgument: the wrapped sentinel would match
	// there and hide the invalid-transaction classification
	case domainerr.IsInvalidTransactionError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsInvalidArgument(err):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		logger.Error("Unexpected error in API request", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// pathUserID parses the :id path parameter
func pathUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidArgument,
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return id, true
}

// paginationFromQuery builds a validated Pagination from the orderBy,
// limit, offset and direction query parameters
func paginationFromQuery(c *gin.Context, entity schema.EntityType, defaultOrderBy string) (*query.Pagination, error) {
	orderBy := c.DefaultQuery("orderBy", defaultOrderBy)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		return nil, domainerr.ErrInvalidLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return nil, domainerr.ErrInvalidOffset
	}

	direction := query.Ascending
	switch c.DefaultQuery("direction", "asc") {
	case "asc", "ASC":
		direction = query.Ascending
	case "desc", "DESC":
		direction = query.Descending
	default:
		return nil, domainerr.ErrInvalidDirection
	}

	pagination, err := query.NewPagination(entity, orderBy, limit, offset, direction)
	if err != nil {
		return nil, err
	}
	return &pagination, nil
}
