package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/usecase"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  usecase.UserUseCase
	logger core.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(users usecase.UserUseCase, logger core.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidArgument,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// List handles GET /users with optional name/email filters and pagination
func (h *UserHandler) List(c *gin.Context) {
	pagination, err := paginationFromQuery(c, schema.User, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var filters []query.Filter
	for _, field := range []string{"name", "email"} {
		if value := c.Query(field); value != "" {
			filter, err := query.NewFilter(schema.User, field, value)
			if err != nil {
				respondError(c, h.logger, err)
				return
			}
			filters = append(filters, filter)
		}
	}

	users, err := h.users.ListUsers(c.Request.Context(), pagination, filters...)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
