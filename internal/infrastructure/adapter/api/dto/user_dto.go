package dto

import "github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"

// CreateUserRequest is the payload for POST /users
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PointsBalance int64  `json:"pointsBalance"`
}

// NewUserResponse maps a user entity onto its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID(),
		Name:          user.Name(),
		Email:         user.Email(),
		PointsBalance: user.PointsBalance(),
	}
}

// NewUserListResponse maps a slice of user entities
func NewUserListResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
