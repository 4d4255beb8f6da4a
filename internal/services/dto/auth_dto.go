package dto

import (
	"time"

	"jobboard/internal/models"
)

type RegisterRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	UserType models.UserRole `json:"userType" validate:"required,oneof=seeker employer"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the credential-free view of a user.
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	UserType  models.UserRole `json:"userType"`
	CreatedAt time.Time       `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

// NewUserResponse strips everything but the public fields.
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		UserType:  u.Role,
		CreatedAt: u.CreatedAt,
	}
}
