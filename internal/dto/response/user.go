package response

import (
	"time"

	"todo-app/internal/data/entity"
)

// UserResponse is the redacted projection shown to non-admin viewers.
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

// UserFullResponse is the complete record, visible to admins only.
type UserFullResponse struct {
	ID                string             `json:"id"`
	Email             string             `json:"email"`
	IsVerified        bool               `json:"is_verified"`
	Role              entity.UserRole    `json:"role"`
	PendingEmail      *string            `json:"pending_email,omitempty"`
	EmailVerification entity.TokenRecord `json:"email_verification"`
	PasswordReset     entity.TokenRecord `json:"password_reset"`
	EmailUpdate       entity.TokenRecord `json:"email_update"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}
}

func UserToFullResponse(user *entity.User) *UserFullResponse {
	return &UserFullResponse{
		ID:                user.ID.String(),
		Email:             user.Email,
		IsVerified:        user.IsVerified,
		Role:              user.Role,
		PendingEmail:      user.PendingEmail,
		EmailVerification: user.EmailVerification,
		PasswordReset:     user.PasswordReset,
		EmailUpdate:       user.EmailUpdate,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
