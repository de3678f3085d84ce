package dto

import "github.com/google/uuid"

// CreateAccountRequest body untuk create user / create admin
type CreateAccountRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AccountIDRequest body untuk delete / toggle-status
type AccountIDRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// AccountResponse representasi akun untuk response admin
type AccountResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
