package accounts

import (
	"time"

	"github.com/google/uuid"

	"github.com/paradise-nursery/storefront-backend/pkg/enums"
)

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// LoginInput is the credentials payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is the public projection of a user row.
type UserDTO struct {
	ID          uuid.UUID      `json:"id"`
	Email       string         `json:"email"`
	Role        enums.UserRole `json:"role"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AuthResult carries a freshly minted token plus the authenticated user.
type AuthResult struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ProfileInput is the editable profile payload.
type ProfileInput struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// ProfileDTO combines account identity with the editable profile fields.
type ProfileDTO struct {
	User      UserDTO `json:"user"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
}
