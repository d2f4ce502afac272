// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email       string
	Password    string
	Name        string
	City        string
	PhoneNumber string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput defines the profile fields a user may change.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Name           *string
	City           *string
	PhoneNumber    *string
	ProfilePicture *string
}

// --- Output DTOs ---

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	Token  string
	UserID uuid.UUID
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)
}
