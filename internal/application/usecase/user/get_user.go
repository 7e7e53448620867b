// Package user contains user profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// GetUserInput represents the input for fetching the authenticated user's profile.
type GetUserInput struct {
	UserID uuid.UUID
}

// GetUserOutput represents the profile data exposed to the user. The password
// hash is deliberately not part of this shape.
type GetUserOutput struct {
	Name  string
	Email string
}

// GetUserUseCase handles profile retrieval.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute fetches the user's name and email.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetUserOutput{
		Name:  u.Name,
		Email: u.Email,
	}, nil
}
