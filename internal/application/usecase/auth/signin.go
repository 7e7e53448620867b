// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fincheck/backend/internal/application/adapter"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// SignInInput represents the input for user sign in.
type SignInInput struct {
	Email    string
	Password string
}

// SignInOutput represents the output of user sign in.
type SignInOutput struct {
	AccessToken string
}

// SignInUseCase handles user sign in logic.
type SignInUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewSignInUseCase creates a new SignInUseCase instance.
func NewSignInUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user sign in. Unknown email and wrong password return
// the same error so registered emails cannot be enumerated.
func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*SignInOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentialsError()
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &SignInOutput{AccessToken: accessToken}, nil
}

func invalidCredentialsError() *domainerror.AuthError {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid credentials",
		domainerror.ErrInvalidCredentials,
	)
}
