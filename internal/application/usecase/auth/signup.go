// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// emailRegex is compiled once at package level.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SignUpInput represents the input for user registration.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignUpOutput represents the output of user registration.
type SignUpOutput struct {
	AccessToken string
}

// SignUpUseCase handles user registration logic.
type SignUpUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewSignUpUseCase creates a new SignUpUseCase instance.
func NewSignUpUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration. The user row and its 12 default
// categories are created atomically; on success a token is issued so the new
// user is signed in immediately.
func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 8 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailInUse,
			"this email is already in use",
			domainerror.ErrEmailAlreadyInUse,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user and default categories in one transaction. A concurrent
	// signup with the same email loses on the unique index and surfaces here.
	user := entity.NewUser(input.Name, input.Email, passwordHash)
	categories := entity.DefaultCategories(user.ID)

	if err := uc.userRepo.CreateWithCategories(ctx, user, categories); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyInUse) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailInUse,
				"this email is already in use",
				domainerror.ErrEmailAlreadyInUse,
			)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Issue token (auto-login)
	accessToken, err := uc.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &SignUpOutput{AccessToken: accessToken}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
