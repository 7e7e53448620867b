package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincheck/backend/internal/application/usecase/auth"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	signUpUseCase *auth.SignUpUseCase
	signInUseCase *auth.SignInUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	signUpUseCase *auth.SignUpUseCase,
	signInUseCase *auth.SignInUseCase,
) *AuthController {
	return &AuthController{
		signUpUseCase: signUpUseCase,
		signInUseCase: signInUseCase,
	}
}

// SignUp handles POST /auth/signup requests.
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.signUpUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: output.AccessToken,
	})
}

// SignIn handles POST /auth/signin requests.
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SigninRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.signInUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: output.AccessToken,
	})
}

// handleAuthError maps authentication errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailInUse:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
