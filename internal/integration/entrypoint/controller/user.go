package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincheck/backend/internal/application/usecase/user"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getUserUseCase *user.GetUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(getUserUseCase *user.GetUserUseCase) *UserController {
	return &UserController{
		getUserUseCase: getUserUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or missing credentials",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	output, err := c.getUserUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MeResponse{
		Name:  output.Name,
		Email: output.Email,
	})
}
