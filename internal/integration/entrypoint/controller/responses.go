package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
)

// respondUnauthenticated writes the uniform 401 body. It only fires when a
// handler runs without the auth middleware having stored a user ID.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Invalid or missing credentials",
		Code:  string(domainerror.ErrCodeInvalidToken),
	})
}

// respondInvalidBody writes the uniform 400 body for malformed JSON or
// failed binding validation.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}

// respondInvalidID writes a 400 for a path parameter that is not a UUID.
func respondInvalidID(ctx *gin.Context, resource string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + resource + " ID",
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}
