package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/usecase/category"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase *category.CreateCategoryUseCase
	listUseCase   *category.ListCategoriesUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := category.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Icon:   req.Icon,
		Type:   entity.TransactionType(req.Type),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{UserID: userID})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	responses := make([]dto.CategoryResponse, 0, len(output.Categories))
	for _, cat := range output.Categories {
		responses = append(responses, dto.ToCategoryResponse(cat))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Update handles PUT /categories/:categoryId requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		respondInvalidID(ctx, "category")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := category.UpdateCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       req.Name,
		Icon:       req.Icon,
		Type:       entity.TransactionType(req.Type),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:categoryId requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		respondInvalidID(ctx, "category")
		return
	}

	input := category.DeleteCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		status := http.StatusBadRequest
		if categoryErr.Code == domainerror.ErrCodeCategoryNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
