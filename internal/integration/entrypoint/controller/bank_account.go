package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/application/usecase/bankaccount"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
)

// BankAccountController handles bank account endpoints.
type BankAccountController struct {
	createUseCase *bankaccount.CreateBankAccountUseCase
	listUseCase   *bankaccount.ListBankAccountsUseCase
	updateUseCase *bankaccount.UpdateBankAccountUseCase
	deleteUseCase *bankaccount.DeleteBankAccountUseCase
}

// NewBankAccountController creates a new bank account controller instance.
func NewBankAccountController(
	createUseCase *bankaccount.CreateBankAccountUseCase,
	listUseCase *bankaccount.ListBankAccountsUseCase,
	updateUseCase *bankaccount.UpdateBankAccountUseCase,
	deleteUseCase *bankaccount.DeleteBankAccountUseCase,
) *BankAccountController {
	return &BankAccountController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /bank-accounts requests.
func (c *BankAccountController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := bankaccount.CreateBankAccountInput{
		UserID:         userID,
		Name:           req.Name,
		InitialBalance: decimal.NewFromFloat(*req.InitialBalance),
		Type:           entity.BankAccountType(req.Type),
		Color:          req.Color,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBankAccountResponse(output.BankAccount))
}

// List handles GET /bank-accounts requests.
func (c *BankAccountController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), bankaccount.ListBankAccountsInput{UserID: userID})
	if err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	responses := make([]dto.BankAccountWithBalanceResponse, 0, len(output.BankAccounts))
	for _, account := range output.BankAccounts {
		responses = append(responses, dto.ToBankAccountWithBalanceResponse(account.BankAccount, account.CurrentBalance))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Update handles PUT /bank-accounts/:bankAccountId requests.
func (c *BankAccountController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("bankAccountId"))
	if err != nil {
		respondInvalidID(ctx, "bank account")
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := bankaccount.UpdateBankAccountInput{
		UserID:         userID,
		BankAccountID:  accountID,
		Name:           req.Name,
		InitialBalance: decimal.NewFromFloat(*req.InitialBalance),
		Type:           entity.BankAccountType(req.Type),
		Color:          req.Color,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountResponse(output.BankAccount))
}

// Delete handles DELETE /bank-accounts/:bankAccountId requests.
func (c *BankAccountController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("bankAccountId"))
	if err != nil {
		respondInvalidID(ctx, "bank account")
		return
	}

	input := bankaccount.DeleteBankAccountInput{
		UserID:        userID,
		BankAccountID: accountID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBankAccountError maps bank account errors to HTTP responses.
func (c *BankAccountController) handleBankAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.BankAccountError
	if errors.As(err, &accountErr) {
		status := http.StatusBadRequest
		if accountErr.Code == domainerror.ErrCodeBankAccountNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBankAccountNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Bank account not found",
			Code:  string(domainerror.ErrCodeBankAccountNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
