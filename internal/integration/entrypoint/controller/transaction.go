package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/application/usecase/transaction"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:        userID,
		BankAccountID: uuid.MustParse(req.BankAccountID),
		CategoryID:    uuid.MustParse(req.CategoryID),
		Name:          req.Name,
		Value:         decimal.NewFromFloat(*req.Value),
		Date:          req.Date,
		Type:          entity.TransactionType(req.Type),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Month and year are required
// query parameters; month is zero-based. bankAccountId and type narrow the
// result when present.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		respondInvalidQuery(ctx, "month")
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		respondInvalidQuery(ctx, "year")
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}

	if raw := ctx.Query("bankAccountId"); raw != "" {
		accountID, err := uuid.Parse(raw)
		if err != nil {
			respondInvalidQuery(ctx, "bankAccountId")
			return
		}
		input.BankAccountID = &accountID
	}
	if raw := ctx.Query("type"); raw != "" {
		txType := entity.TransactionType(raw)
		if txType != entity.TransactionTypeIncome && txType != entity.TransactionTypeOutcome {
			respondInvalidQuery(ctx, "type")
			return
		}
		input.Type = &txType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(output.Transactions))
	for _, tx := range output.Transactions {
		responses = append(responses, dto.ToTransactionResponse(tx))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Update handles PUT /transactions/:transactionId requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("transactionId"))
	if err != nil {
		respondInvalidID(ctx, "transaction")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		BankAccountID: uuid.MustParse(req.BankAccountID),
		CategoryID:    uuid.MustParse(req.CategoryID),
		Name:          req.Name,
		Value:         decimal.NewFromFloat(*req.Value),
		Date:          req.Date,
		Type:          entity.TransactionType(req.Type),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:transactionId requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("transactionId"))
	if err != nil {
		respondInvalidID(ctx, "transaction")
		return
	}

	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondInvalidQuery writes a 400 for a missing or malformed query parameter.
func respondInvalidQuery(ctx *gin.Context, param string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid or missing query parameter: " + param,
		Code:  string(domainerror.ErrCodeInvalidPeriod),
	})
}

// handleTransactionError maps transaction errors to HTTP responses. Failed
// ownership checks on the referenced bank account or category surface here
// as their own not-found sentinels.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		status := http.StatusBadRequest
		if transactionErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
	case errors.Is(err, domainerror.ErrBankAccountNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Bank account not found",
			Code:  string(domainerror.ErrCodeBankAccountNotFound),
		})
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
