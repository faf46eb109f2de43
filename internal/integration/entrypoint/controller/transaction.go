// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/usecase/transaction"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	importUseCase *transaction.ImportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	importUseCase *transaction.ImportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		importUseCase: importUseCase,
	}
}

// List handles GET /transactions requests.
// Query: entrepreneur_id, period (YYYY or YYYY-MM), type, page, limit.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Period: ctx.Query("period"),
	}

	if raw := ctx.Query("entrepreneur_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeMissingEntrepreneurRef), "entrepreneur_id must be a valid id")
			return
		}
		input.EntrepreneurID = &id
	}

	if raw := ctx.Query("type"); raw != "" {
		txType := entity.TransactionType(strings.ToLower(raw))
		if !entity.IsValidTransactionType(txType) {
			badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionType), "type must be income or expense")
			return
		}
		input.Type = &txType
	}

	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid request body: "+err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid request body: "+err.Error())
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), id, req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Import handles PUT /transactions requests, overwriting the collection.
func (c *TransactionController) Import(ctx *gin.Context) {
	var req []dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid request body: "+err.Error())
		return
	}

	input := transaction.ImportTransactionsInput{
		Transactions: make([]transaction.TransactionInput, len(req)),
	}
	for i, r := range req {
		input.Transactions[i] = r.ToInput()
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportTransactionsResponse{ImportedCount: output.ImportedCount})
}
