package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to ledger entries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to ledger entries.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Newest first. Only done entries unless status is given; status=all lifts the filter.
// @Tags transactions
// @Produce json
// @Param categoryId query int false "Category ID"
// @Param type query string false "in or out"
// @Param status query string false "pending, done, cancelled or all"
// @Param currency query string false "AFN, USD, TRY or EUR"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param limit query int false "Page size (1-500)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := ledgerFilter(params)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}

	resp := dto.OK(dto.ToTransactionResponses(page.Items), "Transactions retrieved")
	if page.Next != nil {
		token := pagination.EncodeLedgerToken(*page.Next)
		resp.Meta = &dto.Meta{NextToken: &token}
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a ledger entry
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.TransactionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn), "Transaction retrieved"))
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Description A frequency also creates a recurring template in the same database transaction.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Entry"
// @Success 201 {object} dto.SuccessResponse{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error or invalid category"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction recorded", slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(txn), "Transaction created"))
}

// updateTransaction godoc
// @Summary Update a ledger entry
// @Description Moving a pending installment to done or cancelled advances its template when it is the current installment.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, req)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn), "Transaction updated"))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		transactionErrors.respond(c, err)
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		transactionErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil, "Transaction deleted"))
}
