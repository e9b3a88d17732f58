package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/khamsone/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for per-vertical ledger entries,
// monthly summaries and the account balance record.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers ledger routes under the vertical group.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transactionID", h.getTransaction)
		txns.PUT("/:transactionID", h.updateTransaction)
		txns.DELETE("/:transactionID", h.deleteTransaction)
	}

	rg.GET("/summary", h.monthlySummary)
	rg.GET("/account-summary", h.getAccountSummary)
	rg.PATCH("/account-summary", h.mergeAccountSummary)
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Description Records an income or expense entry against the vertical's ledger
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Router /verticals/{vertical}/transactions [post]
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), vertical, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Lists the vertical's entries, optionally bounded by from/to dates (RFC 3339)
// @Tags ledger
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   from query string false "Inclusive lower bound"
// @Param   to query string false "Exclusive upper bound"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /verticals/{vertical}/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var from, to *time.Time
	for _, bound := range []struct {
		key string
		dst **time.Time
	}{
		{"from", &from},
		{"to", &to},
	} {
		if raw := c.Query(bound.key); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + bound.key + " date, expected RFC 3339"})
				return
			}
			*bound.dst = &parsed
		}
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), vertical, from, to)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransaction godoc
// @Summary Get a ledger entry
// @Tags ledger
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /verticals/{vertical}/transactions/{transactionID} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), vertical, c.Param("transactionID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Edit a ledger entry
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /verticals/{vertical}/transactions/{transactionID} [put]
func (h *ledgerHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), vertical, c.Param("transactionID"), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags ledger
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   transactionID path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /verticals/{vertical}/transactions/{transactionID} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), vertical, c.Param("transactionID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// monthlySummary godoc
// @Summary Monthly ledger summary
// @Description Computes the roll-forward report for the month: brought-forward balance, income, expense, net profit and ending balance per currency
// @Tags ledger
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   month query string false "Report month (YYYY-MM, default current)"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /verticals/{vertical}/summary [get]
func (h *ledgerHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}
	month, ok := monthFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.MonthlySummary(c.Request.Context(), vertical, month)
	if err != nil {
		logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(month.Format("2006-01"), *summary))
}

// getAccountSummary godoc
// @Summary Get the vertical's balance record
// @Tags ledger
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 500 {object} map[string]string "Failed to retrieve balances"
// @Router /verticals/{vertical}/account-summary [get]
func (h *ledgerHandler) getAccountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.GetAccountSummary(c.Request.Context(), vertical)
	if err != nil {
		logger.Error("Failed to get account summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(summary))
}

// mergeAccountSummary godoc
// @Summary Merge the vertical's balance record
// @Description Partially updates the balance record; only provided fields are overwritten
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   summary body dto.UpdateAccountSummaryRequest true "Fields to merge"
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save balances"
// @Router /verticals/{vertical}/account-summary [patch]
func (h *ledgerHandler) mergeAccountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MergeAccountSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	summary, err := h.ledgerService.MergeAccountSummary(c.Request.Context(), vertical, req, actorID)
	if err != nil {
		logger.Error("Failed to merge account summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save account summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(summary))
}
