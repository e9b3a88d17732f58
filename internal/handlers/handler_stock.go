package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/khamsone/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests for a vertical's inventory.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers inventory routes under the vertical group.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("/items", h.createItem)
		stock.GET("/items", h.listItems)
		stock.GET("/items/:itemID", h.getItem)
		stock.PUT("/items/:itemID", h.updateItem)
		stock.DELETE("/items/:itemID", h.deleteItem)
		stock.POST("/items/:itemID/adjust", h.adjustStock)
		stock.GET("/items/:itemID/logs", h.listLogs)
		stock.GET("/movements", h.movementReport)
	}
}

// createItem godoc
// @Summary Create a stock item
// @Description Creates an item master; a package size of zero marks a placeholder record excluded from valuation
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   item body dto.CreateStockItemRequest true "Item details"
// @Success 201 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Router /verticals/{vertical}/stock/items [post]
func (h *stockHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	item, err := h.stockService.CreateItem(c.Request.Context(), vertical, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockItemResponse(item))
}

// listItems godoc
// @Summary List stock items
// @Tags stock
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Success 200 {array} dto.StockItemResponse
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /verticals/{vertical}/stock/items [get]
func (h *stockHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	items, err := h.stockService.ListItems(c.Request.Context(), vertical)
	if err != nil {
		logger.Error("Failed to list stock items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockItemResponse(items))
}

// getItem godoc
// @Summary Get a stock item
// @Tags stock
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /verticals/{vertical}/stock/items/{itemID} [get]
func (h *stockHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	item, err := h.stockService.GetItem(c.Request.Context(), vertical, c.Param("itemID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to get stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stock item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// updateItem godoc
// @Summary Edit a stock item master
// @Description Edits item master fields; stock levels only move through adjustments
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateStockItemRequest true "Fields to change"
// @Success 200 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /verticals/{vertical}/stock/items/{itemID} [put]
func (h *stockHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	item, err := h.stockService.UpdateItem(c.Request.Context(), vertical, c.Param("itemID"), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a stock item
// @Description Removes an item master together with its movement logs
// @Tags stock
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   itemID path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Router /verticals/{vertical}/stock/items/{itemID} [delete]
func (h *stockHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	if err := h.stockService.DeleteItem(c.Request.Context(), vertical, c.Param("itemID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to delete stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// adjustStock godoc
// @Summary Record a stock movement
// @Description Applies a stock-in or sale movement atomically; a sale exceeding the current stock is rejected
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   itemID path string true "Item ID"
// @Param   movement body dto.AdjustStockRequest true "Movement details"
// @Success 200 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Failed to adjust stock"
// @Router /verticals/{vertical}/stock/items/{itemID}/adjust [post]
func (h *stockHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	item, err := h.stockService.Adjust(c.Request.Context(), vertical, c.Param("itemID"), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to adjust stock", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// listLogs godoc
// @Summary List an item's movement log
// @Tags stock
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   itemID path string true "Item ID"
// @Success 200 {array} dto.StockLogResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to list logs"
// @Router /verticals/{vertical}/stock/items/{itemID}/logs [get]
func (h *stockHandler) listLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	logs, err := h.stockService.ListLogs(c.Request.Context(), vertical, c.Param("itemID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to list stock logs", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock logs"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockLogResponse(logs))
}

// movementReport godoc
// @Summary Monthly stock movement report
// @Description Computes per-item and per-batch movement rollups for the month, optionally filtered to one batch label
// @Tags stock
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   month query string false "Report month (YYYY-MM, default current)"
// @Param   batch query string false "Batch label filter (e.g. round 3)"
// @Success 200 {object} dto.StockMovementReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute report"
// @Router /verticals/{vertical}/stock/movements [get]
func (h *stockHandler) movementReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}
	month, ok := monthFromQuery(c)
	if !ok {
		return
	}
	batch := c.Query("batch")

	report, err := h.stockService.MovementReport(c.Request.Context(), vertical, month, batch)
	if err != nil {
		logger.Error("Failed to compute movement report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute movement report"})
		return
	}

	c.JSON(http.StatusOK, dto.StockMovementReportResponse{
		Month:   month.Format("2006-01"),
		Batch:   batch,
		Rows:    report.Rows,
		Batches: report.Batches,
	})
}
