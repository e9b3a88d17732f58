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

// cashHandler handles HTTP requests for the per-vertical counted-cash record.
type cashHandler struct {
	cashService portssvc.CashSvcFacade
}

func newCashHandler(cs portssvc.CashSvcFacade) *cashHandler {
	return &cashHandler{cashService: cs}
}

// registerCashRoutes registers cash-count routes under the vertical group.
func registerCashRoutes(rg *gin.RouterGroup, cashService portssvc.CashSvcFacade) {
	h := newCashHandler(cashService)

	rg.GET("/cash-count", h.getCashState)
	rg.PUT("/cash-count", h.saveCashState)
}

// getCashState godoc
// @Summary Get the vertical's counted-cash record
// @Description Retrieves the note-count worksheet with its derived LAK total
// @Tags cash
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Success 200 {object} dto.CashStateResponse
// @Failure 500 {object} map[string]string "Failed to retrieve cash record"
// @Router /verticals/{vertical}/cash-count [get]
func (h *cashHandler) getCashState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	state, err := h.cashService.GetCashState(c.Request.Context(), vertical)
	if err != nil {
		logger.Error("Failed to get cash state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cash record"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashStateResponse(state))
}

// saveCashState godoc
// @Summary Overwrite the vertical's counted-cash record
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   vertical path string true "Business vertical"
// @Param   state body dto.SaveCashStateRequest true "Note counts and foreign cash"
// @Success 200 {object} dto.CashStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save cash record"
// @Router /verticals/{vertical}/cash-count [put]
func (h *cashHandler) saveCashState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vertical, ok := verticalFromPath(c)
	if !ok {
		return
	}

	var req dto.SaveCashStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveCashState", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	state, err := h.cashService.SaveCashState(c.Request.Context(), vertical, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save cash state", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cash record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCashStateResponse(state))
}
