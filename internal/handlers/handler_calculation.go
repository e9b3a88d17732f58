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

// calculationHandler handles HTTP requests for standalone tour calculator
// documents and the quotes derived from them.
type calculationHandler struct {
	calcService portssvc.CalculationSvcFacade
}

func newCalculationHandler(cs portssvc.CalculationSvcFacade) *calculationHandler {
	return &calculationHandler{calcService: cs}
}

// registerCalculationRoutes registers routes for saved calculations.
func registerCalculationRoutes(rg *gin.RouterGroup, calcService portssvc.CalculationSvcFacade) {
	h := newCalculationHandler(calcService)

	calcs := rg.Group("/calculations")
	{
		calcs.GET("", h.listCalculations)
		calcs.GET("/:calculationID", h.getCalculation)
		calcs.PUT("/:calculationID", h.saveCalculation)
		calcs.DELETE("/:calculationID", h.deleteCalculation)
		calcs.GET("/:calculationID/quote", h.quote)
	}
}

// listCalculations godoc
// @Summary List saved calculations
// @Tags calculations
// @Produce  json
// @Success 200 {array} dto.CalculationResponse
// @Failure 500 {object} map[string]string "Failed to list calculations"
// @Router /calculations [get]
func (h *calculationHandler) listCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	calcs, err := h.calcService.ListCalculations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list calculations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list calculations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCalculationResponse(calcs))
}

// getCalculation godoc
// @Summary Get a saved calculation
// @Tags calculations
// @Produce  json
// @Param   calculationID path string true "Calculation ID"
// @Success 200 {object} dto.CalculationResponse
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve calculation"
// @Router /calculations/{calculationID} [get]
func (h *calculationHandler) getCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	calc, err := h.calcService.GetCalculation(c.Request.Context(), c.Param("calculationID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calculation not found"})
		} else {
			logger.Error("Failed to get calculation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve calculation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationResponse(calc))
}

// saveCalculation godoc
// @Summary Save a calculation
// @Description Upserts the whole calculator document under the client-chosen id; the latest save wins
// @Tags calculations
// @Accept  json
// @Produce  json
// @Param   calculationID path string true "Calculation ID"
// @Param   calculation body dto.SaveCalculationRequest true "Calculator document"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save calculation"
// @Router /calculations/{calculationID} [put]
func (h *calculationHandler) saveCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveCalculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	calc, err := h.calcService.SaveCalculation(c.Request.Context(), c.Param("calculationID"), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save calculation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calculation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationResponse(calc))
}

// deleteCalculation godoc
// @Summary Delete a saved calculation
// @Tags calculations
// @Produce  json
// @Param   calculationID path string true "Calculation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 500 {object} map[string]string "Failed to delete calculation"
// @Router /calculations/{calculationID} [delete]
func (h *calculationHandler) deleteCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.calcService.DeleteCalculation(c.Request.Context(), c.Param("calculationID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calculation not found"})
		} else {
			logger.Error("Failed to delete calculation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete calculation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// quote godoc
// @Summary Quote a saved calculation
// @Description Aggregates the calculation's costs, converts them into the target currency, applies the markup and splits the profit across stakeholders. Fails when any needed rate is missing.
// @Tags calculations
// @Produce  json
// @Param   calculationID path string true "Calculation ID"
// @Param   target query string false "Target currency code (defaults to the stored one)"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 422 {object} map[string]string "Missing exchange rate"
// @Failure 500 {object} map[string]string "Failed to compute quote"
// @Router /calculations/{calculationID}/quote [get]
func (h *calculationHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	calculationID := c.Param("calculationID")

	quote, err := h.calcService.Quote(c.Request.Context(), calculationID, c.Query("target"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Calculation not found"})
		case errors.Is(err, apperrors.ErrMissingRate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to compute quote", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute quote"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(calculationID, quote))
}
