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

// exchangeRateHandler handles HTTP requests related to the rate matrix.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.PUT("", h.upsertExchangeRate)
		rates.GET("", h.listExchangeRates)
		rates.GET("/:from/:to", h.getExchangeRate)
	}
}

// upsertExchangeRate godoc
// @Summary Create or overwrite an exchange rate
// @Description Sets the conversion rate for one directed currency pair
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertExchangeRateRequest true "Rate details"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save rate"
// @Router /exchange-rates [put]
func (h *exchangeRateHandler) upsertExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	rate, err := h.rateService.UpsertExchangeRate(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get the rate for one currency pair
// @Description Retrieves the stored conversion rate from one currency to another
// @Tags exchange-rates
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")
	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	rate, err := h.rateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List all exchange rates
// @Description Retrieves every entry of the rate matrix
// @Tags exchange-rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
