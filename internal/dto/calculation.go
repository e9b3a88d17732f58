package dto

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveCalculationRequest saves (upserts) a standalone tour calculator
// document. The whole document is merged; the latest write wins.
type SaveCalculationRequest struct {
	TourInfo       domain.TourInfo      `json:"tourInfo"`
	AllCosts       domain.AllCosts      `json:"allCosts"`
	MarkupPercent  decimal.Decimal      `json:"markupPercent"`
	TargetCurrency string               `json:"targetCurrency" binding:"omitempty,uppercase,len=3"`
	Shareholders   []domain.Shareholder `json:"shareholders"`
}

// CalculationResponse defines the data returned for a saved calculation.
type CalculationResponse struct {
	CalculationID  string               `json:"calculationID"`
	TourInfo       domain.TourInfo      `json:"tourInfo"`
	AllCosts       domain.AllCosts      `json:"allCosts"`
	MarkupPercent  decimal.Decimal      `json:"markupPercent"`
	TargetCurrency string               `json:"targetCurrency"`
	Shareholders   []domain.Shareholder `json:"shareholders"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy  string               `json:"lastUpdatedBy"`
}

// ToCalculationResponse converts a domain.SavedCalculation to its DTO.
func ToCalculationResponse(calc *domain.SavedCalculation) CalculationResponse {
	return CalculationResponse{
		CalculationID:  calc.CalculationID,
		TourInfo:       calc.TourInfo,
		AllCosts:       calc.AllCosts,
		MarkupPercent:  calc.MarkupPercent,
		TargetCurrency: calc.TargetCurrency,
		Shareholders:   calc.Shareholders,
		CreatedAt:      calc.CreatedAt,
		CreatedBy:      calc.CreatedBy,
		LastUpdatedAt:  calc.LastUpdatedAt,
		LastUpdatedBy:  calc.LastUpdatedBy,
	}
}

// ToListCalculationResponse converts a slice of calculations to DTOs.
func ToListCalculationResponse(calcs []domain.SavedCalculation) []CalculationResponse {
	res := make([]CalculationResponse, len(calcs))
	for i := range calcs {
		res[i] = ToCalculationResponse(&calcs[i])
	}
	return res
}
