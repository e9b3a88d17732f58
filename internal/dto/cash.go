package dto

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// SaveCashStateRequest overwrites the counted-cash record of a vertical.
type SaveCashStateRequest struct {
	Denominations map[string]int64 `json:"denominations"`
	Baht          decimal.Decimal  `json:"baht"`
	BahtRate      decimal.Decimal  `json:"bahtRate"`
	USD           decimal.Decimal  `json:"usd"`
	USDRate       decimal.Decimal  `json:"usdRate"`
}

// CashStateResponse returns the counted-cash record with its derived total.
type CashStateResponse struct {
	Vertical       domain.Vertical  `json:"vertical"`
	Denominations  map[string]int64 `json:"denominations"`
	Baht           decimal.Decimal  `json:"baht"`
	BahtRate       decimal.Decimal  `json:"bahtRate"`
	USD            decimal.Decimal  `json:"usd"`
	USDRate        decimal.Decimal  `json:"usdRate"`
	Total          decimal.Decimal  `json:"total"`
	TotalFormatted string           `json:"totalFormatted"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy  string           `json:"lastUpdatedBy"`
}

// ToCashStateResponse converts a domain.CashCalculatorState to its DTO,
// recomputing the derived total.
func ToCashStateResponse(s *domain.CashCalculatorState) CashStateResponse {
	total := s.Total()
	return CashStateResponse{
		Vertical:       s.Vertical,
		Denominations:  s.Denominations,
		Baht:           s.Baht,
		BahtRate:       s.BahtRate,
		USD:            s.USD,
		USDRate:        s.USDRate,
		Total:          total,
		TotalFormatted: utils.FormatAmount(total, domain.CurrencyLAK),
		LastUpdatedAt:  s.LastUpdatedAt,
		LastUpdatedBy:  s.LastUpdatedBy,
	}
}
