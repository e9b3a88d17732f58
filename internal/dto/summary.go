package dto

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateAccountSummaryRequest is a partial merge of a vertical's balance
// record: only provided fields overwrite the stored value.
type UpdateAccountSummaryRequest struct {
	Capital        map[string]decimal.Decimal `json:"capital"`
	Cash           map[string]decimal.Decimal `json:"cash"`
	Transfer       map[string]decimal.Decimal `json:"transfer"`
	WorkingCapital map[string]decimal.Decimal `json:"workingCapital"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAccountSummaryRequest) ToPatch() domain.AccountSummaryPatch {
	return domain.AccountSummaryPatch{
		Capital:        domain.MoneyMap(r.Capital),
		Cash:           domain.MoneyMap(r.Cash),
		Transfer:       domain.MoneyMap(r.Transfer),
		WorkingCapital: domain.MoneyMap(r.WorkingCapital),
	}
}

// AccountSummaryResponse defines the data returned for a vertical's balances.
type AccountSummaryResponse struct {
	Vertical       domain.Vertical `json:"vertical"`
	Capital        domain.MoneyMap `json:"capital"`
	Cash           domain.MoneyMap `json:"cash"`
	Transfer       domain.MoneyMap `json:"transfer"`
	WorkingCapital domain.MoneyMap `json:"workingCapital"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToAccountSummaryResponse converts a domain.AccountSummary to its DTO.
func ToAccountSummaryResponse(s *domain.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		Vertical:       s.Vertical,
		Capital:        s.Capital,
		Cash:           s.Cash,
		Transfer:       s.Transfer,
		WorkingCapital: s.WorkingCapital,
		LastUpdatedAt:  s.LastUpdatedAt,
		LastUpdatedBy:  s.LastUpdatedBy,
	}
}
