package finance

import (
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// BuildQuote runs a saved calculation end to end: aggregate the nine cost
// categories, convert the grand total into the target currency, apply the
// markup, and split the resulting profit across the calculation's
// stakeholders. Fails with ErrMissingRate when a contributing currency has no
// rate into the target.
func BuildQuote(calc domain.SavedCalculation, target string, rates RateMatrix) (*domain.Quote, error) {
	breakdown := AggregateCosts(calc.AllCosts)

	converted, err := ConvertTotal(breakdown.GrandTotal, target, rates)
	if err != nil {
		return nil, err
	}
	selling, profit := Price(converted, calc.MarkupPercent)

	profitByCurrency := domain.MoneyMap{target: profit}
	dividends := SplitDividends(profitByCurrency, calc.Shareholders)

	return &domain.Quote{
		Breakdown:      breakdown,
		TargetCurrency: target,
		ConvertedTotal: converted,
		MarkupPercent:  calc.MarkupPercent,
		SellingPrice:   selling,
		Profit:         profit,
		Dividends:      dividends,
	}, nil
}
