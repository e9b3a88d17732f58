package finance

import (
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitDividends distributes a per-currency profit across stakeholders by
// their independently edited fractional percentages. Percentages are not
// normalized; the footer reports their sum as-is and callers decide whether an
// allocation differing from 100% is a problem.
func SplitDividends(profit domain.MoneyMap, shareholders []domain.Shareholder) domain.DividendTable {
	rows := make([]domain.DividendRow, 0, len(shareholders))
	totalPct := decimal.Zero
	totalShares := domain.NewMoneyMap()

	for _, sh := range shareholders {
		shares := domain.NewMoneyMap()
		for code, amt := range profit {
			shares[code] = amt.Mul(sh.Percentage)
		}
		rows = append(rows, domain.DividendRow{
			Name:       sh.Name,
			Percentage: sh.Percentage,
			Shares:     shares,
		})
		totalPct = totalPct.Add(sh.Percentage)
		for code, amt := range shares {
			totalShares.Add(code, amt)
		}
	}

	return domain.DividendTable{
		Rows:            rows,
		TotalPercentage: totalPct,
		TotalShares:     totalShares,
	}
}
