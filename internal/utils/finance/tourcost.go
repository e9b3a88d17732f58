package finance

import (
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// sumCategory buckets each row's cost by its currency tag. Rows in currency X
// never contribute to currency Y.
func sumCategory[T domain.CostLine](rows []T) domain.MoneyMap {
	totals := domain.NewMoneyMap()
	for _, row := range rows {
		cost := row.Cost()
		if cost.IsZero() {
			continue
		}
		totals.Add(row.LineCurrency(), cost)
	}
	return totals
}

// AggregateCosts sums the nine cost category arrays into per-category and
// grand per-currency totals.
func AggregateCosts(costs domain.AllCosts) domain.CostBreakdown {
	categories := map[string]domain.MoneyMap{
		domain.CategoryAccommodation: sumCategory(costs.Accommodations),
		domain.CategoryTransport:     sumCategory(costs.Transports),
		domain.CategoryFlight:        sumCategory(costs.Flights),
		domain.CategoryTrain:         sumCategory(costs.Trains),
		domain.CategoryEntrance:      sumCategory(costs.Entrances),
		domain.CategoryMeal:          sumCategory(costs.Meals),
		domain.CategoryGuide:         sumCategory(costs.Guides),
		domain.CategoryDocument:      sumCategory(costs.Documents),
	}

	// Packages carry fixed per-currency price columns instead of a product.
	packages := domain.NewMoneyMap()
	for _, pkg := range costs.Packages {
		for code, amt := range pkg.Amounts() {
			packages.Add(code, amt)
		}
	}
	categories[domain.CategoryPackage] = packages

	grand := domain.NewMoneyMap()
	for _, totals := range categories {
		for code, amt := range totals {
			grand.Add(code, amt)
		}
	}

	return domain.CostBreakdown{Categories: categories, GrandTotal: grand}
}

// SumTourItems sums program cost/income rows into per-currency totals.
func SumTourItems(items []domain.TourItem) domain.MoneyMap {
	totals := domain.NewMoneyMap()
	for _, item := range items {
		for code, amt := range item.Amounts() {
			totals.Add(code, amt)
		}
	}
	return totals
}

// SummarizeProgram rolls a program's cost and income rows into the per-currency
// program summary.
func SummarizeProgram(program domain.TourProgram, items []domain.TourItem) domain.TourProgramSummary {
	costs := domain.NewMoneyMap()
	income := domain.NewMoneyMap()
	for _, item := range items {
		bucket := costs
		if item.Kind == domain.TourIncome {
			bucket = income
		}
		for code, amt := range item.Amounts() {
			bucket.Add(code, amt)
		}
	}
	return domain.TourProgramSummary{
		Costs:         costs,
		Income:        income,
		Net:           income.Minus(costs),
		Price:         program.Price,
		BankCharge:    program.BankCharge,
		PriceCurrency: program.PriceCurrency,
	}
}
