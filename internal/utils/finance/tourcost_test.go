package finance_test

import (
	"testing"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregateCosts_CategoryFormulas(t *testing.T) {
	costs := domain.AllCosts{
		Accommodations: []domain.AccommodationLine{
			{NumRooms: 2, NumNights: 3, Price: decimal.NewFromInt(100), Currency: domain.CurrencyTHB},
		},
		Meals: []domain.MealLine{
			{Breakfast: 1, Lunch: 1, Dinner: 1, PricePerMeal: decimal.NewFromInt(50), Pax: 4, Currency: domain.CurrencyTHB},
		},
		Flights: []domain.FlightLine{
			{PricePerPerson: decimal.NewFromInt(50), NumPeople: 1, Currency: domain.CurrencyUSD},
		},
		Entrances: []domain.EntranceLine{
			{Pax: 4, NumLocations: 2, Price: decimal.NewFromInt(30000), Currency: domain.CurrencyLAK},
		},
		Guides: []domain.GuideLine{
			{NumGuides: 1, NumDays: 5, PricePerDay: decimal.NewFromInt(400), Currency: domain.CurrencyCNY},
		},
		Packages: []domain.PackageLine{
			{PriceUSD: decimal.NewFromInt(120), PriceTHB: decimal.NewFromInt(900)},
		},
	}

	breakdown := finance.AggregateCosts(costs)

	accom := breakdown.Categories[domain.CategoryAccommodation]
	assert.True(t, accom.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(600)))

	meals := breakdown.Categories[domain.CategoryMeal]
	assert.True(t, meals.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(600)))

	entrance := breakdown.Categories[domain.CategoryEntrance]
	assert.True(t, entrance.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(240000)))

	guides := breakdown.Categories[domain.CategoryGuide]
	assert.True(t, guides.Get(domain.CurrencyCNY).Equal(decimal.NewFromInt(2000)))

	packages := breakdown.Categories[domain.CategoryPackage]
	assert.True(t, packages.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(120)))
	assert.True(t, packages.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(900)))

	// Grand totals per currency.
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(2100)))
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(170)))
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(240000)))
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyCNY).Equal(decimal.NewFromInt(2000)))
}

// Currency isolation: items tagged entirely in one currency never alter the
// total of another.
func TestAggregateCosts_CurrencyIsolation(t *testing.T) {
	costs := domain.AllCosts{
		Accommodations: []domain.AccommodationLine{
			{NumRooms: 1, NumNights: 1, Price: decimal.NewFromInt(1000), Currency: domain.CurrencyTHB},
		},
		Flights: []domain.FlightLine{
			{PricePerPerson: decimal.NewFromInt(50), NumPeople: 1, Currency: domain.CurrencyUSD},
		},
	}

	breakdown := finance.AggregateCosts(costs)
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(1000)))
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(50)))
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyLAK).IsZero())
	assert.True(t, breakdown.GrandTotal.Get(domain.CurrencyCNY).IsZero())
}

// Absent numeric fields are zero values and must never poison the totals.
func TestAggregateCosts_MissingFieldsAreZero(t *testing.T) {
	costs := domain.AllCosts{
		Transports: []domain.TransportLine{
			{NumVehicles: 2, Currency: domain.CurrencyLAK}, // no days, no price
		},
	}

	breakdown := finance.AggregateCosts(costs)
	assert.True(t, breakdown.GrandTotal.IsZero())
}

func TestSummarizeProgram(t *testing.T) {
	program := domain.TourProgram{
		ProgramID:     "p1",
		Price:         decimal.NewFromInt(5000),
		BankCharge:    decimal.NewFromInt(150),
		PriceCurrency: domain.CurrencyUSD,
	}
	items := []domain.TourItem{
		{Kind: domain.TourCost, LAK: decimal.NewFromInt(300000), THB: decimal.NewFromInt(2000)},
		{Kind: domain.TourCost, USD: decimal.NewFromInt(75)},
		{Kind: domain.TourIncome, USD: decimal.NewFromInt(500)},
	}

	summary := finance.SummarizeProgram(program, items)
	assert.True(t, summary.Costs.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(300000)))
	assert.True(t, summary.Costs.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(2000)))
	assert.True(t, summary.Costs.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(75)))
	assert.True(t, summary.Income.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.Net.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(425)))
	assert.True(t, summary.Net.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(-2000)))
	assert.Equal(t, domain.CurrencyUSD, summary.PriceCurrency)
}
