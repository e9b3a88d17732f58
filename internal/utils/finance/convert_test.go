package finance_test

import (
	"testing"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(from, to string, r string) domain.ExchangeRate {
	d, _ := decimal.NewFromString(r)
	return domain.ExchangeRate{FromCurrencyCode: from, ToCurrencyCode: to, Rate: d}
}

func TestRateMatrix_Identity(t *testing.T) {
	m := finance.NewRateMatrix(nil)
	r, err := m.Rate(domain.CurrencyUSD, domain.CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, r.Equal(decimal.NewFromInt(1)))
}

func TestRateMatrix_MissingPairFailsFast(t *testing.T) {
	m := finance.NewRateMatrix([]domain.ExchangeRate{rate("THB", "LAK", "600")})
	_, err := m.Rate("USD", "LAK")
	assert.ErrorIs(t, err, apperrors.ErrMissingRate)
}

// Converting an amount into its own currency returns it unchanged.
func TestConvertTotal_Idempotence(t *testing.T) {
	totals := domain.MoneyMap{domain.CurrencyUSD: decimal.NewFromInt(170)}
	got, err := finance.ConvertTotal(totals, domain.CurrencyUSD, finance.NewRateMatrix(nil))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(170)))
}

func TestConvertTotal_MultiCurrency(t *testing.T) {
	m := finance.NewRateMatrix([]domain.ExchangeRate{
		rate("THB", "LAK", "600"),
		rate("USD", "LAK", "21000"),
	})
	totals := domain.MoneyMap{
		domain.CurrencyTHB: decimal.NewFromInt(1000),
		domain.CurrencyUSD: decimal.NewFromInt(50),
		domain.CurrencyLAK: decimal.NewFromInt(100000),
	}

	got, err := finance.ConvertTotal(totals, domain.CurrencyLAK, m)
	require.NoError(t, err)
	// 1000*600 + 50*21000 + 100000 = 1,750,000
	assert.True(t, got.Equal(decimal.NewFromInt(1750000)))
}

// Zero buckets need no rate: an empty contribution must not fail conversion.
func TestConvertTotal_SkipsZeroBuckets(t *testing.T) {
	totals := domain.MoneyMap{
		domain.CurrencyUSD: decimal.NewFromInt(50),
		domain.CurrencyCNY: decimal.Zero,
	}
	got, err := finance.ConvertTotal(totals, domain.CurrencyUSD, finance.NewRateMatrix(nil))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(50)))
}

func TestPrice(t *testing.T) {
	selling, profit := finance.Price(decimal.NewFromInt(1000), decimal.NewFromInt(25))
	assert.True(t, selling.Equal(decimal.NewFromInt(1250)))
	assert.True(t, profit.Equal(decimal.NewFromInt(250)))

	selling, profit = finance.Price(decimal.NewFromInt(1000), decimal.Zero)
	assert.True(t, selling.Equal(decimal.NewFromInt(1000)))
	assert.True(t, profit.IsZero())
}

func TestBuildQuote(t *testing.T) {
	calc := domain.SavedCalculation{
		CalculationID: "calc-1",
		AllCosts: domain.AllCosts{
			Accommodations: []domain.AccommodationLine{
				{NumRooms: 2, NumNights: 3, Price: decimal.NewFromInt(100), Currency: domain.CurrencyTHB},
			},
		},
		MarkupPercent: decimal.NewFromInt(20),
		Shareholders: []domain.Shareholder{
			{Name: "A", Percentage: decimal.NewFromFloat(0.5)},
			{Name: "B", Percentage: decimal.NewFromFloat(0.5)},
		},
	}
	m := finance.NewRateMatrix([]domain.ExchangeRate{rate("THB", "LAK", "600")})

	quote, err := finance.BuildQuote(calc, domain.CurrencyLAK, m)
	require.NoError(t, err)
	assert.True(t, quote.ConvertedTotal.Equal(decimal.NewFromInt(360000)))
	assert.True(t, quote.SellingPrice.Equal(decimal.NewFromInt(432000)))
	assert.True(t, quote.Profit.Equal(decimal.NewFromInt(72000)))
	require.Len(t, quote.Dividends.Rows, 2)
	assert.True(t, quote.Dividends.Rows[0].Shares.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(36000)))
	assert.True(t, quote.Dividends.TotalShares.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(72000)))
}

func TestBuildQuote_MissingRate(t *testing.T) {
	calc := domain.SavedCalculation{
		AllCosts: domain.AllCosts{
			Flights: []domain.FlightLine{
				{PricePerPerson: decimal.NewFromInt(50), NumPeople: 2, Currency: domain.CurrencyUSD},
			},
		},
	}

	_, err := finance.BuildQuote(calc, domain.CurrencyLAK, finance.NewRateMatrix(nil))
	assert.ErrorIs(t, err, apperrors.ErrMissingRate)
}
