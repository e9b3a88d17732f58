package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TourProgram is the aggregate root for one organized tour: identifying info
// plus a selling price/bank charge pair in a single currency. Cost and income
// rows are owned by the program and loaded separately.
type TourProgram struct {
	ProgramID     string          `json:"programID"` // Primary Key (UUID)
	Code          string          `json:"code"`
	Destination   string          `json:"destination"`
	Pax           int             `json:"pax"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Price         decimal.Decimal `json:"price"`
	BankCharge    decimal.Decimal `json:"bankCharge"`
	PriceCurrency string          `json:"priceCurrency"`
	AuditFields
}

// TourItemKind distinguishes cost rows from income rows of a program.
type TourItemKind string

const (
	TourCost   TourItemKind = "COST"
	TourIncome TourItemKind = "INCOME"
)

// TourItem is one dated, currency-columned cost or income row of a program.
// Each of the four currency columns carries the amount entered in that
// currency; absent columns are zero.
type TourItem struct {
	ItemID    string          `json:"itemID"` // Primary Key (UUID)
	ProgramID string          `json:"programID"`
	Kind      TourItemKind    `json:"kind"`
	Date      time.Time       `json:"date"`
	Detail    string          `json:"detail"`
	LAK       decimal.Decimal `json:"lak"`
	THB       decimal.Decimal `json:"thb"`
	USD       decimal.Decimal `json:"usd"`
	CNY       decimal.Decimal `json:"cny"`
	AuditFields
}

// Amounts returns the row's non-zero currency columns as a MoneyMap.
func (i TourItem) Amounts() MoneyMap {
	m := NewMoneyMap()
	if !i.LAK.IsZero() {
		m.Add(CurrencyLAK, i.LAK)
	}
	if !i.THB.IsZero() {
		m.Add(CurrencyTHB, i.THB)
	}
	if !i.USD.IsZero() {
		m.Add(CurrencyUSD, i.USD)
	}
	if !i.CNY.IsZero() {
		m.Add(CurrencyCNY, i.CNY)
	}
	return m
}
