package domain

import "github.com/shopspring/decimal"

// LedgerSummary is the monthly roll-forward report of a vertical's ledger.
// Every figure is per-currency.
type LedgerSummary struct {
	BroughtForward MoneyMap `json:"broughtForward"`
	Income         MoneyMap `json:"income"`
	Expense        MoneyMap `json:"expense"`
	NetProfit      MoneyMap `json:"netProfit"`
	EndingBalance  MoneyMap `json:"endingBalance"`
}

// StockMovementRow is the monthly movement report line of one stock item.
type StockMovementRow struct {
	ItemID       string          `json:"itemID"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Batch        string          `json:"batch"`
	StockIn      int64           `json:"stockIn"`
	Sold         int64           `json:"sold"`
	Remaining    int64           `json:"remaining"`
	CostValue    decimal.Decimal `json:"costValue"`    // remaining valued at cost price
	SellingValue decimal.Decimal `json:"sellingValue"` // remaining valued at selling price
}

// BatchRollup aggregates movement rows for one batch (lot) of items.
type BatchRollup struct {
	Batch        string          `json:"batch"`
	StockIn      int64           `json:"stockIn"`
	Sold         int64           `json:"sold"`
	Remaining    int64           `json:"remaining"`
	CostValue    decimal.Decimal `json:"costValue"`
	SellingValue decimal.Decimal `json:"sellingValue"`
}

// UncategorizedBatch is the bucket for items with no matching stock-in log.
const UncategorizedBatch = "Uncategorized"

// StockMovementReport is the full monthly stock report of a vertical.
type StockMovementReport struct {
	Rows    []StockMovementRow `json:"rows"`
	Batches []BatchRollup      `json:"batches"`
}

// TourProgramSummary is the per-currency cost/income rollup of one program.
type TourProgramSummary struct {
	Costs         MoneyMap        `json:"costs"`
	Income        MoneyMap        `json:"income"`
	Net           MoneyMap        `json:"net"`
	Price         decimal.Decimal `json:"price"`
	BankCharge    decimal.Decimal `json:"bankCharge"`
	PriceCurrency string          `json:"priceCurrency"`
}

// CostBreakdown is the output of the multi-currency cost aggregator: one
// per-currency total per category plus the grand total across categories.
type CostBreakdown struct {
	Categories map[string]MoneyMap `json:"categories"`
	GrandTotal MoneyMap            `json:"grandTotal"`
}

// DividendRow is one stakeholder's per-currency share of a profit.
type DividendRow struct {
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Shares     MoneyMap        `json:"shares"`
}

// DividendTable is the dividend split plus its footer sums. TotalPercentage is
// informational; it is not required to equal 1.
type DividendTable struct {
	Rows            []DividendRow   `json:"rows"`
	TotalPercentage decimal.Decimal `json:"totalPercentage"`
	TotalShares     MoneyMap        `json:"totalShares"`
}

// Quote is the full pricing result of a saved calculation: the cost breakdown
// converted into the target currency, marked up, and split across stakeholders.
type Quote struct {
	Breakdown      CostBreakdown   `json:"breakdown"`
	TargetCurrency string          `json:"targetCurrency"`
	ConvertedTotal decimal.Decimal `json:"convertedTotal"`
	MarkupPercent  decimal.Decimal `json:"markupPercent"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	Profit         decimal.Decimal `json:"profit"`
	Dividends      DividendTable   `json:"dividends"`
}
