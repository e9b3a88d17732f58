package dto

import (
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/utils"
)

// LedgerSummaryResponse is the monthly roll-forward report plus display
// formatting of every per-currency figure.
type LedgerSummaryResponse struct {
	Month     string               `json:"month"`
	Summary   domain.LedgerSummary `json:"summary"`
	Formatted struct {
		BroughtForward map[string]string `json:"broughtForward"`
		Income         map[string]string `json:"income"`
		Expense        map[string]string `json:"expense"`
		NetProfit      map[string]string `json:"netProfit"`
		EndingBalance  map[string]string `json:"endingBalance"`
	} `json:"formatted"`
}

// ToLedgerSummaryResponse wraps a ledger summary with display formatting.
func ToLedgerSummaryResponse(month string, summary domain.LedgerSummary) LedgerSummaryResponse {
	res := LedgerSummaryResponse{Month: month, Summary: summary}
	res.Formatted.BroughtForward = utils.FormatMoneyMap(summary.BroughtForward)
	res.Formatted.Income = utils.FormatMoneyMap(summary.Income)
	res.Formatted.Expense = utils.FormatMoneyMap(summary.Expense)
	res.Formatted.NetProfit = utils.FormatMoneyMap(summary.NetProfit)
	res.Formatted.EndingBalance = utils.FormatMoneyMap(summary.EndingBalance)
	return res
}

// StockMovementReportResponse is the monthly stock report of a vertical.
type StockMovementReportResponse struct {
	Month   string                    `json:"month"`
	Batch   string                    `json:"batch,omitempty"`
	Rows    []domain.StockMovementRow `json:"rows"`
	Batches []domain.BatchRollup      `json:"batches"`
}

// TourProgramSummaryResponse is the per-currency rollup of one program.
type TourProgramSummaryResponse struct {
	ProgramID string                    `json:"programID"`
	Summary   domain.TourProgramSummary `json:"summary"`
	Formatted struct {
		Costs  map[string]string `json:"costs"`
		Income map[string]string `json:"income"`
		Net    map[string]string `json:"net"`
	} `json:"formatted"`
}

// ToTourProgramSummaryResponse wraps a program summary with display formatting.
func ToTourProgramSummaryResponse(programID string, summary domain.TourProgramSummary) TourProgramSummaryResponse {
	res := TourProgramSummaryResponse{ProgramID: programID, Summary: summary}
	res.Formatted.Costs = utils.FormatMoneyMap(summary.Costs)
	res.Formatted.Income = utils.FormatMoneyMap(summary.Income)
	res.Formatted.Net = utils.FormatMoneyMap(summary.Net)
	return res
}

// QuoteResponse is the full pricing result of a saved calculation.
type QuoteResponse struct {
	CalculationID  string       `json:"calculationID"`
	Quote          domain.Quote `json:"quote"`
	ConvertedTotal string       `json:"convertedTotalFormatted"`
	SellingPrice   string       `json:"sellingPriceFormatted"`
	Profit         string       `json:"profitFormatted"`
}

// ToQuoteResponse wraps a quote with display formatting in the target currency.
func ToQuoteResponse(calculationID string, quote *domain.Quote) QuoteResponse {
	return QuoteResponse{
		CalculationID:  calculationID,
		Quote:          *quote,
		ConvertedTotal: utils.FormatAmount(quote.ConvertedTotal, quote.TargetCurrency),
		SellingPrice:   utils.FormatAmount(quote.SellingPrice, quote.TargetCurrency),
		Profit:         utils.FormatAmount(quote.Profit, quote.TargetCurrency),
	}
}
