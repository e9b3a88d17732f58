package dto

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTourProgramRequest defines the data needed to open a tour program.
type CreateTourProgramRequest struct {
	ProgramID     string          `json:"programID" binding:"omitempty,uuid"`
	Code          string          `json:"code" binding:"required"`
	Destination   string          `json:"destination" binding:"required"`
	Pax           int             `json:"pax" binding:"required,gt=0"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
	EndDate       time.Time       `json:"endDate" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	BankCharge    decimal.Decimal `json:"bankCharge"`
	PriceCurrency string          `json:"priceCurrency" binding:"required,uppercase,len=3"`
}

// UpdateTourProgramRequest edits a program; nil fields are left unchanged.
type UpdateTourProgramRequest struct {
	Code          *string          `json:"code"`
	Destination   *string          `json:"destination"`
	Pax           *int             `json:"pax" binding:"omitempty,gt=0"`
	StartDate     *time.Time       `json:"startDate"`
	EndDate       *time.Time       `json:"endDate"`
	Price         *decimal.Decimal `json:"price"`
	BankCharge    *decimal.Decimal `json:"bankCharge"`
	PriceCurrency *string          `json:"priceCurrency" binding:"omitempty,uppercase,len=3"`
}

// TourProgramResponse defines the data returned for a program.
type TourProgramResponse struct {
	ProgramID     string          `json:"programID"`
	Code          string          `json:"code"`
	Destination   string          `json:"destination"`
	Pax           int             `json:"pax"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Price         decimal.Decimal `json:"price"`
	BankCharge    decimal.Decimal `json:"bankCharge"`
	PriceCurrency string          `json:"priceCurrency"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToTourProgramResponse converts a domain.TourProgram to its response DTO.
func ToTourProgramResponse(p *domain.TourProgram) TourProgramResponse {
	return TourProgramResponse{
		ProgramID:     p.ProgramID,
		Code:          p.Code,
		Destination:   p.Destination,
		Pax:           p.Pax,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Price:         p.Price,
		BankCharge:    p.BankCharge,
		PriceCurrency: p.PriceCurrency,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListTourProgramResponse converts a slice of programs to response DTOs.
func ToListTourProgramResponse(programs []domain.TourProgram) []TourProgramResponse {
	res := make([]TourProgramResponse, len(programs))
	for i := range programs {
		res[i] = ToTourProgramResponse(&programs[i])
	}
	return res
}

// CreateTourItemRequest defines one dated, currency-columned cost or income
// row. Absent currency columns default to zero.
type CreateTourItemRequest struct {
	ItemID string          `json:"itemID" binding:"omitempty,uuid"`
	Date   time.Time       `json:"date" binding:"required"`
	Detail string          `json:"detail" binding:"required"`
	LAK    decimal.Decimal `json:"lak"`
	THB    decimal.Decimal `json:"thb"`
	USD    decimal.Decimal `json:"usd"`
	CNY    decimal.Decimal `json:"cny"`
}

// UpdateTourItemRequest edits a cost/income row; nil fields stay unchanged.
type UpdateTourItemRequest struct {
	Date   *time.Time       `json:"date"`
	Detail *string          `json:"detail"`
	LAK    *decimal.Decimal `json:"lak"`
	THB    *decimal.Decimal `json:"thb"`
	USD    *decimal.Decimal `json:"usd"`
	CNY    *decimal.Decimal `json:"cny"`
}

// TourItemResponse defines the data returned for a cost/income row.
type TourItemResponse struct {
	ItemID    string              `json:"itemID"`
	ProgramID string              `json:"programID"`
	Kind      domain.TourItemKind `json:"kind"`
	Date      time.Time           `json:"date"`
	Detail    string              `json:"detail"`
	LAK       decimal.Decimal     `json:"lak"`
	THB       decimal.Decimal     `json:"thb"`
	USD       decimal.Decimal     `json:"usd"`
	CNY       decimal.Decimal     `json:"cny"`
}

// ToTourItemResponse converts a domain.TourItem to its response DTO.
func ToTourItemResponse(item *domain.TourItem) TourItemResponse {
	return TourItemResponse{
		ItemID:    item.ItemID,
		ProgramID: item.ProgramID,
		Kind:      item.Kind,
		Date:      item.Date,
		Detail:    item.Detail,
		LAK:       item.LAK,
		THB:       item.THB,
		USD:       item.USD,
		CNY:       item.CNY,
	}
}

// ToListTourItemResponse converts a slice of rows to response DTOs.
func ToListTourItemResponse(items []domain.TourItem) []TourItemResponse {
	res := make([]TourItemResponse, len(items))
	for i := range items {
		res[i] = ToTourItemResponse(&items[i])
	}
	return res
}
