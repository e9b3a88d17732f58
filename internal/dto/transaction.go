package dto

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
// TransactionID may be supplied by the client (the app generates ids before
// the write); the service assigns one when absent.
type CreateTransactionRequest struct {
	TransactionID string                     `json:"transactionID" binding:"omitempty,uuid"`
	Date          time.Time                  `json:"date" binding:"required"`
	EntryType     domain.EntryType           `json:"entryType" binding:"required,oneof=INCOME EXPENSE"`
	Description   string                     `json:"description" binding:"required"`
	Amounts       map[string]decimal.Decimal `json:"amounts" binding:"required,min=1"`
}

// UpdateTransactionRequest defines an edit of an existing ledger entry.
// Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Date        *time.Time                 `json:"date"`
	EntryType   *domain.EntryType          `json:"entryType" binding:"omitempty,oneof=INCOME EXPENSE"`
	Description *string                    `json:"description"`
	Amounts     map[string]decimal.Decimal `json:"amounts"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                     `json:"transactionID"`
	Vertical      domain.Vertical            `json:"vertical"`
	Date          time.Time                  `json:"date"`
	EntryType     domain.EntryType           `json:"entryType"`
	Description   string                     `json:"description"`
	Amounts       map[string]decimal.Decimal `json:"amounts"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Vertical:      txn.Vertical,
		Date:          txn.Date,
		EntryType:     txn.EntryType,
		Description:   txn.Description,
		Amounts:       txn.Amounts,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
