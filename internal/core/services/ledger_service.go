package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	summaryRepo portsrepo.SummaryRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, summaryRepo portsrepo.SummaryRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{txnRepo: txnRepo, summaryRepo: summaryRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateAmounts rejects negative per-currency values. Zero buckets are
// accepted and simply contribute nothing to the totals.
func validateAmounts(amounts map[string]decimal.Decimal) error {
	for code, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%w: amount for %s must not be negative", apperrors.ErrValidation, code)
		}
	}
	return nil
}

func (s *ledgerService) CreateTransaction(ctx context.Context, vertical domain.Vertical, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error) {
	if err := validateAmounts(req.Amounts); err != nil {
		return nil, err
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: transactionID,
		Vertical:      vertical,
		Date:          finance.NormalizeDate(req.Date),
		EntryType:     req.EntryType,
		Description:   req.Description,
		Amounts:       domain.MoneyMap(req.Amounts),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction recorded", "transactionID", transactionID, "vertical", string(vertical))
	return &txn, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, vertical domain.Vertical, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	// Entries are only addressable through their own vertical.
	if txn.Vertical != vertical {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, vertical domain.Vertical, from, to *time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, vertical, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, vertical domain.Vertical, transactionID string, req dto.UpdateTransactionRequest, actorID string) (*domain.Transaction, error) {
	txn, err := s.GetTransaction(ctx, vertical, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		txn.Date = finance.NormalizeDate(*req.Date)
	}
	if req.EntryType != nil {
		txn.EntryType = *req.EntryType
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amounts != nil {
		if err := validateAmounts(req.Amounts); err != nil {
			return nil, err
		}
		txn.Amounts = domain.MoneyMap(req.Amounts)
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actorID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, vertical domain.Vertical, transactionID string) error {
	if _, err := s.GetTransaction(ctx, vertical, transactionID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return nil
}

// MonthlySummary rolls every entry up to the end of the report month into a
// brought-forward balance and buckets the month's own entries by type. The
// repository is asked only for entries before the end of the month; nothing
// later can affect the report.
func (s *ledgerService) MonthlySummary(ctx context.Context, vertical domain.Vertical, month time.Time) (*domain.LedgerSummary, error) {
	_, next := finance.MonthInterval(month)
	txns, err := s.txnRepo.ListTransactions(ctx, vertical, nil, &next)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for summary: %w", err)
	}
	summary := finance.SummarizeLedger(txns, month)
	return &summary, nil
}

func (s *ledgerService) GetAccountSummary(ctx context.Context, vertical domain.Vertical) (*domain.AccountSummary, error) {
	summary, err := s.summaryRepo.FindSummaryByVertical(ctx, vertical)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return emptyAccountSummary(vertical), nil
		}
		return nil, fmt.Errorf("failed to get account summary: %w", err)
	}
	return summary, nil
}

func (s *ledgerService) MergeAccountSummary(ctx context.Context, vertical domain.Vertical, req dto.UpdateAccountSummaryRequest, actorID string) (*domain.AccountSummary, error) {
	summary, err := s.GetAccountSummary(ctx, vertical)
	if err != nil {
		return nil, err
	}

	summary.Merge(req.ToPatch())
	now := time.Now()
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = now
		summary.CreatedBy = actorID
	}
	summary.LastUpdatedAt = now
	summary.LastUpdatedBy = actorID

	if err := s.summaryRepo.SaveSummary(ctx, *summary); err != nil {
		return nil, fmt.Errorf("failed to save account summary: %w", err)
	}
	return summary, nil
}

func emptyAccountSummary(vertical domain.Vertical) *domain.AccountSummary {
	return &domain.AccountSummary{
		Vertical:       vertical,
		Capital:        domain.NewMoneyMap(),
		Cash:           domain.NewMoneyMap(),
		Transfer:       domain.NewMoneyMap(),
		WorkingCapital: domain.NewMoneyMap(),
	}
}
