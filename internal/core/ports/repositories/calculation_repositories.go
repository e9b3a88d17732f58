package repositories

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// CalculationRepositoryFacade persists standalone tour calculator documents.
type CalculationRepositoryFacade interface {
	// FindCalculationByID retrieves one saved calculation.
	FindCalculationByID(ctx context.Context, calculationID string) (*domain.SavedCalculation, error)

	// ListCalculations retrieves all saved calculations, newest first.
	ListCalculations(ctx context.Context) ([]domain.SavedCalculation, error)

	// SaveCalculation upserts a calculation document (last write wins).
	SaveCalculation(ctx context.Context, calc domain.SavedCalculation) error

	// DeleteCalculation permanently removes a calculation.
	DeleteCalculation(ctx context.Context, calculationID string) error
}
