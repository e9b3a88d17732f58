package repositories

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// TourReader defines read operations for tour programs and their rows.
type TourReader interface {
	// FindProgramByID retrieves one program.
	FindProgramByID(ctx context.Context, programID string) (*domain.TourProgram, error)

	// ListPrograms retrieves all programs, newest first.
	ListPrograms(ctx context.Context) ([]domain.TourProgram, error)

	// ListItems retrieves a program's cost/income rows, oldest first.
	ListItems(ctx context.Context, programID string) ([]domain.TourItem, error)

	// FindItemByID retrieves one cost/income row.
	FindItemByID(ctx context.Context, itemID string) (*domain.TourItem, error)
}

// TourWriter defines write operations for tour programs and their rows.
type TourWriter interface {
	// SaveProgram persists a new program.
	SaveProgram(ctx context.Context, program domain.TourProgram) error

	// UpdateProgram overwrites an existing program.
	UpdateProgram(ctx context.Context, program domain.TourProgram) error

	// DeleteProgram removes a program and its rows.
	DeleteProgram(ctx context.Context, programID string) error

	// SaveItem persists a new cost/income row.
	SaveItem(ctx context.Context, item domain.TourItem) error

	// UpdateItem overwrites an existing cost/income row.
	UpdateItem(ctx context.Context, item domain.TourItem) error

	// DeleteItem removes a cost/income row.
	DeleteItem(ctx context.Context, itemID string) error
}

// TourRepositoryFacade combines all tour repository interfaces.
type TourRepositoryFacade interface {
	TourReader
	TourWriter
}
