package services

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/dto"
)

// TourReaderSvc defines read operations for tour programs.
type TourReaderSvc interface {
	// GetProgram retrieves one program.
	GetProgram(ctx context.Context, programID string) (*domain.TourProgram, error)

	// ListPrograms retrieves all programs, newest first.
	ListPrograms(ctx context.Context) ([]domain.TourProgram, error)

	// ListItems retrieves a program's rows of the given kind; an empty kind
	// returns both cost and income rows.
	ListItems(ctx context.Context, programID string, kind domain.TourItemKind) ([]domain.TourItem, error)

	// ProgramSummary rolls the program's cost and income rows into
	// per-currency totals.
	ProgramSummary(ctx context.Context, programID string) (*domain.TourProgramSummary, error)
}

// TourWriterSvc defines write operations for tour programs.
type TourWriterSvc interface {
	// CreateProgram opens a new program.
	CreateProgram(ctx context.Context, req dto.CreateTourProgramRequest, actorID string) (*domain.TourProgram, error)

	// UpdateProgram edits a program.
	UpdateProgram(ctx context.Context, programID string, req dto.UpdateTourProgramRequest, actorID string) (*domain.TourProgram, error)

	// DeleteProgram removes a program and its rows.
	DeleteProgram(ctx context.Context, programID string) error

	// AddItem appends a cost or income row to a program.
	AddItem(ctx context.Context, programID string, kind domain.TourItemKind, req dto.CreateTourItemRequest, actorID string) (*domain.TourItem, error)

	// UpdateItem edits a cost/income row.
	UpdateItem(ctx context.Context, programID, itemID string, req dto.UpdateTourItemRequest, actorID string) (*domain.TourItem, error)

	// DeleteItem removes a cost/income row.
	DeleteItem(ctx context.Context, programID, itemID string) error
}

// TourSvcFacade combines all tour service interfaces.
type TourSvcFacade interface {
	TourReaderSvc
	TourWriterSvc
}
