package pgsql

import (
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SummaryRepo:     newPgxSummaryRepository(dbPool),
		StockRepo:       newPgxStockRepository(dbPool),
		TourRepo:        newPgxTourRepository(dbPool),
		CalculationRepo: newPgxCalculationRepository(dbPool),
		CashRepo:        newPgxCashRepository(dbPool),
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		RateRepo:        newPgxExchangeRateRepository(dbPool),
	}
}
