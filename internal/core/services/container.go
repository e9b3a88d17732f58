package services

import (
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:       NewLedgerService(repos.TransactionRepo, repos.SummaryRepo),
		Stock:        NewStockService(repos.StockRepo),
		Tour:         NewTourService(repos.TourRepo),
		Calculation:  NewCalculationService(repos.CalculationRepo, repos.RateRepo),
		Cash:         NewCashService(repos.CashRepo),
		Currency:     NewCurrencyService(repos.CurrencyRepo),
		ExchangeRate: NewExchangeRateService(repos.RateRepo, repos.CurrencyRepo),
	}
}
