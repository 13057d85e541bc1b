package repositories

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its id.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all active currencies ordered by name.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
// Currencies are master data owned by the ledger, so there is no writer.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company together with its functional currency.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
}
