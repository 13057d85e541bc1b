package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ar_statements/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = "id, name, symbol, position, decimal_places, rounding"

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency and company data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var (
	_ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)
	_ portsrepo.CompanyRepositoryFacade  = (*PgxCurrencyRepository)(nil)
)

// FindCurrencyByID retrieves a currency by id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM res_currency WHERE id = $1;`

	var modelCurr models.Currency
	err := r.DB(ctx).QueryRow(ctx, query, currencyID).Scan(
		&modelCurr.ID,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.Position,
		&modelCurr.DecimalPlaces,
		&modelCurr.Rounding,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %d", currencyID))
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	domainCurr := modelCurr.ToDomain()
	return &domainCurr, nil
}

// ListCurrencies retrieves all active currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM res_currency WHERE active ORDER BY name;`

	rows, err := r.DB(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.ID,
			&currency.Name,
			&currency.Symbol,
			&currency.Position,
			&currency.DecimalPlaces,
			&currency.Rounding,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	currencies := make([]domain.Currency, len(modelCurrencies))
	for i, c := range modelCurrencies {
		currencies[i] = c.ToDomain()
	}
	return currencies, nil
}

// FindCompanyByID retrieves a company with its functional currency.
func (r *PgxCurrencyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `
		SELECT co.id, co.name, c.id, c.name, c.symbol, c.position, c.decimal_places, c.rounding
		FROM res_company co
		JOIN res_currency c ON c.id = co.currency_id
		WHERE co.id = $1;
	`
	var company models.Company
	err := r.DB(ctx).QueryRow(ctx, query, companyID).Scan(
		&company.ID,
		&company.Name,
		&company.Currency.ID,
		&company.Currency.Name,
		&company.Currency.Symbol,
		&company.Currency.Position,
		&company.Currency.DecimalPlaces,
		&company.Currency.Rounding,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("company %d", companyID))
		}
		return nil, fmt.Errorf("failed to find company by id %d: %w", companyID, err)
	}

	domainCompany := company.ToDomain()
	return &domainCompany, nil
}
