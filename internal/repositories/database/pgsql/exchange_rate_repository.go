package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ar_statements/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository implements the ExchangeRateReader interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// FindExchangeRate retrieves the most recent exchange rate between two
// currencies effective on or before asOf. The inverse pair is used when no
// direct rate exists.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	fromCurrency := strings.ToUpper(fromCurrencyCode)
	toCurrency := strings.ToUpper(toCurrencyCode)

	if fromCurrency == toCurrency {
		return &domain.ExchangeRate{
			FromCurrency:  fromCurrency,
			ToCurrency:    toCurrency,
			Rate:          decimal.NewFromInt(1),
			DateEffective: asOf.Truncate(24 * time.Hour),
		}, nil
	}

	directRate, err := r.findRate(ctx, fromCurrency, toCurrency, asOf)
	if err == nil {
		return directRate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	inverseRate, err := r.findRate(ctx, toCurrency, fromCurrency, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + fromCurrency + " to " + toCurrency)
		}
		return nil, err
	}
	if inverseRate.Rate.IsZero() {
		return nil, apperrors.NewNotFoundError("zero exchange rate for currency pair " + toCurrency + " to " + fromCurrency)
	}
	inverseRate.FromCurrency = fromCurrency
	inverseRate.ToCurrency = toCurrency
	inverseRate.Rate = decimal.NewFromInt(1).Div(inverseRate.Rate)
	return inverseRate, nil
}

// findRate is a helper method to find the most recent exchange rate
func (r *PgxExchangeRateRepository) findRate(ctx context.Context, fromCurrency, toCurrency string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT id, from_currency, to_currency, rate, date_effective
		FROM exchange_rates
		WHERE from_currency = $1 AND to_currency = $2 AND date_effective <= $3
		ORDER BY date_effective DESC
		LIMIT 1;
	`

	var modelRate models.ExchangeRate
	err := r.DB(ctx).QueryRow(ctx, query, fromCurrency, toCurrency, asOf).Scan(
		&modelRate.ID, &modelRate.FromCurrency, &modelRate.ToCurrency,
		&modelRate.Rate, &modelRate.DateEffective,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := modelRate.ToDomain()
	return &domainRate, nil
}
