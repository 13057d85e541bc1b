package models

import (
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies for a specific date.
type ExchangeRate struct {
	ID            int64           `db:"id"`
	FromCurrency  string          `db:"from_currency"`
	ToCurrency    string          `db:"to_currency"`
	Rate          decimal.Decimal `db:"rate"`
	DateEffective time.Time       `db:"date_effective"`
}

func (r ExchangeRate) ToDomain() domain.ExchangeRate {
	return domain.ExchangeRate{
		FromCurrency:  r.FromCurrency,
		ToCurrency:    r.ToCurrency,
		Rate:          r.Rate,
		DateEffective: r.DateEffective,
	}
}
