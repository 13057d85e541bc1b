package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts amounts from one currency into another.
// An amount in FromCurrency multiplied by Rate gives the amount in ToCurrency.
type ExchangeRate struct {
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	Rate          decimal.Decimal `json:"rate"`
	DateEffective time.Time       `json:"dateEffective"`
}
