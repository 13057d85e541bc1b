package models

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Currency is a row of res_currency.
type Currency struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"` // ISO code
	Symbol        string          `db:"symbol"`
	Position      string          `db:"position"`
	DecimalPlaces int             `db:"decimal_places"`
	Rounding      decimal.Decimal `db:"rounding"`
}

func (c Currency) ToDomain() domain.Currency {
	return domain.Currency{
		ID:            c.ID,
		Name:          c.Name,
		Symbol:        c.Symbol,
		Position:      domain.SymbolPosition(c.Position),
		DecimalPlaces: c.DecimalPlaces,
		Rounding:      c.Rounding,
	}
}

// Company is a row of res_company joined with its currency.
type Company struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Currency Currency
}

func (c Company) ToDomain() domain.Company {
	return domain.Company{ID: c.ID, Name: c.Name, Currency: c.Currency.ToDomain()}
}
