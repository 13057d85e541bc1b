package dto

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Position      string          `json:"position"`
	DecimalPlaces int             `json:"decimalPlaces"`
	Rounding      decimal.Decimal `json:"rounding"`
}

// ToCurrencyResponse converts a domain currency to its DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:            curr.ID,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		Position:      string(curr.Position),
		DecimalPlaces: curr.DecimalPlaces,
		Rounding:      curr.RoundingStep(),
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
