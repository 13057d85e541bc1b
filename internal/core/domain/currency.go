package domain

import "github.com/shopspring/decimal"

// SymbolPosition tells whether a currency symbol is printed before or after the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency represents a ledger currency with its rounding rules.
type Currency struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`     // ISO code, e.g. "USD"
	Symbol        string          `json:"symbol"`   // e.g. "$"
	Position      SymbolPosition  `json:"position"` // before or after
	DecimalPlaces int             `json:"decimalPlaces"`
	Rounding      decimal.Decimal `json:"rounding"` // smallest representable step, e.g. 0.01
}

// RoundingStep returns the rounding increment, derived from DecimalPlaces when unset.
func (c Currency) RoundingStep() decimal.Decimal {
	if c.Rounding.IsPositive() {
		return c.Rounding
	}
	return decimal.New(1, -int32(c.DecimalPlaces))
}

// Round rounds amount to the currency rounding step, half away from zero.
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	step := c.RoundingStep()
	return amount.Div(step).Round(0).Mul(step).Round(int32(c.DecimalPlaces))
}

// IsZero reports whether amount rounds to zero in this currency, i.e. its
// magnitude is below half a rounding step.
func (c Currency) IsZero(amount decimal.Decimal) bool {
	half := c.RoundingStep().Div(decimal.NewFromInt(2))
	return amount.Abs().LessThan(half)
}
