package utils

import (
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the day/month/year layout used in every rendered statement.
const DateLayout = "02/01/2006"

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency.
// Example: amount 12.3456 with USD (2 decimals) returns "12.35"
// Example: amount 12.3456 with JPY (0 decimals) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Round(amount).StringFixed(int32(currency.DecimalPlaces))
}

// FormatWithPrecision formats an amount with the given precision and thousands separators.
// This is used where no single currency applies, e.g. partner totals across currencies.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return groupThousands(amount.StringFixed(int32(precision)))
}

// FormatMonetary renders an amount in its own currency, rounded to the
// currency rounding and with the symbol on the configured side.
// Example: -1234.5 USD returns "$ -1,234.50"; 10 EUR (after) returns "10.00 €"
func FormatMonetary(amount decimal.Decimal, currency domain.Currency) string {
	number := groupThousands(FormatWithCurrencyPrecision(amount, currency))
	symbol := currency.Symbol
	if symbol == "" {
		symbol = currency.Name
	}
	if symbol == "" {
		return number
	}
	if currency.Position == domain.SymbolAfter {
		return number + " " + symbol
	}
	return symbol + " " + number
}

// FormatDate renders a date as dd/mm/yyyy, or an empty string when missing.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return sign + intPart + "." + fracPart
	}
	return sign + intPart
}
