package domain_test

import (
	"testing"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency_IsZero(t *testing.T) {
	usd := domain.Currency{Name: "USD", DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.01")}
	jpy := domain.Currency{Name: "JPY", DecimalPlaces: 0}
	chf := domain.Currency{Name: "CHF", DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.05")}

	tests := []struct {
		name     string
		currency domain.Currency
		amount   string
		want     bool
	}{
		{"exact zero", usd, "0", true},
		{"below half a cent", usd, "0.004", true},
		{"negative below half a cent", usd, "-0.0049", true},
		{"half a cent rounds away from zero", usd, "0.005", false},
		{"one cent", usd, "0.01", false},
		{"yen fraction", jpy, "0.4", true},
		{"yen rounds up", jpy, "0.5", false},
		{"cash rounding below half step", chf, "0.02", true},
		{"cash rounding at half step", chf, "0.025", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.currency.IsZero(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrency_Round(t *testing.T) {
	usd := domain.Currency{Name: "USD", DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.01")}
	chf := domain.Currency{Name: "CHF", DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.05")}

	assert.Equal(t, "12.35", usd.Round(decimal.RequireFromString("12.345")).StringFixed(2))
	assert.Equal(t, "-12.35", usd.Round(decimal.RequireFromString("-12.345")).StringFixed(2))
	assert.Equal(t, "1.05", chf.Round(decimal.RequireFromString("1.03")).StringFixed(2))
	assert.Equal(t, "1.00", chf.Round(decimal.RequireFromString("1.02")).StringFixed(2))
}

func TestPartner_StatementTargets(t *testing.T) {
	tests := []struct {
		name    string
		partner domain.Partner
		want    domain.StatementTargets
	}{
		{
			name:    "statement email wins",
			partner: domain.Partner{Email: "info@acme.test", StatementEmail: "ar@acme.test", StatementEmailCC: "cfo@acme.test"},
			want:    domain.StatementTargets{EmailTo: "ar@acme.test", EmailCC: "cfo@acme.test"},
		},
		{
			name:    "falls back to general email",
			partner: domain.Partner{Email: "info@acme.test"},
			want:    domain.StatementTargets{EmailTo: "info@acme.test"},
		},
		{
			name:    "cc has no fallback",
			partner: domain.Partner{Email: "info@acme.test", StatementEmail: "ar@acme.test"},
			want:    domain.StatementTargets{EmailTo: "ar@acme.test"},
		},
		{
			name:    "nothing configured",
			partner: domain.Partner{},
			want:    domain.StatementTargets{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.partner.StatementTargets())
		})
	}
}

func TestReportOptions_IsUnfolded(t *testing.T) {
	opts := domain.ReportOptions{UnfoldedLines: []string{"a", "b"}}
	assert.True(t, opts.IsUnfolded("a"))
	assert.False(t, opts.IsUnfolded("c"))

	opts.UnfoldAll = true
	assert.True(t, opts.IsUnfolded("c"))
}
