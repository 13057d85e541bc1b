package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveSummary is the signed projection of a document inside a bucket.
type MoveSummary struct {
	ID             int64           `json:"id"`
	InvoiceDate    *time.Time      `json:"invoiceDate"`
	InvoiceDateDue *time.Time      `json:"invoiceDateDue"`
	DisplayNumber  string          `json:"displayNumber"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	ResidualAmount decimal.Decimal `json:"residualAmount"`
}

// PartnerKey identifies a partner bucket.
type PartnerKey struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CurrencyBucket groups the documents of one currency with signed subtotals.
type CurrencyBucket struct {
	Currency         Currency        `json:"currency"`
	SubtotalOriginal decimal.Decimal `json:"subtotalOriginal"`
	SubtotalResidual decimal.Decimal `json:"subtotalResidual"`
	Moves            []MoveSummary   `json:"moves"`
}

// PartnerGroup is a partner bucket with its nested currency buckets,
// ordered by currency name.
type PartnerGroup struct {
	Partner    PartnerKey       `json:"partner"`
	Currencies []CurrencyBucket `json:"currencies"`
}

// TotalOriginal sums the original subtotals of every currency bucket.
func (g PartnerGroup) TotalOriginal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range g.Currencies {
		total = total.Add(c.SubtotalOriginal)
	}
	return total
}

// TotalResidual sums the residual subtotals of every currency bucket.
func (g PartnerGroup) TotalResidual() decimal.Decimal {
	total := decimal.Zero
	for _, c := range g.Currencies {
		total = total.Add(c.SubtotalResidual)
	}
	return total
}

// PartnerBucket groups documents of one partner regardless of currency.
type PartnerBucket struct {
	Partner          PartnerKey      `json:"partner"`
	SubtotalOriginal decimal.Decimal `json:"subtotalOriginal"`
	SubtotalResidual decimal.Decimal `json:"subtotalResidual"`
	Moves            []MoveSummary   `json:"moves"`
}
