package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueStatementRequest holds the parameters of a printable statement.
type DueStatementRequest struct {
	PartnerID int64
	DateFrom  *time.Time
	DateTo    *time.Time
	CompanyID int64
}

// DueStatementLine is one document row of a printable statement.
type DueStatementLine struct {
	InvoiceDate    *time.Time      `json:"invoiceDate"`
	InvoiceDateDue *time.Time      `json:"invoiceDateDue"`
	InvoiceName    string          `json:"invoiceName"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	BalanceAmount  decimal.Decimal `json:"balanceAmount"`
}

// DueStatementSection lists the documents of one currency.
type DueStatementSection struct {
	Currency     Currency           `json:"currency"`
	Lines        []DueStatementLine `json:"lines"`
	TotalBalance decimal.Decimal    `json:"totalBalance"`
}

// DueStatement is the printable per-currency statement of one customer.
type DueStatement struct {
	Partner  Partner               `json:"partner"`
	Company  Company               `json:"company"`
	DateFrom *time.Time            `json:"dateFrom"`
	DateTo   *time.Time            `json:"dateTo"`
	Today    time.Time             `json:"today"`
	Sections []DueStatementSection `json:"sections"`
}
