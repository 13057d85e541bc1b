package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveType is the accounting document type.
type MoveType string

const (
	OutInvoice MoveType = "out_invoice"
	OutRefund  MoveType = "out_refund" // credit note
)

// MoveState is the posting state of a document.
type MoveState string

const (
	MovePosted MoveState = "posted"
)

// Move is a posted customer invoice or credit note as read from the ledger.
// AmountResidual holds the outstanding amount in the document currency,
// whichever residual source produced it.
type Move struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	ExternalNumber string          `json:"externalNumber"`
	PartnerID      int64           `json:"partnerID"` // 0 when the document has no partner
	PartnerName    string          `json:"partnerName"`
	Currency       Currency        `json:"currency"`
	CompanyID      int64           `json:"companyID"`
	JournalID      int64           `json:"journalID"`
	MoveType       MoveType        `json:"moveType"`
	State          MoveState       `json:"state"`
	InvoiceDate    *time.Time      `json:"invoiceDate"`
	InvoiceDateDue *time.Time      `json:"invoiceDateDue"`
	AmountTotal    decimal.Decimal `json:"amountTotal"`
	AmountResidual decimal.Decimal `json:"amountResidual"`
}

// IsCreditNote reports whether the move reduces what the customer owes.
func (m Move) IsCreditNote() bool {
	return m.MoveType == OutRefund
}

// DisplayNumber prefers the external (fiscal) number over the internal name.
func (m Move) DisplayNumber() string {
	if m.ExternalNumber != "" {
		return m.ExternalNumber
	}
	return m.Name
}
