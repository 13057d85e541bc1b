package models

import (
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Move is a row of account_move joined with its partner and currency.
// AmountResidual holds whichever residual the query selected; in ledger
// mode it is expressed in CompanyCurrency until converted, and
// AmountResidualCurrency carries the document-currency residual when the
// ledger items are booked in the move's currency.
type Move struct {
	ID                     int64   `db:"id"`
	Name                   string  `db:"name"`
	ExternalNumber         *string `db:"external_number"`
	PartnerID              *int64  `db:"partner_id"`
	PartnerName            *string `db:"partner_name"`
	Currency               Currency
	CompanyID              int64               `db:"company_id"`
	CompanyCurrency        string              `db:"company_currency"`
	JournalID              *int64              `db:"journal_id"`
	MoveType               string              `db:"move_type"`
	State                  string              `db:"state"`
	InvoiceDate            *time.Time          `db:"invoice_date"`
	InvoiceDateDue         *time.Time          `db:"invoice_date_due"`
	AmountTotal            decimal.Decimal     `db:"amount_total"`
	AmountResidual         decimal.Decimal     `db:"amount_residual"`
	AmountResidualCurrency decimal.NullDecimal `db:"amount_residual_currency"`
}

func (m Move) ToDomain() domain.Move {
	out := domain.Move{
		ID:             m.ID,
		Name:           m.Name,
		ExternalNumber: deref(m.ExternalNumber),
		PartnerName:    deref(m.PartnerName),
		Currency:       m.Currency.ToDomain(),
		CompanyID:      m.CompanyID,
		MoveType:       domain.MoveType(m.MoveType),
		State:          domain.MoveState(m.State),
		InvoiceDate:    m.InvoiceDate,
		InvoiceDateDue: m.InvoiceDateDue,
		AmountTotal:    m.AmountTotal,
		AmountResidual: m.AmountResidual,
	}
	if m.PartnerID != nil {
		out.PartnerID = *m.PartnerID
	}
	if m.JournalID != nil {
		out.JournalID = *m.JournalID
	}
	return out
}
