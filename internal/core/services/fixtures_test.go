package services_test

import (
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	usd = domain.Currency{ID: 2, Name: "USD", Symbol: "$", Position: domain.SymbolBefore, DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.01")}
	eur = domain.Currency{ID: 1, Name: "EUR", Symbol: "€", Position: domain.SymbolAfter, DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.01")}
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func invoice(id, partnerID int64, partnerName string, cur domain.Currency, date string, total, residual string) domain.Move {
	m := domain.Move{
		ID:             id,
		Name:           "INV/" + decimal.NewFromInt(id).String(),
		PartnerID:      partnerID,
		PartnerName:    partnerName,
		Currency:       cur,
		CompanyID:      1,
		MoveType:       domain.OutInvoice,
		State:          domain.MovePosted,
		AmountTotal:    dec(total),
		AmountResidual: dec(residual),
	}
	if date != "" {
		m.InvoiceDate = day(date)
	}
	return m
}

func creditNote(id, partnerID int64, partnerName string, cur domain.Currency, date string, total, residual string) domain.Move {
	m := invoice(id, partnerID, partnerName, cur, date, total, residual)
	m.Name = "RINV/" + decimal.NewFromInt(id).String()
	m.MoveType = domain.OutRefund
	return m
}
