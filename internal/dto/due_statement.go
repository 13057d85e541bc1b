package dto

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/utils"
	"github.com/shopspring/decimal"
)

// DueStatementQuery holds the query parameters of the printable statement.
type DueStatementQuery struct {
	DateFrom  string `form:"date_from" example:"2024-01-01"`
	DateTo    string `form:"date_to" example:"2024-03-31"`
	CompanyID int64  `form:"company_id" binding:"omitempty,min=1"`
	Format    string `form:"format" binding:"omitempty,oneof=json html pdf"`
}

// DueStatementLineResponse is one document row.
type DueStatementLineResponse struct {
	InvoiceDate       string          `json:"invoiceDate"`
	InvoiceDateDue    string          `json:"invoiceDateDue"`
	InvoiceName       string          `json:"invoiceName"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	BalanceAmount     decimal.Decimal `json:"balanceAmount"`
	OriginalFormatted string          `json:"originalFormatted"`
	BalanceFormatted  string          `json:"balanceFormatted"`
}

// DueStatementSectionResponse lists the documents of one currency.
type DueStatementSectionResponse struct {
	Currency              string                     `json:"currency"`
	Lines                 []DueStatementLineResponse `json:"lines"`
	TotalBalance          decimal.Decimal            `json:"totalBalance"`
	TotalBalanceFormatted string                     `json:"totalBalanceFormatted"`
}

// DueStatementResponse is the JSON rendering of a printable statement.
type DueStatementResponse struct {
	PartnerID   int64                         `json:"partnerID"`
	PartnerName string                        `json:"partnerName"`
	CompanyName string                        `json:"companyName"`
	DateFrom    string                        `json:"dateFrom,omitempty"`
	DateTo      string                        `json:"dateTo,omitempty"`
	PrintedOn   string                        `json:"printedOn"`
	Sections    []DueStatementSectionResponse `json:"sections"`
}

// ToDueStatementResponse converts a statement to its DTO.
func ToDueStatementResponse(s *domain.DueStatement) DueStatementResponse {
	res := DueStatementResponse{
		PartnerID:   s.Partner.ID,
		PartnerName: s.Partner.Name,
		CompanyName: s.Company.Name,
		DateFrom:    utils.FormatDate(s.DateFrom),
		DateTo:      utils.FormatDate(s.DateTo),
		PrintedOn:   utils.FormatDate(&s.Today),
		Sections:    make([]DueStatementSectionResponse, len(s.Sections)),
	}
	for i, sec := range s.Sections {
		lines := make([]DueStatementLineResponse, len(sec.Lines))
		for j, l := range sec.Lines {
			lines[j] = DueStatementLineResponse{
				InvoiceDate:       utils.FormatDate(l.InvoiceDate),
				InvoiceDateDue:    utils.FormatDate(l.InvoiceDateDue),
				InvoiceName:       l.InvoiceName,
				OriginalAmount:    l.OriginalAmount,
				BalanceAmount:     l.BalanceAmount,
				OriginalFormatted: utils.FormatMonetary(l.OriginalAmount, sec.Currency),
				BalanceFormatted:  utils.FormatMonetary(l.BalanceAmount, sec.Currency),
			}
		}
		res.Sections[i] = DueStatementSectionResponse{
			Currency:              sec.Currency.Name,
			Lines:                 lines,
			TotalBalance:          sec.TotalBalance,
			TotalBalanceFormatted: utils.FormatMonetary(sec.TotalBalance, sec.Currency),
		}
	}
	return res
}
