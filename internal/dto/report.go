package dto

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// OutstandingReportQuery holds the query parameters of the outstanding report.
// Id lists are comma-separated; unfolded_lines may also be repeated.
type OutstandingReportQuery struct {
	DateFrom           string   `form:"date_from" example:"2024-01-01"`
	DateTo             string   `form:"date_to" example:"2024-03-31"`
	PartnerIDs         string   `form:"partner_ids" example:"7,9"`
	SelectedPartnerIDs string   `form:"selected_partner_ids"`
	CompanyIDs         string   `form:"company_ids" example:"1"`
	JournalIDs         string   `form:"journal_ids"`
	UnfoldAll          bool     `form:"unfold_all"`
	UnfoldedLines      []string `form:"unfolded_lines"`
	ShowSubtotals      bool     `form:"show_subtotals"`
}

// OutstandingReportResponse is the foldable report returned to clients.
type OutstandingReportResponse struct {
	Title   string              `json:"title"`
	Columns []string            `json:"columns"`
	Lines   []domain.ReportLine `json:"lines"`
}

// ToOutstandingReportResponse converts the domain report to its DTO.
func ToOutstandingReportResponse(r *domain.OutstandingReport) OutstandingReportResponse {
	lines := r.Lines
	if lines == nil {
		lines = []domain.ReportLine{}
	}
	return OutstandingReportResponse{
		Title:   r.Title,
		Columns: r.Columns,
		Lines:   lines,
	}
}
