package services

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/platform/render"
)

// OutstandingReportSvc builds the foldable outstanding receivables report
// grouped by partner and original currency.
type OutstandingReportSvc interface {
	BuildReport(ctx context.Context, opts domain.ReportOptions) (*domain.OutstandingReport, error)

	// RenderReport exports the report with every line unfolded.
	RenderReport(ctx context.Context, opts domain.ReportOptions, format render.Format) ([]byte, error)

	// PartnerReportOptions returns the options of the statement report of one
	// partner: that partner selected and every line unfolded.
	PartnerReportOptions(ctx context.Context, partnerID int64) (domain.ReportOptions, error)
}

// DueStatementSvc builds the printable per-currency statement of one customer.
type DueStatementSvc interface {
	BuildDueStatement(ctx context.Context, req domain.DueStatementRequest) (*domain.DueStatement, error)
	RenderDueStatement(ctx context.Context, req domain.DueStatementRequest, format render.Format) ([]byte, error)
}

// StatementDispatchSvc emails statements to partners.
type StatementDispatchSvc interface {
	// DefaultComposition returns the recipients, subject and body offered before sending.
	DefaultComposition(ctx context.Context, partnerID int64) (*domain.StatementComposition, error)

	// SendStatement renders, records and sends the statement of one partner.
	SendStatement(ctx context.Context, req domain.StatementDispatch) (*domain.DispatchResult, error)

	// GetAttachment returns a statement file of the partner with its content loaded.
	GetAttachment(ctx context.Context, partnerID int64, attachmentID string) (*domain.Attachment, error)
}
