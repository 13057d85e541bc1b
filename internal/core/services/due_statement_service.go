package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/SscSPs/ar_statements/internal/utils"
)

// DueStatementTitle is the title of the printable customer statement.
const DueStatementTitle = "Customer Statement"

// dueStatementService implements the DueStatementSvc interface
type dueStatementService struct {
	BaseService
	selector         *StatementSelector
	moveRepo         portsrepo.MoveReader
	partnerRepo      portsrepo.PartnerReader
	companyRepo      portsrepo.CompanyReader
	renderer         portssvc.DocumentRenderer
	defaultCompanyID int64
}

// DueStatementOption is a functional option for configuring the due statement service
type DueStatementOption func(*dueStatementService)

// WithDueStatementRenderer enables HTML and PDF exports.
func WithDueStatementRenderer(r portssvc.DocumentRenderer) DueStatementOption {
	return func(s *dueStatementService) {
		s.renderer = r
	}
}

// WithDefaultCompany sets the company used when a request names none.
func WithDefaultCompany(companyID int64) DueStatementOption {
	return func(s *dueStatementService) {
		s.defaultCompanyID = companyID
	}
}

// WithDueStatementClock overrides the clock used for the print date.
func WithDueStatementClock(now func() time.Time) DueStatementOption {
	return func(s *dueStatementService) {
		s.now = now
	}
}

// NewDueStatementService creates a new due statement service with the provided options
func NewDueStatementService(
	selector *StatementSelector,
	moveRepo portsrepo.MoveReader,
	partnerRepo portsrepo.PartnerReader,
	companyRepo portsrepo.CompanyReader,
	options ...DueStatementOption,
) portssvc.DueStatementSvc {
	svc := &dueStatementService{
		selector:    selector,
		moveRepo:    moveRepo,
		partnerRepo: partnerRepo,
		companyRepo: companyRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DueStatementSvc = (*dueStatementService)(nil)

// BuildDueStatement lists the outstanding documents of the partner's
// commercial entity and its contacts, one section per currency.
func (s *dueStatementService) BuildDueStatement(ctx context.Context, req domain.DueStatementRequest) (*domain.DueStatement, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner %d: %w", req.PartnerID, err)
	}

	companyID := req.CompanyID
	if companyID == 0 {
		companyID = s.defaultCompanyID
	}
	if companyID == 0 {
		return nil, apperrors.NewValidationError("company_id is required")
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %d: %w", companyID, err)
	}

	query, err := s.selector.BuildQuery(domain.SelectionCriteria{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Partners: domain.PartnerScope{
			PartnerIDs:   []int64{partner.CommercialID()},
			Hierarchical: true,
		},
		CompanyIDs: []int64{company.ID},
	})
	if err != nil {
		return nil, err
	}

	moves, err := s.moveRepo.FindMoves(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to load documents for due statement", slog.Int64("partner_id", partner.ID))
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	buckets := GroupByCurrency(moves)
	sections := make([]domain.DueStatementSection, 0, len(buckets))
	for _, b := range buckets {
		lines := make([]domain.DueStatementLine, len(b.Moves))
		for i, mv := range b.Moves {
			lines[i] = domain.DueStatementLine{
				InvoiceDate:    mv.InvoiceDate,
				InvoiceDateDue: mv.InvoiceDateDue,
				InvoiceName:    mv.DisplayNumber,
				OriginalAmount: mv.OriginalAmount,
				BalanceAmount:  mv.ResidualAmount,
			}
		}
		sections = append(sections, domain.DueStatementSection{
			Currency:     b.Currency,
			Lines:        lines,
			TotalBalance: b.SubtotalResidual,
		})
	}

	s.LogInfo(ctx, "Due statement built",
		slog.Int64("partner_id", partner.ID),
		slog.Int("documents", len(moves)),
		slog.Int("currencies", len(sections)))

	return &domain.DueStatement{
		Partner:  *partner,
		Company:  *company,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Today:    s.Now(),
		Sections: sections,
	}, nil
}

func (s *dueStatementService) RenderDueStatement(ctx context.Context, req domain.DueStatementRequest, format render.Format) ([]byte, error) {
	if s.renderer == nil || !s.renderer.Supports(format) {
		return nil, fmt.Errorf("%w: due statement cannot be exported as %s", apperrors.ErrUnsupportedCapability, format)
	}
	statement, err := s.BuildDueStatement(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, DueStatementDocument(statement), format)
}

// DueStatementDocument lays a statement out as one table per currency.
func DueStatementDocument(st *domain.DueStatement) render.Document {
	header := []string{st.Partner.Name, st.Company.Name}
	header = append(header, periodHeader(st.DateFrom, st.DateTo, st.Today)...)

	sections := make([]render.Section, 0, len(st.Sections))
	for _, sec := range st.Sections {
		rows := make([]render.Row, 0, len(sec.Lines)+1)
		for _, l := range sec.Lines {
			rows = append(rows, render.Row{Cells: []string{
				utils.FormatDate(l.InvoiceDate),
				utils.FormatDate(l.InvoiceDateDue),
				l.InvoiceName,
				utils.FormatMonetary(l.OriginalAmount, sec.Currency),
				utils.FormatMonetary(l.BalanceAmount, sec.Currency),
			}})
		}
		rows = append(rows, render.Row{
			Cells:    []string{"", "", "Total Balance", "", utils.FormatMonetary(sec.TotalBalance, sec.Currency)},
			Emphasis: true,
		})
		sections = append(sections, render.Section{Heading: "Currency: " + sec.Currency.Name, Rows: rows})
	}

	return render.Document{
		Title:  DueStatementTitle,
		Header: header,
		Columns: []render.Column{
			{Label: "Invoice Date", Width: 28},
			{Label: "Due Date", Width: 28},
			{Label: "Number"},
			{Label: "Original Amount", Align: render.AlignRight, Width: 38},
			{Label: "Balance", Align: render.AlignRight, Width: 38},
		},
		Sections: sections,
	}
}
