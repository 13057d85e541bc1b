package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/SscSPs/ar_statements/internal/utils"
	"github.com/shopspring/decimal"
)

// OutstandingReportTitle is the title of the outstanding report.
const OutstandingReportTitle = "Outstanding Receivables in Original Currency"

// OutstandingReportColumns are the column headers of the outstanding report.
var OutstandingReportColumns = []string{"Invoice Date", "Due Date", "Number", "Original Amount", "Balance"}

const (
	numberClass      = "number"
	moveCaretOptions = "account.move"
	partnerModel     = "res.partner"
	currencyModel    = "res.currency"
	moveModel        = "account.move"
)

// outstandingReportService implements the OutstandingReportSvc interface
type outstandingReportService struct {
	BaseService
	selector    *StatementSelector
	moveRepo    portsrepo.MoveReader
	partnerRepo portsrepo.PartnerReader
	renderer    portssvc.DocumentRenderer
}

// OutstandingReportOption is a functional option for configuring the report service
type OutstandingReportOption func(*outstandingReportService)

// WithReportRenderer enables printable exports.
func WithReportRenderer(r portssvc.DocumentRenderer) OutstandingReportOption {
	return func(s *outstandingReportService) {
		s.renderer = r
	}
}

// WithReportClock overrides the clock used for print dates.
func WithReportClock(now func() time.Time) OutstandingReportOption {
	return func(s *outstandingReportService) {
		s.now = now
	}
}

// NewOutstandingReportService creates a new report service with the provided options
func NewOutstandingReportService(selector *StatementSelector, moveRepo portsrepo.MoveReader, partnerRepo portsrepo.PartnerReader, options ...OutstandingReportOption) portssvc.OutstandingReportSvc {
	svc := &outstandingReportService{
		selector:    selector,
		moveRepo:    moveRepo,
		partnerRepo: partnerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure outstandingReportService implements the OutstandingReportSvc interface
var _ portssvc.OutstandingReportSvc = (*outstandingReportService)(nil)

func (s *outstandingReportService) BuildReport(ctx context.Context, opts domain.ReportOptions) (*domain.OutstandingReport, error) {
	groups, err := s.loadGroups(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &domain.OutstandingReport{
		Title:   OutstandingReportTitle,
		Columns: OutstandingReportColumns,
		Lines:   BuildReportLines(groups, opts),
	}, nil
}

func (s *outstandingReportService) RenderReport(ctx context.Context, opts domain.ReportOptions, format render.Format) ([]byte, error) {
	if s.renderer == nil || !s.renderer.Supports(format) {
		return nil, fmt.Errorf("%w: outstanding report cannot be exported as %s", apperrors.ErrUnsupportedCapability, format)
	}
	opts.UnfoldAll = true
	report, err := s.BuildReport(ctx, opts)
	if err != nil {
		return nil, err
	}

	doc := s.reportDocument(report, opts)
	out, err := s.renderer.Render(ctx, doc, format)
	if err != nil {
		s.LogError(ctx, err, "Failed to render outstanding report", slog.String("format", string(format)))
		return nil, err
	}
	return out, nil
}

func (s *outstandingReportService) PartnerReportOptions(ctx context.Context, partnerID int64) (domain.ReportOptions, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return domain.ReportOptions{}, fmt.Errorf("failed to load partner %d: %w", partnerID, err)
	}
	opts := domain.ReportOptions{
		Criteria: domain.SelectionCriteria{
			Partners: domain.PartnerScope{PartnerIDs: []int64{partner.ID}},
		},
		UnfoldAll: true,
	}
	if partner.CompanyID != nil {
		opts.Criteria.CompanyIDs = []int64{*partner.CompanyID}
	}
	return opts, nil
}

func (s *outstandingReportService) loadGroups(ctx context.Context, opts domain.ReportOptions) ([]domain.PartnerGroup, error) {
	query, err := s.selector.BuildQuery(opts.Criteria)
	if err != nil {
		return nil, err
	}
	moves, err := s.moveRepo.FindMoves(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to load outstanding documents")
		return nil, fmt.Errorf("failed to load outstanding documents: %w", err)
	}
	s.LogDebug(ctx, "Loaded outstanding documents", slog.Int("count", len(moves)))
	return GroupByPartnerCurrency(moves), nil
}

func (s *outstandingReportService) reportDocument(report *domain.OutstandingReport, opts domain.ReportOptions) render.Document {
	columns := []render.Column{
		{Label: "Partner", Width: 50},
		{Label: report.Columns[0], Width: 22},
		{Label: report.Columns[1], Width: 22},
		{Label: report.Columns[2]},
		{Label: report.Columns[3], Align: render.AlignRight, Width: 32},
		{Label: report.Columns[4], Align: render.AlignRight, Width: 32},
	}

	rows := make([]render.Row, 0, len(report.Lines))
	for _, line := range report.Lines {
		cells := make([]string, 0, len(line.Columns)+1)
		if line.Level == 3 {
			cells = append(cells, "")
		} else {
			cells = append(cells, line.Name)
		}
		for _, col := range line.Columns {
			cells = append(cells, col.Name)
		}
		rows = append(rows, render.Row{
			Cells:    cells,
			Level:    line.Level,
			Emphasis: line.Level == 1 || strings.HasSuffix(line.ID, totalMarkup),
		})
	}

	return render.Document{
		Title:    report.Title,
		Header:   periodHeader(opts.Criteria.DateFrom, opts.Criteria.DateTo, s.Now()),
		Columns:  columns,
		Sections: []render.Section{{Rows: rows}},
	}
}

// BuildReportLines projects grouped documents onto foldable report lines.
// Currency lines are only emitted under unfolded partners and document lines
// only under unfolded currencies.
func BuildReportLines(groups []domain.PartnerGroup, opts domain.ReportOptions) []domain.ReportLine {
	lines := []domain.ReportLine{}
	for _, g := range groups {
		partnerLineID := GenericLineID("", "partner", partnerModel, g.Partner.ID)
		partnerUnfolded := opts.IsUnfolded(partnerLineID)

		totalOriginal, totalResidual := g.TotalOriginal(), g.TotalResidual()
		lines = append(lines, domain.ReportLine{
			ID:         partnerLineID,
			Name:       g.Partner.Name,
			Level:      1,
			Unfoldable: true,
			Unfolded:   partnerUnfolded,
			Columns: []domain.ReportCell{
				{}, {}, {},
				floatCell(totalOriginal),
				floatCell(totalResidual),
			},
		})
		if !partnerUnfolded {
			continue
		}

		for _, bucket := range g.Currencies {
			currencyLineID := GenericLineID(partnerLineID, "currency", currencyModel, bucket.Currency.ID)
			currencyUnfolded := opts.IsUnfolded(currencyLineID)

			lines = append(lines, domain.ReportLine{
				ID:         currencyLineID,
				ParentID:   partnerLineID,
				Name:       bucket.Currency.Name,
				Level:      2,
				Unfoldable: true,
				Unfolded:   currencyUnfolded,
				Columns: []domain.ReportCell{
					{}, {},
					{Name: "Subtotal"},
					monetaryCell(bucket.SubtotalOriginal, bucket.Currency),
					monetaryCell(bucket.SubtotalResidual, bucket.Currency),
				},
			})
			if !currencyUnfolded {
				continue
			}

			for _, mv := range bucket.Moves {
				lines = append(lines, domain.ReportLine{
					ID:           GenericLineID(currencyLineID, "", moveModel, mv.ID),
					ParentID:     currencyLineID,
					Name:         mv.DisplayNumber,
					Level:        3,
					CaretOptions: moveCaretOptions,
					Columns: []domain.ReportCell{
						{Name: utils.FormatDate(mv.InvoiceDate)},
						{Name: utils.FormatDate(mv.InvoiceDateDue)},
						{Name: mv.DisplayNumber},
						monetaryCell(mv.OriginalAmount, bucket.Currency),
						monetaryCell(mv.ResidualAmount, bucket.Currency),
					},
				})
			}

			if opts.ShowSubtotals {
				lines = append(lines, domain.ReportLine{
					ID:       currencyLineID + "|" + totalMarkup,
					ParentID: currencyLineID,
					Name:     "Total " + bucket.Currency.Name,
					Level:    3,
					Columns: []domain.ReportCell{
						{}, {},
						{Name: "Total"},
						monetaryCell(bucket.SubtotalOriginal, bucket.Currency),
						monetaryCell(bucket.SubtotalResidual, bucket.Currency),
					},
				})
			}
		}
	}
	return lines
}

const totalMarkup = "total~~"

// GenericLineID appends a markup~model~value segment to a parent line id,
// e.g. "partner~res.partner~7|currency~res.currency~2|~account.move~55".
// A zero value renders empty.
func GenericLineID(parentID, markup, model string, value int64) string {
	v := ""
	if value != 0 {
		v = strconv.FormatInt(value, 10)
	}
	segment := markup + "~" + model + "~" + v
	if parentID == "" {
		return segment
	}
	return parentID + "|" + segment
}

func floatCell(amount decimal.Decimal) domain.ReportCell {
	raw := amount
	return domain.ReportCell{Name: utils.FormatWithPrecision(amount, 2), NoFormat: &raw, Class: numberClass}
}

func monetaryCell(amount decimal.Decimal, currency domain.Currency) domain.ReportCell {
	raw := amount
	return domain.ReportCell{Name: utils.FormatMonetary(amount, currency), NoFormat: &raw, Class: numberClass}
}

func periodHeader(from, to *time.Time, printedOn time.Time) []string {
	var header []string
	switch {
	case from != nil && to != nil:
		header = append(header, fmt.Sprintf("From %s to %s", utils.FormatDate(from), utils.FormatDate(to)))
	case from != nil:
		header = append(header, "From "+utils.FormatDate(from))
	case to != nil:
		header = append(header, "Up to "+utils.FormatDate(to))
	}
	return append(header, "Printed on "+utils.FormatDate(&printedOn))
}
