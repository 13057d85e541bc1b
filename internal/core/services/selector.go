package services

import (
	"fmt"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// StatementSelector turns caller-facing criteria into the predicate list
// evaluated by the move repository.
type StatementSelector struct {
	residualSource domain.ResidualSource
}

// NewStatementSelector creates a selector using the given residual strategy.
func NewStatementSelector(residualSource domain.ResidualSource) *StatementSelector {
	if residualSource == "" {
		residualSource = domain.ResidualStored
	}
	return &StatementSelector{residualSource: residualSource}
}

// ResidualSource returns the configured residual strategy.
func (s *StatementSelector) ResidualSource() domain.ResidualSource {
	return s.residualSource
}

// BuildQuery returns the query for posted, still outstanding customer
// invoices and credit notes matching criteria.
func (s *StatementSelector) BuildQuery(criteria domain.SelectionCriteria) (domain.MoveQuery, error) {
	if criteria.DateFrom != nil && criteria.DateTo != nil && criteria.DateFrom.After(*criteria.DateTo) {
		return domain.MoveQuery{}, apperrors.NewValidationError("date_from must not be after date_to")
	}

	d := domain.Domain{}.
		Where(domain.FieldState, domain.OpEqual, string(domain.MovePosted)).
		Where(domain.FieldMoveType, domain.OpIn, []string{string(domain.OutInvoice), string(domain.OutRefund)}).
		Where(domain.FieldAmountResidual, domain.OpNotZero, nil)

	if criteria.DateFrom != nil {
		d = d.Where(domain.FieldInvoiceDate, domain.OpGreaterOrEqual, *criteria.DateFrom)
	}
	if criteria.DateTo != nil {
		d = d.Where(domain.FieldInvoiceDate, domain.OpLessOrEqual, *criteria.DateTo)
	}

	switch {
	case criteria.Partners.Hierarchical:
		partnerID, err := singleID(criteria.Partners.PartnerIDs, "partner")
		if err != nil {
			return domain.MoveQuery{}, err
		}
		d = d.Where(domain.FieldPartnerID, domain.OpChildOf, partnerID)
	case len(criteria.Partners.PartnerIDs) > 0:
		d = d.Where(domain.FieldPartnerID, domain.OpIn, criteria.Partners.PartnerIDs)
	}

	if len(criteria.CompanyIDs) > 0 {
		d = d.Where(domain.FieldCompanyID, domain.OpIn, criteria.CompanyIDs)
	}
	if len(criteria.JournalIDs) > 0 {
		d = d.Where(domain.FieldJournalID, domain.OpIn, criteria.JournalIDs)
	}

	return domain.MoveQuery{Domain: d, ResidualSource: s.residualSource}, nil
}

// singleID asserts that ids holds exactly one element.
func singleID(ids []int64, what string) (int64, error) {
	if len(ids) != 1 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("expected exactly one %s, got %d", what, len(ids)))
	}
	return ids[0], nil
}
