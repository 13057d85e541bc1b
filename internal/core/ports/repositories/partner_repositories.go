package repositories

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// PartnerReader defines read operations for partner data
type PartnerReader interface {
	// FindPartnerByID retrieves a partner with its statement fields.
	FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error)

	// FindPartnersByIDs retrieves several partners; unknown ids are skipped.
	FindPartnersByIDs(ctx context.Context, partnerIDs []int64) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partner data
type PartnerWriter interface {
	// UpdateStatementEmails stores the statement email and cc; empty strings clear them.
	UpdateStatementEmails(ctx context.Context, partnerID int64, email, emailCC string) error
}

// PartnerRepositoryFacade combines all partner-related repository interfaces
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
