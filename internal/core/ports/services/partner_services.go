package services

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/dto"
)

// PartnerReaderSvc defines read operations for partner statement settings
type PartnerReaderSvc interface {
	GetPartner(ctx context.Context, partnerID int64) (*domain.Partner, error)

	// GetStatementTargets resolves the recipients a statement would be sent to.
	GetStatementTargets(ctx context.Context, partnerID int64) (*domain.StatementTargets, error)

	// ListMessages returns the latest activity-log notes of a partner.
	ListMessages(ctx context.Context, partnerID int64, limit int) ([]domain.PartnerMessage, error)
}

// PartnerWriterSvc defines write operations for partner statement settings
type PartnerWriterSvc interface {
	UpdateStatementEmails(ctx context.Context, partnerID int64, req dto.UpdateStatementEmailsRequest, userID string) (*domain.Partner, error)
}

// PartnerSvcFacade combines all partner-related service interfaces
type PartnerSvcFacade interface {
	PartnerReaderSvc
	PartnerWriterSvc
}
