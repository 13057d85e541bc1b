package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/dto"
)

const (
	defaultMessageLimit = 20
	maxMessageLimit     = 100
)

type partnerService struct {
	BaseService
	partnerRepo portsrepo.PartnerRepositoryFacade
	messageRepo portsrepo.MessageRepositoryFacade
}

// NewPartnerService creates the service managing partner statement settings.
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade, messageRepo portsrepo.MessageRepositoryFacade) portssvc.PartnerSvcFacade {
	return &partnerService{partnerRepo: partnerRepo, messageRepo: messageRepo}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

func (s *partnerService) GetPartner(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner in service: %w", err)
	}
	return partner, nil
}

func (s *partnerService) GetStatementTargets(ctx context.Context, partnerID int64) (*domain.StatementTargets, error) {
	partner, err := s.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	targets := partner.StatementTargets()
	return &targets, nil
}

func (s *partnerService) ListMessages(ctx context.Context, partnerID int64, limit int) ([]domain.PartnerMessage, error) {
	if _, err := s.GetPartner(ctx, partnerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	msgs, err := s.messageRepo.ListMessagesByPartner(ctx, partnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner messages in service: %w", err)
	}
	if msgs == nil {
		return []domain.PartnerMessage{}, nil
	}
	return msgs, nil
}

func (s *partnerService) UpdateStatementEmails(ctx context.Context, partnerID int64, req dto.UpdateStatementEmailsRequest, userID string) (*domain.Partner, error) {
	email, _, err := NormalizeAddresses(req.StatementEmail, "statementEmail")
	if err != nil {
		return nil, err
	}
	emailCC, _, err := NormalizeAddresses(req.StatementEmailCC, "statementEmailCC")
	if err != nil {
		return nil, err
	}

	if _, err := s.GetPartner(ctx, partnerID); err != nil {
		return nil, err
	}
	if err := s.partnerRepo.UpdateStatementEmails(ctx, partnerID, email, emailCC); err != nil {
		s.LogError(ctx, err, "Failed to update statement emails", slog.Int64("partner_id", partnerID))
		return nil, fmt.Errorf("failed to update statement emails in service: %w", err)
	}
	s.LogInfo(ctx, "Statement emails updated",
		slog.Int64("partner_id", partnerID),
		slog.String("user_id", userID))

	return s.GetPartner(ctx, partnerID)
}
