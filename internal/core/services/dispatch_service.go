package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/platform/mailer"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/SscSPs/ar_statements/internal/platform/storage"
	"github.com/google/uuid"
)

const (
	messageTypeComment = "comment"
	messageSubtypeNote = "note"
)

// dispatchService implements the StatementDispatchSvc interface
type dispatchService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	partnerRepo    portsrepo.PartnerReader
	attachmentRepo portsrepo.AttachmentRepositoryFacade
	mailRepo       portsrepo.MailRepositoryFacade
	messageRepo    portsrepo.MessageRepositoryFacade
	reports        portssvc.OutstandingReportSvc
	deliverer      portssvc.MailDeliverer
	blobStore      storage.BlobStore
}

// DispatchOption is a functional option for configuring the dispatch service
type DispatchOption func(*dispatchService)

// WithBlobStore stores attachment content in object storage instead of the database.
func WithBlobStore(store storage.BlobStore) DispatchOption {
	return func(s *dispatchService) {
		s.blobStore = store
	}
}

// WithDispatchClock overrides the clock used for file names and audit fields.
func WithDispatchClock(now func() time.Time) DispatchOption {
	return func(s *dispatchService) {
		s.now = now
	}
}

// NewDispatchService creates a new statement dispatch service with the provided options
func NewDispatchService(
	repos portsrepo.RepositoryProvider,
	reports portssvc.OutstandingReportSvc,
	deliverer portssvc.MailDeliverer,
	options ...DispatchOption,
) portssvc.StatementDispatchSvc {
	svc := &dispatchService{
		txManager:      repos.TxManager,
		partnerRepo:    repos.PartnerRepo,
		attachmentRepo: repos.AttachmentRepo,
		mailRepo:       repos.MailRepo,
		messageRepo:    repos.MessageRepo,
		reports:        reports,
		deliverer:      deliverer,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatementDispatchSvc = (*dispatchService)(nil)

func (s *dispatchService) DefaultComposition(ctx context.Context, partnerID int64) (*domain.StatementComposition, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner %d: %w", partnerID, err)
	}
	body, err := DefaultStatementBody(partner.Name, s.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to render statement body: %w", err)
	}
	targets := partner.StatementTargets()
	return &domain.StatementComposition{
		PartnerID: partner.ID,
		EmailTo:   targets.EmailTo,
		EmailCC:   targets.EmailCC,
		Subject:   DefaultStatementSubject(partner.Name),
		BodyHTML:  body,
	}, nil
}

func (s *dispatchService) SendStatement(ctx context.Context, req domain.StatementDispatch) (*domain.DispatchResult, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner %d: %w", req.PartnerID, err)
	}
	logger := s.GetLogger(ctx).With(slog.Int64("partner_id", partner.ID))

	// The partner must have its own recipient even when the request overrides it.
	targets := partner.StatementTargets()
	if strings.TrimSpace(targets.EmailTo) == "" {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf(
			"partner %q has no statement email: set a statement email or a general email address", partner.Name))
	}
	if strings.TrimSpace(req.EmailTo) != "" {
		targets.EmailTo = req.EmailTo
	}
	if strings.TrimSpace(req.EmailCC) != "" {
		targets.EmailCC = req.EmailCC
	}

	emailTo, toList, err := NormalizeAddresses(targets.EmailTo, "email_to")
	if err != nil {
		return nil, err
	}
	emailCC, ccList, err := NormalizeAddresses(targets.EmailCC, "email_cc")
	if err != nil {
		return nil, err
	}

	now := s.Now()
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultStatementSubject(partner.Name)
	}
	body := req.BodyHTML
	if strings.TrimSpace(body) == "" {
		if body, err = DefaultStatementBody(partner.Name, now); err != nil {
			return nil, fmt.Errorf("failed to render statement body: %w", err)
		}
	}

	opts, err := s.reports.PartnerReportOptions(ctx, partner.ID)
	if err != nil {
		return nil, err
	}
	pdf, err := s.reports.RenderReport(ctx, opts, render.FormatPDF)
	if err != nil {
		logger.Error("Failed to render statement", slog.String("error", err.Error()))
		return nil, err
	}

	audit := domain.AuditFields{CreatedAt: now, CreatedBy: req.UserID}
	attachment := domain.Attachment{
		ID:          uuid.NewString(),
		Name:        StatementFileName(partner.Name, now),
		MimeType:    render.FormatPDF.ContentType(),
		Size:        len(pdf),
		PartnerID:   partner.ID,
		CompanyID:   partner.CompanyID,
		AuditFields: audit,
	}

	if s.blobStore != nil {
		var companyID int64
		if partner.CompanyID != nil {
			companyID = *partner.CompanyID
		}
		key := storage.AttachmentKey(companyID, partner.ID, attachment.Name, now)
		if err := s.blobStore.Put(ctx, key, attachment.MimeType, pdf); err != nil {
			logger.Error("Failed to upload statement", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		attachment.StorageKey = key
	} else {
		attachment.Content = pdf
	}

	mail := domain.OutgoingMail{
		ID:            uuid.NewString(),
		Subject:       subject,
		BodyHTML:      body,
		EmailTo:       emailTo,
		EmailCC:       emailCC,
		AttachmentIDs: []string{attachment.ID},
		State:         domain.MailOutgoing,
		AuditFields:   audit,
	}

	note, err := StatementSentNote(emailTo, emailCC, subject)
	if err != nil {
		s.discardUpload(ctx, attachment.StorageKey)
		return nil, fmt.Errorf("failed to render partner note: %w", err)
	}
	message := domain.PartnerMessage{
		ID:            uuid.NewString(),
		PartnerID:     partner.ID,
		BodyHTML:      note,
		MessageType:   messageTypeComment,
		Subtype:       messageSubtypeNote,
		AttachmentIDs: []string{attachment.ID},
		AuditFields:   audit,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.attachmentRepo.SaveAttachment(txCtx, attachment); err != nil {
			return fmt.Errorf("failed to save attachment: %w", err)
		}
		if err := s.mailRepo.SaveMail(txCtx, mail); err != nil {
			return fmt.Errorf("failed to save mail: %w", err)
		}
		if err := s.deliverer.Deliver(txCtx, mailer.Message{
			To:       toList,
			CC:       ccList,
			Subject:  subject,
			HTMLBody: body,
			Attachments: []mailer.Attachment{
				{Name: attachment.Name, ContentType: attachment.MimeType, Content: pdf},
			},
		}); err != nil {
			return fmt.Errorf("failed to send statement: %w", err)
		}
		if err := s.mailRepo.MarkMailSent(txCtx, mail.ID, now); err != nil {
			return fmt.Errorf("failed to mark mail sent: %w", err)
		}
		if err := s.messageRepo.SaveMessage(txCtx, message); err != nil {
			return fmt.Errorf("failed to post partner note: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Statement dispatch failed", slog.String("error", err.Error()))
		s.discardUpload(ctx, attachment.StorageKey)
		return nil, err
	}

	mail.State = domain.MailSent
	mail.SentAt = &now
	logger.Info("Statement sent",
		slog.String("mail_id", mail.ID),
		slog.String("attachment_id", attachment.ID),
		slog.String("email_to", emailTo))

	attachment.Content = nil
	return &domain.DispatchResult{Attachment: attachment, Mail: mail, Message: message}, nil
}

func (s *dispatchService) GetAttachment(ctx context.Context, partnerID int64, attachmentID string) (*domain.Attachment, error) {
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment.PartnerID != partnerID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("attachment %s of partner %d", attachmentID, partnerID))
	}
	if attachment.StorageKey == "" {
		return attachment, nil
	}

	if s.blobStore == nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf(
			"attachment %s is kept in object storage but no attachment store is configured", attachmentID))
	}
	content, err := s.blobStore.Get(ctx, attachment.StorageKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch attachment", slog.String("key", attachment.StorageKey))
		return nil, fmt.Errorf("failed to fetch attachment %s: %w", attachmentID, err)
	}
	attachment.Content = content
	return attachment, nil
}

// discardUpload removes an uploaded object after a failed dispatch. Failures
// are only logged; the original error is what the caller needs.
func (s *dispatchService) discardUpload(ctx context.Context, key string) {
	if s.blobStore == nil || key == "" {
		return
	}
	if err := s.blobStore.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.LogError(ctx, err, "Failed to delete orphaned attachment object", slog.String("key", key))
	}
}
