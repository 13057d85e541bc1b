package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// AttachmentRepositoryFacade persists rendered statement files.
type AttachmentRepositoryFacade interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)
}

// MailRepositoryFacade persists outgoing mail records.
type MailRepositoryFacade interface {
	SaveMail(ctx context.Context, mail domain.OutgoingMail) error
	MarkMailSent(ctx context.Context, mailID string, sentAt time.Time) error
}

// MessageRepositoryFacade persists partner activity-log messages.
type MessageRepositoryFacade interface {
	SaveMessage(ctx context.Context, message domain.PartnerMessage) error
	ListMessagesByPartner(ctx context.Context, partnerID int64, limit int) ([]domain.PartnerMessage, error)
}
