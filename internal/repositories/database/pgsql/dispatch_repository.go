package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ar_statements/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDispatchRepository stores the records of sent statements: the rendered
// attachment, the outgoing mail and the partner note.
type PgxDispatchRepository struct {
	BaseRepository
}

func newPgxDispatchRepository(pool *pgxpool.Pool) *PgxDispatchRepository {
	return &PgxDispatchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.AttachmentRepositoryFacade = (*PgxDispatchRepository)(nil)
	_ portsrepo.MailRepositoryFacade       = (*PgxDispatchRepository)(nil)
	_ portsrepo.MessageRepositoryFacade    = (*PgxDispatchRepository)(nil)
)

func (r *PgxDispatchRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	a := models.AttachmentFromDomain(attachment)
	query := `
		INSERT INTO statement_attachments (
			attachment_id, name, mime_type, size, content, storage_key,
			partner_id, company_id, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.DB(ctx).Exec(ctx, query,
		a.AttachmentID, a.Name, a.MimeType, a.Size, a.Content, a.StorageKey,
		a.PartnerID, a.CompanyID, a.CreatedAt, a.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attachment %s: %w", a.AttachmentID, err)
	}
	return nil
}

func (r *PgxDispatchRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	query := `
		SELECT attachment_id, name, mime_type, size, content, storage_key,
			partner_id, company_id, created_at, created_by
		FROM statement_attachments
		WHERE attachment_id = $1;
	`
	var a models.Attachment
	err := r.DB(ctx).QueryRow(ctx, query, attachmentID).Scan(
		&a.AttachmentID, &a.Name, &a.MimeType, &a.Size, &a.Content, &a.StorageKey,
		&a.PartnerID, &a.CompanyID, &a.CreatedAt, &a.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("attachment " + attachmentID)
		}
		return nil, fmt.Errorf("failed to find attachment %s: %w", attachmentID, err)
	}
	out := a.ToDomain()
	return &out, nil
}

func (r *PgxDispatchRepository) SaveMail(ctx context.Context, mail domain.OutgoingMail) error {
	m := models.MailFromDomain(mail)
	query := `
		INSERT INTO statement_mails (
			mail_id, subject, body_html, email_to, email_cc, attachment_ids,
			state, sent_at, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.DB(ctx).Exec(ctx, query,
		m.MailID, m.Subject, m.BodyHTML, m.EmailTo, m.EmailCC, m.AttachmentIDs,
		m.State, m.SentAt, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mail %s: %w", m.MailID, err)
	}
	return nil
}

func (r *PgxDispatchRepository) MarkMailSent(ctx context.Context, mailID string, sentAt time.Time) error {
	query := `UPDATE statement_mails SET state = $1, sent_at = $2 WHERE mail_id = $3;`

	tag, err := r.DB(ctx).Exec(ctx, query, string(domain.MailSent), sentAt, mailID)
	if err != nil {
		return fmt.Errorf("failed to mark mail %s sent: %w", mailID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("mail " + mailID)
	}
	return nil
}

func (r *PgxDispatchRepository) SaveMessage(ctx context.Context, message domain.PartnerMessage) error {
	m := models.PartnerMessageFromDomain(message)
	query := `
		INSERT INTO partner_messages (
			message_id, partner_id, body_html, message_type, subtype,
			attachment_ids, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.DB(ctx).Exec(ctx, query,
		m.MessageID, m.PartnerID, m.BodyHTML, m.MessageType, m.Subtype,
		m.AttachmentIDs, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner message %s: %w", m.MessageID, err)
	}
	return nil
}

// ListMessagesByPartner returns the newest messages first.
func (r *PgxDispatchRepository) ListMessagesByPartner(ctx context.Context, partnerID int64, limit int) ([]domain.PartnerMessage, error) {
	query := `
		SELECT message_id, partner_id, body_html, message_type, subtype,
			attachment_ids, created_at, created_by
		FROM partner_messages
		WHERE partner_id = $1
		ORDER BY created_at DESC, message_id
		LIMIT $2;
	`
	rows, err := r.DB(ctx).Query(ctx, query, partnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner messages: %w", err)
	}
	modelMsgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PartnerMessage, error) {
		var m models.PartnerMessage
		err := row.Scan(
			&m.MessageID, &m.PartnerID, &m.BodyHTML, &m.MessageType, &m.Subtype,
			&m.AttachmentIDs, &m.CreatedAt, &m.CreatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partner messages: %w", err)
	}

	msgs := make([]domain.PartnerMessage, len(modelMsgs))
	for i, m := range modelMsgs {
		msgs[i] = m.ToDomain()
	}
	return msgs, nil
}
