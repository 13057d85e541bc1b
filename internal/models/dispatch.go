package models

import (
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// Attachment is a row of statement_attachments.
type Attachment struct {
	AttachmentID string  `db:"attachment_id"`
	Name         string  `db:"name"`
	MimeType     string  `db:"mime_type"`
	Size         int     `db:"size"`
	Content      []byte  `db:"content"` // NULL when StorageKey is set
	StorageKey   *string `db:"storage_key"`
	PartnerID    int64   `db:"partner_id"`
	CompanyID    *int64  `db:"company_id"`
	AuditFields
}

func AttachmentFromDomain(a domain.Attachment) Attachment {
	return Attachment{
		AttachmentID: a.ID,
		Name:         a.Name,
		MimeType:     a.MimeType,
		Size:         a.Size,
		Content:      a.Content,
		StorageKey:   NullableString(a.StorageKey),
		PartnerID:    a.PartnerID,
		CompanyID:    a.CompanyID,
		AuditFields:  AuditFields{CreatedAt: a.CreatedAt, CreatedBy: a.CreatedBy},
	}
}

func (a Attachment) ToDomain() domain.Attachment {
	return domain.Attachment{
		ID:          a.AttachmentID,
		Name:        a.Name,
		MimeType:    a.MimeType,
		Size:        a.Size,
		Content:     a.Content,
		StorageKey:  deref(a.StorageKey),
		PartnerID:   a.PartnerID,
		CompanyID:   a.CompanyID,
		AuditFields: domain.AuditFields{CreatedAt: a.CreatedAt, CreatedBy: a.CreatedBy},
	}
}

// Mail is a row of statement_mails.
type Mail struct {
	MailID        string     `db:"mail_id"`
	Subject       string     `db:"subject"`
	BodyHTML      string     `db:"body_html"`
	EmailTo       string     `db:"email_to"`
	EmailCC       *string    `db:"email_cc"`
	AttachmentIDs []string   `db:"attachment_ids"`
	State         string     `db:"state"`
	SentAt        *time.Time `db:"sent_at"`
	AuditFields
}

func MailFromDomain(m domain.OutgoingMail) Mail {
	return Mail{
		MailID:        m.ID,
		Subject:       m.Subject,
		BodyHTML:      m.BodyHTML,
		EmailTo:       m.EmailTo,
		EmailCC:       NullableString(m.EmailCC),
		AttachmentIDs: nonNilIDs(m.AttachmentIDs),
		State:         string(m.State),
		SentAt:        m.SentAt,
		AuditFields:   AuditFields{CreatedAt: m.CreatedAt, CreatedBy: m.CreatedBy},
	}
}

// PartnerMessage is a row of partner_messages.
type PartnerMessage struct {
	MessageID     string   `db:"message_id"`
	PartnerID     int64    `db:"partner_id"`
	BodyHTML      string   `db:"body_html"`
	MessageType   string   `db:"message_type"`
	Subtype       string   `db:"subtype"`
	AttachmentIDs []string `db:"attachment_ids"`
	AuditFields
}

func PartnerMessageFromDomain(m domain.PartnerMessage) PartnerMessage {
	return PartnerMessage{
		MessageID:     m.ID,
		PartnerID:     m.PartnerID,
		BodyHTML:      m.BodyHTML,
		MessageType:   m.MessageType,
		Subtype:       m.Subtype,
		AttachmentIDs: nonNilIDs(m.AttachmentIDs),
		AuditFields:   AuditFields{CreatedAt: m.CreatedAt, CreatedBy: m.CreatedBy},
	}
}

func (m PartnerMessage) ToDomain() domain.PartnerMessage {
	return domain.PartnerMessage{
		ID:            m.MessageID,
		PartnerID:     m.PartnerID,
		BodyHTML:      m.BodyHTML,
		MessageType:   m.MessageType,
		Subtype:       m.Subtype,
		AttachmentIDs: m.AttachmentIDs,
		AuditFields:   domain.AuditFields{CreatedAt: m.CreatedAt, CreatedBy: m.CreatedBy},
	}
}

// nonNilIDs keeps nil slices from being written as NULL arrays.
func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
