package domain

import "time"

// Attachment is a rendered file linked to a partner.
// Content is kept inline unless StorageKey points to object storage.
type Attachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MimeType   string `json:"mimeType"`
	Size       int    `json:"size"`
	Content    []byte `json:"-"`
	StorageKey string `json:"storageKey,omitempty"`
	PartnerID  int64  `json:"partnerID"`
	CompanyID  *int64 `json:"companyID"`
	AuditFields
}

// MailState tracks an outgoing mail record.
type MailState string

const (
	MailOutgoing MailState = "outgoing"
	MailSent     MailState = "sent"
)

// OutgoingMail is the record of a statement email.
type OutgoingMail struct {
	ID            string     `json:"id"`
	Subject       string     `json:"subject"`
	BodyHTML      string     `json:"bodyHTML"`
	EmailTo       string     `json:"emailTo"`
	EmailCC       string     `json:"emailCC"`
	AttachmentIDs []string   `json:"attachmentIDs"`
	State         MailState  `json:"state"`
	SentAt        *time.Time `json:"sentAt"`
	AuditFields
}

// PartnerMessage is a note posted on a partner's activity log.
type PartnerMessage struct {
	ID            string   `json:"id"`
	PartnerID     int64    `json:"partnerID"`
	BodyHTML      string   `json:"bodyHTML"`
	MessageType   string   `json:"messageType"`
	Subtype       string   `json:"subtype"`
	AttachmentIDs []string `json:"attachmentIDs"`
	AuditFields
}

// StatementDispatch is the input of a send-by-email request.
// Empty EmailTo/EmailCC fall back to the partner's statement targets.
type StatementDispatch struct {
	PartnerID int64
	EmailTo   string
	EmailCC   string
	Subject   string
	BodyHTML  string
	UserID    string
}

// DispatchResult is returned after a statement was sent.
type DispatchResult struct {
	Attachment Attachment     `json:"attachment"`
	Mail       OutgoingMail   `json:"mail"`
	Message    PartnerMessage `json:"message"`
}

// StatementComposition holds the defaults offered before sending.
type StatementComposition struct {
	PartnerID int64  `json:"partnerID"`
	EmailTo   string `json:"emailTo"`
	EmailCC   string `json:"emailCC"`
	Subject   string `json:"subject"`
	BodyHTML  string `json:"bodyHTML"`
}
