package dto

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// SendStatementRequest holds the editable fields of the send-by-email form.
// Empty recipients fall back to the partner's statement settings, empty
// subject and body to the defaults.
type SendStatementRequest struct {
	EmailTo  string `json:"emailTo" example:"ar@acme.test"`
	EmailCC  string `json:"emailCC" example:"cfo@acme.test"`
	Subject  string `json:"subject" binding:"max=255"`
	BodyHTML string `json:"bodyHTML"`
}

// SendStatementResponse confirms a sent statement.
type SendStatementResponse struct {
	AttachmentID string `json:"attachmentID"`
	FileName     string `json:"fileName"`
	MailID       string `json:"mailID"`
	MessageID    string `json:"messageID"`
	EmailTo      string `json:"emailTo"`
	EmailCC      string `json:"emailCC"`
	Subject      string `json:"subject"`
}

// ToSendStatementResponse converts a dispatch result to its DTO.
func ToSendStatementResponse(r *domain.DispatchResult) SendStatementResponse {
	return SendStatementResponse{
		AttachmentID: r.Attachment.ID,
		FileName:     r.Attachment.Name,
		MailID:       r.Mail.ID,
		MessageID:    r.Message.ID,
		EmailTo:      r.Mail.EmailTo,
		EmailCC:      r.Mail.EmailCC,
		Subject:      r.Mail.Subject,
	}
}

// StatementCompositionResponse holds the defaults of the send-by-email form.
type StatementCompositionResponse struct {
	PartnerID int64  `json:"partnerID"`
	EmailTo   string `json:"emailTo"`
	EmailCC   string `json:"emailCC"`
	Subject   string `json:"subject"`
	BodyHTML  string `json:"bodyHTML"`
}

// ToStatementCompositionResponse converts the composition defaults to their DTO.
func ToStatementCompositionResponse(c *domain.StatementComposition) StatementCompositionResponse {
	return StatementCompositionResponse{
		PartnerID: c.PartnerID,
		EmailTo:   c.EmailTo,
		EmailCC:   c.EmailCC,
		Subject:   c.Subject,
		BodyHTML:  c.BodyHTML,
	}
}
