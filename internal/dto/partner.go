package dto

import (
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// UpdateStatementEmailsRequest sets the partner's statement addresses.
// Empty values clear the field. Several addresses may be comma-separated.
type UpdateStatementEmailsRequest struct {
	StatementEmail   string `json:"statementEmail" example:"ar@acme.test"`
	StatementEmailCC string `json:"statementEmailCC" example:"cfo@acme.test"`
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	StatementEmail      string `json:"statementEmail"`
	StatementEmailCC    string `json:"statementEmailCC"`
	ParentID            *int64 `json:"parentID,omitempty"`
	CommercialPartnerID int64  `json:"commercialPartnerID"`
}

// ToPartnerResponse converts a domain partner to its DTO.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Email:               p.Email,
		StatementEmail:      p.StatementEmail,
		StatementEmailCC:    p.StatementEmailCC,
		ParentID:            p.ParentID,
		CommercialPartnerID: p.CommercialID(),
	}
}

// StatementTargetsResponse lists the resolved recipients of a statement.
type StatementTargetsResponse struct {
	PartnerID int64  `json:"partnerID"`
	EmailTo   string `json:"emailTo"`
	EmailCC   string `json:"emailCC"`
}

// PartnerMessageResponse is one activity-log note.
type PartnerMessageResponse struct {
	ID            string    `json:"id"`
	BodyHTML      string    `json:"bodyHTML"`
	MessageType   string    `json:"messageType"`
	Subtype       string    `json:"subtype"`
	AttachmentIDs []string  `json:"attachmentIDs"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// ToPartnerMessageResponses converts activity-log notes to DTOs.
func ToPartnerMessageResponses(msgs []domain.PartnerMessage) []PartnerMessageResponse {
	res := make([]PartnerMessageResponse, len(msgs))
	for i, m := range msgs {
		ids := m.AttachmentIDs
		if ids == nil {
			ids = []string{}
		}
		res[i] = PartnerMessageResponse{
			ID:            m.ID,
			BodyHTML:      m.BodyHTML,
			MessageType:   m.MessageType,
			Subtype:       m.Subtype,
			AttachmentIDs: ids,
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
		}
	}
	return res
}
