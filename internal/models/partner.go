package models

import "github.com/SscSPs/ar_statements/internal/core/domain"

// Partner is a row of res_partner. Text columns are nullable.
type Partner struct {
	ID                  int64   `db:"id"`
	Name                string  `db:"name"`
	Email               *string `db:"email"`
	StatementEmail      *string `db:"statement_email"`
	StatementEmailCC    *string `db:"statement_email_cc"`
	ParentID            *int64  `db:"parent_id"`
	CommercialPartnerID *int64  `db:"commercial_partner_id"`
	CompanyID           *int64  `db:"company_id"`
}

func (p Partner) ToDomain() domain.Partner {
	out := domain.Partner{
		ID:               p.ID,
		Name:             p.Name,
		Email:            deref(p.Email),
		StatementEmail:   deref(p.StatementEmail),
		StatementEmailCC: deref(p.StatementEmailCC),
		ParentID:         p.ParentID,
		CompanyID:        p.CompanyID,
	}
	if p.CommercialPartnerID != nil {
		out.CommercialPartnerID = *p.CommercialPartnerID
	}
	return out
}

// NullableString maps an empty string to NULL.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
