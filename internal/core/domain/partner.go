package domain

// Partner is a customer (or one of its contacts) in the ledger master data.
type Partner struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	StatementEmail      string `json:"statementEmail"`   // overrides Email for statements
	StatementEmailCC    string `json:"statementEmailCC"` // optional, no fallback
	ParentID            *int64 `json:"parentID"`
	CommercialPartnerID int64  `json:"commercialPartnerID"`
	CompanyID           *int64 `json:"companyID"`
}

// StatementTargets are the resolved recipients of an emailed statement.
type StatementTargets struct {
	EmailTo string `json:"emailTo"`
	EmailCC string `json:"emailCC"`
}

// StatementTargets prefers the statement-specific address and falls back to
// the general email. The cc address has no fallback.
func (p Partner) StatementTargets() StatementTargets {
	to := p.StatementEmail
	if to == "" {
		to = p.Email
	}
	return StatementTargets{
		EmailTo: to,
		EmailCC: p.StatementEmailCC,
	}
}

// CommercialID returns the top-level company grouping of the partner.
func (p Partner) CommercialID() int64 {
	if p.CommercialPartnerID != 0 {
		return p.CommercialPartnerID
	}
	return p.ID
}
