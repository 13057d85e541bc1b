package domain

import "time"

// Operator is a comparison used in a Condition.
type Operator string

const (
	OpEqual          Operator = "="
	OpIn             Operator = "in"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	// OpChildOf matches a partner and every descendant through parent links.
	OpChildOf Operator = "child_of"
	// OpNotZero matches amounts that do not round to zero in the row's currency.
	OpNotZero Operator = "not_zero"
)

// Field names understood by the move repository.
const (
	FieldState          = "state"
	FieldMoveType       = "move_type"
	FieldCompanyID      = "company_id"
	FieldJournalID      = "journal_id"
	FieldPartnerID      = "partner_id"
	FieldInvoiceDate    = "invoice_date"
	FieldAmountResidual = "amount_residual"
)

// Condition is a single (field, operator, value) predicate.
type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// Domain is a conjunction of conditions over documents.
type Domain []Condition

// Where appends a condition and returns the extended domain.
func (d Domain) Where(field string, op Operator, value any) Domain {
	return append(d, Condition{Field: field, Operator: op, Value: value})
}

// Has reports whether the domain contains a condition on field with op.
func (d Domain) Has(field string, op Operator) bool {
	for _, c := range d {
		if c.Field == field && c.Operator == op {
			return true
		}
	}
	return false
}

// ResidualSource selects how the outstanding amount of a document is computed.
type ResidualSource string

const (
	// ResidualStored uses the residual stored on the document.
	ResidualStored ResidualSource = "stored"
	// ResidualLedger sums the unreconciled receivable journal items of the
	// document and converts them to the document currency.
	ResidualLedger ResidualSource = "ledger"
)

// PartnerScope restricts the documents to some partners.
// When Hierarchical is set, PartnerIDs must hold exactly one partner whose
// descendants are included.
type PartnerScope struct {
	PartnerIDs   []int64
	Hierarchical bool
}

// SelectionCriteria are the caller-facing filters of the document selector.
type SelectionCriteria struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Partners   PartnerScope
	CompanyIDs []int64
	JournalIDs []int64
}

// MoveQuery is what the selector hands to the move repository.
type MoveQuery struct {
	Domain         Domain
	ResidualSource ResidualSource
}
