package domain

// Company owns documents and journals. Its currency is the functional
// currency that ledger residuals are expressed in.
type Company struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Currency Currency `json:"currency"`
}
