package accounting

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the receivable sign convention to a document amount:
// the amount is multiplied by +1 for invoices and -1 for credit notes. A
// stored amount that is already negative keeps its meaning, so a negative
// credit note residual comes out positive.
func SignedAmount(move domain.Move, amount decimal.Decimal) decimal.Decimal {
	if move.IsCreditNote() {
		return amount.Neg()
	}
	return amount
}

// SignedTotals returns the signed original and residual amounts of a move.
func SignedTotals(move domain.Move) (original, residual decimal.Decimal) {
	return SignedAmount(move, move.AmountTotal), SignedAmount(move, move.AmountResidual)
}
