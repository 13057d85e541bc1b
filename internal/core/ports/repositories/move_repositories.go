package repositories

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/core/domain"
)

// MoveReader defines read operations over posted customer documents.
type MoveReader interface {
	// FindMoves compiles query.Domain to SQL and returns the matching
	// documents ordered by partner name, currency name, invoice date and id.
	// AmountResidual is filled from query.ResidualSource.
	FindMoves(ctx context.Context, query domain.MoveQuery) ([]domain.Move, error)
}

// MoveRepositoryFacade combines all move-related repository interfaces
type MoveRepositoryFacade interface {
	MoveReader
}
