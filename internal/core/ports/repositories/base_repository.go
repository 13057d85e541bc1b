package repositories

import (
	"context"
)

// TransactionManager runs a unit of work atomically. Repositories called
// with the context passed to fn join the transaction.
type TransactionManager interface {
	// RunInTx commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
