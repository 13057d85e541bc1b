package pgsql

import (
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	moveRepo := newPgxMoveRepository(dbPool, exchangeRateRepo)
	partnerRepo := newPgxPartnerRepository(dbPool)
	dispatchRepo := newPgxDispatchRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:        newPgxTxManager(dbPool),
		MoveRepo:         moveRepo,
		PartnerRepo:      partnerRepo,
		CurrencyRepo:     currencyRepo,
		CompanyRepo:      currencyRepo,
		ExchangeRateRepo: exchangeRateRepo,
		AttachmentRepo:   dispatchRepo,
		MailRepo:         dispatchRepo,
		MessageRepo:      dispatchRepo,
	}
}
