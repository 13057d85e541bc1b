package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager        TransactionManager
	MoveRepo         MoveRepositoryFacade
	PartnerRepo      PartnerRepositoryFacade
	CurrencyRepo     CurrencyRepositoryFacade
	CompanyRepo      CompanyRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	AttachmentRepo   AttachmentRepositoryFacade
	MailRepo         MailRepositoryFacade
	MessageRepo      MessageRepositoryFacade
}
