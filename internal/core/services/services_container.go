package services

import (
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/platform/config"
	"github.com/SscSPs/ar_statements/internal/platform/storage"
)

// Outbound groups the adapters services talk to outside the database.
type Outbound struct {
	Renderer  portssvc.DocumentRenderer
	Deliverer portssvc.MailDeliverer
	// BlobStore is nil when attachments are kept in the database.
	BlobStore storage.BlobStore
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, out Outbound) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}
	selector := NewStatementSelector(domain.ResidualSource(cfg.ResidualSource))

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Partner = NewPartnerService(repos.PartnerRepo, repos.MessageRepo)

	container.OutstandingReport = NewOutstandingReportService(
		selector,
		repos.MoveRepo,
		repos.PartnerRepo,
		WithReportRenderer(out.Renderer),
	)

	container.DueStatement = NewDueStatementService(
		selector,
		repos.MoveRepo,
		repos.PartnerRepo,
		repos.CompanyRepo,
		WithDueStatementRenderer(out.Renderer),
		WithDefaultCompany(cfg.DefaultCompanyID),
	)

	dispatchOpts := []DispatchOption{}
	if out.BlobStore != nil {
		dispatchOpts = append(dispatchOpts, WithBlobStore(out.BlobStore))
	}
	container.Dispatch = NewDispatchService(repos, container.OutstandingReport, out.Deliverer, dispatchOpts...)

	return container
}
