package handlers_test

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock PartnerService ---
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) GetPartner(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) GetStatementTargets(ctx context.Context, partnerID int64) (*domain.StatementTargets, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementTargets), args.Error(1)
}

func (m *MockPartnerService) ListMessages(ctx context.Context, partnerID int64, limit int) ([]domain.PartnerMessage, error) {
	args := m.Called(ctx, partnerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartnerMessage), args.Error(1)
}

func (m *MockPartnerService) UpdateStatementEmails(ctx context.Context, partnerID int64, req dto.UpdateStatementEmailsRequest, userID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

var _ portssvc.PartnerSvcFacade = (*MockPartnerService)(nil)

// --- Mock OutstandingReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BuildReport(ctx context.Context, opts domain.ReportOptions) (*domain.OutstandingReport, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingReport), args.Error(1)
}

func (m *MockReportService) RenderReport(ctx context.Context, opts domain.ReportOptions, format render.Format) ([]byte, error) {
	args := m.Called(ctx, opts, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportService) PartnerReportOptions(ctx context.Context, partnerID int64) (domain.ReportOptions, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).(domain.ReportOptions), args.Error(1)
}

var _ portssvc.OutstandingReportSvc = (*MockReportService)(nil)

// --- Mock DueStatementService ---
type MockDueStatementService struct {
	mock.Mock
}

func (m *MockDueStatementService) BuildDueStatement(ctx context.Context, req domain.DueStatementRequest) (*domain.DueStatement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueStatement), args.Error(1)
}

func (m *MockDueStatementService) RenderDueStatement(ctx context.Context, req domain.DueStatementRequest, format render.Format) ([]byte, error) {
	args := m.Called(ctx, req, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.DueStatementSvc = (*MockDueStatementService)(nil)

// --- Mock DispatchService ---
type MockDispatchService struct {
	mock.Mock
}

func (m *MockDispatchService) DefaultComposition(ctx context.Context, partnerID int64) (*domain.StatementComposition, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementComposition), args.Error(1)
}

func (m *MockDispatchService) SendStatement(ctx context.Context, req domain.StatementDispatch) (*domain.DispatchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DispatchResult), args.Error(1)
}

func (m *MockDispatchService) GetAttachment(ctx context.Context, partnerID int64, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, partnerID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

var _ portssvc.StatementDispatchSvc = (*MockDispatchService)(nil)

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

var _ middleware.EventTracker = (*MockEventTracker)(nil)
