package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/platform/mailer"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockMoveRepository struct {
	mock.Mock
}

func (m *MockMoveRepository) FindMoves(ctx context.Context, query domain.MoveQuery) ([]domain.Move, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Move), args.Error(1)
}

type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindPartnersByIDs(ctx context.Context, partnerIDs []int64) ([]domain.Partner, error) {
	args := m.Called(ctx, partnerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) UpdateStatementEmails(ctx context.Context, partnerID int64, email, emailCC string) error {
	args := m.Called(ctx, partnerID, email, emailCC)
	return args.Error(0)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	return m.Called(ctx, attachment).Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) SaveMail(ctx context.Context, mail domain.OutgoingMail) error {
	return m.Called(ctx, mail).Error(0)
}

func (m *MockMailRepository) MarkMailSent(ctx context.Context, mailID string, sentAt time.Time) error {
	return m.Called(ctx, mailID, sentAt).Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) SaveMessage(ctx context.Context, message domain.PartnerMessage) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) ListMessagesByPartner(ctx context.Context, partnerID int64, limit int) ([]domain.PartnerMessage, error) {
	args := m.Called(ctx, partnerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartnerMessage), args.Error(1)
}

// MockTxManager runs the unit of work inline and records the outcome.
type MockTxManager struct {
	Committed  int
	RolledBack int
}

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}

// --- Outbound mocks ---

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Supports(format render.Format) bool {
	return m.Called(format).Bool(0)
}

func (m *MockRenderer) Render(ctx context.Context, doc render.Document, format render.Format) ([]byte, error) {
	args := m.Called(ctx, doc, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	return m.Called(ctx, key, contentType, data).Error(0)
}

func (m *MockBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- Service mocks ---

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
