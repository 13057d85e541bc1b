package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/SscSPs/ar_statements/internal/handlers"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/platform/config"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

const testUserID = "user-1"

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	jwtSecret    string
	currencySvc  *MockCurrencyService
	partnerSvc   *MockPartnerService
	reportSvc    *MockReportService
	dueSvc       *MockDueStatementService
	dispatchSvc  *MockDispatchService
	tracker      *MockEventTracker
	sendLimiter  *limiter.Limiter
	defaultCoyID int64
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ar-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.defaultCoyID = 1

	suite.currencySvc = new(MockCurrencyService)
	suite.partnerSvc = new(MockPartnerService)
	suite.reportSvc = new(MockReportService)
	suite.dueSvc = new(MockDueStatementService)
	suite.dispatchSvc = new(MockDispatchService)
	suite.tracker = new(MockEventTracker)

	var err error
	suite.sendLimiter, err = middleware.NewLimiter("1-M", "")
	suite.Require().NoError(err)

	cfg := &config.Config{
		JWTSecret:        suite.jwtSecret,
		IsProduction:     true,
		DefaultCompanyID: suite.defaultCoyID,
	}
	services := &portssvc.ServiceContainer{
		Currency:          suite.currencySvc,
		Partner:           suite.partnerSvc,
		OutstandingReport: suite.reportSvc,
		DueStatement:      suite.dueSvc,
		Dispatch:          suite.dispatchSvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, suite.sendLimiter, suite.tracker)
}

func (suite *HandlersTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func usdCurrency() domain.Currency {
	return domain.Currency{ID: 2, Name: "USD", Symbol: "$", Position: domain.SymbolBefore, DecimalPlaces: 2, Rounding: decimal.RequireFromString("0.01")}
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth_IsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestAPI_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.currencySvc.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything)
}

func (suite *HandlersTestSuite) TestListCurrencies() {
	suite.currencySvc.On("ListCurrencies", mock.Anything).Return([]domain.Currency{usdCurrency()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("USD", body[0].Name)
	suite.currencySvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetCurrency_NotFound() {
	suite.currencySvc.On("GetCurrencyByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("currency 99")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestOutstandingReport_BindsOptions() {
	report := &domain.OutstandingReport{
		Title:   "Outstanding in original currency",
		Columns: []string{"Date", "Due Date", "Amount", "Residual"},
		Lines:   []domain.ReportLine{{ID: "partner~res.partner~7", Name: "Acme", Level: 2, Unfoldable: true}},
	}
	suite.reportSvc.On("BuildReport", mock.Anything, mock.MatchedBy(func(o domain.ReportOptions) bool {
		return len(o.Criteria.Partners.PartnerIDs) == 1 && o.Criteria.Partners.PartnerIDs[0] == 7 &&
			len(o.Criteria.CompanyIDs) == 1 && o.Criteria.CompanyIDs[0] == suite.defaultCoyID &&
			o.ShowSubtotals &&
			len(o.UnfoldedLines) == 1 && o.UnfoldedLines[0] == "partner~res.partner~7" &&
			o.Criteria.DateFrom != nil && o.Criteria.DateFrom.Format("2006-01-02") == "2024-01-01"
	})).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/outstanding?partner_ids=7&date_from=2024-01-01&show_subtotals=true&unfolded_lines=partner~res.partner~7", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.OutstandingReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Lines, 1)
	suite.Equal("Acme", body.Lines[0].Name)
	suite.reportSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestOutstandingReport_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/reports/outstanding?date_from=07-03-2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reportSvc.AssertNotCalled(suite.T(), "BuildReport", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestOutstandingReportPDF() {
	suite.reportSvc.On("RenderReport", mock.Anything, mock.Anything, render.FormatPDF).
		Return([]byte("%PDF-1.3"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/outstanding.pdf", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "Outstanding_Receivables_")
	suite.Equal("%PDF-1.3", w.Body.String())
}

func (suite *HandlersTestSuite) TestOutstandingReportPDF_UnsupportedEngine() {
	suite.reportSvc.On("RenderReport", mock.Anything, mock.Anything, render.FormatPDF).
		Return(nil, fmt.Errorf("%w: html engine cannot produce pdf", apperrors.ErrUnsupportedCapability)).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/outstanding.pdf", nil)

	suite.Equal(http.StatusNotImplemented, w.Code)
}

func (suite *HandlersTestSuite) TestGetPartner_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/partners/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.partnerSvc.AssertNotCalled(suite.T(), "GetPartner", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetPartner_NotFound() {
	suite.partnerSvc.On("GetPartner", mock.Anything, int64(7)).
		Return(nil, apperrors.NewNotFoundError("partner 7")).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateStatementEmails_PassesUser() {
	req := dto.UpdateStatementEmailsRequest{StatementEmail: "ar@acme.test"}
	suite.partnerSvc.On("UpdateStatementEmails", mock.Anything, int64(7), req, testUserID).
		Return(&domain.Partner{ID: 7, Name: "Acme", StatementEmail: "ar@acme.test"}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/partners/7/statement-emails", req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.PartnerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ar@acme.test", body.StatementEmail)
	suite.Equal(int64(7), body.CommercialPartnerID)
	suite.partnerSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestStatementTargets() {
	suite.partnerSvc.On("GetStatementTargets", mock.Anything, int64(7)).
		Return(&domain.StatementTargets{EmailTo: "ar@acme.test", EmailCC: "cfo@acme.test"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/statement-targets", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.StatementTargetsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(dto.StatementTargetsResponse{PartnerID: 7, EmailTo: "ar@acme.test", EmailCC: "cfo@acme.test"}, body)
}

func (suite *HandlersTestSuite) TestStatementReport_UsesPartnerOptions() {
	opts := domain.ReportOptions{UnfoldAll: true}
	opts.Criteria.Partners = domain.PartnerScope{PartnerIDs: []int64{7}}
	suite.reportSvc.On("PartnerReportOptions", mock.Anything, int64(7)).Return(opts, nil).Once()
	suite.reportSvc.On("BuildReport", mock.Anything, opts).Return(&domain.OutstandingReport{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/statement-report", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.reportSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListMessages() {
	suite.partnerSvc.On("ListMessages", mock.Anything, int64(7), 5).
		Return([]domain.PartnerMessage{{ID: "m1", PartnerID: 7, MessageType: "comment"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/messages?limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.PartnerMessageResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal([]string{}, body[0].AttachmentIDs)
}

func (suite *HandlersTestSuite) TestListMessages_InvalidLimit() {
	w := suite.do(http.MethodGet, "/api/v1/partners/7/messages?limit=abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDueStatement_JSON() {
	due := time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)
	stmt := &domain.DueStatement{
		Partner: domain.Partner{ID: 7, Name: "Acme"},
		Company: domain.Company{ID: 1, Name: "My Company"},
		Today:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		Sections: []domain.DueStatementSection{{
			Currency: usdCurrency(),
			Lines: []domain.DueStatementLine{{
				InvoiceDateDue: &due,
				InvoiceName:    "INV/2024/0001",
				OriginalAmount: decimal.RequireFromString("1234.5"),
				BalanceAmount:  decimal.RequireFromString("1234.5"),
			}},
			TotalBalance: decimal.RequireFromString("1234.5"),
		}},
	}
	suite.dueSvc.On("BuildDueStatement", mock.Anything, mock.MatchedBy(func(r domain.DueStatementRequest) bool {
		return r.PartnerID == 7 && r.CompanyID == 0 && r.DateTo != nil && r.DateFrom == nil
	})).Return(stmt, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/due-statement?date_to=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.DueStatementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("07/03/2024", body.PrintedOn)
	suite.Require().Len(body.Sections, 1)
	suite.Equal("$ 1,234.50", body.Sections[0].TotalBalanceFormatted)
	suite.Equal("06/04/2024", body.Sections[0].Lines[0].InvoiceDateDue)
}

func (suite *HandlersTestSuite) TestDueStatement_HTML() {
	suite.dueSvc.On("RenderDueStatement", mock.Anything, mock.Anything, render.FormatHTML).
		Return([]byte("<html></html>"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/due-statement?format=html&company_id=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	suite.dueSvc.AssertCalled(suite.T(), "RenderDueStatement", mock.Anything,
		domain.DueStatementRequest{PartnerID: 7, CompanyID: 3}, render.FormatHTML)
}

func (suite *HandlersTestSuite) TestDueStatement_UnknownFormat() {
	w := suite.do(http.MethodGet, "/api/v1/partners/7/due-statement?format=xml", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.dueSvc.AssertNotCalled(suite.T(), "RenderDueStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestStatementDefaults() {
	suite.dispatchSvc.On("DefaultComposition", mock.Anything, int64(7)).Return(&domain.StatementComposition{
		PartnerID: 7, EmailTo: "ar@acme.test", Subject: "My Company Payment Reminder - Acme",
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/statement/defaults", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.StatementCompositionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ar@acme.test", body.EmailTo)
}

func (suite *HandlersTestSuite) TestSendStatement_Created() {
	result := &domain.DispatchResult{
		Attachment: domain.Attachment{ID: "att-1", Name: "Account_Statement_Acme_2024-03-07.pdf"},
		Mail:       domain.OutgoingMail{ID: "mail-1", EmailTo: "billing@acme.test", Subject: "Statement"},
		Message:    domain.PartnerMessage{ID: "msg-1"},
	}
	suite.dispatchSvc.On("SendStatement", mock.Anything, domain.StatementDispatch{
		PartnerID: 7,
		EmailTo:   "billing@acme.test",
		Subject:   "Statement",
		UserID:    testUserID,
	}).Return(result, nil).Once()
	suite.tracker.On("Enqueue", testUserID, "statement_sent", map[string]any{
		"partner_id":    int64(7),
		"mail_id":       "mail-1",
		"attachment_id": "att-1",
	}).Once()

	w := suite.do(http.MethodPost, "/api/v1/partners/7/statement/send",
		dto.SendStatementRequest{EmailTo: "billing@acme.test", Subject: "Statement"})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.SendStatementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("mail-1", body.MailID)
	suite.Equal("Account_Statement_Acme_2024-03-07.pdf", body.FileName)
	suite.dispatchSvc.AssertExpectations(suite.T())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestSendStatement_NoAddress() {
	suite.dispatchSvc.On("SendStatement", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConfigurationError("no email address configured for partner Acme")).Once()

	w := suite.do(http.MethodPost, "/api/v1/partners/7/statement/send", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), "no email address")
	suite.tracker.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestSendStatement_RateLimited() {
	suite.dispatchSvc.On("SendStatement", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConfigurationError("no email address")).Once()

	first := suite.do(http.MethodPost, "/api/v1/partners/7/statement/send", nil)
	second := suite.do(http.MethodPost, "/api/v1/partners/7/statement/send", nil)

	suite.Equal(http.StatusUnprocessableEntity, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)
	suite.dispatchSvc.AssertNumberOfCalls(suite.T(), "SendStatement", 1)
}

func (suite *HandlersTestSuite) TestGetAttachment_ReturnsPDF() {
	pdf := []byte("%PDF-1.3 statement")
	suite.dispatchSvc.On("GetAttachment", mock.Anything, int64(7), "att-1").Return(&domain.Attachment{
		ID:       "att-1",
		Name:     "Account_Statement_Acme_2024-03-07.pdf",
		MimeType: "application/pdf",
		Content:  pdf,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/7/attachments/att-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="Account_Statement_Acme_2024-03-07.pdf"`, w.Header().Get("Content-Disposition"))
	suite.Equal(pdf, w.Body.Bytes())
}

func (suite *HandlersTestSuite) TestGetAttachment_NotFound() {
	suite.dispatchSvc.On("GetAttachment", mock.Anything, int64(8), "att-1").
		Return(nil, apperrors.NewNotFoundError("attachment att-1 of partner 8")).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/8/attachments/att-1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
