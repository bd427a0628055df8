package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	portssvc "github.com/LedgerLens/ledger_reports_app/internal/core/ports/services"
	"github.com/LedgerLens/ledger_reports_app/internal/handlers"
	"github.com/LedgerLens/ledger_reports_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerStatementSvc ---
type MockLedgerStatementService struct {
	mock.Mock
}

var _ portssvc.LedgerStatementSvc = (*MockLedgerStatementService)(nil)

func (m *MockLedgerStatementService) GetLedgerStatement(ctx context.Context, companyID, ledgerName string, from, to time.Time) (*domain.LedgerStatement, error) {
	args := m.Called(ctx, companyID, ledgerName, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerStatement), args.Error(1)
}

// --- Mock OutstandingSvc ---
type MockOutstandingService struct {
	mock.Mock
}

var _ portssvc.OutstandingSvc = (*MockOutstandingService)(nil)

func (m *MockOutstandingService) GetOutstanding(ctx context.Context, companyID string, reportType domain.ReportType, asOn time.Time) (*domain.OutstandingReport, error) {
	args := m.Called(ctx, companyID, reportType, asOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingReport), args.Error(1)
}

const testJWTSecret = "test-secret"

// --- Test Suite Setup ---
type ReportsHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockStatement   *MockLedgerStatementService
	mockOutstanding *MockOutstandingService
	authHeader      string
}

func (suite *ReportsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockStatement = new(MockLedgerStatementService)
	suite.mockOutstanding = new(MockOutstandingService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		LedgerStatement: suite.mockStatement,
		Outstanding:     suite.mockOutstanding,
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
	suite.authHeader = "Bearer " + signed
}

func (suite *ReportsHandlerTestSuite) get(target string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorized {
		req.Header.Set("Authorization", suite.authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportsHandlerTestSuite) sampleStatement() *domain.LedgerStatement {
	return &domain.LedgerStatement{
		CompanyName:    "Demo Books",
		LedgerName:     "Acme Traders",
		From:           time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		To:             time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		OpeningBalance: decimal.Zero,
		TotalDebit:     decimal.NewFromInt(1000),
		TotalCredit:    decimal.Zero,
		ClosingBalance: decimal.NewFromInt(1000),
		Rows: []domain.LedgerStatementRow{{
			Date:          time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			Particulars:   "Sales",
			VoucherType:   domain.VoucherSales,
			VoucherNumber: "S-1",
			Debit:         decimal.NewFromInt(1000),
			Credit:        decimal.Zero,
			Balance:       decimal.NewFromInt(1000),
		}},
	}
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_RequiresAuth() {
	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme&from_date=2024-04-01&to_date=2024-04-30", false)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	suite.mockStatement.AssertNotCalled(suite.T(), "GetLedgerStatement")
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_Success() {
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	suite.mockStatement.On("GetLedgerStatement", mock.Anything, "co-1", "Acme Traders", from, to).
		Return(suite.sampleStatement(), nil)

	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme+Traders&from_date=2024-04-01&to_date=2024-04-30", true)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "Demo Books", body["company_name"])
	assert.Equal(suite.T(), "Acme Traders", body["ledger_name"])
	assert.Equal(suite.T(), "Dr", body["closing_balance_type"])
	assert.Equal(suite.T(), float64(1), body["total_transactions"])

	rows := body["transactions"].([]interface{})
	firstRow := rows[0].(map[string]interface{})
	assert.Equal(suite.T(), "2024-04-10", firstRow["date"])
	assert.Equal(suite.T(), "Sales", firstRow["particulars"])

	suite.mockStatement.AssertExpectations(suite.T())
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_MissingParams() {
	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme", true)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockStatement.AssertNotCalled(suite.T(), "GetLedgerStatement")
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_BadDateFormat() {
	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme&from_date=01-04-2024&to_date=2024-04-30", true)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockStatement.AssertNotCalled(suite.T(), "GetLedgerStatement")
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_NotFound() {
	suite.mockStatement.On("GetLedgerStatement", mock.Anything, "co-1", "Nobody", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound)

	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Nobody&from_date=2024-04-01&to_date=2024-04-30", true)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_InvalidRange() {
	suite.mockStatement.On("GetLedgerStatement", mock.Anything, "co-1", "Acme", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrInvalidRange)

	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme&from_date=2024-05-01&to_date=2024-04-01", true)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_InconsistentData() {
	dataErr := &apperrors.InconsistentDataError{Details: []apperrors.InconsistencyDetail{
		{VoucherID: "v1", Reason: "voucher legs do not sum to zero"},
	}}
	suite.mockStatement.On("GetLedgerStatement", mock.Anything, "co-1", "Acme", mock.Anything, mock.Anything).
		Return(suite.sampleStatement(), dataErr)

	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme&from_date=2024-04-01&to_date=2024-04-30", true)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	details := body["details"].([]interface{})
	first := details[0].(map[string]interface{})
	assert.Equal(suite.T(), "v1", first["voucherID"])
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_StorageError() {
	suite.mockStatement.On("GetLedgerStatement", mock.Anything, "co-1", "Acme", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrStorage)

	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme&from_date=2024-04-01&to_date=2024-04-30", true)
	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *ReportsHandlerTestSuite) TestLedgerStatement_CallerDisconnected() {
	suite.mockStatement.On("GetLedgerStatement", mock.Anything, "co-1", "Acme", mock.Anything, mock.Anything).
		Return(nil, context.Canceled)

	w := suite.get("/api/v1/companies/co-1/reports/ledger-statement?ledger=Acme&from_date=2024-04-01&to_date=2024-04-30", true)
	assert.Equal(suite.T(), 499, w.Code)
}

func (suite *ReportsHandlerTestSuite) TestOutstanding_Success() {
	asOn := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	report := &domain.OutstandingReport{
		CompanyName: "Demo Books",
		ReportType:  domain.ReportReceivables,
		AsOn:        asOn,
		Rows: []domain.OutstandingRow{{
			LedgerName:   "Acme Traders",
			BillName:     "INV-1",
			BillDate:     time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			BillType:     domain.BillNewRef,
			VoucherType:  domain.VoucherSales,
			Outstanding:  decimal.NewFromInt(1000),
			Balance:      decimal.NewFromInt(1000),
			IsReceivable: true,
			DueDate:      time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			OverdueDays:  20,
			Bucket:       domain.BucketCurrent,
		}},
		TotalReceivables: decimal.NewFromInt(1000),
		TotalPayables:    decimal.Zero,
	}
	suite.mockOutstanding.On("GetOutstanding", mock.Anything, "co-1", domain.ReportReceivables, asOn).
		Return(report, nil)

	w := suite.get("/api/v1/companies/co-1/reports/outstanding?report_type=receivables&as_on=2024-04-30", true)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "receivables", body["report_type"])
	assert.Equal(suite.T(), float64(1), body["count"])

	rows := body["data"].([]interface{})
	firstRow := rows[0].(map[string]interface{})
	assert.Equal(suite.T(), "INV-1", firstRow["bill_ref"])
	assert.Equal(suite.T(), "0-30", firstRow["ageing_bucket"])

	suite.mockOutstanding.AssertExpectations(suite.T())
}

func (suite *ReportsHandlerTestSuite) TestOutstanding_DefaultsToBothAndToday() {
	report := &domain.OutstandingReport{
		CompanyName:      "Demo Books",
		ReportType:       domain.ReportBoth,
		AsOn:             time.Now().UTC(),
		TotalReceivables: decimal.Zero,
		TotalPayables:    decimal.Zero,
	}
	suite.mockOutstanding.On("GetOutstanding", mock.Anything, "co-1", domain.ReportBoth, mock.Anything).
		Return(report, nil)

	w := suite.get("/api/v1/companies/co-1/reports/outstanding", true)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.mockOutstanding.AssertExpectations(suite.T())
}

func (suite *ReportsHandlerTestSuite) TestOutstanding_InvalidReportType() {
	w := suite.get("/api/v1/companies/co-1/reports/outstanding?report_type=everything", true)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockOutstanding.AssertNotCalled(suite.T(), "GetOutstanding")
}

func (suite *ReportsHandlerTestSuite) TestOutstanding_InvalidAsOn() {
	w := suite.get("/api/v1/companies/co-1/reports/outstanding?as_on=30-04-2024", true)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockOutstanding.AssertNotCalled(suite.T(), "GetOutstanding")
}

func TestReportsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportsHandlerTestSuite))
}
