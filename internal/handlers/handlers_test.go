package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/SscSPs/benefit_ledger/internal/core/services"
	"github.com/SscSPs/benefit_ledger/internal/dto"
	"github.com/SscSPs/benefit_ledger/internal/handlers"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
	"github.com/SscSPs/benefit_ledger/internal/platform/config"
	"github.com/SscSPs/benefit_ledger/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
	token     string
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) generateTestToken(subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	cfg := config.Default()
	cfg.JWTSecret = suite.jwtSecret
	cfg.IsProduction = true

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.DiscardHandler)))
	handlers.RegisterRoutes(suite.router, cfg, services.NewServiceContainer(cfg, memory.NewRepositoryProvider()))
	suite.token = suite.generateTestToken("operator-1")
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, "/api/v1"+path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *HandlerTestSuite) openAccount(customerID, accountType, deposit string) domain.AccountSnapshot {
	w := suite.do(http.MethodPost, "/customers/"+customerID+"/accounts", gin.H{"accountType": accountType, "initialDeposit": deposit})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var snap domain.AccountSnapshot
	suite.decode(w, &snap)
	return snap
}

func (suite *HandlerTestSuite) TestAuthRequired() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	health, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, health)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCustomer() {
	w := suite.do(http.MethodPost, "/customers", gin.H{"customerID": "C1", "name": "Ada", "email": "ada@example.com"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CustomerResponse
	suite.decode(w, &resp)
	suite.Equal("operator-1", resp.CreatedBy)
	suite.Empty(resp.AccountNumbers)

	w = suite.do(http.MethodPost, "/customers", gin.H{"customerID": "C1", "name": "Ada", "email": "ada@example.com"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/customers", gin.H{"customerID": "C2", "name": "Bob", "email": "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/customers/nobody", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestOpenAccount() {
	snap := suite.openAccount("C1", "savings", "1500")
	suite.Equal("Basic Savings Account + Reward Points (2 points/$) + Insurance Coverage ($10000)", snap.Description)
	suite.True(snap.Balance.Equal(decimal.NewFromInt(1500)))

	w := suite.do(http.MethodPost, "/customers/C1/accounts", gin.H{"accountType": "gold", "initialDeposit": "10"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/customers/C1/accounts", gin.H{"accountType": "checking", "initialDeposit": "-5"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/customers/C1/accounts/find?type=savings", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var found dto.FindAccountResponse
	suite.decode(w, &found)
	suite.True(found.Found)
	suite.Equal(snap.AccountNumber, found.AccountNumber)
}

func (suite *HandlerTestSuite) TestMoneyMovement() {
	from := suite.openAccount("C1", "savings", "500")
	to := suite.openAccount("C2", "savings", "0")

	w := suite.do(http.MethodPost, "/accounts/"+from.AccountNumber+"/deposits", gin.H{"amount": "0"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/accounts/"+from.AccountNumber+"/withdrawals", gin.H{"amount": "900"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodPost, "/accounts/"+from.AccountNumber+"/transfers", gin.H{"toAccountNumber": to.AccountNumber, "amount": "200", "description": "rent"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res domain.TransferResult
	suite.decode(w, &res)
	suite.True(res.Withdrawal.BalanceAfter.Equal(decimal.NewFromInt(300)))
	suite.True(res.Deposit.BalanceAfter.Equal(decimal.NewFromInt(200)))

	w = suite.do(http.MethodPost, "/accounts/"+from.AccountNumber+"/transfers", gin.H{"toAccountNumber": from.AccountNumber, "amount": "1"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/accounts/"+from.AccountNumber+"/history", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var hist dto.HistoryResponse
	suite.decode(w, &hist)
	suite.Len(hist.Transactions, 2)
	suite.True(hist.ComputedBalance.Equal(decimal.NewFromInt(300)))

	w = suite.do(http.MethodGet, "/accounts/"+from.AccountNumber+"/transactions?limit=1", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page domain.TransactionPage
	suite.decode(w, &page)
	suite.Len(page.Transactions, 1)
	suite.NotEmpty(page.NextToken)

	w = suite.do(http.MethodPost, "/transactions/"+res.Withdrawal.TransactionID+"/cancel", nil)
	suite.Equal(http.StatusOK, w.Code)
	w = suite.do(http.MethodPost, "/transactions/"+res.Withdrawal.TransactionID+"/cancel", nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodGet, "/accounts/SAV-missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestStatementAndReports() {
	acct := suite.openAccount("C1", "investment", "1000")

	w := suite.do(http.MethodGet, "/accounts/"+acct.AccountNumber+"/statement", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var stmt domain.Statement
	suite.decode(w, &stmt)
	suite.Len(stmt.Lines, 1)

	w = suite.do(http.MethodGet, "/accounts/"+acct.AccountNumber+"/statement?from=01-01-2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/customers/C1/portfolio", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var p domain.Portfolio
	suite.decode(w, &p)
	suite.True(p.TotalBalance.Equal(decimal.NewFromInt(1000)))

	w = suite.do(http.MethodGet, "/stats", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var stats domain.BankStats
	suite.decode(w, &stats)
	suite.Equal(1, stats.TotalAccounts)

	w = suite.do(http.MethodGet, "/customers/C1/notifications?unread=true", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var notes dto.ListNotificationsResponse
	suite.decode(w, &notes)
	suite.Require().Len(notes.Notifications, 1)

	w = suite.do(http.MethodPost, "/customers/C1/notifications/"+notes.Notifications[0].NotificationID+"/read", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestPolicyRoutes() {
	chk := suite.openAccount("C1", "checking", "100")

	w := suite.do(http.MethodPost, "/accounts/"+chk.AccountNumber+"/rewards/redeem", gin.H{"points": 10})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodPost, "/accounts/"+chk.AccountNumber+"/withdrawals", gin.H{"amount": "400"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/accounts/"+chk.AccountNumber+"/overdraft/repay", gin.H{"amount": "100"})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/accounts/"+chk.AccountNumber+"/returns", gin.H{"amount": "5"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	inv := suite.openAccount("C1", "investment", "6000")
	w = suite.do(http.MethodGet, "/accounts/"+inv.AccountNumber+"/priority/status", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var status dto.PriorityStatusResponse
	suite.decode(w, &status)
	suite.Contains(status.Status, "fee waived=false")

	w = suite.do(http.MethodPost, "/accounts/"+inv.AccountNumber+"/tax/savings", gin.H{"amount": "1000"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var tax dto.TaxSavingsResponse
	suite.decode(w, &tax)
	suite.True(tax.Savings.Equal(decimal.NewFromInt(150)))

	w = suite.do(http.MethodDelete, "/accounts/"+inv.AccountNumber, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	w = suite.do(http.MethodPost, "/accounts/"+inv.AccountNumber+"/insurance/claims", gin.H{"amount": "1"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
