package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionsByAccount(ctx context.Context, accountNumber string) ([]*domain.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) AppendTransaction(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ClearAccountTransactions(ctx context.Context, accountNumber string) error {
	args := m.Called(ctx, accountNumber)
	return args.Error(0)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	ctx      context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestRecordDeposit_Success() {
	acct := accounts.NewSavingsAccount("SAV-1", dec("100"))
	suite.mockRepo.On("AppendTransaction", suite.ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		return t.AccountNumber == "SAV-1" && t.Status == domain.Completed
	})).Return(nil).Once()

	txn, err := suite.service.RecordDeposit(suite.ctx, acct, dec("50"), "Paycheck")

	suite.Require().NoError(err)
	suite.Equal(domain.Deposit, txn.Type)
	suite.Equal(domain.Completed, txn.Status)
	suite.True(txn.BalanceBefore.Equal(dec("100")))
	suite.True(txn.BalanceAfter.Equal(dec("150")))
	suite.Contains(txn.TransactionID, "TXN-")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordWithdrawal_FailureIsNotStored() {
	acct := accounts.NewSavingsAccount("SAV-1", dec("10"))

	txn, err := suite.service.RecordWithdrawal(suite.ctx, acct, dec("50"), "Too much")

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.True(acct.Balance().Equal(dec("10")))
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecord_AppendError() {
	acct := accounts.NewSavingsAccount("SAV-1", dec("10"))
	suite.mockRepo.On("AppendTransaction", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	txn, err := suite.service.RecordFee(suite.ctx, acct, dec("1"), "Monthly fee")

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *TransactionServiceTestSuite) TestRecordTransfer_SameAccount() {
	acct := accounts.NewSavingsAccount("SAV-1", dec("10"))

	res, err := suite.service.RecordTransfer(suite.ctx, acct, acct, dec("1"), "loop")

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrSameAccount)
}

func (suite *TransactionServiceTestSuite) TestRecordTransfer_LegDescriptions() {
	from := accounts.NewSavingsAccount("SAV-1", dec("500"))
	to := accounts.NewSavingsAccount("SAV-2", dec("0"))
	suite.mockRepo.On("AppendTransaction", suite.ctx, mock.Anything).Return(nil).Twice()

	res, err := suite.service.RecordTransfer(suite.ctx, from, to, dec("200"), "rent")

	suite.Require().NoError(err)
	suite.Equal(domain.Withdrawal, res.Withdrawal.Type)
	suite.Equal("Transfer to SAV-2: rent", res.Withdrawal.Description)
	suite.Equal(domain.Deposit, res.Deposit.Type)
	suite.Equal("Transfer from SAV-1: rent", res.Deposit.Description)
	suite.True(res.Withdrawal.BalanceAfter.Equal(dec("300")))
	suite.True(res.Deposit.BalanceAfter.Equal(dec("200")))
}

func (suite *TransactionServiceTestSuite) TestRecordTransfer_FailedDepositLegKeepsWithdrawal() {
	from := accounts.NewSavingsAccount("SAV-1", dec("500"))
	to := accounts.NewSavingsAccount("SAV-2", dec("0"))
	to.Close()
	suite.mockRepo.On("AppendTransaction", suite.ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		return t.AccountNumber == "SAV-1"
	})).Return(nil).Once()

	res, err := suite.service.RecordTransfer(suite.ctx, from, to, dec("200"), "rent")

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrAccountClosed)
	suite.True(from.Balance().Equal(dec("300")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCancelTransaction() {
	txn := domain.NewTransaction("SAV-1", domain.Deposit, dec("5"), "x")
	suite.Require().NoError(txn.MarkCompleted(dec("5")))
	suite.mockRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil)

	out, err := suite.service.CancelTransaction(suite.ctx, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(domain.Cancelled, out.Status)

	_, err = suite.service.CancelTransaction(suite.ctx, txn.TransactionID)
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (suite *TransactionServiceTestSuite) TestCancelTransaction_NotFound() {
	suite.mockRepo.On("FindTransactionByID", suite.ctx, "TXN-NOPE").Return(nil, apperrors.ErrTransactionNotFound)

	_, err := suite.service.CancelTransaction(suite.ctx, "TXN-NOPE")
	suite.ErrorIs(err, apperrors.ErrTransactionNotFound)
}

func (suite *TransactionServiceTestSuite) TestStatistics() {
	d := domain.NewTransaction("SAV-1", domain.Deposit, dec("100"), "d")
	_ = d.MarkCompleted(dec("100"))
	w := domain.NewTransaction("SAV-1", domain.Withdrawal, dec("30"), "w")
	_ = w.MarkCompleted(dec("70"))
	f := domain.NewTransaction("SAV-1", domain.Fee, dec("5"), "f")
	_ = f.MarkCompleted(dec("65"))
	suite.mockRepo.On("FindTransactionsByAccount", suite.ctx, "SAV-1").Return([]*domain.Transaction{d, w, f}, nil)

	stats, err := suite.service.Statistics(suite.ctx, "SAV-1")

	suite.Require().NoError(err)
	suite.Equal(3, stats.TotalTransactions)
	suite.True(stats.TotalDeposits.Equal(dec("100")))
	suite.True(stats.TotalWithdrawals.Equal(dec("30")))
	suite.Require().NotNil(stats.LastTransaction)
	suite.Equal(f.TransactionID, stats.LastTransaction.TransactionID)

	balance, err := suite.service.ComputedBalance(suite.ctx, "SAV-1")
	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("65")))
}

func (suite *TransactionServiceTestSuite) TestStatistics_Empty() {
	suite.mockRepo.On("FindTransactionsByAccount", suite.ctx, "SAV-9").Return([]*domain.Transaction{}, nil)

	stats, err := suite.service.Statistics(suite.ctx, "SAV-9")

	suite.Require().NoError(err)
	suite.Zero(stats.TotalTransactions)
	suite.Nil(stats.LastTransaction)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Pages() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var log []*domain.Transaction
	var ids []string
	for i := 0; i < 5; i++ {
		t := domain.NewTransaction("SAV-1", domain.Deposit, dec("1"), "d")
		t.Timestamp = base.Add(time.Duration(i) * time.Minute)
		_ = t.MarkCompleted(decimal.NewFromInt(int64(i + 1)))
		log = append(log, t)
		ids = append(ids, t.TransactionID)
	}
	suite.mockRepo.On("FindTransactionsByAccount", suite.ctx, "SAV-1").Return(log, nil)

	first, err := suite.service.ListTransactions(suite.ctx, "SAV-1", 2, "")
	suite.Require().NoError(err)
	suite.Require().Len(first.Transactions, 2)
	suite.Equal(ids[4], first.Transactions[0].TransactionID)
	suite.NotEmpty(first.NextToken)

	second, err := suite.service.ListTransactions(suite.ctx, "SAV-1", 2, first.NextToken)
	suite.Require().NoError(err)
	suite.Require().Len(second.Transactions, 2)
	suite.Equal(ids[2], second.Transactions[0].TransactionID)

	third, err := suite.service.ListTransactions(suite.ctx, "SAV-1", 2, second.NextToken)
	suite.Require().NoError(err)
	suite.Len(third.Transactions, 1)
	suite.Empty(third.NextToken)

	_, err = suite.service.ListTransactions(suite.ctx, "SAV-1", 2, "%%%")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestClearHistory() {
	suite.mockRepo.On("ClearAccountTransactions", suite.ctx, "SAV-1").Return(nil).Once()

	suite.NoError(suite.service.ClearHistory(suite.ctx, "SAV-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func TestRecord_CustomApplyError(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewTransactionService(repo)
	acct := accounts.NewSavingsAccount("SAV-1", dec("10"))
	boom := errors.New("boom")

	txn, err := svc.Record(context.Background(), acct, domain.Deposit, dec("1"), "custom", func() error { return boom })

	assert.Nil(t, txn)
	require.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything)
}
