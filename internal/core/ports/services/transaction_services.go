package services

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRecorderSvc converts balance-affecting operations into transaction records.
// A record is appended to the account's log only when its operation succeeds.
type TransactionRecorderSvc interface {
	// Record runs apply and logs it as one transaction of txType.
	Record(ctx context.Context, account accounts.Account, txType domain.TransactionType, amount decimal.Decimal, description string, apply func() error) (*domain.Transaction, error)

	RecordDeposit(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error)
	RecordWithdrawal(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error)
	// RecordTransfer records a withdrawal leg then a deposit leg. A failed withdrawal
	// skips the deposit; a failed deposit does not undo the withdrawal.
	RecordTransfer(ctx context.Context, from, to accounts.Account, amount decimal.Decimal, description string) (*domain.TransferResult, error)
	RecordInvestmentReturn(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error)
	RecordDividend(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error)
	RecordFee(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error)
}

// TransactionReaderSvc reads the transaction logs. Returned records are copies.
type TransactionReaderSvc interface {
	// History returns the account's log in insertion order.
	History(ctx context.Context, accountNumber string) ([]domain.Transaction, error)
	// ListTransactions pages through the account's log newest first.
	ListTransactions(ctx context.Context, accountNumber string, limit int, nextToken string) (*domain.TransactionPage, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ComputedBalance replays the account's completed transactions.
	ComputedBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error)
	Statistics(ctx context.Context, accountNumber string) (*domain.TransactionStatistics, error)
}

// TransactionAdminSvc changes existing records.
type TransactionAdminSvc interface {
	// CancelTransaction marks a completed transaction Cancelled. Balances are not touched.
	CancelTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ClearHistory(ctx context.Context, accountNumber string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionRecorderSvc
	TransactionReaderSvc
	TransactionAdminSvc
}
