package repositories

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
)

// TransactionReader defines read operations over the per-account transaction logs.
type TransactionReader interface {
	// FindTransactionsByAccount returns the account's log in append order.
	// The returned records are shared with the log.
	FindTransactionsByAccount(ctx context.Context, accountNumber string) ([]*domain.Transaction, error)

	// FindTransactionByID searches every log for a transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// CountTransactions returns the number of records across all logs.
	CountTransactions(ctx context.Context) (int, error)
}

// TransactionWriter defines write operations over the per-account transaction logs.
type TransactionWriter interface {
	// AppendTransaction adds a record to the end of its account's log.
	AppendTransaction(ctx context.Context, txn *domain.Transaction) error

	// ClearAccountTransactions drops an account's whole log.
	ClearAccountTransactions(ctx context.Context, accountNumber string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
