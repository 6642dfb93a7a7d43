package repositories

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
)

// AccountReader defines read operations for the account registry.
type AccountReader interface {
	// FindAccountByNumber returns the outermost node of the account's decorator chain.
	FindAccountByNumber(ctx context.Context, accountNumber string) (accounts.Account, error)

	// FindAccountOwner returns the customer ID the account was opened for.
	FindAccountOwner(ctx context.Context, accountNumber string) (string, error)

	// ListAccounts returns every registered account in registration order.
	ListAccounts(ctx context.Context) ([]accounts.Account, error)

	// CountAccounts returns the number of registered accounts.
	CountAccounts(ctx context.Context) (int, error)
}

// AccountWriter defines write operations for the account registry.
type AccountWriter interface {
	// SaveAccount registers a new account chain for a customer.
	SaveAccount(ctx context.Context, customerID string, account accounts.Account) error

	// DeleteAccount removes an account from the registry.
	DeleteAccount(ctx context.Context, accountNumber string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
