package services

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountLifecycleSvc opens, inspects and closes accounts.
type AccountLifecycleSvc interface {
	// OpenAccount creates a decorated account, deposits initialDeposit when positive
	// and attaches the account to the customer, creating the customer if needed.
	OpenAccount(ctx context.Context, customerID string, kind domain.AccountKind, initialDeposit decimal.Decimal) (*domain.AccountSnapshot, error)
	// InvestWithSafetyMode opens an investment account with the fixed safety-mode policies.
	InvestWithSafetyMode(ctx context.Context, customerID string, amount decimal.Decimal) (*domain.AccountSnapshot, error)
	// CloseAccount deactivates insurance, closes the account and unregisters it.
	CloseAccount(ctx context.Context, accountNumber string) error

	GetAccount(ctx context.Context, accountNumber string) (*domain.AccountSnapshot, error)
	CustomerAccounts(ctx context.Context, customerID string) ([]domain.AccountSnapshot, error)
	FindAccountNumberByType(ctx context.Context, customerID, accountType string) (string, bool, error)
	FindFirstAccountForCustomer(ctx context.Context, customerID string) (string, bool, error)
	TotalAssetsUnderManagement(ctx context.Context) (decimal.Decimal, error)
	TotalManagedAccounts(ctx context.Context) (int, error)
}

// MoneyMovementSvc moves money through the transaction recorder.
type MoneyMovementSvc interface {
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error)
	Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal, description string) (*domain.TransferResult, error)
	ChargeFee(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error)
	// ApplyInvestmentReturns credits returns on the base investment account without recording a transaction.
	ApplyInvestmentReturns(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.AccountSnapshot, error)
	GetTransactionHistory(ctx context.Context, accountNumber string) ([]domain.Transaction, error)
	CancelTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// PolicySvc exposes the operations individual policies add. Each fails with
// apperrors.ErrPolicyNotApplied when the account's chain lacks the policy.
type PolicySvc interface {
	RedeemPoints(ctx context.Context, accountNumber string, points int64) (*domain.Transaction, error)
	RepayOverdraft(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.AccountSnapshot, error)
	ClaimInsurance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Transaction, error)
	DepositInCurrency(ctx context.Context, accountNumber string, amount decimal.Decimal, currency string) (*domain.Transaction, error)
	BalanceInCurrency(ctx context.Context, accountNumber, currency string) (decimal.Decimal, error)
	UpdateExchangeRate(ctx context.Context, accountNumber, currency string, rate decimal.Decimal) error
	CalculateTaxSavings(ctx context.Context, accountNumber string, taxableAmount decimal.Decimal) (decimal.Decimal, error)
	UseFreeTransaction(ctx context.Context, accountNumber string) (bool, error)
	ResetMonthlyBenefits(ctx context.Context, accountNumber string) error
	PriorityStatus(ctx context.Context, accountNumber string) (string, error)
}

// BankingSvcFacade is the single entry point external collaborators use.
type BankingSvcFacade interface {
	AccountLifecycleSvc
	MoneyMovementSvc
	PolicySvc
}
