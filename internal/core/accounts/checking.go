package accounts

import (
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultCheckingOverdraft is the built-in overdraft every checking account starts with.
var DefaultCheckingOverdraft = decimal.NewFromInt(1000)

// CheckingAccount carries its own low-level overdraft buffer. It is independent of
// the OverdraftProtection decorator; both may be present and they stack.
type CheckingAccount struct {
	ledger
	overdraftLimit decimal.Decimal
}

func NewCheckingAccount(number string, balance decimal.Decimal) *CheckingAccount {
	return &CheckingAccount{
		ledger:         ledger{number: number, kind: domain.Checking, balance: balance},
		overdraftLimit: DefaultCheckingOverdraft,
	}
}

func (a *CheckingAccount) Deposit(amount decimal.Decimal) error { return a.deposit(amount) }

// Withdraw allows the balance to go negative down to -overdraftLimit.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawWithin(amount, a.overdraftLimit)
}

func (a *CheckingAccount) Description() string { return "Basic Checking Account with Overdraft" }
func (a *CheckingAccount) Base() Account       { return a }

func (a *CheckingAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

func (a *CheckingAccount) SetOverdraftLimit(limit decimal.Decimal) {
	a.overdraftLimit = limit
}
