// Package accounts holds the account contract, the three base account kinds and
// the policy decorators that wrap them.
//
// A decorated account is a chain: every decorator exclusively owns the next inner
// Account and the chain ends in exactly one base account. Operations enter at the
// outermost decorator and cascade inward. Nothing in this package is safe for
// concurrent use; callers serialize access per account.
package accounts

import (
	"fmt"
	"strings"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the contract shared by base accounts and every decorator.
type Account interface {
	AccountNumber() string
	Kind() domain.AccountKind
	AccountType() string
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Description() string
	Close()
	IsClosed() bool

	// Base returns the terminal base account underneath any decoration.
	Base() Account
}

// NewAccountNumber returns "<PREFIX>-<8 hex chars>" for the kind.
func NewAccountNumber(kind domain.AccountKind) string {
	return kind.NumberPrefix() + "-" + uuid.NewString()[:8]
}

// NewBaseAccount creates an empty, open base account of the given kind.
func NewBaseAccount(kind domain.AccountKind) (Account, error) {
	number := NewAccountNumber(kind)
	switch kind {
	case domain.Savings:
		return NewSavingsAccount(number, decimal.Zero), nil
	case domain.Checking:
		return NewCheckingAccount(number, decimal.Zero), nil
	case domain.Investment:
		return NewInvestmentAccount(number, decimal.Zero), nil
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccountKind, kind)
}

// ledger is the balance state common to all base accounts.
type ledger struct {
	number  string
	kind    domain.AccountKind
	balance decimal.Decimal
	closed  bool
}

func (l *ledger) AccountNumber() string    { return l.number }
func (l *ledger) Kind() domain.AccountKind { return l.kind }
func (l *ledger) AccountType() string      { return l.kind.Label() }
func (l *ledger) Balance() decimal.Decimal { return l.balance }
func (l *ledger) Close()                   { l.closed = true }
func (l *ledger) IsClosed() bool           { return l.closed }

// check enforces the preconditions every balance change shares. A closed account
// reports ErrAccountClosed regardless of the amount.
func (l *ledger) check(op string, amount decimal.Decimal) error {
	if l.closed {
		return fmt.Errorf("%s on %s: %w", op, l.number, apperrors.ErrAccountClosed)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%s of %s on %s: %w", op, amount, l.number, apperrors.ErrInvalidAmount)
	}
	return nil
}

func (l *ledger) deposit(amount decimal.Decimal) error {
	if err := l.check("deposit", amount); err != nil {
		return err
	}
	l.balance = l.balance.Add(amount)
	return nil
}

// withdrawWithin debits amount if it does not exceed balance+headroom.
func (l *ledger) withdrawWithin(amount, headroom decimal.Decimal) error {
	if err := l.check("withdraw", amount); err != nil {
		return err
	}
	if l.balance.Add(headroom).LessThan(amount) {
		return fmt.Errorf("withdraw %s from %s (balance %s): %w", amount, l.number, l.balance, apperrors.ErrInsufficientFunds)
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

// SavingsAccount is a plain interest-free deposit account.
type SavingsAccount struct {
	ledger
}

// NewSavingsAccount builds a savings account with an explicit number and opening balance.
func NewSavingsAccount(number string, balance decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{ledger{number: number, kind: domain.Savings, balance: balance}}
}

func (a *SavingsAccount) Deposit(amount decimal.Decimal) error  { return a.deposit(amount) }
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error { return a.withdrawWithin(amount, decimal.Zero) }
func (a *SavingsAccount) Description() string                   { return "Basic Savings Account" }
func (a *SavingsAccount) Base() Account                         { return a }

// describe renders a policy suffix the way every decorator description does.
func describe(inner Account, suffix string) string {
	var b strings.Builder
	b.WriteString(inner.Description())
	b.WriteString(" + ")
	b.WriteString(suffix)
	return b.String()
}
