package accounts

import (
	"fmt"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestmentAccount tracks the cumulative returns applied to it. The returns
// total is base-only state that no decorator exposes; reach it through Base().
type InvestmentAccount struct {
	ledger
	returns decimal.Decimal
}

func NewInvestmentAccount(number string, balance decimal.Decimal) *InvestmentAccount {
	return &InvestmentAccount{ledger: ledger{number: number, kind: domain.Investment, balance: balance}}
}

func (a *InvestmentAccount) Deposit(amount decimal.Decimal) error { return a.deposit(amount) }
func (a *InvestmentAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawWithin(amount, decimal.Zero)
}
func (a *InvestmentAccount) Description() string { return "Basic Investment Account" }
func (a *InvestmentAccount) Base() Account       { return a }

// InvestmentReturns is the sum of every ApplyReturns call.
func (a *InvestmentAccount) InvestmentReturns() decimal.Decimal { return a.returns }

// ApplyReturns credits returns directly to the balance. The amount is not
// sign-checked: a negative value books a loss.
func (a *InvestmentAccount) ApplyReturns(amount decimal.Decimal) error {
	if a.closed {
		return fmt.Errorf("apply returns on %s: %w", a.number, apperrors.ErrAccountClosed)
	}
	a.returns = a.returns.Add(amount)
	a.balance = a.balance.Add(amount)
	return nil
}
