package accounts

import (
	"fmt"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OverdraftProtection covers withdrawals the inner balance cannot. It never
// drives the inner account negative: the inner balance is swept to zero and the
// shortfall is tracked here as used overdraft.
type OverdraftProtection struct {
	wrapper
	limit decimal.Decimal
	used  decimal.Decimal
}

func NewOverdraftProtection(inner Account, limit decimal.Decimal) *OverdraftProtection {
	return &OverdraftProtection{wrapper: wrapper{inner: inner}, limit: limit}
}

func (o *OverdraftProtection) Policy() PolicyKind { return OverdraftProtectionPolicy }

func (o *OverdraftProtection) Description() string {
	return describe(o.inner, fmt.Sprintf("Overdraft Protection ($%s)", o.limit))
}

// Withdraw forwards when the inner balance suffices. Otherwise it sweeps the
// whole inner balance and books amount-balance against the remaining overdraft.
func (o *OverdraftProtection) Withdraw(amount decimal.Decimal) error {
	current := o.inner.Balance()
	if current.GreaterThanOrEqual(amount) {
		return o.inner.Withdraw(amount)
	}
	if o.inner.IsClosed() {
		return fmt.Errorf("withdraw on %s: %w", o.AccountNumber(), apperrors.ErrAccountClosed)
	}

	needed := amount.Sub(current)
	if needed.GreaterThan(o.Available()) {
		return fmt.Errorf("withdraw %s from %s needs %s of overdraft, %s available: %w",
			amount, o.AccountNumber(), needed, o.Available(), apperrors.ErrOverdraftExceeded)
	}
	// An empty or negative inner balance has nothing to sweep.
	if current.IsPositive() {
		if err := o.inner.Withdraw(current); err != nil {
			return err
		}
	}
	o.used = o.used.Add(needed)
	return nil
}

// RepayOverdraft reduces the used overdraft. It does not touch the inner balance.
func (o *OverdraftProtection) RepayOverdraft(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("repay %s on %s: %w", amount, o.AccountNumber(), apperrors.ErrInvalidAmount)
	}
	if amount.GreaterThan(o.used) {
		return fmt.Errorf("repay %s on %s with %s used: %w", amount, o.AccountNumber(), o.used, apperrors.ErrInvalidRepayment)
	}
	o.used = o.used.Sub(amount)
	return nil
}

func (o *OverdraftProtection) Details() map[string]string {
	return map[string]string{
		"limit":     o.limit.StringFixed(2),
		"used":      o.used.StringFixed(2),
		"available": o.Available().StringFixed(2),
	}
}

func (o *OverdraftProtection) Limit() decimal.Decimal         { return o.limit }
func (o *OverdraftProtection) UsedOverdraft() decimal.Decimal { return o.used }

// Available is the overdraft still unused.
func (o *OverdraftProtection) Available() decimal.Decimal { return o.limit.Sub(o.used) }
