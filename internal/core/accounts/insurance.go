package accounts

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Insurance adds a claim facility backed by a fixed coverage amount.
type Insurance struct {
	wrapper
	coverage decimal.Decimal
	active   bool
}

func NewInsurance(inner Account, coverage decimal.Decimal) *Insurance {
	return &Insurance{wrapper: wrapper{inner: inner}, coverage: coverage, active: true}
}

func (i *Insurance) Policy() PolicyKind { return InsurancePolicy }

func (i *Insurance) Description() string {
	return describe(i.inner, fmt.Sprintf("Insurance Coverage ($%s)", i.coverage))
}

func (i *Insurance) Details() map[string]string {
	return map[string]string{
		"coverage": i.coverage.StringFixed(2),
		"active":   strconv.FormatBool(i.active),
	}
}

// ClaimInsurance pays amount into the inner account.
func (i *Insurance) ClaimInsurance(amount decimal.Decimal) error {
	if !i.active {
		return fmt.Errorf("claim on %s: %w", i.AccountNumber(), apperrors.ErrInsuranceInactive)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("claim %s on %s: %w", amount, i.AccountNumber(), apperrors.ErrInvalidAmount)
	}
	if amount.GreaterThan(i.coverage) {
		return fmt.Errorf("claim %s on %s exceeds coverage %s: %w", amount, i.AccountNumber(), i.coverage, apperrors.ErrClaimExceedsCoverage)
	}
	return i.inner.Deposit(amount)
}

// CancelInsurance deactivates the coverage. It cannot be reactivated.
func (i *Insurance) CancelInsurance() { i.active = false }

func (i *Insurance) Coverage() decimal.Decimal { return i.coverage }
func (i *Insurance) IsActive() bool            { return i.active }
