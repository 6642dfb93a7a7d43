package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// taxableShare is the fraction of every withdrawal assumed to be taxable.
var taxableShare = decimal.RequireFromString("0.10")

// TaxOptimizer tracks the tax saved by a flat rate reduction.
type TaxOptimizer struct {
	wrapper
	rateReduction decimal.Decimal
	savings       decimal.Decimal
}

func NewTaxOptimizer(inner Account, rateReduction decimal.Decimal) *TaxOptimizer {
	return &TaxOptimizer{wrapper: wrapper{inner: inner}, rateReduction: rateReduction}
}

func (t *TaxOptimizer) Policy() PolicyKind { return TaxOptimizerPolicy }

func (t *TaxOptimizer) Description() string {
	pct := t.rateReduction.Mul(decimal.NewFromInt(100))
	return describe(t.inner, fmt.Sprintf("Tax Optimization (%s%% reduction)", pct))
}

func (t *TaxOptimizer) Details() map[string]string {
	return map[string]string{
		"rateReduction":   t.rateReduction.String(),
		"totalTaxSavings": t.savings.StringFixed(2),
	}
}

// Withdraw forwards the withdrawal and, once it succeeds, books the saving on the
// assumed taxable share of amount.
func (t *TaxOptimizer) Withdraw(amount decimal.Decimal) error {
	if err := t.inner.Withdraw(amount); err != nil {
		return err
	}
	t.CalculateTaxSavings(amount.Mul(taxableShare))
	return nil
}

// CalculateTaxSavings returns the saving on taxableAmount and adds it to the
// running total shared with Withdraw.
func (t *TaxOptimizer) CalculateTaxSavings(taxableAmount decimal.Decimal) decimal.Decimal {
	saving := taxableAmount.Mul(t.rateReduction)
	t.savings = t.savings.Add(saving)
	return saving
}

func (t *TaxOptimizer) RateReduction() decimal.Decimal   { return t.rateReduction }
func (t *TaxOptimizer) TotalTaxSavings() decimal.Decimal { return t.savings }
