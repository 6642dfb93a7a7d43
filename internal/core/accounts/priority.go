package accounts

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	// FeeWaiverThreshold is the balance at which all fees are waived.
	FeeWaiverThreshold = decimal.NewFromInt(25000)
	// PreferentialRate is the annual interest rate paid to priority accounts.
	PreferentialRate = decimal.RequireFromString("0.025")
)

// MonthlyFreeTransactions is the free-transaction allowance granted each month.
const MonthlyFreeTransactions = 50

// PriorityBanking exposes premium-tier queries. Balance operations pass through.
type PriorityBanking struct {
	wrapper
	freeTransactions int
}

func NewPriorityBanking(inner Account) *PriorityBanking {
	return &PriorityBanking{wrapper: wrapper{inner: inner}, freeTransactions: MonthlyFreeTransactions}
}

func (p *PriorityBanking) Policy() PolicyKind { return PriorityBankingPolicy }

func (p *PriorityBanking) Description() string {
	return describe(p.inner, "Priority Banking Benefits")
}

func (p *PriorityBanking) Details() map[string]string {
	return map[string]string{
		"feeWaived":            strconv.FormatBool(p.IsFeeWaived()),
		"preferentialInterest": p.CalculatePreferentialInterest().StringFixed(2),
		"freeTransactions":     strconv.Itoa(p.freeTransactions),
	}
}

func (p *PriorityBanking) IsFeeWaived() bool {
	return p.Balance().GreaterThanOrEqual(FeeWaiverThreshold)
}

func (p *PriorityBanking) CalculatePreferentialInterest() decimal.Decimal {
	return p.Balance().Mul(PreferentialRate)
}

// UseFreeTransaction consumes one free transaction. It reports false once the
// allowance is exhausted.
func (p *PriorityBanking) UseFreeTransaction() bool {
	if p.freeTransactions <= 0 {
		return false
	}
	p.freeTransactions--
	return true
}

func (p *PriorityBanking) ResetMonthlyBenefits() { p.freeTransactions = MonthlyFreeTransactions }

func (p *PriorityBanking) FreeTransactionsRemaining() int { return p.freeTransactions }

// Status summarizes the tier for display.
func (p *PriorityBanking) Status() string {
	return fmt.Sprintf("Priority Banking: fee waived=%t, free transactions=%d, preferential rate=%s%%",
		p.IsFeeWaived(), p.freeTransactions, PreferentialRate.Mul(decimal.NewFromInt(100)))
}
