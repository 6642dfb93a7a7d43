package accounts

import (
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Benefit wraps an account with one policy.
type Benefit struct {
	Policy PolicyKind
	Apply  func(Account) Account
}

var (
	savingsInsuranceThreshold = decimal.NewFromInt(1000)
	premiumThreshold          = decimal.NewFromInt(5000)
)

func withRewardPoints(ppd int64) Benefit {
	return Benefit{RewardPointsPolicy, func(a Account) Account { return NewRewardPoints(a, decimal.NewFromInt(ppd)) }}
}

func withInsurance(coverage int64) Benefit {
	return Benefit{InsurancePolicy, func(a Account) Account { return NewInsurance(a, decimal.NewFromInt(coverage)) }}
}

func withTaxOptimizer(rate string) Benefit {
	return Benefit{TaxOptimizerPolicy, func(a Account) Account { return NewTaxOptimizer(a, decimal.RequireFromString(rate)) }}
}

func withOverdraftProtection(limit int64) Benefit {
	return Benefit{OverdraftProtectionPolicy, func(a Account) Account { return NewOverdraftProtection(a, decimal.NewFromInt(limit)) }}
}

func withForeignCurrency(base string) Benefit {
	return Benefit{ForeignCurrencyPolicy, func(a Account) Account { return NewForeignCurrency(a, base) }}
}

func withPriorityBanking() Benefit {
	return Benefit{PriorityBankingPolicy, func(a Account) Account { return NewPriorityBanking(a) }}
}

// PlanBenefits returns the policies an account of kind opened with
// initialDeposit receives, innermost first.
func PlanBenefits(kind domain.AccountKind, initialDeposit decimal.Decimal) []Benefit {
	switch kind {
	case domain.Savings:
		plan := []Benefit{withRewardPoints(2)}
		if initialDeposit.GreaterThan(savingsInsuranceThreshold) {
			plan = append(plan, withInsurance(10000))
		}
		return plan
	case domain.Investment:
		plan := []Benefit{withTaxOptimizer("0.15")}
		if initialDeposit.GreaterThan(premiumThreshold) {
			plan = append(plan, withInsurance(25000), withPriorityBanking())
		}
		return plan
	case domain.Checking:
		plan := []Benefit{withOverdraftProtection(2000)}
		if initialDeposit.GreaterThan(premiumThreshold) {
			plan = append(plan, withForeignCurrency(BaseCurrency))
		}
		return plan
	}
	return nil
}

// SafetyModePlan is the fixed policy set for safety-mode investment accounts.
func SafetyModePlan() []Benefit {
	return []Benefit{withInsurance(50000), withTaxOptimizer("0.20")}
}

// Assemble applies plan to a in order; the last benefit ends up outermost.
func Assemble(a Account, plan []Benefit) Account {
	for _, b := range plan {
		a = b.Apply(a)
	}
	return a
}

// Open creates a new base account of kind and decorates it for initialDeposit.
// The deposit itself is left to the caller and belongs on Base().
func Open(kind domain.AccountKind, initialDeposit decimal.Decimal) (Account, error) {
	base, err := NewBaseAccount(kind)
	if err != nil {
		return nil, err
	}
	return Assemble(base, PlanBenefits(kind, initialDeposit)), nil
}

// OpenSafetyMode creates an investment account with the safety-mode policies.
func OpenSafetyMode() Account {
	return Assemble(NewInvestmentAccount(NewAccountNumber(domain.Investment), decimal.Zero), SafetyModePlan())
}

// CloseChain cancels every insurance layer and then closes the account.
func CloseChain(a Account) {
	EachPolicy(a, func(d Decorator) {
		if ins, ok := d.(*Insurance); ok {
			ins.CancelInsurance()
		}
	})
	a.Close()
}
