package accounts

import (
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PolicyKind names a benefit policy that can wrap an account.
type PolicyKind string

const (
	OverdraftProtectionPolicy PolicyKind = "OVERDRAFT_PROTECTION"
	InsurancePolicy           PolicyKind = "INSURANCE"
	RewardPointsPolicy        PolicyKind = "REWARD_POINTS"
	TaxOptimizerPolicy        PolicyKind = "TAX_OPTIMIZER"
	ForeignCurrencyPolicy     PolicyKind = "FOREIGN_CURRENCY"
	PriorityBankingPolicy     PolicyKind = "PRIORITY_BANKING"
)

// Decorator is an Account that wraps exactly one inner Account.
type Decorator interface {
	Account
	Inner() Account
	Policy() PolicyKind
	// Details reports the policy's current state as display strings.
	Details() map[string]string
}

// wrapper forwards every Account operation to inner unchanged. Decorators embed
// it and override only what their policy changes.
type wrapper struct {
	inner Account
}

func (w *wrapper) Inner() Account                        { return w.inner }
func (w *wrapper) AccountNumber() string                 { return w.inner.AccountNumber() }
func (w *wrapper) Kind() domain.AccountKind              { return w.inner.Kind() }
func (w *wrapper) AccountType() string                   { return w.inner.AccountType() }
func (w *wrapper) Balance() decimal.Decimal              { return w.inner.Balance() }
func (w *wrapper) Deposit(amount decimal.Decimal) error  { return w.inner.Deposit(amount) }
func (w *wrapper) Withdraw(amount decimal.Decimal) error { return w.inner.Withdraw(amount) }
func (w *wrapper) Description() string                   { return w.inner.Description() }
func (w *wrapper) Close()                                { w.inner.Close() }
func (w *wrapper) IsClosed() bool                        { return w.inner.IsClosed() }
func (w *wrapper) Base() Account                         { return w.inner.Base() }

// FindPolicy walks the chain from the outermost node inward and returns the
// first node of type T.
func FindPolicy[T Account](a Account) (T, bool) {
	for a != nil {
		if p, ok := a.(T); ok {
			return p, true
		}
		d, ok := a.(Decorator)
		if !ok {
			break
		}
		a = d.Inner()
	}
	var zero T
	return zero, false
}

// EachPolicy calls fn for every decorator from the outermost inward.
func EachPolicy(a Account, fn func(Decorator)) {
	for {
		d, ok := a.(Decorator)
		if !ok {
			return
		}
		fn(d)
		a = d.Inner()
	}
}

// Policies lists the chain's policies, outermost first.
func Policies(a Account) []PolicyKind {
	var out []PolicyKind
	EachPolicy(a, func(d Decorator) { out = append(out, d.Policy()) })
	return out
}

// HasPolicy reports whether the chain contains a policy of the given kind.
func HasPolicy(a Account, kind PolicyKind) bool {
	found := false
	EachPolicy(a, func(d Decorator) {
		if d.Policy() == kind {
			found = true
		}
	})
	return found
}

// Depth is the number of decorators above the base account.
func Depth(a Account) int {
	n := 0
	EachPolicy(a, func(Decorator) { n++ })
	return n
}
