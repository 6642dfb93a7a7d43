package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind identifies which base account sits at the bottom of a decorator chain.
type AccountKind string

const (
	Savings    AccountKind = "SAVINGS"
	Checking   AccountKind = "CHECKING"
	Investment AccountKind = "INVESTMENT"
)

// ParseAccountKind accepts the kind name in any case ("savings", "Savings", "SAVINGS").
func ParseAccountKind(s string) (AccountKind, bool) {
	switch AccountKind(strings.ToUpper(strings.TrimSpace(s))) {
	case Savings:
		return Savings, true
	case Checking:
		return Checking, true
	case Investment:
		return Investment, true
	}
	return "", false
}

// NumberPrefix is the account-number prefix for the kind.
func (k AccountKind) NumberPrefix() string {
	switch k {
	case Savings:
		return "SAV"
	case Checking:
		return "CHK"
	case Investment:
		return "INV"
	}
	return ""
}

// Label is the human readable account type, e.g. "Savings Account".
func (k AccountKind) Label() string {
	switch k {
	case Savings:
		return "Savings Account"
	case Checking:
		return "Checking Account"
	case Investment:
		return "Investment Account"
	}
	return string(k)
}

// AccountSnapshot is a read-only copy of a decorated account's state, safe to hand
// to reporting and transport layers.
type AccountSnapshot struct {
	AccountNumber string          `json:"accountNumber"`
	CustomerID    string          `json:"customerID"`
	Kind          AccountKind     `json:"kind"`
	AccountType   string          `json:"accountType"`
	Description   string          `json:"description"`
	Balance       decimal.Decimal `json:"balance"`
	Closed        bool            `json:"closed"`
	Policies      []PolicyDetail  `json:"policies"`
}

// PolicyDetail describes one policy layer of an account, outermost first in a snapshot.
type PolicyDetail struct {
	Policy  string            `json:"policy"`
	Details map[string]string `json:"details"`
}
