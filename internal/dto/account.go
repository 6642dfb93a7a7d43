package dto

import (
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open a new account.
type OpenAccountRequest struct {
	AccountType    string          `json:"accountType" binding:"required,accountkind"`
	InitialDeposit decimal.Decimal `json:"initialDeposit" binding:"dnonneg"`
}

// Kind returns the parsed account kind. Binding has already validated it.
func (r OpenAccountRequest) Kind() domain.AccountKind {
	k, _ := domain.ParseAccountKind(r.AccountType)
	return k
}

// SafetyInvestmentRequest opens a safety-mode investment account.
type SafetyInvestmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dpositive"`
}

// AccountResponse is the externally visible state of an account.
type AccountResponse = domain.AccountSnapshot

// ListAccountsResponse wraps a customer's accounts.
type ListAccountsResponse struct {
	CustomerID string            `json:"customerID"`
	Accounts   []AccountResponse `json:"accounts"`
}

// ApplyReturnsRequest credits investment returns. Negative amounts book a loss.
type ApplyReturnsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dnonzero"`
}

// FindAccountParams defines query parameters for account lookup by type.
type FindAccountParams struct {
	Type string `form:"type"`
}

// FindAccountResponse is the result of an account lookup.
type FindAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	Found         bool   `json:"found"`
}
