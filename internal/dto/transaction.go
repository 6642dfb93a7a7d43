package dto

import (
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyRequest is the body for deposits, withdrawals and fees.
type MoneyRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"dpositive"`
	Description string          `json:"description" binding:"max=500"`
}

// TransferRequest moves money from the path account to ToAccountNumber.
type TransferRequest struct {
	ToAccountNumber string          `json:"toAccountNumber" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"dpositive"`
	Description     string          `json:"description" binding:"max=500"`
}

// ListTransactionsParams defines query parameters for paging transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken string `form:"nextToken"`
}

// StatementParams bounds a statement. Dates are YYYY-MM-DD and inclusive.
type StatementParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Range resolves the statement bounds, defaulting to the last 30 days.
// To covers the whole of its day.
func (p StatementParams) Range(now time.Time) (time.Time, time.Time) {
	to := now
	if p.To != "" {
		t, _ := time.Parse(time.DateOnly, p.To)
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	from := to.AddDate(0, 0, -30)
	if p.From != "" {
		from, _ = time.Parse(time.DateOnly, p.From)
	}
	return from, to
}

// TransactionResponse is a single recorded transaction.
type TransactionResponse = domain.Transaction

// HistoryResponse wraps an account's full history.
type HistoryResponse struct {
	AccountNumber   string                `json:"accountNumber"`
	Transactions    []TransactionResponse `json:"transactions"`
	ComputedBalance decimal.Decimal       `json:"computedBalance"`
}
