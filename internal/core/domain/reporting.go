package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine pairs a transaction with the running balance after it.
type StatementLine struct {
	Transaction    Transaction     `json:"transaction"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// Statement is an account's transactions within a date range, newest first.
type Statement struct {
	Account     AccountSnapshot `json:"account"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Lines       []StatementLine `json:"lines"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// PortfolioEntry aggregates a customer's open accounts of one kind.
type PortfolioEntry struct {
	Kind        AccountKind     `json:"kind"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Count       int             `json:"count"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// Portfolio summarizes every open account a customer holds.
type Portfolio struct {
	CustomerID   string            `json:"customerID"`
	TotalBalance decimal.Decimal   `json:"totalBalance"`
	Accounts     []AccountSnapshot `json:"accounts"`
	Breakdown    []PortfolioEntry  `json:"breakdown"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// TransactionStatistics summarizes one account's transaction log.
type TransactionStatistics struct {
	AccountNumber     string          `json:"accountNumber"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	LastTransaction   *Transaction    `json:"lastTransaction,omitempty"`
}

// TransactionPage is one page of an account's history, newest first.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	NextToken    string        `json:"nextToken,omitempty"`
}

// TransferResult holds both recorded legs of a transfer.
type TransferResult struct {
	Withdrawal Transaction `json:"withdrawal"`
	Deposit    Transaction `json:"deposit"`
}

// BankStats is a bank-wide summary.
type BankStats struct {
	TotalCustomers     int             `json:"totalCustomers"`
	TotalAccounts      int             `json:"totalAccounts"`
	TotalAssets        decimal.Decimal `json:"totalAssets"`
	TotalTransactions  int             `json:"totalTransactions"`
	TotalNotifications int             `json:"totalNotifications"`
	GeneratedAt        time.Time       `json:"generatedAt"`
}
