package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a recorded money movement.
type TransactionType string

const (
	Deposit          TransactionType = "DEPOSIT"
	Withdrawal       TransactionType = "WITHDRAWAL"
	Transfer         TransactionType = "TRANSFER"
	InvestmentReturn TransactionType = "INVESTMENT"
	Dividend         TransactionType = "DIVIDEND"
	Fee              TransactionType = "FEE"
)

// Credits reports whether a completed transaction of this type adds to the balance.
func (t TransactionType) Credits() bool {
	switch t {
	case Deposit, InvestmentReturn, Dividend:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a Transaction.
type TransactionStatus string

const (
	Pending   TransactionStatus = "PENDING"
	Completed TransactionStatus = "COMPLETED"
	Failed    TransactionStatus = "FAILED"
	Cancelled TransactionStatus = "CANCELLED"
)

// Transaction is an audit record of one balance-affecting operation on one account.
// Once Completed only a single transition to Cancelled is allowed.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	AccountNumber string            `json:"accountNumber"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	Timestamp     time.Time         `json:"timestamp"`
	Status        TransactionStatus `json:"status"`
	BalanceBefore decimal.Decimal   `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal   `json:"balanceAfter"` // Set only on completion
}

// NewTransaction creates a Pending transaction with a fresh TXN- identifier.
func NewTransaction(accountNumber string, txType TransactionType, amount decimal.Decimal, description string) *Transaction {
	return &Transaction{
		TransactionID: "TXN-" + strings.ToUpper(uuid.NewString()[:8]),
		AccountNumber: accountNumber,
		Type:          txType,
		Amount:        amount,
		Description:   description,
		Timestamp:     time.Now(),
		Status:        Pending,
	}
}

// MarkCompleted moves a Pending transaction to Completed and stamps the post-operation balance.
func (t *Transaction) MarkCompleted(balanceAfter decimal.Decimal) error {
	if t.Status != Pending {
		return t.transitionError(Completed)
	}
	t.Status = Completed
	t.BalanceAfter = balanceAfter
	return nil
}

// MarkFailed moves a Pending transaction to Failed.
func (t *Transaction) MarkFailed() error {
	if t.Status != Pending {
		return t.transitionError(Failed)
	}
	t.Status = Failed
	return nil
}

// MarkCancelled cancels a Pending or Completed transaction. Cancelling does not
// touch the account balance.
func (t *Transaction) MarkCancelled() error {
	if t.Status != Pending && t.Status != Completed {
		return t.transitionError(Cancelled)
	}
	t.Status = Cancelled
	return nil
}

// SignedAmount is the contribution of a completed transaction to the account balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type.Credits() {
		return t.Amount
	}
	return t.Amount.Neg()
}

func (t *Transaction) transitionError(to TransactionStatus) error {
	return fmt.Errorf("%w: %s cannot move from %s to %s", apperrors.ErrInvalidStatusTransition, t.TransactionID, t.Status, to)
}
