package domain_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction_StartsPending(t *testing.T) {
	txn := domain.NewTransaction("SAV-1234abcd", domain.Deposit, decimal.NewFromInt(100), "Salary")

	assert.True(t, strings.HasPrefix(txn.TransactionID, "TXN-"))
	assert.Len(t, txn.TransactionID, len("TXN-")+8)
	assert.Equal(t, domain.Pending, txn.Status)
	assert.True(t, txn.BalanceAfter.IsZero())
	assert.False(t, txn.Timestamp.IsZero())
}

func TestTransaction_StatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.TransactionStatus
		apply   func(*domain.Transaction) error
		want    domain.TransactionStatus
		wantErr bool
	}{
		{
			name:  "pending to completed",
			from:  domain.Pending,
			apply: func(tx *domain.Transaction) error { return tx.MarkCompleted(decimal.NewFromInt(5)) },
			want:  domain.Completed,
		},
		{
			name:  "pending to failed",
			from:  domain.Pending,
			apply: (*domain.Transaction).MarkFailed,
			want:  domain.Failed,
		},
		{
			name:  "completed to cancelled",
			from:  domain.Completed,
			apply: (*domain.Transaction).MarkCancelled,
			want:  domain.Cancelled,
		},
		{
			name:    "completed cannot complete again",
			from:    domain.Completed,
			apply:   func(tx *domain.Transaction) error { return tx.MarkCompleted(decimal.NewFromInt(1)) },
			want:    domain.Completed,
			wantErr: true,
		},
		{
			name:    "failed cannot be cancelled",
			from:    domain.Failed,
			apply:   (*domain.Transaction).MarkCancelled,
			want:    domain.Failed,
			wantErr: true,
		},
		{
			name:    "cancelled is terminal",
			from:    domain.Cancelled,
			apply:   (*domain.Transaction).MarkCancelled,
			want:    domain.Cancelled,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.NewTransaction("CHK-00000000", domain.Withdrawal, decimal.NewFromInt(10), "test")
			txn.Status = tt.from

			err := tt.apply(txn)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, txn.Status)
		})
	}
}

func TestTransaction_BalanceAfterStampedOnlyOnCompletion(t *testing.T) {
	txn := domain.NewTransaction("INV-00000000", domain.Fee, decimal.NewFromInt(3), "fee")
	require.NoError(t, txn.MarkCompleted(decimal.RequireFromString("97.50")))
	assert.True(t, txn.BalanceAfter.Equal(decimal.RequireFromString("97.50")))

	require.Error(t, txn.MarkCompleted(decimal.NewFromInt(1)))
	assert.True(t, txn.BalanceAfter.Equal(decimal.RequireFromString("97.50")))
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(40)
	for _, tt := range []struct {
		txType domain.TransactionType
		want   decimal.Decimal
	}{
		{domain.Deposit, amount},
		{domain.InvestmentReturn, amount},
		{domain.Dividend, amount},
		{domain.Withdrawal, amount.Neg()},
		{domain.Fee, amount.Neg()},
	} {
		txn := domain.Transaction{Type: tt.txType, Amount: amount}
		assert.True(t, tt.want.Equal(txn.SignedAmount()), "type %s", tt.txType)
	}
}

func TestParseAccountKind(t *testing.T) {
	kind, ok := domain.ParseAccountKind(" savings ")
	assert.True(t, ok)
	assert.Equal(t, domain.Savings, kind)
	assert.Equal(t, "SAV", kind.NumberPrefix())
	assert.Equal(t, "Savings Account", kind.Label())

	_, ok = domain.ParseAccountKind("brokerage")
	assert.False(t, ok)
}
