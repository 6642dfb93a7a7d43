package accounting

import (
	"slices"
	"testing"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(typ domain.TransactionType, amount string, status domain.TransactionStatus, at time.Time) *domain.Transaction {
	t := domain.NewTransaction("SAV-1", typ, decimal.RequireFromString(amount), "")
	t.Status = status
	t.Timestamp = at
	return t
}

func TestComputeBalance(t *testing.T) {
	now := time.Now()
	txns := []*domain.Transaction{
		txn(domain.Deposit, "100", domain.Completed, now),
		txn(domain.InvestmentReturn, "10", domain.Completed, now),
		txn(domain.Dividend, "5", domain.Completed, now),
		txn(domain.Withdrawal, "30", domain.Completed, now),
		txn(domain.Fee, "2.5", domain.Completed, now),
		txn(domain.Deposit, "1000", domain.Failed, now),
		txn(domain.Withdrawal, "50", domain.Cancelled, now),
	}
	assert.True(t, ComputeBalance(txns).Equal(decimal.RequireFromString("82.5")))
	assert.True(t, ComputeBalance(nil).IsZero())
}

func TestRunningBalances(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		*txn(domain.Withdrawal, "40", domain.Completed, t0.Add(2*time.Hour)),
		*txn(domain.Deposit, "100", domain.Completed, t0),
		*txn(domain.Fee, "5", domain.Completed, t0.Add(3*time.Hour)),
		*txn(domain.Deposit, "20", domain.Completed, t0.Add(time.Hour)),
	}

	lines := RunningBalances(txns)
	require.Len(t, lines, 4)

	got := make([]string, 0, 4)
	for _, l := range lines {
		got = append(got, l.RunningBalance.String())
	}
	assert.Equal(t, []string{"75", "80", "120", "100"}, got)
	assert.Equal(t, domain.Fee, lines[0].Transaction.Type)
}

func TestTotalsByTypeAndPercentage(t *testing.T) {
	now := time.Now()
	totals := TotalsByType([]*domain.Transaction{
		txn(domain.Deposit, "10", domain.Completed, now),
		txn(domain.Deposit, "15", domain.Completed, now),
		txn(domain.Deposit, "99", domain.Pending, now),
	})
	assert.True(t, totals[domain.Deposit].Equal(decimal.NewFromInt(25)))
	assert.True(t, totals[domain.Withdrawal].IsZero())

	assert.True(t, Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3)).Equal(decimal.RequireFromString("33.33")))
	assert.True(t, Percentage(decimal.NewFromInt(5), decimal.Zero).IsZero())
}

func TestNewestFirst(t *testing.T) {
	t0 := time.Now()
	a := txn(domain.Deposit, "1", domain.Completed, t0)
	b := txn(domain.Deposit, "1", domain.Completed, t0.Add(time.Second))
	list := []*domain.Transaction{a, b}
	slices.SortFunc(list, NewestFirst)
	assert.Same(t, b, list[0])
}
