package accounting

import (
	"cmp"
	"slices"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBalance replays completed transactions: credits add, everything else subtracts.
func ComputeBalance(txns []*domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		if t.Status == domain.Completed {
			balance = balance.Add(t.SignedAmount())
		}
	}
	return balance
}

// RunningBalances computes running balances oldest-first over txns regardless of
// status (deposits add, everything else subtracts) and returns the lines
// newest-first.
func RunningBalances(txns []domain.Transaction) []domain.StatementLine {
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int { return a.Timestamp.Compare(b.Timestamp) })

	lines := make([]domain.StatementLine, len(sorted))
	running := decimal.Zero
	for i, t := range sorted {
		if t.Type == domain.Deposit {
			running = running.Add(t.Amount)
		} else {
			running = running.Sub(t.Amount)
		}
		lines[i] = domain.StatementLine{Transaction: t, RunningBalance: running}
	}
	slices.Reverse(lines)
	return lines
}

// TotalsByType sums completed transaction amounts per type.
func TotalsByType(txns []*domain.Transaction) map[domain.TransactionType]decimal.Decimal {
	out := make(map[domain.TransactionType]decimal.Decimal)
	for _, t := range txns {
		if t.Status != domain.Completed {
			continue
		}
		out[t.Type] = out[t.Type].Add(t.Amount)
	}
	return out
}

// Percentage returns part/total as a percentage, using a 4 dp ratio. A zero total yields zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.DivRound(total, 4).Mul(decimal.NewFromInt(100))
}

// NewestFirst orders transactions by timestamp descending, ties by ID descending.
func NewestFirst(a, b *domain.Transaction) int {
	if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(b.TransactionID, a.TransactionID)
}
