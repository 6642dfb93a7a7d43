package services

import (
	"context"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
)

// ReportingSvc builds read-only reports. Formatting is left to callers.
type ReportingSvc interface {
	// Statement lists transactions with timestamps in [from, to] inclusive.
	Statement(ctx context.Context, accountNumber string, from, to time.Time) (*domain.Statement, error)
	Portfolio(ctx context.Context, customerID string) (*domain.Portfolio, error)
	BankStats(ctx context.Context) (*domain.BankStats, error)
}
