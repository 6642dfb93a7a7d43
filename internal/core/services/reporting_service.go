package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	banking      portssvc.BankingSvcFacade
	transactions portssvc.TransactionSvcFacade
	repos        portsrepo.RepositoryProvider
}

// NewReportingService creates the read-only reporting service.
func NewReportingService(banking portssvc.BankingSvcFacade, transactions portssvc.TransactionSvcFacade, repos portsrepo.RepositoryProvider) portssvc.ReportingSvc {
	return &reportingService{banking: banking, transactions: transactions, repos: repos}
}

// Statement replays the full log so running balances are real balances, then
// keeps only lines inside [from, to].
func (s *reportingService) Statement(ctx context.Context, accountNumber string, from, to time.Time) (*domain.Statement, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: statement end %s is before start %s", apperrors.ErrValidation, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	acct, err := s.banking.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	history, err := s.transactions.History(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.StatementLine, 0)
	for _, line := range accounting.RunningBalances(history) {
		ts := line.Transaction.Timestamp
		if ts.Before(from) || ts.After(to) {
			continue
		}
		lines = append(lines, line)
	}

	s.LogDebug(ctx, "Statement generated", slog.String("account_number", accountNumber), slog.Int("lines", len(lines)))
	return &domain.Statement{
		Account:     *acct,
		From:        from,
		To:          to,
		Lines:       lines,
		GeneratedAt: time.Now(),
	}, nil
}

func (s *reportingService) Portfolio(ctx context.Context, customerID string) (*domain.Portfolio, error) {
	snaps, err := s.banking.CustomerAccounts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	open := make([]domain.AccountSnapshot, 0, len(snaps))
	byKind := make(map[domain.AccountKind]*domain.PortfolioEntry)
	total := decimal.Zero
	for _, snap := range snaps {
		if snap.Closed {
			continue
		}
		open = append(open, snap)
		total = total.Add(snap.Balance)
		entry, ok := byKind[snap.Kind]
		if !ok {
			entry = &domain.PortfolioEntry{Kind: snap.Kind, AccountType: snap.Kind.Label(), Balance: decimal.Zero}
			byKind[snap.Kind] = entry
		}
		entry.Balance = entry.Balance.Add(snap.Balance)
		entry.Count++
	}

	breakdown := make([]domain.PortfolioEntry, 0, len(byKind))
	for _, kind := range []domain.AccountKind{domain.Savings, domain.Checking, domain.Investment} {
		entry, ok := byKind[kind]
		if !ok {
			continue
		}
		entry.Percentage = accounting.Percentage(entry.Balance, total)
		breakdown = append(breakdown, *entry)
	}

	return &domain.Portfolio{
		CustomerID:   customerID,
		TotalBalance: total,
		Accounts:     open,
		Breakdown:    breakdown,
		GeneratedAt:  time.Now(),
	}, nil
}

func (s *reportingService) BankStats(ctx context.Context) (*domain.BankStats, error) {
	customers, err := s.repos.CustomerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	accountCount, err := s.banking.TotalManagedAccounts(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.banking.TotalAssetsUnderManagement(ctx)
	if err != nil {
		return nil, err
	}
	txnCount, err := s.repos.TransactionRepo.CountTransactions(ctx)
	if err != nil {
		return nil, err
	}
	notificationCount, err := s.repos.NotificationRepo.CountNotifications(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.BankStats{
		TotalCustomers:     len(customers),
		TotalAccounts:      accountCount,
		TotalAssets:        assets,
		TotalTransactions:  txnCount,
		TotalNotifications: notificationCount,
		GeneratedAt:        time.Now(),
	}, nil
}
