package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/utils/accounting"
	"github.com/SscSPs/benefit_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// transactionService is the transaction recorder. mu guards record state so
// readers always get consistent copies.
type transactionService struct {
	BaseService
	mu      sync.RWMutex
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates the transaction recorder.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

func (s *transactionService) Record(ctx context.Context, account accounts.Account, txType domain.TransactionType, amount decimal.Decimal, description string, apply func() error) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(ctx, account, txType, amount, description, apply)
}

func (s *transactionService) record(ctx context.Context, account accounts.Account, txType domain.TransactionType, amount decimal.Decimal, description string, apply func() error) (*domain.Transaction, error) {
	txn := domain.NewTransaction(account.AccountNumber(), txType, amount, description)
	txn.BalanceBefore = account.Balance()

	if err := apply(); err != nil {
		_ = txn.MarkFailed()
		s.LogWarn(ctx, err, "Transaction failed",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_number", txn.AccountNumber),
			slog.String("type", string(txType)),
			slog.String("amount", amount.String()))
		return nil, err
	}

	if err := txn.MarkCompleted(account.Balance()); err != nil {
		return nil, err
	}
	if err := s.txnRepo.AppendTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to append transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogDebug(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_number", txn.AccountNumber),
		slog.String("type", string(txType)),
		slog.String("amount", amount.String()),
		slog.String("balance_after", txn.BalanceAfter.String()))
	out := *txn
	return &out, nil
}

func (s *transactionService) RecordDeposit(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	return s.Record(ctx, account, domain.Deposit, amount, description, func() error { return account.Deposit(amount) })
}

func (s *transactionService) RecordWithdrawal(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	return s.Record(ctx, account, domain.Withdrawal, amount, description, func() error { return account.Withdraw(amount) })
}

func (s *transactionService) RecordInvestmentReturn(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	return s.Record(ctx, account, domain.InvestmentReturn, amount, description, func() error { return account.Deposit(amount) })
}

func (s *transactionService) RecordDividend(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	return s.Record(ctx, account, domain.Dividend, amount, description, func() error { return account.Deposit(amount) })
}

func (s *transactionService) RecordFee(ctx context.Context, account accounts.Account, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	return s.Record(ctx, account, domain.Fee, amount, description, func() error { return account.Withdraw(amount) })
}

func (s *transactionService) RecordTransfer(ctx context.Context, from, to accounts.Account, amount decimal.Decimal, description string) (*domain.TransferResult, error) {
	if from.AccountNumber() == to.AccountNumber() {
		return nil, fmt.Errorf("transfer on %s: %w", from.AccountNumber(), apperrors.ErrSameAccount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.record(ctx, from, domain.Withdrawal, amount, "Transfer to "+to.AccountNumber()+": "+description,
		func() error { return from.Withdraw(amount) })
	if err != nil {
		return nil, err
	}
	in, err := s.record(ctx, to, domain.Deposit, amount, "Transfer from "+from.AccountNumber()+": "+description,
		func() error { return to.Deposit(amount) })
	if err != nil {
		// the withdrawal leg stays recorded
		s.LogError(ctx, err, "Transfer deposit leg failed after withdrawal",
			slog.String("withdrawal_id", out.TransactionID),
			slog.String("from", from.AccountNumber()),
			slog.String("to", to.AccountNumber()),
			slog.String("amount", amount.String()))
		return nil, fmt.Errorf("transfer deposit leg to %s failed after withdrawal %s: %w", to.AccountNumber(), out.TransactionID, err)
	}

	return &domain.TransferResult{Withdrawal: *out, Deposit: *in}, nil
}

func (s *transactionService) History(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log, err := s.txnRepo.FindTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	return copyAll(log), nil
}

func copyAll(log []*domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(log))
	for i, t := range log {
		out[i] = *t
	}
	return out
}

func (s *transactionService) ListTransactions(ctx context.Context, accountNumber string, limit int, nextToken string) (*domain.TransactionPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log, err := s.txnRepo.FindTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(log, accounting.NewestFirst)

	if nextToken != "" {
		cursorTS, cursorID, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		start := slices.IndexFunc(log, func(t *domain.Transaction) bool {
			return pagination.Before(t.Timestamp, t.TransactionID, cursorTS, cursorID)
		})
		if start < 0 {
			start = len(log)
		}
		log = log[start:]
	}

	limit = pagination.ClampLimit(limit)
	page := &domain.TransactionPage{}
	if len(log) > limit {
		last := log[limit-1]
		page.NextToken = pagination.EncodeToken(last.Timestamp, last.TransactionID)
		log = log[:limit]
	}
	page.Transactions = copyAll(log)
	return page, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	out := *txn
	return &out, nil
}

func (s *transactionService) ComputedBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log, err := s.txnRepo.FindTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.ComputeBalance(log), nil
}

func (s *transactionService) Statistics(ctx context.Context, accountNumber string) (*domain.TransactionStatistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log, err := s.txnRepo.FindTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	totals := accounting.TotalsByType(log)
	stats := &domain.TransactionStatistics{
		AccountNumber:     accountNumber,
		TotalTransactions: len(log),
		TotalDeposits:     totals[domain.Deposit],
		TotalWithdrawals:  totals[domain.Withdrawal],
	}
	if len(log) > 0 {
		last := *log[len(log)-1]
		stats.LastTransaction = &last
	}
	return stats, nil
}

func (s *transactionService) CancelTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := txn.MarkCancelled(); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction cancelled", slog.String("transaction_id", transactionID))
	out := *txn
	return &out, nil
}

func (s *transactionService) ClearHistory(ctx context.Context, accountNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txnRepo.ClearAccountTransactions(ctx, accountNumber)
}
