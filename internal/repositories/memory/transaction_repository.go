package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
)

// TransactionRepository keeps one append-only log per account plus an ID index.
type TransactionRepository struct {
	mu    sync.RWMutex
	logs  map[string][]*domain.Transaction
	byID  map[string]*domain.Transaction
	count int
}

func newTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		logs: make(map[string][]*domain.Transaction),
		byID: make(map[string]*domain.Transaction),
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) AppendTransaction(_ context.Context, txn *domain.Transaction) error {
	if txn == nil || txn.TransactionID == "" {
		return fmt.Errorf("append transaction: %w", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[txn.TransactionID]; exists {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
	}
	r.logs[txn.AccountNumber] = append(r.logs[txn.AccountNumber], txn)
	r.byID[txn.TransactionID] = txn
	r.count++
	return nil
}

func (r *TransactionRepository) ClearAccountTransactions(_ context.Context, accountNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, txn := range r.logs[accountNumber] {
		delete(r.byID, txn.TransactionID)
	}
	r.count -= len(r.logs[accountNumber])
	delete(r.logs, accountNumber)
	return nil
}

func (r *TransactionRepository) FindTransactionsByAccount(_ context.Context, accountNumber string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.logs[accountNumber]), nil
}

func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.byID[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrTransactionNotFound)
	}
	return txn, nil
}

func (r *TransactionRepository) CountTransactions(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count, nil
}
