package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
)

type accountEntry struct {
	account    accounts.Account
	customerID string
}

type AccountRepository struct {
	mu      sync.RWMutex
	byNum   map[string]accountEntry
	ordered []string
}

func newAccountRepository() *AccountRepository {
	return &AccountRepository{byNum: make(map[string]accountEntry)}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(_ context.Context, customerID string, account accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := account.AccountNumber()
	if _, exists := r.byNum[num]; exists {
		return fmt.Errorf("account %s: %w", num, apperrors.ErrDuplicate)
	}
	r.byNum[num] = accountEntry{account: account, customerID: customerID}
	r.ordered = append(r.ordered, num)
	return nil
}

func (r *AccountRepository) DeleteAccount(_ context.Context, accountNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNum[accountNumber]; !exists {
		return fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrAccountNotFound)
	}
	delete(r.byNum, accountNumber)
	if i := slices.Index(r.ordered, accountNumber); i >= 0 {
		r.ordered = slices.Delete(r.ordered, i, i+1)
	}
	return nil
}

func (r *AccountRepository) FindAccountByNumber(_ context.Context, accountNumber string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byNum[accountNumber]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrAccountNotFound)
	}
	return e.account, nil
}

func (r *AccountRepository) FindAccountOwner(_ context.Context, accountNumber string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byNum[accountNumber]
	if !ok {
		return "", fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrAccountNotFound)
	}
	return e.customerID, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context) ([]accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]accounts.Account, 0, len(r.ordered))
	for _, num := range r.ordered {
		out = append(out, r.byNum[num].account)
	}
	return out, nil
}

func (r *AccountRepository) CountAccounts(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byNum), nil
}
