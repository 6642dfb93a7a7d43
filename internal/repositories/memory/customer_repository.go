package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
)

type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
}

func newCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]domain.Customer)}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

// clone detaches the account list so callers cannot alias stored state.
func clone(c domain.Customer) domain.Customer {
	c.AccountNumbers = slices.Clone(c.AccountNumbers)
	return c
}

func (r *CustomerRepository) SaveCustomer(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.CustomerID]; exists {
		return fmt.Errorf("customer %s: %w", customer.CustomerID, apperrors.ErrDuplicate)
	}
	r.customers[customer.CustomerID] = clone(customer)
	return nil
}

func (r *CustomerRepository) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.CustomerID]; !exists {
		return fmt.Errorf("customer %s: %w", customer.CustomerID, apperrors.ErrCustomerNotFound)
	}
	r.customers[customer.CustomerID] = clone(customer)
	return nil
}

func (r *CustomerRepository) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrCustomerNotFound)
	}
	c = clone(c)
	return &c, nil
}

func (r *CustomerRepository) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, clone(c))
	}
	slices.SortFunc(out, func(a, b domain.Customer) int { return cmp.Compare(a.CustomerID, b.CustomerID) })
	return out, nil
}

