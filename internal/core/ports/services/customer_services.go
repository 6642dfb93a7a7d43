package services

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/SscSPs/benefit_ledger/internal/dto"
)

// CustomerSvcFacade manages the customer directory.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	// EnsureCustomer returns the customer, creating a placeholder profile when absent.
	EnsureCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	AttachAccount(ctx context.Context, customerID, accountNumber string) error
	DetachAccount(ctx context.Context, customerID, accountNumber string) error
}
