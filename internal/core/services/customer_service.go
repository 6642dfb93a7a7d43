package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/dto"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates the customer directory service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	id := strings.TrimSpace(req.CustomerID)
	if id == "" {
		return nil, fmt.Errorf("%w: customer ID is required", apperrors.ErrValidation)
	}
	actor := req.CreatedBy
	if actor == "" {
		actor = middleware.ActorFromCtx(ctx)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:     id,
		Name:           req.Name,
		Email:          req.Email,
		AccountNumbers: []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if req.DateOfBirth != nil {
		customer.DateOfBirth = *req.DateOfBirth
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", id))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", id))
	return &customer, nil
}

func (s *customerService) EnsureCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, apperrors.ErrCustomerNotFound) {
		return nil, err
	}
	return s.CreateCustomer(ctx, dto.CreateCustomerRequest{
		CustomerID: customerID,
		Name:       "Customer " + customerID,
		Email:      customerID + "@bank.com",
	})
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

func (s *customerService) AttachAccount(ctx context.Context, customerID, accountNumber string) error {
	return s.update(ctx, customerID, func(c *domain.Customer) { c.AddAccount(accountNumber) })
}

func (s *customerService) DetachAccount(ctx context.Context, customerID, accountNumber string) error {
	return s.update(ctx, customerID, func(c *domain.Customer) { c.RemoveAccount(accountNumber) })
}

func (s *customerService) update(ctx context.Context, customerID string, mutate func(*domain.Customer)) error {
	c, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	mutate(c)
	c.LastUpdatedAt = time.Now()
	c.LastUpdatedBy = middleware.ActorFromCtx(ctx)
	return s.customerRepo.UpdateCustomer(ctx, *c)
}
