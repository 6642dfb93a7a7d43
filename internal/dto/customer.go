package dto

import (
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	CustomerID  string     `json:"customerID" binding:"required,max=64"`
	Name        string     `json:"name" binding:"required,max=200"`
	Email       string     `json:"email" binding:"required,email"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	CreatedBy   string     `json:"-"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID     string    `json:"customerID"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	AccountNumbers []string  `json:"accountNumbers"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	numbers := c.AccountNumbers
	if numbers == nil {
		numbers = []string{}
	}
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		Name:           c.Name,
		Email:          c.Email,
		DateOfBirth:    c.DateOfBirth,
		AccountNumbers: numbers,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
