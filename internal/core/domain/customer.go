package domain

import (
	"slices"
	"time"
)

// Customer owns an ordered list of account numbers. The core never mutates
// balances through a Customer; it is directory data only.
type Customer struct {
	CustomerID     string    `json:"customerID"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	AccountNumbers []string  `json:"accountNumbers"`
	AuditFields
}

// AddAccount appends an account number, keeping insertion order.
func (c *Customer) AddAccount(accountNumber string) {
	c.AccountNumbers = append(c.AccountNumbers, accountNumber)
}

// RemoveAccount drops the first occurrence of accountNumber.
func (c *Customer) RemoveAccount(accountNumber string) {
	if i := slices.Index(c.AccountNumbers, accountNumber); i >= 0 {
		c.AccountNumbers = slices.Delete(c.AccountNumbers, i, i+1)
	}
}

// OwnsAccount reports whether accountNumber belongs to the customer.
func (c *Customer) OwnsAccount(accountNumber string) bool {
	return slices.Contains(c.AccountNumbers, accountNumber)
}
