package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Account-level failures raised by base accounts and passed through every decorator unchanged.
var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAccountClosed is returned for any balance operation on a closed account.
	ErrAccountClosed = errors.New("account is closed")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverdraftExceeded is returned when overdraft protection cannot cover the shortfall.
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")
)

// Policy (decorator) specific violations.
var (
	ErrUnsupportedCurrency  = errors.New("unsupported currency")
	ErrInsuranceInactive    = errors.New("insurance is not active")
	ErrClaimExceedsCoverage = errors.New("claim amount exceeds insurance coverage")
	ErrInsufficientPoints   = errors.New("not enough reward points")
	ErrInvalidRepayment     = errors.New("repayment exceeds used overdraft")
	ErrPolicyNotApplied     = errors.New("policy not applied to account")
)

// Facade-boundary lookup and precondition failures.
var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrNotAnInvestmentAccount  = errors.New("account is not an investment account")
	ErrUnknownAccountKind      = errors.New("unknown account type")
	ErrSameAccount             = errors.New("cannot transfer to the same account")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidStatusTransition = errors.New("invalid transaction status transition")
)
