package dto

import "github.com/shopspring/decimal"

// RedeemPointsRequest redeems reward points for cash.
type RedeemPointsRequest struct {
	Points int64 `json:"points" binding:"required,gt=0"`
}

// AmountRequest carries a single positive amount for a policy operation.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dpositive"`
}

// CurrencyDepositRequest deposits an amount given in a foreign currency.
type CurrencyDepositRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"dpositive"`
	Currency string          `json:"currency" binding:"required,len=3,alpha"`
}

// ExchangeRateRequest sets the rate for one currency on one account.
type ExchangeRateRequest struct {
	Currency string          `json:"currency" binding:"required,len=3,alpha"`
	Rate     decimal.Decimal `json:"rate" binding:"dpositive"`
}

// CurrencyBalanceResponse is an account balance expressed in another currency.
type CurrencyBalanceResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
}

// TaxSavingsResponse reports a computed tax saving.
type TaxSavingsResponse struct {
	AccountNumber string          `json:"accountNumber"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	Savings       decimal.Decimal `json:"savings"`
}

// FreeTransactionResponse reports whether a free transaction was available.
type FreeTransactionResponse struct {
	AccountNumber string `json:"accountNumber"`
	Used          bool   `json:"used"`
}

// PriorityStatusResponse is the priority tier summary.
type PriorityStatusResponse struct {
	AccountNumber string `json:"accountNumber"`
	Status        string `json:"status"`
}
