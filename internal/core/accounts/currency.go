package accounts

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the unit every account balance is held in.
const BaseCurrency = "USD"

// DefaultExchangeRates are units of each currency per one USD.
func DefaultExchangeRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.85"),
		"GBP": decimal.RequireFromString("0.73"),
		"JPY": decimal.RequireFromString("110.0"),
		"CAD": decimal.RequireFromString("1.25"),
	}
}

// ForeignCurrency adds currency-denominated views on top of the account. Each
// instance owns its rate table.
type ForeignCurrency struct {
	wrapper
	baseCurrency string
	rates        map[string]decimal.Decimal
}

func NewForeignCurrency(inner Account, baseCurrency string) *ForeignCurrency {
	return &ForeignCurrency{
		wrapper:      wrapper{inner: inner},
		baseCurrency: strings.ToUpper(baseCurrency),
		rates:        DefaultExchangeRates(),
	}
}

func (f *ForeignCurrency) Policy() PolicyKind { return ForeignCurrencyPolicy }

func (f *ForeignCurrency) Description() string {
	return describe(f.inner, "Multi-Currency Support")
}

func (f *ForeignCurrency) Details() map[string]string {
	out := map[string]string{"baseCurrency": f.baseCurrency}
	for code, r := range f.rates {
		out["rate."+code] = r.String()
	}
	return out
}

func (f *ForeignCurrency) rate(code string) (decimal.Decimal, error) {
	r, ok := f.rates[strings.ToUpper(code)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, code)
	}
	return r, nil
}

// DepositInCurrency converts amount by the code's rate and deposits the result.
// It returns the amount credited in the base unit.
func (f *ForeignCurrency) DepositInCurrency(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	r, err := f.rate(code)
	if err != nil {
		return decimal.Zero, err
	}
	converted := amount.Mul(r)
	if err := f.Deposit(converted); err != nil {
		return decimal.Zero, err
	}
	return converted, nil
}

// BalanceInCurrency is balance/rate rounded half-up to cents.
func (f *ForeignCurrency) BalanceInCurrency(code string) (decimal.Decimal, error) {
	r, err := f.rate(code)
	if err != nil {
		return decimal.Zero, err
	}
	return f.Balance().DivRound(r, 2), nil
}

// UpdateExchangeRate sets or adds a rate for code on this instance only.
func (f *ForeignCurrency) UpdateExchangeRate(code string, rate decimal.Decimal) error {
	if strings.TrimSpace(code) == "" || !rate.IsPositive() {
		return fmt.Errorf("exchange rate %s for %q: %w", rate, code, apperrors.ErrValidation)
	}
	f.rates[strings.ToUpper(code)] = rate
	return nil
}

func (f *ForeignCurrency) BaseCurrency() string { return f.baseCurrency }

// SupportedCurrencies lists the codes in the rate table, sorted.
func (f *ForeignCurrency) SupportedCurrencies() []string {
	return slices.Sorted(maps.Keys(f.rates))
}

// ExchangeRate returns the current rate for code.
func (f *ForeignCurrency) ExchangeRate(code string) (decimal.Decimal, error) {
	return f.rate(code)
}
