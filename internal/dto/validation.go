package dto

import (
	"fmt"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the decimal and account-kind validation tags on
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"dpositive":   decimalCheck(decimal.Decimal.IsPositive),
		"dnonneg":     decimalCheck(func(d decimal.Decimal) bool { return !d.IsNegative() }),
		"dnonzero":    decimalCheck(func(d decimal.Decimal) bool { return !d.IsZero() }),
		"accountkind": validAccountKind,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func decimalCheck(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, isDecimal := fl.Field().Interface().(decimal.Decimal)
		return isDecimal && ok(d)
	}
}

func validAccountKind(fl validator.FieldLevel) bool {
	_, ok := domain.ParseAccountKind(fl.Field().String())
	return ok
}
