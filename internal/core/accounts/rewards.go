package accounts

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PointsPerDollarRedeemed is how many points buy one currency unit on redemption.
const PointsPerDollarRedeemed = 100

// RewardPoints earns floor(amount*pointsPerDollar) points on every deposit.
type RewardPoints struct {
	wrapper
	pointsPerDollar decimal.Decimal
	points          int64
}

func NewRewardPoints(inner Account, pointsPerDollar decimal.Decimal) *RewardPoints {
	return &RewardPoints{wrapper: wrapper{inner: inner}, pointsPerDollar: pointsPerDollar}
}

func (r *RewardPoints) Policy() PolicyKind { return RewardPointsPolicy }

func (r *RewardPoints) Description() string {
	return describe(r.inner, fmt.Sprintf("Reward Points (%s points/$)", r.pointsPerDollar))
}

func (r *RewardPoints) Details() map[string]string {
	return map[string]string{
		"pointsPerDollar": r.pointsPerDollar.String(),
		"points":          strconv.FormatInt(r.points, 10),
		"redeemableValue": RedemptionValue(r.points).StringFixed(2),
	}
}

// Deposit forwards the deposit and credits points only if it succeeded.
func (r *RewardPoints) Deposit(amount decimal.Decimal) error {
	if err := r.inner.Deposit(amount); err != nil {
		return err
	}
	r.points += r.PointsFor(amount)
	return nil
}

// PointsFor is the number of points a deposit of amount earns.
func (r *RewardPoints) PointsFor(amount decimal.Decimal) int64 {
	return amount.Mul(r.pointsPerDollar).Floor().IntPart()
}

// RedemptionValue is the cash value of n points, truncated to cents.
func RedemptionValue(n int64) decimal.Decimal {
	return decimal.NewFromInt(n).Div(decimal.NewFromInt(PointsPerDollarRedeemed)).Truncate(2)
}

// RedeemPoints deposits the value of n points into the inner account, bypassing
// point accrual, and returns the amount deposited.
func (r *RewardPoints) RedeemPoints(n int64) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, fmt.Errorf("redeem %d points on %s: %w", n, r.AccountNumber(), apperrors.ErrInvalidAmount)
	}
	if n > r.points {
		return decimal.Zero, fmt.Errorf("redeem %d of %d points on %s: %w", n, r.points, r.AccountNumber(), apperrors.ErrInsufficientPoints)
	}
	value := RedemptionValue(n)
	if err := r.inner.Deposit(value); err != nil {
		return decimal.Zero, err
	}
	r.points -= n
	return value, nil
}

func (r *RewardPoints) Points() int64                    { return r.points }
func (r *RewardPoints) PointsPerDollar() decimal.Decimal { return r.pointsPerDollar }
