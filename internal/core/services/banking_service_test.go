package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/core/services"
	"github.com/SscSPs/benefit_ledger/internal/platform/config"
	"github.com/SscSPs/benefit_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bank struct {
	*portssvc.ServiceContainer
	repos portsrepo.RepositoryProvider
}

func newBank(t *testing.T) bank {
	t.Helper()
	repos := memory.NewRepositoryProvider()
	return bank{ServiceContainer: services.NewServiceContainer(config.Default(), repos), repos: repos}
}

func (b bank) open(t *testing.T, customerID string, kind domain.AccountKind, deposit string) *domain.AccountSnapshot {
	t.Helper()
	snap, err := b.Banking.OpenAccount(context.Background(), customerID, kind, dec(deposit))
	require.NoError(t, err)
	return snap
}

func (b bank) events(t *testing.T, customerID string) []domain.NotificationEvent {
	t.Helper()
	list, err := b.Notifier.List(context.Background(), customerID)
	require.NoError(t, err)
	out := make([]domain.NotificationEvent, 0, len(list))
	for _, n := range list {
		out = append(out, n.Event)
	}
	return out
}

func detail(snap *domain.AccountSnapshot, policy accounts.PolicyKind, key string) string {
	for _, p := range snap.Policies {
		if p.Policy == string(policy) {
			return p.Details[key]
		}
	}
	return ""
}

func TestOpenAccount(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)

	snap := b.open(t, "C1", domain.Savings, "1500")

	assert.Equal(t, "Basic Savings Account + Reward Points (2 points/$) + Insurance Coverage ($10000)", snap.Description)
	assert.Equal(t, "C1", snap.CustomerID)
	assert.True(t, snap.Balance.Equal(dec("1500")))
	require.Len(t, snap.Policies, 2)
	assert.Equal(t, string(accounts.InsurancePolicy), snap.Policies[0].Policy)
	assert.Equal(t, "0", detail(snap, accounts.RewardPointsPolicy, "points"))

	customer, err := b.Customers.GetCustomer(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, []string{snap.AccountNumber}, customer.AccountNumbers)
	assert.Equal(t, "C1@bank.com", customer.Email)

	history, err := b.Banking.GetTransactionHistory(ctx, snap.AccountNumber)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Initial deposit", history[0].Description)
	assert.Equal(t, []domain.NotificationEvent{domain.EventAccountOpened}, b.events(t, "C1"))
}

func TestOpenAccount_ZeroDepositRecordsNothing(t *testing.T) {
	b := newBank(t)
	snap := b.open(t, "C1", domain.Checking, "0")

	history, err := b.Banking.GetTransactionHistory(context.Background(), snap.AccountNumber)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Equal(t, "Basic Checking Account with Overdraft + Overdraft Protection ($2000)", snap.Description)
}

func TestOpenAccount_Invalid(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)

	_, err := b.Banking.OpenAccount(ctx, "C1", domain.Savings, dec("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = b.Banking.OpenAccount(ctx, "C1", domain.AccountKind("GOLD"), dec("10"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccountKind)

	_, err = b.Banking.OpenAccount(ctx, "", domain.Savings, dec("10"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	total, err := b.Banking.TotalManagedAccounts(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestInvestWithSafetyMode(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)

	snap, err := b.Banking.InvestWithSafetyMode(ctx, "C1", dec("1000"))
	require.NoError(t, err)
	assert.Equal(t, "Basic Investment Account + Insurance Coverage ($50000) + Tax Optimization (20% reduction)", snap.Description)
	assert.Equal(t, domain.Investment, snap.Kind)
	assert.Contains(t, b.events(t, "C1"), domain.EventSafetyModeCreated)

	_, err = b.Banking.InvestWithSafetyMode(ctx, "C1", dec("0"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestDepositAndWithdrawNotifications(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	snap := b.open(t, "C1", domain.Savings, "500")

	txn, err := b.Banking.Deposit(ctx, snap.AccountNumber, dec("20000"), "Bonus")
	require.NoError(t, err)
	assert.True(t, txn.BalanceAfter.Equal(dec("20500")))
	assert.Contains(t, b.events(t, "C1"), domain.EventLargeTransaction)

	_, err = b.Banking.Withdraw(ctx, snap.AccountNumber, dec("20450"), "Car")
	require.NoError(t, err)
	assert.Contains(t, b.events(t, "C1"), domain.EventLowBalance)

	_, err = b.Banking.Withdraw(ctx, snap.AccountNumber, dec("51"), "Too much")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	history, err := b.Banking.GetTransactionHistory(ctx, snap.AccountNumber)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	_, err = b.Banking.Deposit(ctx, "SAV-missing", dec("1"), "")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestWithdraw_OverdraftProtection(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	snap := b.open(t, "C1", domain.Checking, "500")

	_, err := b.Banking.Withdraw(ctx, snap.AccountNumber, dec("800"), "Rent")
	require.NoError(t, err)

	got, err := b.Banking.GetAccount(ctx, snap.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.IsZero())
	assert.Equal(t, "300.00", detail(got, accounts.OverdraftProtectionPolicy, "used"))

	repaid, err := b.Banking.RepayOverdraft(ctx, snap.AccountNumber, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "200.00", detail(repaid, accounts.OverdraftProtectionPolicy, "used"))

	_, err = b.Banking.RepayOverdraft(ctx, snap.AccountNumber, dec("500"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRepayment)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	from := b.open(t, "C1", domain.Savings, "1000")
	to := b.open(t, "C2", domain.Savings, "50")

	res, err := b.Banking.Transfer(ctx, from.AccountNumber, to.AccountNumber, dec("400"), "Loan")
	require.NoError(t, err)

	assert.True(t, res.Withdrawal.BalanceAfter.Equal(res.Withdrawal.BalanceBefore.Sub(dec("400"))))
	assert.True(t, res.Deposit.BalanceAfter.Equal(res.Deposit.BalanceBefore.Add(dec("400"))))

	total, err := b.Banking.TotalAssetsUnderManagement(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("1050")))

	_, err = b.Banking.Transfer(ctx, from.AccountNumber, from.AccountNumber, dec("1"), "")
	assert.ErrorIs(t, err, apperrors.ErrSameAccount)

	_, err = b.Banking.Transfer(ctx, from.AccountNumber, to.AccountNumber, dec("5000"), "")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	_, err = b.Banking.Transfer(ctx, from.AccountNumber, "SAV-missing", dec("1"), "")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestCloseAccount(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	snap := b.open(t, "C1", domain.Savings, "1500")

	require.NoError(t, b.Banking.CloseAccount(ctx, snap.AccountNumber))

	_, err := b.Banking.GetAccount(ctx, snap.AccountNumber)
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)

	history, err := b.Banking.GetTransactionHistory(ctx, snap.AccountNumber)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	customer, err := b.Customers.GetCustomer(ctx, "C1")
	require.NoError(t, err)
	assert.Empty(t, customer.AccountNumbers)
	assert.Contains(t, b.events(t, "C1"), domain.EventAccountClosed)

	assert.ErrorIs(t, b.Banking.CloseAccount(ctx, snap.AccountNumber), apperrors.ErrAccountNotFound)

	_, err = b.Banking.GetTransactionHistory(ctx, "SAV-never")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestApplyInvestmentReturns(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	inv := b.open(t, "C1", domain.Investment, "1000")
	sav := b.open(t, "C1", domain.Savings, "10")

	snap, err := b.Banking.ApplyInvestmentReturns(ctx, inv.AccountNumber, dec("75.50"))
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(dec("1075.50")))
	assert.Contains(t, b.events(t, "C1"), domain.EventReturnsApplied)

	history, err := b.Banking.GetTransactionHistory(ctx, inv.AccountNumber)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = b.Banking.ApplyInvestmentReturns(ctx, sav.AccountNumber, dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrNotAnInvestmentAccount)
}

func TestOpenAccount_InitialDepositEarnsNoPoints(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)

	snap := b.open(t, "C1", domain.Savings, "500")
	assert.Equal(t, "0", detail(snap, accounts.RewardPointsPolicy, "points"))

	_, err := b.Banking.Deposit(ctx, snap.AccountNumber, dec("50"), "top up")
	require.NoError(t, err)

	after, err := b.Banking.GetAccount(ctx, snap.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, "100", detail(after, accounts.RewardPointsPolicy, "points"))
	assert.True(t, after.Balance.Equal(dec("550")))
}

func TestPolicyOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("redeem points", func(t *testing.T) {
		b := newBank(t)
		snap := b.open(t, "C1", domain.Savings, "100")

		_, err := b.Banking.RedeemPoints(ctx, snap.AccountNumber, 1)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPoints)

		_, err = b.Banking.Deposit(ctx, snap.AccountNumber, dec("100"), "salary")
		require.NoError(t, err)

		txn, err := b.Banking.RedeemPoints(ctx, snap.AccountNumber, 200)
		require.NoError(t, err)
		assert.Equal(t, domain.Deposit, txn.Type)
		assert.True(t, txn.Amount.Equal(dec("2")))
		assert.True(t, txn.BalanceAfter.Equal(dec("202")))

		_, err = b.Banking.RedeemPoints(ctx, snap.AccountNumber, 1)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPoints)

		history, err := b.Banking.GetTransactionHistory(ctx, snap.AccountNumber)
		require.NoError(t, err)
		assert.Len(t, history, 3)
	})

	t.Run("policy missing", func(t *testing.T) {
		b := newBank(t)
		snap := b.open(t, "C1", domain.Checking, "100")

		_, err := b.Banking.RedeemPoints(ctx, snap.AccountNumber, 1)
		assert.ErrorIs(t, err, apperrors.ErrPolicyNotApplied)
		_, err = b.Banking.ClaimInsurance(ctx, snap.AccountNumber, dec("1"))
		assert.ErrorIs(t, err, apperrors.ErrPolicyNotApplied)
		_, err = b.Banking.PriorityStatus(ctx, snap.AccountNumber)
		assert.ErrorIs(t, err, apperrors.ErrPolicyNotApplied)
	})

	t.Run("insurance claim", func(t *testing.T) {
		b := newBank(t)
		snap := b.open(t, "C1", domain.Savings, "1500")

		txn, err := b.Banking.ClaimInsurance(ctx, snap.AccountNumber, dec("500"))
		require.NoError(t, err)
		assert.Equal(t, "Insurance claim", txn.Description)
		assert.True(t, txn.BalanceAfter.Equal(dec("2000")))

		_, err = b.Banking.ClaimInsurance(ctx, snap.AccountNumber, dec("10001"))
		assert.ErrorIs(t, err, apperrors.ErrClaimExceedsCoverage)
	})

	t.Run("foreign currency", func(t *testing.T) {
		b := newBank(t)
		snap := b.open(t, "C1", domain.Checking, "6000")

		txn, err := b.Banking.DepositInCurrency(ctx, snap.AccountNumber, dec("100"), "eur")
		require.NoError(t, err)
		assert.True(t, txn.Amount.Equal(dec("85")))
		assert.True(t, txn.BalanceAfter.Equal(dec("6085")))

		_, err = b.Banking.DepositInCurrency(ctx, snap.AccountNumber, dec("100"), "XYZ")
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)

		require.NoError(t, b.Banking.UpdateExchangeRate(ctx, snap.AccountNumber, "CHF", dec("0.5")))
		bal, err := b.Banking.BalanceInCurrency(ctx, snap.AccountNumber, "CHF")
		require.NoError(t, err)
		assert.True(t, bal.Equal(dec("12170")))

		assert.ErrorIs(t, b.Banking.UpdateExchangeRate(ctx, snap.AccountNumber, "CHF", dec("0")), apperrors.ErrValidation)
	})

	t.Run("tax and priority", func(t *testing.T) {
		b := newBank(t)
		snap := b.open(t, "C1", domain.Investment, "6000")

		saving, err := b.Banking.CalculateTaxSavings(ctx, snap.AccountNumber, dec("1000"))
		require.NoError(t, err)
		assert.True(t, saving.Equal(dec("150")))

		used, err := b.Banking.UseFreeTransaction(ctx, snap.AccountNumber)
		require.NoError(t, err)
		assert.True(t, used)

		status, err := b.Banking.PriorityStatus(ctx, snap.AccountNumber)
		require.NoError(t, err)
		assert.Contains(t, status, "fee waived=false")
		assert.Contains(t, status, "free transactions=49")

		require.NoError(t, b.Banking.ResetMonthlyBenefits(ctx, snap.AccountNumber))
		status, err = b.Banking.PriorityStatus(ctx, snap.AccountNumber)
		require.NoError(t, err)
		assert.Contains(t, status, "free transactions=50")
	})
}

func TestAccountLookups(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	sav := b.open(t, "C1", domain.Savings, "10")
	chk := b.open(t, "C1", domain.Checking, "20")

	num, found, err := b.Banking.FindAccountNumberByType(ctx, "C1", "checking")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, chk.AccountNumber, num)

	_, found, err = b.Banking.FindAccountNumberByType(ctx, "C1", "investment")
	require.NoError(t, err)
	assert.False(t, found)

	first, found, err := b.Banking.FindFirstAccountForCustomer(ctx, "C1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sav.AccountNumber, first)

	list, err := b.Banking.CustomerAccounts(ctx, "C1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = b.Banking.CustomerAccounts(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
}

func TestCancelTransactionKeepsBalance(t *testing.T) {
	ctx := context.Background()
	b := newBank(t)
	snap := b.open(t, "C1", domain.Savings, "100")

	history, err := b.Banking.GetTransactionHistory(ctx, snap.AccountNumber)
	require.NoError(t, err)
	cancelled, err := b.Banking.CancelTransaction(ctx, history[0].TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cancelled, cancelled.Status)

	got, err := b.Banking.GetAccount(ctx, snap.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("100")))

	computed, err := b.Transactions.ComputedBalance(ctx, snap.AccountNumber)
	require.NoError(t, err)
	assert.True(t, computed.IsZero())
}
