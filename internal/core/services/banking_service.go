package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/accounts"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	DefaultLargeTransactionThreshold = decimal.NewFromInt(10000)
	DefaultLowBalanceThreshold       = decimal.NewFromInt(100)
)

// bankingService is the facade over accounts, the recorder, customers and
// notifications. mu serializes every operation; decorator chains are not safe
// for concurrent use.
type bankingService struct {
	BaseService
	mu sync.Mutex

	accountRepo portsrepo.AccountRepositoryFacade
	recorder    portssvc.TransactionSvcFacade
	customers   portssvc.CustomerSvcFacade
	notifier    portssvc.NotificationSvcFacade

	largeTransactionThreshold decimal.Decimal
	lowBalanceThreshold       decimal.Decimal
}

// BankingServiceOption configures optional banking service behavior.
type BankingServiceOption func(*bankingService)

// WithLargeTransactionThreshold sets the amount above which deposits and
// transfer legs notify the customer.
func WithLargeTransactionThreshold(threshold decimal.Decimal) BankingServiceOption {
	return func(s *bankingService) { s.largeTransactionThreshold = threshold }
}

// WithLowBalanceThreshold sets the balance below which a withdrawal notifies the customer.
func WithLowBalanceThreshold(threshold decimal.Decimal) BankingServiceOption {
	return func(s *bankingService) { s.lowBalanceThreshold = threshold }
}

// NewBankingService creates the banking facade.
func NewBankingService(
	accountRepo portsrepo.AccountRepositoryFacade,
	recorder portssvc.TransactionSvcFacade,
	customers portssvc.CustomerSvcFacade,
	notifier portssvc.NotificationSvcFacade,
	opts ...BankingServiceOption,
) portssvc.BankingSvcFacade {
	s := &bankingService{
		accountRepo:               accountRepo,
		recorder:                  recorder,
		customers:                 customers,
		notifier:                  notifier,
		largeTransactionThreshold: DefaultLargeTransactionThreshold,
		lowBalanceThreshold:       DefaultLowBalanceThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot copies the externally visible state of a chain.
func snapshot(customerID string, a accounts.Account) domain.AccountSnapshot {
	snap := domain.AccountSnapshot{
		AccountNumber: a.AccountNumber(),
		CustomerID:    customerID,
		Kind:          a.Kind(),
		AccountType:   a.AccountType(),
		Description:   a.Description(),
		Balance:       a.Balance(),
		Closed:        a.IsClosed(),
		Policies:      []domain.PolicyDetail{},
	}
	accounts.EachPolicy(a, func(d accounts.Decorator) {
		snap.Policies = append(snap.Policies, domain.PolicyDetail{Policy: string(d.Policy()), Details: d.Details()})
	})
	return snap
}

func (s *bankingService) find(ctx context.Context, accountNumber string) (accounts.Account, string, error) {
	acct, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, "", err
	}
	owner, err := s.accountRepo.FindAccountOwner(ctx, accountNumber)
	if err != nil {
		return nil, "", err
	}
	return acct, owner, nil
}

// notify queues a notification. Failures are logged and never fail the caller.
func (s *bankingService) notify(ctx context.Context, customerID string, event domain.NotificationEvent, nType domain.NotificationType, title, message string) {
	if _, err := s.notifier.Notify(ctx, customerID, event, nType, title, message); err != nil {
		s.LogError(ctx, err, "Failed to queue notification", slog.String("customer_id", customerID), slog.String("event", string(event)))
	}
}

func (s *bankingService) checkLargeTransaction(ctx context.Context, customerID string, txn *domain.Transaction) {
	if txn.Amount.GreaterThan(s.largeTransactionThreshold) {
		s.notify(ctx, customerID, domain.EventLargeTransaction, domain.NotificationWarning, "Large Transaction Alert",
			fmt.Sprintf("A %s of %s was processed on account %s.", strings.ToLower(string(txn.Type)), utils.FormatMoney(txn.Amount), txn.AccountNumber))
	}
}

func (s *bankingService) checkLowBalance(ctx context.Context, customerID string, acct accounts.Account) {
	if acct.Balance().LessThan(s.lowBalanceThreshold) {
		s.notify(ctx, customerID, domain.EventLowBalance, domain.NotificationWarning, "Low Balance Alert",
			fmt.Sprintf("Account %s balance is %s.", acct.AccountNumber(), utils.FormatMoney(acct.Balance())))
	}
}

// register stores a new chain, attaches it to the customer and funds it. The
// opening deposit goes to the base account so no policy reacts to it.
func (s *bankingService) register(ctx context.Context, customerID string, acct accounts.Account, deposit decimal.Decimal, description string) (*domain.AccountSnapshot, error) {
	if _, err := s.customers.EnsureCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if err := s.accountRepo.SaveAccount(ctx, customerID, acct); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_number", acct.AccountNumber()))
		return nil, err
	}
	if err := s.customers.AttachAccount(ctx, customerID, acct.AccountNumber()); err != nil {
		s.LogError(ctx, err, "Failed to attach account to customer", slog.String("account_number", acct.AccountNumber()))
		return nil, err
	}
	if deposit.IsPositive() {
		txn, err := s.recorder.RecordDeposit(ctx, acct.Base(), deposit, description)
		if err != nil {
			return nil, err
		}
		s.checkLargeTransaction(ctx, customerID, txn)
	}
	snap := snapshot(customerID, acct)
	return &snap, nil
}

func (s *bankingService) OpenAccount(ctx context.Context, customerID string, kind domain.AccountKind, initialDeposit decimal.Decimal) (*domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customerID == "" {
		return nil, fmt.Errorf("%w: customer ID is required", apperrors.ErrValidation)
	}
	if initialDeposit.IsNegative() {
		return nil, fmt.Errorf("initial deposit %s: %w", initialDeposit, apperrors.ErrInvalidAmount)
	}
	acct, err := accounts.Open(kind, initialDeposit)
	if err != nil {
		return nil, err
	}

	snap, err := s.register(ctx, customerID, acct, initialDeposit, "Initial deposit")
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account opened",
		slog.String("customer_id", customerID),
		slog.String("account_number", snap.AccountNumber),
		slog.String("kind", string(kind)),
		slog.String("description", snap.Description))
	s.notify(ctx, customerID, domain.EventAccountOpened, domain.NotificationSuccess, "Account Opened",
		fmt.Sprintf("Your %s %s is ready: %s.", snap.AccountType, snap.AccountNumber, snap.Description))
	return snap, nil
}

func (s *bankingService) InvestWithSafetyMode(ctx context.Context, customerID string, amount decimal.Decimal) (*domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customerID == "" {
		return nil, fmt.Errorf("%w: customer ID is required", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("safety investment %s: %w", amount, apperrors.ErrInvalidAmount)
	}

	snap, err := s.register(ctx, customerID, accounts.OpenSafetyMode(), amount, "Safety mode investment")
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Safety mode investment opened",
		slog.String("customer_id", customerID),
		slog.String("account_number", snap.AccountNumber),
		slog.String("amount", amount.String()))
	s.notify(ctx, customerID, domain.EventSafetyModeCreated, domain.NotificationSuccess, "Safety Mode Investment",
		fmt.Sprintf("Invested %s in %s with insurance and tax optimization.", utils.FormatMoney(amount), snap.AccountNumber))
	return snap, nil
}

func (s *bankingService) CloseAccount(ctx context.Context, accountNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, owner, err := s.find(ctx, accountNumber)
	if err != nil {
		return err
	}
	accounts.CloseChain(acct)

	if err := s.accountRepo.DeleteAccount(ctx, accountNumber); err != nil {
		s.LogError(ctx, err, "Failed to unregister closed account", slog.String("account_number", accountNumber))
		return err
	}
	if err := s.customers.DetachAccount(ctx, owner, accountNumber); err != nil && !errors.Is(err, apperrors.ErrCustomerNotFound) {
		s.LogError(ctx, err, "Failed to detach closed account", slog.String("account_number", accountNumber))
		return err
	}

	s.LogInfo(ctx, "Account closed", slog.String("account_number", accountNumber), slog.String("final_balance", acct.Balance().String()))
	s.notify(ctx, owner, domain.EventAccountClosed, domain.NotificationInfo, "Account Closed",
		fmt.Sprintf("Account %s has been closed with a final balance of %s.", accountNumber, utils.FormatMoney(acct.Balance())))
	return nil
}

func (s *bankingService) GetAccount(ctx context.Context, accountNumber string) (*domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, owner, err := s.find(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	snap := snapshot(owner, acct)
	return &snap, nil
}

func (s *bankingService) CustomerAccounts(ctx context.Context, customerID string) ([]domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AccountSnapshot, 0, len(c.AccountNumbers))
	for _, num := range c.AccountNumbers {
		acct, err := s.accountRepo.FindAccountByNumber(ctx, num)
		if err != nil {
			s.LogWarn(ctx, err, "Customer references unknown account", slog.String("customer_id", customerID))
			continue
		}
		out = append(out, snapshot(customerID, acct))
	}
	return out, nil
}

func (s *bankingService) FindAccountNumberByType(ctx context.Context, customerID, accountType string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return "", false, err
	}
	query := strings.ToLower(strings.TrimSpace(accountType))
	for _, num := range c.AccountNumbers {
		acct, err := s.accountRepo.FindAccountByNumber(ctx, num)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(acct.AccountType()), query) {
			return num, true, nil
		}
	}
	return "", false, nil
}

func (s *bankingService) FindFirstAccountForCustomer(ctx context.Context, customerID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return "", false, err
	}
	if len(c.AccountNumbers) == 0 {
		return "", false, nil
	}
	return c.AccountNumbers[0], true, nil
}

func (s *bankingService) TotalAssetsUnderManagement(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range all {
		if !a.IsClosed() {
			total = total.Add(a.Balance())
		}
	}
	return total, nil
}

func (s *bankingService) TotalManagedAccounts(ctx context.Context) (int, error) {
	return s.accountRepo.CountAccounts(ctx)
}

func (s *bankingService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, owner, err := s.find(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	txn, err := s.recorder.RecordDeposit(ctx, acct, amount, description)
	if err != nil {
		return nil, err
	}
	s.checkLargeTransaction(ctx, owner, txn)
	return txn, nil
}

func (s *bankingService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, owner, err := s.find(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	txn, err := s.recorder.RecordWithdrawal(ctx, acct, amount, description)
	if err != nil {
		return nil, err
	}
	if op, ok := accounts.FindPolicy[*accounts.OverdraftProtection](acct); ok && op.UsedOverdraft().IsPositive() {
		s.LogDebug(ctx, "Overdraft in use", slog.String("account_number", accountNumber), slog.String("used", op.UsedOverdraft().String()))
	}
	s.checkLowBalance(ctx, owner, acct)
	return txn, nil
}

func (s *bankingService) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal, description string) (*domain.TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fromNumber == toNumber {
		return nil, fmt.Errorf("transfer on %s: %w", fromNumber, apperrors.ErrSameAccount)
	}
	from, fromOwner, err := s.find(ctx, fromNumber)
	if err != nil {
		return nil, err
	}
	to, toOwner, err := s.find(ctx, toNumber)
	if err != nil {
		return nil, err
	}

	res, err := s.recorder.RecordTransfer(ctx, from, to, amount, description)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transfer completed",
		slog.String("from", fromNumber),
		slog.String("to", toNumber),
		slog.String("amount", amount.String()))
	s.checkLargeTransaction(ctx, fromOwner, &res.Withdrawal)
	s.checkLargeTransaction(ctx, toOwner, &res.Deposit)
	return res, nil
}

func (s *bankingService) ChargeFee(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, _, err := s.find(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	return s.recorder.RecordFee(ctx, acct, amount, description)
}

func (s *bankingService) ApplyInvestmentReturns(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, owner, err := s.find(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	inv, ok := acct.Base().(*accounts.InvestmentAccount)
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotAnInvestmentAccount)
	}
	if err := inv.ApplyReturns(amount); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Investment returns applied",
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
		slog.String("total_returns", inv.InvestmentReturns().String()))
	s.notify(ctx, owner, domain.EventReturnsApplied, domain.NotificationSuccess, "Investment Returns",
		fmt.Sprintf("Returns of %s were applied to %s.", utils.FormatMoney(amount), accountNumber))
	snap := snapshot(owner, acct)
	return &snap, nil
}

func (s *bankingService) GetTransactionHistory(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.recorder.History(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	// closed accounts leave the registry but keep their log
	if len(history) == 0 {
		if _, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber); err != nil {
			return nil, err
		}
	}
	return history, nil
}

func (s *bankingService) CancelTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recorder.CancelTransaction(ctx, transactionID)
}

// withPolicy resolves the account and its policy of type T, then runs fn under the facade lock.
func withPolicy[T accounts.Account](ctx context.Context, s *bankingService, accountNumber string, kind accounts.PolicyKind, fn func(acct accounts.Account, owner string, policy T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, owner, err := s.find(ctx, accountNumber)
	if err != nil {
		return err
	}
	policy, ok := accounts.FindPolicy[T](acct)
	if !ok {
		return fmt.Errorf("%s on account %s: %w", kind, accountNumber, apperrors.ErrPolicyNotApplied)
	}
	return fn(acct, owner, policy)
}

func (s *bankingService) RedeemPoints(ctx context.Context, accountNumber string, points int64) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := withPolicy(ctx, s, accountNumber, accounts.RewardPointsPolicy, func(acct accounts.Account, _ string, rp *accounts.RewardPoints) error {
		var err error
		txn, err = s.recorder.Record(ctx, acct, domain.Deposit, accounts.RedemptionValue(points),
			fmt.Sprintf("Reward points redemption (%d points)", points),
			func() error {
				_, err := rp.RedeemPoints(points)
				return err
			})
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *bankingService) RepayOverdraft(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.AccountSnapshot, error) {
	var snap domain.AccountSnapshot
	err := withPolicy(ctx, s, accountNumber, accounts.OverdraftProtectionPolicy, func(acct accounts.Account, owner string, op *accounts.OverdraftProtection) error {
		if err := op.RepayOverdraft(amount); err != nil {
			return err
		}
		s.LogInfo(ctx, "Overdraft repaid", slog.String("account_number", accountNumber), slog.String("remaining", op.UsedOverdraft().String()))
		snap = snapshot(owner, acct)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *bankingService) ClaimInsurance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := withPolicy(ctx, s, accountNumber, accounts.InsurancePolicy, func(acct accounts.Account, owner string, ins *accounts.Insurance) error {
		var err error
		txn, err = s.recorder.Record(ctx, acct, domain.Deposit, amount, "Insurance claim",
			func() error { return ins.ClaimInsurance(amount) })
		if err != nil {
			return err
		}
		s.checkLargeTransaction(ctx, owner, txn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *bankingService) DepositInCurrency(ctx context.Context, accountNumber string, amount decimal.Decimal, currency string) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := withPolicy(ctx, s, accountNumber, accounts.ForeignCurrencyPolicy, func(acct accounts.Account, owner string, fc *accounts.ForeignCurrency) error {
		rate, err := fc.ExchangeRate(currency)
		if err != nil {
			return err
		}
		txn, err = s.recorder.Record(ctx, acct, domain.Deposit, amount.Mul(rate),
			fmt.Sprintf("Deposit of %s %s", amount, strings.ToUpper(currency)),
			func() error {
				_, err := fc.DepositInCurrency(amount, currency)
				return err
			})
		if err != nil {
			return err
		}
		s.checkLargeTransaction(ctx, owner, txn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *bankingService) BalanceInCurrency(ctx context.Context, accountNumber, currency string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := withPolicy(ctx, s, accountNumber, accounts.ForeignCurrencyPolicy, func(_ accounts.Account, _ string, fc *accounts.ForeignCurrency) error {
		var err error
		balance, err = fc.BalanceInCurrency(currency)
		return err
	})
	return balance, err
}

func (s *bankingService) UpdateExchangeRate(ctx context.Context, accountNumber, currency string, rate decimal.Decimal) error {
	return withPolicy(ctx, s, accountNumber, accounts.ForeignCurrencyPolicy, func(_ accounts.Account, _ string, fc *accounts.ForeignCurrency) error {
		if err := fc.UpdateExchangeRate(currency, rate); err != nil {
			return err
		}
		s.LogInfo(ctx, "Exchange rate updated", slog.String("account_number", accountNumber), slog.String("currency", currency), slog.String("rate", rate.String()))
		return nil
	})
}

func (s *bankingService) CalculateTaxSavings(ctx context.Context, accountNumber string, taxableAmount decimal.Decimal) (decimal.Decimal, error) {
	var saving decimal.Decimal
	err := withPolicy(ctx, s, accountNumber, accounts.TaxOptimizerPolicy, func(_ accounts.Account, _ string, tax *accounts.TaxOptimizer) error {
		if !taxableAmount.IsPositive() {
			return fmt.Errorf("taxable amount %s: %w", taxableAmount, apperrors.ErrInvalidAmount)
		}
		saving = tax.CalculateTaxSavings(taxableAmount)
		s.LogDebug(ctx, "Tax savings calculated", slog.String("account_number", accountNumber), slog.String("total", tax.TotalTaxSavings().String()))
		return nil
	})
	return saving, err
}

func (s *bankingService) UseFreeTransaction(ctx context.Context, accountNumber string) (bool, error) {
	var used bool
	err := withPolicy(ctx, s, accountNumber, accounts.PriorityBankingPolicy, func(_ accounts.Account, _ string, pb *accounts.PriorityBanking) error {
		used = pb.UseFreeTransaction()
		return nil
	})
	return used, err
}

func (s *bankingService) ResetMonthlyBenefits(ctx context.Context, accountNumber string) error {
	return withPolicy(ctx, s, accountNumber, accounts.PriorityBankingPolicy, func(_ accounts.Account, _ string, pb *accounts.PriorityBanking) error {
		pb.ResetMonthlyBenefits()
		return nil
	})
}

func (s *bankingService) PriorityStatus(ctx context.Context, accountNumber string) (string, error) {
	var status string
	err := withPolicy(ctx, s, accountNumber, accounts.PriorityBankingPolicy, func(_ accounts.Account, _ string, pb *accounts.PriorityBanking) error {
		status = pb.Status()
		return nil
	})
	return status, err
}
