package services

import (
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The recorder, directory and notifier have no service dependencies and feed the facade
	container.Transactions = NewTransactionService(repos.TransactionRepo)
	container.Customers = NewCustomerService(repos.CustomerRepo)
	container.Notifier = NewNotificationService(repos.NotificationRepo)

	container.Banking = NewBankingService(
		repos.AccountRepo,
		container.Transactions,
		container.Customers,
		container.Notifier,
		WithLargeTransactionThreshold(cfg.LargeTransactionThreshold),
		WithLowBalanceThreshold(cfg.LowBalanceThreshold),
	)

	container.Reporting = NewReportingService(container.Banking, container.Transactions, repos)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BankingSvcFacade      = (*bankingService)(nil)
	_ portssvc.TransactionSvcFacade  = (*transactionService)(nil)
	_ portssvc.CustomerSvcFacade     = (*customerService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
	_ portssvc.ReportingSvc          = (*reportingService)(nil)
)
