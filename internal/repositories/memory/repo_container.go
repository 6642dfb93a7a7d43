// Package memory holds the in-process repository implementations. All state is
// lost when the process exits.
package memory

import (
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newAccountRepository(),
		CustomerRepo:     newCustomerRepository(),
		TransactionRepo:  newTransactionRepository(),
		NotificationRepo: newNotificationRepository(),
	}
}
