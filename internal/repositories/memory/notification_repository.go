package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
)

type NotificationRepository struct {
	mu         sync.RWMutex
	byCustomer map[string][]domain.Notification
	count      int
}

func newNotificationRepository() *NotificationRepository {
	return &NotificationRepository{byCustomer: make(map[string][]domain.Notification)}
}

var _ portsrepo.NotificationRepositoryFacade = (*NotificationRepository)(nil)

func (r *NotificationRepository) SaveNotification(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCustomer[n.CustomerID] = append(r.byCustomer[n.CustomerID], n)
	r.count++
	return nil
}

func (r *NotificationRepository) ListNotificationsByCustomer(_ context.Context, customerID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byCustomer[customerID]), nil
}

func (r *NotificationRepository) MarkNotificationRead(_ context.Context, customerID, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byCustomer[customerID]
	i := slices.IndexFunc(list, func(n domain.Notification) bool { return n.NotificationID == notificationID })
	if i < 0 {
		return fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrNotFound)
	}
	list[i].Read = true
	return nil
}

func (r *NotificationRepository) CountNotifications(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count, nil
}
