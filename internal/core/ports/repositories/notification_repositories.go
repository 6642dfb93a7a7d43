package repositories

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
)

// NotificationRepositoryFacade stores customer notifications.
type NotificationRepositoryFacade interface {
	SaveNotification(ctx context.Context, n domain.Notification) error
	// ListNotificationsByCustomer returns the customer's notifications, oldest first.
	ListNotificationsByCustomer(ctx context.Context, customerID string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, customerID, notificationID string) error
	CountNotifications(ctx context.Context) (int, error)
}
