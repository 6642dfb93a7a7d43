package services

import (
	"context"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
)

// NotificationSvcFacade queues and serves customer notifications.
type NotificationSvcFacade interface {
	Notify(ctx context.Context, customerID string, event domain.NotificationEvent, nType domain.NotificationType, title, message string) (*domain.Notification, error)
	List(ctx context.Context, customerID string) ([]domain.Notification, error)
	Unread(ctx context.Context, customerID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, customerID, notificationID string) error
}
