package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/benefit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

type notificationService struct {
	BaseService
	repo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates the customer notification service.
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, customerID string, event domain.NotificationEvent, nType domain.NotificationType, title, message string) (*domain.Notification, error) {
	n := domain.Notification{
		NotificationID: "NOT-" + uuid.NewString()[:8],
		CustomerID:     customerID,
		Event:          event,
		Type:           nType,
		Title:          title,
		Message:        message,
		Timestamp:      time.Now(),
	}
	if err := s.repo.SaveNotification(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to save notification", slog.String("customer_id", customerID))
		return nil, err
	}
	s.LogDebug(ctx, "Notification queued",
		slog.String("customer_id", customerID),
		slog.String("event", string(event)),
		slog.String("title", title))
	return &n, nil
}

func (s *notificationService) List(ctx context.Context, customerID string) ([]domain.Notification, error) {
	return s.repo.ListNotificationsByCustomer(ctx, customerID)
}

func (s *notificationService) Unread(ctx context.Context, customerID string) ([]domain.Notification, error) {
	all, err := s.repo.ListNotificationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	unread := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, customerID, notificationID string) error {
	return s.repo.MarkNotificationRead(ctx, customerID, notificationID)
}
