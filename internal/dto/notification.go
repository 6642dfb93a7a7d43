package dto

import "github.com/SscSPs/benefit_ledger/internal/core/domain"

// ListNotificationsParams filters notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unread"`
}

// ListNotificationsResponse wraps a customer's notifications.
type ListNotificationsResponse struct {
	CustomerID    string                `json:"customerID"`
	Notifications []domain.Notification `json:"notifications"`
}
