package domain

import "time"

// NotificationType is the severity of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationError   NotificationType = "ERROR"
)

// NotificationEvent names the banking event that produced a notification.
type NotificationEvent string

const (
	EventAccountOpened     NotificationEvent = "ACCOUNT_OPENED"
	EventSafetyModeCreated NotificationEvent = "SAFETY_MODE_CREATED"
	EventAccountClosed     NotificationEvent = "ACCOUNT_CLOSED"
	EventLargeTransaction  NotificationEvent = "LARGE_TRANSACTION"
	EventLowBalance        NotificationEvent = "LOW_BALANCE"
	EventReturnsApplied    NotificationEvent = "INVESTMENT_RETURNS_APPLIED"
)

// Notification is a message queued for a customer.
type Notification struct {
	NotificationID string            `json:"notificationID"`
	CustomerID     string            `json:"customerID"`
	Event          NotificationEvent `json:"event"`
	Type           NotificationType  `json:"type"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	Timestamp      time.Time         `json:"timestamp"`
	Read           bool              `json:"read"`
}
