package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotificationEventReminder         NotificationType = "event_reminder"
	NotificationEventUpdate           NotificationType = "event_update"
	NotificationRegistrationConfirmed NotificationType = "registration_confirmed"
	NotificationEventCancelled        NotificationType = "event_cancelled"
	NotificationRecommendation        NotificationType = "recommendation"
	NotificationFeedbackRequest       NotificationType = "feedback_request"
	NotificationApprovalRequest       NotificationType = "event_approval_request"
	NotificationStatusChange          NotificationType = "event_status_change"
)

// Notification is fetched and mutated (mark read) but never created client-side.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	Data      json.RawMessage  `json:"data,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
