package models

import "time"

// Scheduled notification statuses
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// ScheduledEmailNotification represents a queued outbound email
type ScheduledEmailNotification struct {
	ID           int64     `json:"id"`
	PublicID     string    `json:"public_id"`
	UserID       int64     `json:"user_id"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	AlertIDs     []int64   `json:"alert_ids"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
