package models

import "time"

// Notification frequencies. FrequencyWeekly is shared with income
// sources.
const (
	FrequencyImmediate = "immediate"
	FrequencyDaily     = "daily"
)

// AlertNotificationSettings holds one user's email alert preferences
type AlertNotificationSettings struct {
	ID                   int64      `json:"id"`
	UserID               int64      `json:"user_id"`
	EmailEnabled         bool       `json:"email_enabled"`
	WarningsEnabled      bool       `json:"warnings_enabled"`
	AchievementsEnabled  bool       `json:"achievements_enabled"`
	SuggestionsEnabled   bool       `json:"suggestions_enabled"`
	Frequency            string     `json:"frequency"`                    // immediate, daily, weekly
	SendHour             int        `json:"send_hour"`                    // 0-23
	NotificationEmail    string     `json:"notification_email,omitempty"` // overrides account email
	LastNotificationSent *time.Time `json:"last_notification_sent,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
