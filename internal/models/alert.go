package models

import "time"

// Insight/alert types
const (
	InsightWarning     = "warning"
	InsightAchievement = "achievement"
	InsightSuggestion  = "suggestion"
	InsightFeature     = "feature"
)

// Alert priorities
const (
	PriorityHigh   = 3
	PriorityMedium = 2
	PriorityLow    = 1
)

// Alert represents a persisted advisory message shown to the user
// and delivered by email digests
type Alert struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Date        time.Time `json:"date"`
	IsRead      bool      `json:"is_read"`
	EmailSent   bool      `json:"email_sent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PriorityLabel returns the pt-BR label used in digest emails
func PriorityLabel(priority int) string {
	switch priority {
	case PriorityHigh:
		return "Alta"
	case PriorityMedium:
		return "Média"
	default:
		return "Baixa"
	}
}
