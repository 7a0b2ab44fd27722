package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
)

// SettingsByFrequency lists every user's alert settings with the given
// frequency and email notifications enabled
func (r *Repository) SettingsByFrequency(frequency string) ([]models.AlertNotificationSettings, error) {
	query := `
		SELECT id, user_id, email_enabled, warnings_enabled, achievements_enabled,
			suggestions_enabled, frequency, send_hour, COALESCE(notification_email, ''),
			last_notification_sent, created_at, updated_at
		FROM finance.alert_notification_settings
		WHERE frequency = $1 AND email_enabled = TRUE
		ORDER BY user_id`
	rows, err := r.db.Query(query, frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification settings: %w", err)
	}
	defer rows.Close()

	var settings []models.AlertNotificationSettings
	for rows.Next() {
		var s models.AlertNotificationSettings
		var lastSent sql.NullTime
		err := rows.Scan(&s.ID, &s.UserID, &s.EmailEnabled, &s.WarningsEnabled,
			&s.AchievementsEnabled, &s.SuggestionsEnabled, &s.Frequency, &s.SendHour,
			&s.NotificationEmail, &lastSent, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification settings: %w", err)
		}
		if lastSent.Valid {
			s.LastNotificationSent = &lastSent.Time
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// UpdateLastNotificationSent records when a user's digest was enqueued
func (r *Repository) UpdateLastNotificationSent(userID int64, at time.Time) error {
	query := `
		UPDATE finance.alert_notification_settings
		SET last_notification_sent = $2, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1`
	if _, err := r.db.Exec(query, userID, at); err != nil {
		return fmt.Errorf("failed to update last notification sent: %w", err)
	}
	return nil
}
