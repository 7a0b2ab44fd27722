package repository

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mywealth360/finance-service/internal/models"
)

// CreateAlert persists a generated alert
func (r *Repository) CreateAlert(alert *models.Alert) error {
	query := `
		INSERT INTO finance.alerts (user_id, type, title, description, priority, date, is_read, email_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, alert.UserID, alert.Type, alert.Title, alert.Description,
		alert.Priority, alert.Date).
		Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// UnemailedAlertsSince lists a user's alerts not yet sent by email,
// dated on or after the given instant, ordered for digest composition
// (priority descending, then date ascending)
func (r *Repository) UnemailedAlertsSince(userID int64, since time.Time) ([]models.Alert, error) {
	query := `
		SELECT id, user_id, type, title, description, priority, date, is_read, email_sent, created_at, updated_at
		FROM finance.alerts
		WHERE user_id = $1 AND email_sent = FALSE AND date >= $2
		ORDER BY priority DESC, date ASC`
	rows, err := r.db.Query(query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description, &a.Priority,
			&a.Date, &a.IsRead, &a.EmailSent, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// MarkAlertsEmailed flags the given alerts as included in a sent email
func (r *Repository) MarkAlertsEmailed(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
		UPDATE finance.alerts
		SET email_sent = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE id = ANY($1)`
	if _, err := r.db.Exec(query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to mark alerts emailed: %w", err)
	}
	return nil
}
