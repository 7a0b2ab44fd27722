package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mywealth360/finance-service/internal/models"
)

// EnqueueNotification queues an outbound email with status pending
func (r *Repository) EnqueueNotification(n *models.ScheduledEmailNotification) error {
	if n.PublicID == "" {
		n.PublicID = uuid.NewString()
	}
	query := `
		INSERT INTO finance.scheduled_email_notifications
			(public_id, user_id, recipient, subject, body, alert_ids, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, n.PublicID, n.UserID, n.Recipient, n.Subject, n.Body,
		pq.Array(n.AlertIDs)).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	n.Status = models.NotificationPending
	return nil
}

// PendingNotifications lists queued notifications oldest first, capped
// at limit
func (r *Repository) PendingNotifications(limit int) ([]models.ScheduledEmailNotification, error) {
	query := `
		SELECT id, public_id, user_id, recipient, subject, body, alert_ids, status,
			COALESCE(error_message, ''), created_at, updated_at
		FROM finance.scheduled_email_notifications
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT $1`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.ScheduledEmailNotification
	for rows.Next() {
		var n models.ScheduledEmailNotification
		var alertIDs pq.Int64Array
		err := rows.Scan(&n.ID, &n.PublicID, &n.UserID, &n.Recipient, &n.Subject, &n.Body,
			&alertIDs, &n.Status, &n.ErrorMessage, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.AlertIDs = alertIDs
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationSent transitions a notification to sent
func (r *Repository) MarkNotificationSent(id int64) error {
	query := `
		UPDATE finance.scheduled_email_notifications
		SET status = 'sent', error_message = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

// MarkNotificationFailed transitions a notification to failed,
// recording the delivery error
func (r *Repository) MarkNotificationFailed(id int64, message string) error {
	query := `
		UPDATE finance.scheduled_email_notifications
		SET status = 'failed', error_message = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.Exec(query, id, message); err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return nil
}
