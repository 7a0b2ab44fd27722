package repository

import "fmt"

// ClaimRenewalPeriod inserts the (user, period) renewal marker.
// Returns false when the marker already exists, meaning the renewal
// job already ran for that user this period.
func (r *Repository) ClaimRenewalPeriod(userID int64, period string) (bool, error) {
	query := `
		INSERT INTO finance.renewal_periods (user_id, period, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, period) DO NOTHING`
	result, err := r.db.Exec(query, userID, period)
	if err != nil {
		return false, fmt.Errorf("failed to claim renewal period: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim renewal period: %w", err)
	}
	return affected > 0, nil
}
