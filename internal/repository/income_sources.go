package repository

import (
	"fmt"

	"github.com/mywealth360/finance-service/internal/models"
)

// ActiveIncomeSources lists a user's active income sources
func (r *Repository) ActiveIncomeSources(userID int64) ([]models.IncomeSource, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, category, next_payment, is_active, tax_rate, created_at, updated_at
		FROM finance.income_sources
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	defer rows.Close()

	var sources []models.IncomeSource
	for rows.Next() {
		var s models.IncomeSource
		err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Amount, &s.Frequency, &s.Category,
			&s.NextPayment, &s.IsActive, &s.TaxRate, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}
