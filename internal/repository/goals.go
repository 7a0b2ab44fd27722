package repository

import (
	"fmt"

	"github.com/mywealth360/finance-service/internal/models"
)

// GoalsByUser lists a user's financial goals
func (r *Repository) GoalsByUser(userID int64) ([]models.FinancialGoal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, status,
			created_at, updated_at
		FROM finance.financial_goals
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.FinancialGoal
	for rows.Next() {
		var g models.FinancialGoal
		err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
			&g.TargetDate, &g.Status, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
