package repository

import (
	"fmt"

	"github.com/mywealth360/finance-service/internal/models"
)

// CreateTransaction inserts a new transaction
func (r *Repository) CreateTransaction(tx *models.Transaction) error {
	query := `
		INSERT INTO finance.transactions (user_id, type, amount, category, description, date, is_recurring, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Description, tx.Date, tx.IsRecurring).
		Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// TransactionsByUser lists every transaction of a user
func (r *Repository) TransactionsByUser(userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, description, date, is_recurring, created_at, updated_at
		FROM finance.transactions
		WHERE user_id = $1
		ORDER BY date, id`
	return r.queryTransactions(query, userID)
}

// RecurringExpenses lists a user's expense transactions flagged recurring
func (r *Repository) RecurringExpenses(userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, description, date, is_recurring, created_at, updated_at
		FROM finance.transactions
		WHERE user_id = $1 AND type = 'expense' AND is_recurring = TRUE
		ORDER BY id`
	return r.queryTransactions(query, userID)
}

func (r *Repository) queryTransactions(query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category,
			&tx.Description, &tx.Date, &tx.IsRecurring, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
