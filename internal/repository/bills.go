package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
)

const billColumns = `id, user_id, name, company, amount, due_day, payment_status,
	payment_date, payment_amount, payment_method, is_recurring, is_active, next_due,
	property_id, vehicle_id, loan_id, goal_id, email_reminder, created_at, updated_at`

// BillsByUser lists every bill of a user
func (r *Repository) BillsByUser(userID int64) ([]models.Bill, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM finance.bills
		WHERE user_id = $1
		ORDER BY next_due, id`, billColumns)
	return r.queryBills(query, userID)
}

// ActiveRecurringBills lists a user's active recurring bills
func (r *Repository) ActiveRecurringBills(userID int64) ([]models.Bill, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM finance.bills
		WHERE user_id = $1 AND is_active = TRUE AND is_recurring = TRUE
		ORDER BY id`, billColumns)
	return r.queryBills(query, userID)
}

// UpdateBillNextDue persists a bill's advanced due date
func (r *Repository) UpdateBillNextDue(billID int64, nextDue time.Time) error {
	query := `
		UPDATE finance.bills
		SET next_due = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.Exec(query, billID, nextDue); err != nil {
		return fmt.Errorf("failed to update bill next due: %w", err)
	}
	return nil
}

// PayBill marks one bill as paid, recording date, amount and method.
// The bill must belong to the given user.
func (r *Repository) PayBill(billID, userID int64, amount float64, method string, paidAt time.Time) error {
	query := `
		UPDATE finance.bills
		SET payment_status = 'paid', payment_date = $3, payment_amount = $4,
			payment_method = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, billID, userID, paidAt, amount, method)
	if err != nil {
		return fmt.Errorf("failed to pay bill %d: %w", billID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to pay bill %d: %w", billID, err)
	}
	if affected == 0 {
		return fmt.Errorf("bill %d not found", billID)
	}
	return nil
}

func (r *Repository) queryBills(query string, args ...interface{}) ([]models.Bill, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var b models.Bill
		var paymentDate sql.NullTime
		var paymentAmount sql.NullFloat64
		var paymentMethod sql.NullString
		var propertyID, vehicleID, loanID, goalID sql.NullInt64
		err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Company, &b.Amount, &b.DueDay,
			&b.PaymentStatus, &paymentDate, &paymentAmount, &paymentMethod,
			&b.IsRecurring, &b.IsActive, &b.NextDue,
			&propertyID, &vehicleID, &loanID, &goalID, &b.EmailReminder,
			&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		if paymentDate.Valid {
			b.PaymentDate = &paymentDate.Time
		}
		if paymentAmount.Valid {
			b.PaymentAmount = &paymentAmount.Float64
		}
		if paymentMethod.Valid {
			b.PaymentMethod = paymentMethod.String
		}
		if propertyID.Valid {
			b.PropertyID = &propertyID.Int64
		}
		if vehicleID.Valid {
			b.VehicleID = &vehicleID.Int64
		}
		if loanID.Valid {
			b.LoanID = &loanID.Int64
		}
		if goalID.Valid {
			b.GoalID = &goalID.Int64
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
