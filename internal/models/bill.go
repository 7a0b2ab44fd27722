package models

import "time"

// Bill payment statuses
const (
	BillPending = "pending"
	BillPaid    = "paid"
	BillOverdue = "overdue"
	BillPartial = "partial"
)

// Bill represents a payable obligation, optionally recurring monthly
type Bill struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Name          string     `json:"name"`
	Company       string     `json:"company"`
	Amount        float64    `json:"amount"`
	DueDay        int        `json:"due_day"` // 1-31
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	PaymentAmount *float64   `json:"payment_amount,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	IsRecurring   bool       `json:"is_recurring"`
	IsActive      bool       `json:"is_active"`
	NextDue       time.Time  `json:"next_due"`
	PropertyID    *int64     `json:"property_id,omitempty"`
	VehicleID     *int64     `json:"vehicle_id,omitempty"`
	LoanID        *int64     `json:"loan_id,omitempty"`
	GoalID        *int64     `json:"goal_id,omitempty"` // bill counts toward a financial goal
	EmailReminder bool       `json:"email_reminder"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
