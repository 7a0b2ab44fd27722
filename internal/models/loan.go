package models

import "time"

// Loan represents a loan contract; amortization is user-maintained
type Loan struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Amount          float64   `json:"amount"`
	RemainingAmount float64   `json:"remaining_amount"`
	InterestRate    float64   `json:"interest_rate"`
	MonthlyPayment  float64   `json:"monthly_payment"`
	DueDate         time.Time `json:"due_date"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
