package models

import "time"

// RetirementPlan represents a private retirement plan balance
type RetirementPlan struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Balance      float64   `json:"balance"`
	CurrentValue *float64  `json:"current_value,omitempty"`
	InterestRate float64   `json:"interest_rate"` // percent per year
	StartDate    time.Time `json:"start_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
