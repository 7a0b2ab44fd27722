package models

import "time"

// Income frequencies
const (
	FrequencyMonthly = "monthly"
	FrequencyWeekly  = "weekly"
	FrequencyYearly  = "yearly"
	FrequencyOneTime = "one-time"
)

// IncomeSource represents a recurring or one-time source of income
type IncomeSource struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Frequency   string    `json:"frequency"`
	Category    string    `json:"category"`
	NextPayment time.Time `json:"next_payment"`
	IsActive    bool      `json:"is_active"`
	TaxRate     float64   `json:"tax_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
