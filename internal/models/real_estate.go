package models

import "time"

// RealEstate represents an owned property
type RealEstate struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentValue  *float64  `json:"current_value,omitempty"` // market override
	IsRented      bool      `json:"is_rented"`
	MonthlyRent   float64   `json:"monthly_rent"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
