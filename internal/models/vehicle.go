package models

import "time"

// Vehicle represents an owned vehicle, depreciated yearly
type Vehicle struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Name             string    `json:"name"`
	PurchasePrice    float64   `json:"purchase_price"`
	CurrentValue     *float64  `json:"current_value,omitempty"` // appraisal override
	DepreciationRate float64   `json:"depreciation_rate"`       // percent per year
	PurchaseDate     time.Time `json:"purchase_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
