package models

import "time"

// ExoticAsset represents a non-standard asset (art, collectibles, crypto, ...)
type ExoticAsset struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentValue  *float64  `json:"current_value,omitempty"`
	Currency      string    `json:"currency"` // BRL or USD
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
