package models

import "time"

// Investment represents a tradable investment position
type Investment struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"` // renda-fixa, acoes, fundos-imobiliarios, ...
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentPrice  *float64  `json:"current_price,omitempty"` // overrides purchase price when set
	InterestRate  float64   `json:"interest_rate"`
	DividendYield float64   `json:"dividend_yield"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
