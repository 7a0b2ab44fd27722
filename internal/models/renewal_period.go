package models

import "time"

// RenewalPeriod marks that the monthly renewal job already ran for a
// user in a given calendar month. Period format: "2006-01".
type RenewalPeriod struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
}

// PeriodOf formats t as a renewal period key
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}
