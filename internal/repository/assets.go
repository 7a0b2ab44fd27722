package repository

import (
	"database/sql"
	"fmt"

	"github.com/mywealth360/finance-service/internal/models"
)

// InvestmentsByUser lists a user's investments
func (r *Repository) InvestmentsByUser(userID int64) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, name, type, quantity, purchase_price, current_price,
			interest_rate, dividend_yield, purchase_date, created_at, updated_at
		FROM finance.investments
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var inv models.Investment
		var currentPrice sql.NullFloat64
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Quantity,
			&inv.PurchasePrice, &currentPrice, &inv.InterestRate, &inv.DividendYield,
			&inv.PurchaseDate, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		if currentPrice.Valid {
			inv.CurrentPrice = &currentPrice.Float64
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

// RealEstatesByUser lists a user's properties
func (r *Repository) RealEstatesByUser(userID int64) ([]models.RealEstate, error) {
	query := `
		SELECT id, user_id, name, purchase_price, current_value, is_rented,
			monthly_rent, purchase_date, created_at, updated_at
		FROM finance.real_estates
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list real estates: %w", err)
	}
	defer rows.Close()

	var estates []models.RealEstate
	for rows.Next() {
		var re models.RealEstate
		var currentValue sql.NullFloat64
		err := rows.Scan(&re.ID, &re.UserID, &re.Name, &re.PurchasePrice, &currentValue,
			&re.IsRented, &re.MonthlyRent, &re.PurchaseDate, &re.CreatedAt, &re.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan real estate: %w", err)
		}
		if currentValue.Valid {
			re.CurrentValue = &currentValue.Float64
		}
		estates = append(estates, re)
	}
	return estates, rows.Err()
}

// VehiclesByUser lists a user's vehicles
func (r *Repository) VehiclesByUser(userID int64) ([]models.Vehicle, error) {
	query := `
		SELECT id, user_id, name, purchase_price, current_value, depreciation_rate,
			purchase_date, created_at, updated_at
		FROM finance.vehicles
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		var currentValue sql.NullFloat64
		err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.PurchasePrice, &currentValue,
			&v.DepreciationRate, &v.PurchaseDate, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		if currentValue.Valid {
			v.CurrentValue = &currentValue.Float64
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// ExoticAssetsByUser lists a user's exotic assets
func (r *Repository) ExoticAssetsByUser(userID int64) ([]models.ExoticAsset, error) {
	query := `
		SELECT id, user_id, name, category, purchase_price, current_value, currency,
			purchase_date, created_at, updated_at
		FROM finance.exotic_assets
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exotic assets: %w", err)
	}
	defer rows.Close()

	var assets []models.ExoticAsset
	for rows.Next() {
		var a models.ExoticAsset
		var currentValue sql.NullFloat64
		err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Category, &a.PurchasePrice,
			&currentValue, &a.Currency, &a.PurchaseDate, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exotic asset: %w", err)
		}
		if currentValue.Valid {
			a.CurrentValue = &currentValue.Float64
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// RetirementPlansByUser lists a user's retirement plans
func (r *Repository) RetirementPlansByUser(userID int64) ([]models.RetirementPlan, error) {
	query := `
		SELECT id, user_id, name, balance, current_value, interest_rate, start_date,
			created_at, updated_at
		FROM finance.retirement_plans
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list retirement plans: %w", err)
	}
	defer rows.Close()

	var plans []models.RetirementPlan
	for rows.Next() {
		var p models.RetirementPlan
		var currentValue sql.NullFloat64
		err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Balance, &currentValue,
			&p.InterestRate, &p.StartDate, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retirement plan: %w", err)
		}
		if currentValue.Valid {
			p.CurrentValue = &currentValue.Float64
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// LoansByUser lists a user's loans
func (r *Repository) LoansByUser(userID int64) ([]models.Loan, error) {
	query := `
		SELECT id, user_id, name, amount, remaining_amount, interest_rate,
			monthly_payment, due_date, start_date, end_date, created_at, updated_at
		FROM finance.loans
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		var l models.Loan
		err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Amount, &l.RemainingAmount,
			&l.InterestRate, &l.MonthlyPayment, &l.DueDate, &l.StartDate, &l.EndDate,
			&l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
