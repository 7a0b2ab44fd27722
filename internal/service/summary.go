package service

import (
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/mywealth360/finance-service/internal/valuation"
	"github.com/sirupsen/logrus"
)

// SummaryStore loads the record sets the net worth summary aggregates
type SummaryStore interface {
	TransactionsByUser(userID int64) ([]models.Transaction, error)
	InvestmentsByUser(userID int64) ([]models.Investment, error)
	RealEstatesByUser(userID int64) ([]models.RealEstate, error)
	VehiclesByUser(userID int64) ([]models.Vehicle, error)
	ExoticAssetsByUser(userID int64) ([]models.ExoticAsset, error)
	RetirementPlansByUser(userID int64) ([]models.RetirementPlan, error)
	LoansByUser(userID int64) ([]models.Loan, error)
}

// RateSource provides the USD/BRL exchange rate
type RateSource interface {
	GetUSDRate() (float64, error)
}

// SummaryService computes dashboard aggregates on demand; nothing is
// persisted, every figure is recomputed from current rows
type SummaryService struct {
	store SummaryStore
	rates RateSource
	log   *logrus.Logger
}

// NewSummaryService initializes the summary aggregator
func NewSummaryService(store SummaryStore, rates RateSource, log *logrus.Logger) *SummaryService {
	return &SummaryService{store: store, rates: rates, log: log}
}

// Summary is one user's aggregated financial position
type Summary struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`
	MonthlyIncome    float64 `json:"monthly_income"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	CashFlow         float64 `json:"cash_flow"`
	USDRate          float64 `json:"usd_rate,omitempty"`
}

// ForUser aggregates one user's assets, liabilities and current-month
// cash flow. A rate feed failure degrades to stored asset values.
func (s *SummaryService) ForUser(userID int64, now time.Time) (*Summary, error) {
	usdRate, err := s.rates.GetUSDRate()
	if err != nil {
		s.log.Errorf("Failed to fetch USD rate, using stored values: %v", err)
		usdRate = 0
	}

	summary := &Summary{USDRate: usdRate}

	investments, err := s.store.InvestmentsByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, inv := range investments {
		summary.TotalAssets += valuation.InvestmentValue(&inv)
	}

	estates, err := s.store.RealEstatesByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, re := range estates {
		summary.TotalAssets += valuation.RealEstateValue(&re)
	}

	vehicles, err := s.store.VehiclesByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		summary.TotalAssets += valuation.VehicleValue(&v, now)
	}

	exotics, err := s.store.ExoticAssetsByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, a := range exotics {
		summary.TotalAssets += valuation.ExoticAssetValue(&a, usdRate)
	}

	plans, err := s.store.RetirementPlansByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		summary.TotalAssets += valuation.RetirementPlanValue(&p, now)
	}

	loans, err := s.store.LoansByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, l := range loans {
		summary.TotalLiabilities += l.RemainingAmount
	}

	transactions, err := s.store.TransactionsByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, tx := range transactions {
		if tx.Date.Year() != now.Year() || tx.Date.Month() != now.Month() {
			continue
		}
		switch tx.Type {
		case models.TransactionIncome:
			summary.MonthlyIncome += tx.Amount
		case models.TransactionExpense:
			summary.MonthlyExpenses += tx.Amount
		}
	}

	summary.NetWorth = summary.TotalAssets - summary.TotalLiabilities
	summary.CashFlow = summary.MonthlyIncome - summary.MonthlyExpenses
	return summary, nil
}
