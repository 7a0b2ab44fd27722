package service

import (
	"time"

	"github.com/mywealth360/finance-service/internal/insights"
	"github.com/mywealth360/finance-service/internal/models"
	"github.com/sirupsen/logrus"
)

// SnapshotStore loads one user's records for rule evaluation
type SnapshotStore interface {
	TransactionsByUser(userID int64) ([]models.Transaction, error)
	InvestmentsByUser(userID int64) ([]models.Investment, error)
	BillsByUser(userID int64) ([]models.Bill, error)
	GoalsByUser(userID int64) ([]models.FinancialGoal, error)
	RealEstatesByUser(userID int64) ([]models.RealEstate, error)
	VehiclesByUser(userID int64) ([]models.Vehicle, error)
	CreateAlert(alert *models.Alert) error
}

// InsightService generates advisory insights for a user
type InsightService struct {
	store SnapshotStore
	log   *logrus.Logger
}

// NewInsightService initializes the generator
func NewInsightService(store SnapshotStore, log *logrus.Logger) *InsightService {
	return &InsightService{store: store, log: log}
}

// InsightReport is the insight endpoint response
type InsightReport struct {
	Insights        []insights.Insight        `json:"insights"`
	Recommendations []insights.Recommendation `json:"recommendations"`
	Score           int                       `json:"score"`
}

// GenerateForUser loads the user's snapshot, evaluates every rule and
// computes the health score. With persist set, each insight is also
// stored as an Alert for the digest dispatcher.
func (s *InsightService) GenerateForUser(userID int64, now time.Time, persist bool) (*InsightReport, error) {
	snap, err := s.loadSnapshot(userID, now)
	if err != nil {
		return nil, err
	}

	list := insights.Generate(snap)
	recs := insights.Recommend(snap)
	report := &InsightReport{
		Insights:        list,
		Recommendations: recs,
		Score:           insights.Score(list, recs),
	}

	if persist {
		for _, in := range list {
			alert := &models.Alert{
				UserID:      userID,
				Type:        in.Type,
				Title:       in.Title,
				Description: in.Description,
				Priority:    in.Priority,
				Date:        now,
			}
			if err := s.store.CreateAlert(alert); err != nil {
				s.log.Errorf("Failed to persist alert %q for user %d: %v", in.Title, userID, err)
			}
		}
	}

	s.log.Infof("Generated %d insight(s) for user %d, score %d", len(list), userID, report.Score)
	return report, nil
}

// loadSnapshot reads every record set the rules need. A failed read
// surfaces as an error; rule evaluation itself never fails.
func (s *InsightService) loadSnapshot(userID int64, now time.Time) (*insights.Snapshot, error) {
	snap := &insights.Snapshot{UserID: userID, Now: now}
	var err error

	if snap.Transactions, err = s.store.TransactionsByUser(userID); err != nil {
		return nil, err
	}
	if snap.Investments, err = s.store.InvestmentsByUser(userID); err != nil {
		return nil, err
	}
	if snap.Bills, err = s.store.BillsByUser(userID); err != nil {
		return nil, err
	}
	if snap.Goals, err = s.store.GoalsByUser(userID); err != nil {
		return nil, err
	}
	if snap.RealEstates, err = s.store.RealEstatesByUser(userID); err != nil {
		return nil, err
	}
	if snap.Vehicles, err = s.store.VehiclesByUser(userID); err != nil {
		return nil, err
	}
	return snap, nil
}
