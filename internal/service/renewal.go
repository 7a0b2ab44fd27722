package service

import (
	"strings"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/sirupsen/logrus"
)

// autoTag marks ledger entries materialized by the renewal job
const autoTag = "(Automático)"

// RenewalStore is the storage surface the renewal job needs
type RenewalStore interface {
	ClaimRenewalPeriod(userID int64, period string) (bool, error)
	ActiveIncomeSources(userID int64) ([]models.IncomeSource, error)
	RecurringExpenses(userID int64) ([]models.Transaction, error)
	ActiveRecurringBills(userID int64) ([]models.Bill, error)
	CreateTransaction(tx *models.Transaction) error
	UpdateBillNextDue(billID int64, nextDue time.Time) error
	AllUserIDs() ([]int64, error)
}

// RenewalService materializes recurring items once per user per
// calendar month
type RenewalService struct {
	store RenewalStore
	log   *logrus.Logger
}

// NewRenewalService initializes the renewal job
func NewRenewalService(store RenewalStore, log *logrus.Logger) *RenewalService {
	return &RenewalService{store: store, log: log}
}

// RenewalResult tallies one renewal run
type RenewalResult struct {
	Skipped         bool `json:"skipped"`
	IncomesCreated  int  `json:"incomes_created"`
	ExpensesCreated int  `json:"expenses_created"`
	BillsAdvanced   int  `json:"bills_advanced"`
	Failures        int  `json:"failures"`
}

// RunForUser runs the monthly renewal for one user. The durable
// (user, period) marker makes re-runs within the same month no-ops.
// Each sub-step logs and continues on failure.
func (s *RenewalService) RunForUser(userID int64, now time.Time) (*RenewalResult, error) {
	period := models.PeriodOf(now)
	claimed, err := s.store.ClaimRenewalPeriod(userID, period)
	if err != nil {
		return nil, err
	}
	result := &RenewalResult{}
	if !claimed {
		result.Skipped = true
		s.log.Debugf("Renewal already ran for user %d in %s", userID, period)
		return result, nil
	}

	s.renewIncomes(userID, now, result)
	s.renewExpenses(userID, now, result)
	s.advanceBills(userID, now, result)

	s.log.Infof("Renewal for user %d in %s: %d incomes, %d expenses, %d bills advanced, %d failures",
		userID, period, result.IncomesCreated, result.ExpensesCreated, result.BillsAdvanced, result.Failures)
	return result, nil
}

// RunForAllUsers sweeps every user; per-user failures do not stop the
// sweep
func (s *RenewalService) RunForAllUsers(now time.Time) {
	ids, err := s.store.AllUserIDs()
	if err != nil {
		s.log.Errorf("Renewal sweep failed to list users: %v", err)
		return
	}
	for _, id := range ids {
		if _, err := s.RunForUser(id, now); err != nil {
			s.log.Errorf("Renewal failed for user %d: %v", id, err)
		}
	}
}

func (s *RenewalService) renewIncomes(userID int64, now time.Time, result *RenewalResult) {
	sources, err := s.store.ActiveIncomeSources(userID)
	if err != nil {
		s.log.Errorf("Failed to list income sources for user %d: %v", userID, err)
		result.Failures++
		return
	}
	for _, src := range sources {
		due := src.Frequency == models.FrequencyMonthly ||
			(src.Frequency == models.FrequencyYearly &&
				src.NextPayment.Year() == now.Year() && src.NextPayment.Month() == now.Month())
		if !due {
			continue
		}
		tx := &models.Transaction{
			UserID:      userID,
			Type:        models.TransactionIncome,
			Amount:      src.Amount,
			Category:    src.Category,
			Description: src.Name + " " + autoTag,
			Date:        now,
		}
		if err := s.store.CreateTransaction(tx); err != nil {
			s.log.Errorf("Failed to materialize income %q for user %d: %v", src.Name, userID, err)
			result.Failures++
			continue
		}
		result.IncomesCreated++
	}
}

func (s *RenewalService) renewExpenses(userID int64, now time.Time, result *RenewalResult) {
	expenses, err := s.store.RecurringExpenses(userID)
	if err != nil {
		s.log.Errorf("Failed to list recurring expenses for user %d: %v", userID, err)
		result.Failures++
		return
	}
	for _, exp := range expenses {
		description := exp.Description
		if !strings.Contains(description, autoTag) {
			description += " " + autoTag
		}
		tx := &models.Transaction{
			UserID:      userID,
			Type:        models.TransactionExpense,
			Amount:      exp.Amount,
			Category:    exp.Category,
			Description: description,
			Date:        now,
		}
		if err := s.store.CreateTransaction(tx); err != nil {
			s.log.Errorf("Failed to replay expense %d for user %d: %v", exp.ID, userID, err)
			result.Failures++
			continue
		}
		result.ExpensesCreated++
	}
}

// advanceBills moves every active recurring bill's next_due to its due
// day in the following month. This runs regardless of payment_status;
// the status field keeps reporting an unpaid bill independently.
func (s *RenewalService) advanceBills(userID int64, now time.Time, result *RenewalResult) {
	bills, err := s.store.ActiveRecurringBills(userID)
	if err != nil {
		s.log.Errorf("Failed to list recurring bills for user %d: %v", userID, err)
		result.Failures++
		return
	}
	for _, bill := range bills {
		nextDue := nextDueDate(now, bill.DueDay)
		if err := s.store.UpdateBillNextDue(bill.ID, nextDue); err != nil {
			s.log.Errorf("Failed to advance bill %d for user %d: %v", bill.ID, userID, err)
			result.Failures++
			continue
		}
		result.BillsAdvanced++
	}
}

// nextDueDate returns dueDay in the month after now, clamped to the
// target month's length (due_day 31 in a 30-day month lands on the 30th)
func nextDueDate(now time.Time, dueDay int) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	day := dueDay
	if day > lastDay {
		day = lastDay
	}
	if day < 1 {
		day = 1
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, now.Location())
}
