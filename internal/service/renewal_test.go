package service

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeRenewalStore struct {
	incomes    []models.IncomeSource
	expenses   []models.Transaction
	bills      []models.Bill
	claims     map[string]bool
	created    []models.Transaction
	dueUpdates map[int64]time.Time
	failCreate bool
}

func newFakeRenewalStore() *fakeRenewalStore {
	return &fakeRenewalStore{
		claims:     make(map[string]bool),
		dueUpdates: make(map[int64]time.Time),
	}
}

func (f *fakeRenewalStore) ClaimRenewalPeriod(userID int64, period string) (bool, error) {
	key := fmt.Sprintf("%d:%s", userID, period)
	if f.claims[key] {
		return false, nil
	}
	f.claims[key] = true
	return true, nil
}

func (f *fakeRenewalStore) ActiveIncomeSources(userID int64) ([]models.IncomeSource, error) {
	return f.incomes, nil
}

func (f *fakeRenewalStore) RecurringExpenses(userID int64) ([]models.Transaction, error) {
	return f.expenses, nil
}

func (f *fakeRenewalStore) ActiveRecurringBills(userID int64) ([]models.Bill, error) {
	return f.bills, nil
}

func (f *fakeRenewalStore) CreateTransaction(tx *models.Transaction) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.created = append(f.created, *tx)
	return nil
}

func (f *fakeRenewalStore) UpdateBillNextDue(billID int64, nextDue time.Time) error {
	f.dueUpdates[billID] = nextDue
	return nil
}

func (f *fakeRenewalStore) AllUserIDs() ([]int64, error) {
	return []int64{1}, nil
}

func TestRenewalMaterializesMonthlyIncome(t *testing.T) {
	now := time.Date(2026, time.May, 15, 10, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.incomes = []models.IncomeSource{
		{ID: 1, Name: "Salário", Amount: 8000, Frequency: models.FrequencyMonthly, Category: "salario", IsActive: true},
	}

	svc := NewRenewalService(store, testLogger())
	result, err := svc.RunForUser(1, now)
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.IncomesCreated)
	require.Len(t, store.created, 1)
	tx := store.created[0]
	assert.Equal(t, models.TransactionIncome, tx.Type)
	assert.Equal(t, 8000.0, tx.Amount)
	assert.Equal(t, "Salário (Automático)", tx.Description)
	assert.Equal(t, now, tx.Date)
}

func TestRenewalRunsOncePerMonth(t *testing.T) {
	now := time.Date(2026, time.May, 15, 10, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.incomes = []models.IncomeSource{
		{ID: 1, Name: "Salário", Amount: 8000, Frequency: models.FrequencyMonthly, IsActive: true},
	}
	svc := NewRenewalService(store, testLogger())

	first, err := svc.RunForUser(1, now)
	require.NoError(t, err)
	assert.Equal(t, 1, first.IncomesCreated)

	second, err := svc.RunForUser(1, now.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Len(t, store.created, 1)

	// a new month opens a new period
	third, err := svc.RunForUser(1, now.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.False(t, third.Skipped)
	assert.Len(t, store.created, 2)
}

func TestRenewalYearlyIncomeOnlyInItsMonth(t *testing.T) {
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.incomes = []models.IncomeSource{
		{ID: 1, Name: "13º salário", Amount: 8000, Frequency: models.FrequencyYearly, IsActive: true,
			NextPayment: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Dividendos anuais", Amount: 1500, Frequency: models.FrequencyYearly, IsActive: true,
			NextPayment: time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}

	svc := NewRenewalService(store, testLogger())
	result, err := svc.RunForUser(1, now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.IncomesCreated)
	require.Len(t, store.created, 1)
	assert.Contains(t, store.created[0].Description, "Dividendos anuais")
}

func TestRenewalReplaysRecurringExpenses(t *testing.T) {
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.expenses = []models.Transaction{
		{ID: 10, Type: models.TransactionExpense, Amount: 59.9, Category: "streaming",
			Description: "Netflix", IsRecurring: true},
	}

	svc := NewRenewalService(store, testLogger())
	result, err := svc.RunForUser(1, now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ExpensesCreated)
	require.Len(t, store.created, 1)
	tx := store.created[0]
	assert.Equal(t, models.TransactionExpense, tx.Type)
	assert.Equal(t, 59.9, tx.Amount)
	assert.Equal(t, "Netflix (Automático)", tx.Description)
	assert.False(t, tx.IsRecurring)
}

func TestRenewalAdvancesBillsRegardlessOfPaymentStatus(t *testing.T) {
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.bills = []models.Bill{
		{ID: 1, DueDay: 10, PaymentStatus: models.BillPaid, IsRecurring: true, IsActive: true},
		{ID: 2, DueDay: 10, PaymentStatus: models.BillPending, IsRecurring: true, IsActive: true},
	}

	svc := NewRenewalService(store, testLogger())
	result, err := svc.RunForUser(1, now)
	require.NoError(t, err)

	assert.Equal(t, 2, result.BillsAdvanced)
	wantDue := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantDue, store.dueUpdates[1])
	assert.Equal(t, wantDue, store.dueUpdates[2])
}

func TestRenewalClampsDueDayToMonthLength(t *testing.T) {
	// renewal in May targets June, which has 30 days
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.bills = []models.Bill{
		{ID: 1, DueDay: 31, IsRecurring: true, IsActive: true},
	}

	svc := NewRenewalService(store, testLogger())
	_, err := svc.RunForUser(1, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), store.dueUpdates[1])
}

func TestRenewalStepFailureDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeRenewalStore()
	store.failCreate = true
	store.incomes = []models.IncomeSource{
		{ID: 1, Name: "Salário", Amount: 8000, Frequency: models.FrequencyMonthly, IsActive: true},
	}
	store.expenses = []models.Transaction{
		{ID: 10, Type: models.TransactionExpense, Amount: 100, Description: "Academia", IsRecurring: true},
	}
	store.bills = []models.Bill{
		{ID: 1, DueDay: 5, IsRecurring: true, IsActive: true},
	}

	svc := NewRenewalService(store, testLogger())
	result, err := svc.RunForUser(1, now)
	require.NoError(t, err)

	assert.Equal(t, 0, result.IncomesCreated)
	assert.Equal(t, 0, result.ExpensesCreated)
	assert.Equal(t, 2, result.Failures)
	// bills still advanced despite the transaction failures
	assert.Equal(t, 1, result.BillsAdvanced)
	assert.Contains(t, store.dueUpdates, int64(1))
}

func TestNextDueDateYearRollover(t *testing.T) {
	now := time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC)
	got := nextDueDate(now, 15)
	assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), got)
}
