package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mywealth360/finance-service/internal/config"
	"github.com/mywealth360/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentRecord struct {
	billID int64
	amount float64
	method string
}

type fakeAccountStore struct {
	users    map[string]*models.User
	bills    []models.Bill
	failPay  map[int64]error
	payments []paymentRecord
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		users:   make(map[string]*models.User),
		failPay: make(map[int64]error),
	}
}

func (f *fakeAccountStore) CreateUser(user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return errors.New("email already taken")
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Email] = user
	return nil
}

func (f *fakeAccountStore) FindUserByEmail(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeAccountStore) BillsByUser(userID int64) ([]models.Bill, error) {
	var out []models.Bill
	for _, b := range f.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeAccountStore) PayBill(billID, userID int64, amount float64, method string, paidAt time.Time) error {
	if err, ok := f.failPay[billID]; ok {
		return err
	}
	f.payments = append(f.payments, paymentRecord{billID: billID, amount: amount, method: method})
	return nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestPayBillsPartialFailure(t *testing.T) {
	store := newFakeAccountStore()
	store.bills = []models.Bill{
		{ID: 1, UserID: 7, Name: "Aluguel", Amount: 1800},
		{ID: 2, UserID: 7, Name: "Internet", Amount: 99.90},
		{ID: 3, UserID: 7, Name: "Energia", Amount: 240},
	}
	store.failPay[2] = errors.New("bill 2 not found")

	svc := NewService(store, testLogger(), testConfig())
	paidAt := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	result := svc.PayBills(7, []int64{1, 2, 3}, "pix", paidAt)

	assert.Equal(t, []int64{1, 3}, result.Paid)
	assert.Equal(t, []int64{2}, result.Failed)

	require.Len(t, store.payments, 2)
	assert.Equal(t, paymentRecord{billID: 1, amount: 1800, method: "pix"}, store.payments[0])
	assert.Equal(t, paymentRecord{billID: 3, amount: 240, method: "pix"}, store.payments[1])
}

func TestPayBillsUnknownBill(t *testing.T) {
	store := newFakeAccountStore()
	store.bills = []models.Bill{
		{ID: 1, UserID: 7, Name: "Aluguel", Amount: 1800},
	}

	svc := NewService(store, testLogger(), testConfig())
	result := svc.PayBills(7, []int64{1, 42}, "boleto", time.Now())

	assert.Equal(t, []int64{1}, result.Paid)
	assert.Equal(t, []int64{42}, result.Failed)
}

func TestPayBillsIgnoresOtherUsersBills(t *testing.T) {
	store := newFakeAccountStore()
	store.bills = []models.Bill{
		{ID: 5, UserID: 9, Name: "Condomínio", Amount: 600},
	}

	svc := NewService(store, testLogger(), testConfig())
	result := svc.PayBills(7, []int64{5}, "pix", time.Now())

	assert.Empty(t, result.Paid)
	assert.Equal(t, []int64{5}, result.Failed)
	assert.Empty(t, store.payments)
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewService(store, testLogger(), testConfig())

	user, err := svc.Register("Ana", "ana@example.com", "s3nh4forte")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nh4forte", user.PasswordHash)

	token, err := svc.Login("ana@example.com", "s3nh4forte")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("ana@example.com", "errada")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login("ninguem@example.com", "s3nh4forte")
	assert.EqualError(t, err, "invalid credentials")
}
