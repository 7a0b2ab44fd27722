package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mywealth360/finance-service/internal/config"
	"github.com/mywealth360/finance-service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AccountStore is the storage surface for accounts and bill payments
type AccountStore interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	BillsByUser(userID int64) ([]models.Bill, error)
	PayBill(billID, userID int64, amount float64, method string, paidAt time.Time) error
}

// Service handles account business logic
type Service struct {
	repo   AccountStore
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo AccountStore, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(name, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// PayBill marks one bill as paid for the given user
func (s *Service) PayBill(userID, billID int64, amount float64, method string, paidAt time.Time) error {
	if err := s.repo.PayBill(billID, userID, amount, method, paidAt); err != nil {
		return err
	}
	s.log.Infof("Bill %d paid by user %d", billID, userID)
	return nil
}

// BulkPayResult reports the outcome of a bulk payment
type BulkPayResult struct {
	Paid   []int64 `json:"paid"`
	Failed []int64 `json:"failed"`
}

// PayBills marks many bills as paid. Each bill fails independently.
func (s *Service) PayBills(userID int64, billIDs []int64, method string, paidAt time.Time) *BulkPayResult {
	result := &BulkPayResult{Paid: []int64{}, Failed: []int64{}}
	bills, err := s.repo.BillsByUser(userID)
	if err != nil {
		s.log.Errorf("Failed to load bills for bulk payment: %v", err)
		result.Failed = append(result.Failed, billIDs...)
		return result
	}
	amounts := make(map[int64]float64, len(bills))
	for _, b := range bills {
		amounts[b.ID] = b.Amount
	}

	for _, id := range billIDs {
		amount, ok := amounts[id]
		if !ok {
			s.log.Errorf("Bill %d not found for user %d", id, userID)
			result.Failed = append(result.Failed, id)
			continue
		}
		if err := s.repo.PayBill(id, userID, amount, method, paidAt); err != nil {
			s.log.Errorf("Failed to pay bill %d: %v", id, err)
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Paid = append(result.Paid, id)
	}
	s.log.Infof("Bulk payment for user %d: %d paid, %d failed", userID, len(result.Paid), len(result.Failed))
	return result
}
