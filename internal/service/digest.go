package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/sirupsen/logrus"
)

// immediateBatchLimit caps how many pending emails one immediate pass
// delivers
const immediateBatchLimit = 100

// weeklyLookback is the alert collection window for weekly digests
const weeklyLookback = 7 * 24 * time.Hour

// DigestStore is the storage surface the dispatcher needs
type DigestStore interface {
	PendingNotifications(limit int) ([]models.ScheduledEmailNotification, error)
	MarkNotificationSent(id int64) error
	MarkNotificationFailed(id int64, message string) error
	MarkAlertsEmailed(ids []int64) error
	SettingsByFrequency(frequency string) ([]models.AlertNotificationSettings, error)
	UnemailedAlertsSince(userID int64, since time.Time) ([]models.Alert, error)
	EnqueueNotification(n *models.ScheduledEmailNotification) error
	UpdateLastNotificationSent(userID int64, at time.Time) error
	FindUserByID(id int64) (*models.User, error)
}

// Sender delivers one email
type Sender interface {
	Send(to, subject, body string) error
}

// DigestService batches alerts into outbound emails per user frequency
// preference
type DigestService struct {
	store  DigestStore
	sender Sender
	log    *logrus.Logger
}

// NewDigestService initializes the dispatcher
func NewDigestService(store DigestStore, sender Sender, log *logrus.Logger) *DigestService {
	return &DigestService{store: store, sender: sender, log: log}
}

// ImmediateResult tallies one immediate pass
type ImmediateResult struct {
	Processed int `json:"processed"`
	Success   int `json:"success"`
	Failed    int `json:"failed"`
}

// DigestResult tallies one daily or weekly pass
type DigestResult struct {
	UsersProcessed int `json:"usersProcessed"`
	DigestsSent    int `json:"digestsSent"`
	Errors         int `json:"errors"`
}

// QueueResult aggregates the three sub-routines of one dispatcher run
type QueueResult struct {
	Immediate ImmediateResult `json:"immediate"`
	Daily     DigestResult    `json:"daily"`
	Weekly    DigestResult    `json:"weekly"`
}

// ProcessAll runs the immediate, daily and weekly routines in order
func (s *DigestService) ProcessAll(now time.Time) *QueueResult {
	return &QueueResult{
		Immediate: s.ProcessImmediate(),
		Daily:     s.ProcessDaily(now),
		Weekly:    s.ProcessWeekly(now),
	}
}

// ProcessImmediate delivers pending notifications, oldest first, up to
// the batch limit. Each row transitions to sent or failed
// independently; sent digests mark their source alerts emailed.
func (s *DigestService) ProcessImmediate() ImmediateResult {
	var result ImmediateResult
	pending, err := s.store.PendingNotifications(immediateBatchLimit)
	if err != nil {
		s.log.Errorf("Failed to list pending notifications: %v", err)
		return result
	}

	for _, n := range pending {
		result.Processed++
		if err := s.sender.Send(n.Recipient, n.Subject, n.Body); err != nil {
			s.log.Errorf("Failed to deliver notification %s: %v", n.PublicID, err)
			if markErr := s.store.MarkNotificationFailed(n.ID, err.Error()); markErr != nil {
				s.log.Errorf("Failed to mark notification %s failed: %v", n.PublicID, markErr)
			}
			result.Failed++
			continue
		}
		if err := s.store.MarkNotificationSent(n.ID); err != nil {
			s.log.Errorf("Failed to mark notification %s sent: %v", n.PublicID, err)
		}
		if err := s.store.MarkAlertsEmailed(n.AlertIDs); err != nil {
			s.log.Errorf("Failed to mark alerts emailed for notification %s: %v", n.PublicID, err)
		}
		result.Success++
	}

	if result.Processed > 0 {
		s.log.Infof("Immediate pass: %d processed, %d sent, %d failed",
			result.Processed, result.Success, result.Failed)
	}
	return result
}

// ProcessDaily enqueues one digest per eligible daily user covering
// the past 24 hours
func (s *DigestService) ProcessDaily(now time.Time) DigestResult {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.processDigests(models.FrequencyDaily, now, now.Add(-24*time.Hour),
		"Resumo diário de alertas", func(st models.AlertNotificationSettings) bool {
			return st.LastNotificationSent == nil || st.LastNotificationSent.Before(startOfDay)
		})
}

// ProcessWeekly enqueues weekly digests; it only fires on Mondays,
// looks back 7 days and requires the previous digest to be older than
// 6 days
func (s *DigestService) ProcessWeekly(now time.Time) DigestResult {
	if now.Weekday() != time.Monday {
		return DigestResult{}
	}
	cutoff := now.Add(-6 * 24 * time.Hour)
	return s.processDigests(models.FrequencyWeekly, now, now.Add(-weeklyLookback),
		"Resumo semanal de alertas", func(st models.AlertNotificationSettings) bool {
			return st.LastNotificationSent == nil || st.LastNotificationSent.Before(cutoff)
		})
}

func (s *DigestService) processDigests(frequency string, now, since time.Time,
	subject string, lastSentOK func(models.AlertNotificationSettings) bool) DigestResult {

	var result DigestResult
	settings, err := s.store.SettingsByFrequency(frequency)
	if err != nil {
		s.log.Errorf("Failed to list %s settings: %v", frequency, err)
		result.Errors++
		return result
	}

	for _, st := range settings {
		if st.SendHour != now.Hour() || !lastSentOK(st) {
			continue
		}
		result.UsersProcessed++

		alerts, err := s.store.UnemailedAlertsSince(st.UserID, since)
		if err != nil {
			s.log.Errorf("Failed to collect alerts for user %d: %v", st.UserID, err)
			result.Errors++
			continue
		}
		alerts = filterEnabledCategories(st, alerts)
		if len(alerts) == 0 {
			continue
		}
		sort.SliceStable(alerts, func(i, j int) bool {
			if alerts[i].Priority != alerts[j].Priority {
				return alerts[i].Priority > alerts[j].Priority
			}
			return alerts[i].Date.Before(alerts[j].Date)
		})

		recipient := st.NotificationEmail
		if recipient == "" {
			user, err := s.store.FindUserByID(st.UserID)
			if err != nil {
				s.log.Errorf("Failed to resolve recipient for user %d: %v", st.UserID, err)
				result.Errors++
				continue
			}
			recipient = user.Email
		}

		alertIDs := make([]int64, len(alerts))
		for i, a := range alerts {
			alertIDs[i] = a.ID
		}
		notification := &models.ScheduledEmailNotification{
			UserID:    st.UserID,
			Recipient: recipient,
			Subject:   subject + " — MyWealth360",
			Body:      ComposeDigestBody(alerts),
			AlertIDs:  alertIDs,
		}
		if err := s.store.EnqueueNotification(notification); err != nil {
			s.log.Errorf("Failed to enqueue %s digest for user %d: %v", frequency, st.UserID, err)
			result.Errors++
			continue
		}
		if err := s.store.UpdateLastNotificationSent(st.UserID, now); err != nil {
			s.log.Errorf("Failed to update last notification for user %d: %v", st.UserID, err)
			result.Errors++
		}
		result.DigestsSent++
		s.log.Infof("Enqueued %s digest for user %d with %d alert(s)", frequency, st.UserID, len(alerts))
	}
	return result
}

// filterEnabledCategories drops alerts whose category the user turned
// off. Feature announcements are not toggleable and always stay.
func filterEnabledCategories(st models.AlertNotificationSettings, alerts []models.Alert) []models.Alert {
	kept := alerts[:0]
	for _, a := range alerts {
		switch a.Type {
		case models.InsightWarning:
			if !st.WarningsEnabled {
				continue
			}
		case models.InsightAchievement:
			if !st.AchievementsEnabled {
				continue
			}
		case models.InsightSuggestion:
			if !st.SuggestionsEnabled {
				continue
			}
		}
		kept = append(kept, a)
	}
	return kept
}

// ComposeDigestBody renders the plain-text digest: one block per
// alert with title, description, localized date and priority label
func ComposeDigestBody(alerts []models.Alert) string {
	var b strings.Builder
	b.WriteString("Olá! Aqui está o resumo dos seus alertas financeiros:\n\n")
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("• %s\n", a.Title))
		b.WriteString(fmt.Sprintf("  %s\n", a.Description))
		b.WriteString(fmt.Sprintf("  Data: %s | Prioridade: %s\n\n",
			a.Date.Format("02/01/2006"), models.PriorityLabel(a.Priority)))
	}
	b.WriteString("Acesse o MyWealth360 para mais detalhes.\n")
	return b.String()
}
