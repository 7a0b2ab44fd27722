package scheduler

import (
	"time"

	"github.com/mywealth360/finance-service/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler drives the periodic jobs: an hourly email-queue pass and a
// daily renewal sweep. The renewal job's durable per-month marker
// makes the daily cadence safe.
type Scheduler struct {
	cron     *cron.Cron
	renewals *service.RenewalService
	digests  *service.DigestService
	log      *logrus.Logger
}

// New initializes the scheduler
func New(renewals *service.RenewalService, digests *service.DigestService, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		renewals: renewals,
		digests:  digests,
		log:      log,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", func() {
		result := s.digests.ProcessAll(time.Now())
		s.log.Infof("Email queue pass: immediate %d/%d, daily %d digest(s), weekly %d digest(s)",
			result.Immediate.Success, result.Immediate.Processed,
			result.Daily.DigestsSent, result.Weekly.DigestsSent)
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		s.renewals.RunForAllUsers(time.Now())
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Scheduler started")
	return nil
}

// Stop stops the cron loop, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}
