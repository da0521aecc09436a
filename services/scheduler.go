package services

import (
	"context"
	"log"
	"main/utils"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionSweeper is the slice of the session store the scheduler needs.
type SessionSweeper interface {
	DeleteExpiredSessions(ctx context.Context) (int64, error)
	CountAllActiveSessions(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron     *cron.Cron
	sessions SessionSweeper
}

func NewScheduler(sessions SessionSweeper) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		sessions: sessions,
	}
}

// Start registers the maintenance jobs and runs the cron loop. Intervals
// are env-tunable for deployments with different session churn.
func (s *Scheduler) Start() error {
	sweepEvery := utils.GetEnvAsDuration("SESSION_SWEEP_INTERVAL", 15*time.Minute)
	gaugeEvery := utils.GetEnvAsDuration("SESSION_GAUGE_INTERVAL", time.Minute)
	sampleEvery := utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 30*time.Second)

	if _, err := s.cron.AddFunc("@every "+sweepEvery.String(), s.sweepExpiredSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every "+gaugeEvery.String(), s.refreshSessionGauge); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every "+sampleEvery.String(), utils.SampleSystemMetrics); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Maintenance scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) sweepExpiredSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		log.Printf("Expired session sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Swept %d expired sessions", deleted)
	}
}

func (s *Scheduler) refreshSessionGauge() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.sessions.CountAllActiveSessions(ctx)
	if err != nil {
		log.Printf("Active session count failed: %v", err)
		return
	}
	utils.UpdateActiveSessions(float64(count))
}
