// Package scheduler runs the periodic auto-invest sweep.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"gulfacorns/internal/logger"
	"gulfacorns/internal/services"
)

// Scheduler manages the auto-invest cron job for one user.
type Scheduler struct {
	Cron      *cron.Cron
	Invest    services.InvestServicer
	UserID    string
	Portfolio string
}

// New creates a Scheduler that sweeps userID's pending spare change into portfolio.
func New(invest services.InvestServicer, userID, portfolio string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Invest:    invest,
		UserID:    userID,
		Portfolio: portfolio,
	}
}

// Register adds the auto-invest job on the given standard five-field cron
// spec, or a descriptor such as "@daily".
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.autoInvest); err != nil {
		return fmt.Errorf("register auto-invest task: %w", err)
	}
	logger.Named("scheduler").Infow("auto-invest registered", "spec", spec, "portfolio", s.Portfolio)
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Named("scheduler").Info("scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logger.Named("scheduler").Info("scheduler stopped")
}

// RunNow executes the auto-invest job immediately.
func (s *Scheduler) RunNow() {
	s.autoInvest()
}

func (s *Scheduler) autoInvest() {
	log := logger.Named("scheduler")

	result, err := s.Invest.Invest(s.UserID, s.Portfolio)
	if err != nil {
		log.Errorw("auto-invest failed", "user_id", s.UserID, "error", err)
		return
	}
	if len(result.Lots) == 0 {
		log.Infow("auto-invest found nothing pending", "user_id", s.UserID)
		return
	}
	log.Infow("auto-invest completed",
		"user_id", s.UserID,
		"lots", len(result.Lots),
		"invested", result.Invested.String(),
	)
}
