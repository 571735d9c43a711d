// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"moneyharbor/internal/logger"
)

// ReminderDispatcher sends reminders that have come due.
type ReminderDispatcher interface {
	DispatchDue(ctx context.Context) (int, error)
}

// Scheduler manages cron jobs. A job still running when its next tick
// arrives is skipped for that tick.
type Scheduler struct {
	cron      *cron.Cron
	reminders ReminderDispatcher
	ctx       context.Context
	cancel    context.CancelFunc
}

// New creates a Scheduler. Jobs receive a context that is cancelled by Stop.
func New(reminders ReminderDispatcher) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	log := cronLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(log),
			cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
		),
		reminders: reminders,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// RegisterReminders schedules reminder dispatch on spec, a standard cron
// expression or descriptor such as "@every 15m".
func (s *Scheduler) RegisterReminders(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunRemindersNow); err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}
	return nil
}

// Start starts the scheduler in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Get().Infow("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	logger.Get().Info("scheduler stopped")
}

// RunRemindersNow dispatches due reminders immediately.
func (s *Scheduler) RunRemindersNow() {
	sent, err := s.reminders.DispatchDue(s.ctx)
	if err != nil {
		logger.Get().Errorw("reminder dispatch failed", "error", err)
		return
	}
	if sent > 0 {
		logger.Get().Infow("reminder dispatch finished", "sent", sent)
	}
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Get().Debugw("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Get().Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
