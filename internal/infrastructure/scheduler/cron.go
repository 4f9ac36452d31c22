package scheduler

import (
	"fmt"
	"sync"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler is the time-driven dispatcher backing scheduled email
// delivery. It wraps a cron runtime; invocations of the same job are
// serialized (a delayed firing waits for the previous one to finish)
// while distinct jobs fire independently of each other.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex // To protect access to job management
}

// NewScheduler creates and starts a new cron scheduler instance.
func NewScheduler(log logger.Logger) *Scheduler {
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log: log}),
		cron.DelayIfStillRunning(cronLogger{log: log}),
	))
	c.Start()
	log.Info("Cron scheduler started.")
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// Schedule registers a trigger with the runtime, bound to cmd.
// Returns the EntryID of the registered job for later removal.
func (s *Scheduler) Schedule(trigger cron.Schedule, cmd func()) cron.EntryID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.cron.Schedule(trigger, cron.FuncJob(cmd))
	s.log.Info(fmt.Sprintf("Registered cron job with ID %d", id))
	return id
}

// Remove removes a job from the scheduler by its EntryID.
func (s *Scheduler) Remove(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
	s.log.Info(fmt.Sprintf("Removed cron job with ID %d", id))
}

// Stop stops the cron scheduler. Outstanding firings are abandoned,
// not awaited.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
		s.log.Info("Cron scheduler stopped.")
	}
}

// Entries returns the list of scheduled entries. Useful for debugging.
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}

// cronLogger adapts the application logger to the cron.Logger interface.
type cronLogger struct {
	log logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug(fmt.Sprintf("cron: %s %v", msg, keysAndValues))
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error(fmt.Sprintf("cron: %s %v", msg, keysAndValues), err)
}
