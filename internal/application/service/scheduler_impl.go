package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// scheduledJob is the registry entry for one accepted schedule request.
// scheduledFor reflects the occurrence computed at schedule time; later
// occurrences are the runtime's concern.
type scheduledJob struct {
	scheduleID   string
	scheduleType constant.ScheduleType
	scheduledFor time.Time
	task         *boundTask
	entryID      cron.EntryID
	seq          int // insertion order, keeps List stable
}

type schedulerService struct {
	runtime SchedulerRuntime
	emails  EmailService
	log     logger.Logger

	mu   sync.Mutex // Protect jobs/seq access
	jobs map[string]*scheduledJob
	seq  int

	now func() time.Time // injectable clock
}

// NewSchedulerService creates a new instance of SchedulerService
// implementation. The registry is owned by the returned value; there is
// no process-wide job state.
func NewSchedulerService(runtime SchedulerRuntime, emails EmailService, log logger.Logger) SchedulerService {
	return &schedulerService{
		runtime: runtime,
		emails:  emails,
		log:     log,
		jobs:    make(map[string]*scheduledJob),
		now:     time.Now,
	}
}

// ScheduleEmail registers an email for future delivery.
func (s *schedulerService) ScheduleEmail(ctx context.Context, email dto.EmailRequest, schedule dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	trigger, scheduledFor, err := computeTrigger(&schedule, s.now())
	if err != nil {
		return nil, err
	}

	scheduleID := uuid.NewString()
	task := &boundTask{
		scheduleID: scheduleID,
		kind:       actionSendEmail,
		email:      email,
		emails:     s.emails,
		log:        s.log,
	}
	if schedule.ScheduleType == constant.ScheduleOnce {
		task.done = func() { s.retire(scheduleID) }
	}

	entryID := s.runtime.Schedule(trigger, task.Run)

	s.mu.Lock()
	s.seq++
	s.jobs[scheduleID] = &scheduledJob{
		scheduleID:   scheduleID,
		scheduleType: schedule.ScheduleType,
		scheduledFor: scheduledFor,
		task:         task,
		entryID:      entryID,
		seq:          s.seq,
	}
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("Email scheduled successfully. Schedule ID: %s, Scheduled for: %v", scheduleID, scheduledFor))

	return &dto.ScheduleResponse{
		Success:      true,
		ScheduleID:   scheduleID,
		ScheduledFor: &scheduledFor,
		Message:      fmt.Sprintf("Email scheduled successfully for %v", scheduledFor),
	}, nil
}

// CancelSchedule removes the trigger and deletes the registry entry.
func (s *schedulerService) CancelSchedule(ctx context.Context, scheduleID string) (*dto.ScheduleResponse, error) {
	s.mu.Lock()
	job, ok := s.jobs[scheduleID]
	if ok {
		delete(s.jobs, scheduleID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: schedule ID %s", appErrors.ErrScheduleNotFound, scheduleID)
	}

	s.runtime.Remove(job.entryID)
	s.log.Info(fmt.Sprintf("Schedule %s cancelled successfully", scheduleID))

	return &dto.ScheduleResponse{
		Success: true,
		Message: fmt.Sprintf("Schedule %s cancelled successfully", scheduleID),
	}, nil
}

// GetSchedule returns the registered schedule's metadata.
func (s *schedulerService) GetSchedule(ctx context.Context, scheduleID string) (*dto.ScheduleInfo, error) {
	s.mu.Lock()
	job, ok := s.jobs[scheduleID]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: schedule ID %s", appErrors.ErrScheduleNotFound, scheduleID)
	}
	return &dto.ScheduleInfo{
		ScheduleID:   job.scheduleID,
		ScheduleType: job.scheduleType,
		ScheduledFor: job.scheduledFor,
	}, nil
}

// ListSchedules returns all registered schedules in insertion order.
func (s *schedulerService) ListSchedules(ctx context.Context) []dto.ScheduleInfo {
	s.mu.Lock()
	jobs := make([]*scheduledJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	s.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].seq < jobs[j].seq })

	list := make([]dto.ScheduleInfo, len(jobs))
	for i, job := range jobs {
		list[i] = dto.ScheduleInfo{
			ScheduleID:   job.scheduleID,
			ScheduleType: job.scheduleType,
			ScheduledFor: job.scheduledFor,
		}
	}
	return list
}

// retire drops a one-shot job after it has fired, releasing both the
// registry entry and the runtime's retired entry.
func (s *schedulerService) retire(scheduleID string) {
	s.mu.Lock()
	job, ok := s.jobs[scheduleID]
	if ok {
		delete(s.jobs, scheduleID)
	}
	s.mu.Unlock()

	if ok {
		s.runtime.Remove(job.entryID)
		s.log.Debug(fmt.Sprintf("Retired one-shot schedule %s after firing", scheduleID))
	}
}

// Stop stops the underlying scheduler runtime.
func (s *schedulerService) Stop() {
	s.runtime.Stop()
}
