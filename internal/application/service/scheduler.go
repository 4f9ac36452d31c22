package service

import (
	"context"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"

	"github.com/robfig/cron/v3"
)

// SchedulerRuntime abstracts the cron dispatcher that fires registered
// triggers. Implemented by infrastructure/scheduler.
type SchedulerRuntime interface {
	// Schedule registers a trigger bound to cmd and returns a handle
	// for later removal.
	Schedule(trigger cron.Schedule, cmd func()) cron.EntryID
	// Remove deregisters a previously scheduled trigger.
	Remove(id cron.EntryID)
	// Stop shuts the dispatcher down; outstanding firings are abandoned.
	Stop()
}

// SchedulerService defines the interface for scheduling email delivery.
type SchedulerService interface {
	// ScheduleEmail validates the payload and schedule, registers the
	// trigger and returns the schedule ID and first occurrence. Nothing
	// is registered when validation fails.
	ScheduleEmail(ctx context.Context, email dto.EmailRequest, schedule dto.ScheduleRequest) (*dto.ScheduleResponse, error)
	// CancelSchedule removes a registered schedule, preventing any
	// future firing. An unknown ID (including one already cancelled)
	// yields ErrScheduleNotFound.
	CancelSchedule(ctx context.Context, scheduleID string) (*dto.ScheduleResponse, error)
	// GetSchedule returns the registered schedule's metadata.
	GetSchedule(ctx context.Context, scheduleID string) (*dto.ScheduleInfo, error)
	// ListSchedules returns all registered schedules in insertion order.
	ListSchedules(ctx context.Context) []dto.ScheduleInfo
	// Stop stops the underlying scheduler runtime.
	Stop()
}
