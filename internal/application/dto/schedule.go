package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
)

// ScheduleRequest describes when a scheduled email should be sent.
// Exactly the fields relevant to ScheduleType must be populated.
type ScheduleRequest struct {
	ScheduleType constant.ScheduleType `json:"schedule_type"`

	// For 'once' schedules.
	SendAt *time.Time `json:"send_at,omitempty"`

	// For 'daily' schedules (HH:MM).
	DailyTime string `json:"daily_time,omitempty"`

	// For 'weekly' schedules (0=Monday, 6=Sunday).
	WeeklyDay  *int   `json:"weekly_day,omitempty"`
	WeeklyTime string `json:"weekly_time,omitempty"`

	// For 'monthly' schedules (1-31, clamped to the month's length).
	MonthlyDay  *int   `json:"monthly_day,omitempty"`
	MonthlyTime string `json:"monthly_time,omitempty"`

	// Optional end date for recurring schedules.
	EndDate *time.Time `json:"end_date,omitempty"`
}

// Validate checks that the fields required by ScheduleType are present
// and well formed. All errors wrap ErrInvalidSchedule.
func (r *ScheduleRequest) Validate() error {
	switch r.ScheduleType {
	case constant.ScheduleOnce:
		if r.SendAt == nil {
			return fmt.Errorf("%w: send_at is required for 'once' schedule type", appErrors.ErrInvalidSchedule)
		}
	case constant.ScheduleDaily:
		if r.DailyTime == "" {
			return fmt.Errorf("%w: daily_time is required for 'daily' schedule type", appErrors.ErrInvalidSchedule)
		}
		if _, _, err := parseTimeOfDay(r.DailyTime); err != nil {
			return err
		}
	case constant.ScheduleWeekly:
		if r.WeeklyDay == nil {
			return fmt.Errorf("%w: weekly_day is required for 'weekly' schedule type", appErrors.ErrInvalidSchedule)
		}
		if *r.WeeklyDay < 0 || *r.WeeklyDay > 6 {
			return fmt.Errorf("%w: weekly_day must be between 0 (Monday) and 6 (Sunday)", appErrors.ErrInvalidSchedule)
		}
		if r.WeeklyTime == "" {
			return fmt.Errorf("%w: weekly_time is required for 'weekly' schedule type", appErrors.ErrInvalidSchedule)
		}
		if _, _, err := parseTimeOfDay(r.WeeklyTime); err != nil {
			return err
		}
	case constant.ScheduleMonthly:
		if r.MonthlyDay == nil {
			return fmt.Errorf("%w: monthly_day is required for 'monthly' schedule type", appErrors.ErrInvalidSchedule)
		}
		if *r.MonthlyDay < 1 || *r.MonthlyDay > 31 {
			return fmt.Errorf("%w: monthly_day must be between 1 and 31", appErrors.ErrInvalidSchedule)
		}
		if r.MonthlyTime == "" {
			return fmt.Errorf("%w: monthly_time is required for 'monthly' schedule type", appErrors.ErrInvalidSchedule)
		}
		if _, _, err := parseTimeOfDay(r.MonthlyTime); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown schedule_type %q", appErrors.ErrInvalidSchedule, r.ScheduleType)
	}
	return nil
}

// TimeOfDay returns the hour and minute of the recurring time field for
// the request's schedule type. It must only be called after Validate.
func (r *ScheduleRequest) TimeOfDay() (hour, minute int, err error) {
	switch r.ScheduleType {
	case constant.ScheduleDaily:
		return parseTimeOfDay(r.DailyTime)
	case constant.ScheduleWeekly:
		return parseTimeOfDay(r.WeeklyTime)
	case constant.ScheduleMonthly:
		return parseTimeOfDay(r.MonthlyTime)
	}
	return 0, 0, fmt.Errorf("%w: schedule_type %q has no time of day", appErrors.ErrInvalidSchedule, r.ScheduleType)
}

// parseTimeOfDay parses a strict HH:MM time string.
func parseTimeOfDay(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time %q must be in HH:MM format", appErrors.ErrInvalidSchedule, value)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, 0, fmt.Errorf("%w: time %q must be in HH:MM format", appErrors.ErrInvalidSchedule, value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time %q must have hours 0-23 and minutes 0-59", appErrors.ErrInvalidSchedule, value)
	}
	return hour, minute, nil
}

// ScheduledEmailRequest combines an email payload with its schedule.
type ScheduledEmailRequest struct {
	Email    EmailRequest    `json:"email"`
	Schedule ScheduleRequest `json:"schedule"`
}

// ScheduleResponse is the DTO returned by schedule and cancel operations.
type ScheduleResponse struct {
	Success      bool       `json:"success"`
	ScheduleID   string     `json:"schedule_id,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Message      string     `json:"message"`
	Error        string     `json:"error,omitempty"`
}

// ScheduleInfo is the DTO for inspecting a registered schedule.
type ScheduleInfo struct {
	ScheduleID   string                `json:"schedule_id"`
	ScheduleType constant.ScheduleType `json:"schedule_type"`
	ScheduledFor time.Time             `json:"scheduled_for"`
}

// ScheduleListResponse is the DTO for listing registered schedules.
type ScheduleListResponse struct {
	Schedules []ScheduleInfo `json:"schedules"`
	Count     int            `json:"count"`
}
