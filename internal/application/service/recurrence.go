package service

import (
	"fmt"
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/scheduler"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"

	"github.com/robfig/cron/v3"
)

// oncePastGrace is how far ahead a 'once' schedule with a send time
// already in the past is pushed so the runtime still fires it. Past
// send times are accepted and fire on the runtime's next tick rather
// than being rejected.
const oncePastGrace = time.Second

// computeTrigger converts a validated schedule request into the runtime
// trigger and the first occurrence relative to now. The first
// occurrence comes from the trigger itself, so the advertised
// scheduled_for always matches what the runtime will actually fire.
//
// The request must have passed Validate; an inconsistent spec fails
// here rather than being silently guessed at.
func computeTrigger(req *dto.ScheduleRequest, now time.Time) (cron.Schedule, time.Time, error) {
	if req.ScheduleType == constant.ScheduleOnce {
		if req.SendAt == nil {
			return nil, time.Time{}, fmt.Errorf("%w: send_at is required for 'once' schedule type", appErrors.ErrInvalidSchedule)
		}
		fireAt := *req.SendAt
		if !fireAt.After(now) {
			fireAt = now.Add(oncePastGrace)
		}
		return scheduler.At(fireAt), fireAt, nil
	}

	hour, minute, err := req.TimeOfDay()
	if err != nil {
		return nil, time.Time{}, err
	}

	var trigger cron.Schedule
	switch req.ScheduleType {
	case constant.ScheduleDaily:
		trigger, err = cron.ParseStandard(fmt.Sprintf("%d %d * * *", minute, hour))

	case constant.ScheduleWeekly:
		if req.WeeklyDay == nil {
			return nil, time.Time{}, fmt.Errorf("%w: weekly_day is required for 'weekly' schedule type", appErrors.ErrInvalidSchedule)
		}
		// The API uses 0=Monday while cron uses 0=Sunday.
		cronDow := (*req.WeeklyDay + 1) % 7
		trigger, err = cron.ParseStandard(fmt.Sprintf("%d %d * * %d", minute, hour, cronDow))

	case constant.ScheduleMonthly:
		if req.MonthlyDay == nil {
			return nil, time.Time{}, fmt.Errorf("%w: monthly_day is required for 'monthly' schedule type", appErrors.ErrInvalidSchedule)
		}
		trigger = scheduler.MonthlyOn(*req.MonthlyDay, hour, minute)

	default:
		return nil, time.Time{}, fmt.Errorf("%w: unknown schedule_type %q", appErrors.ErrInvalidSchedule, req.ScheduleType)
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}

	var end time.Time
	if req.EndDate != nil {
		end = *req.EndDate
	}
	trigger = scheduler.Until(trigger, end)

	first := trigger.Next(now)
	if first.IsZero() {
		return nil, time.Time{}, fmt.Errorf("%w: end_date is before the first occurrence", appErrors.ErrInvalidSchedule)
	}
	return trigger, first, nil
}
