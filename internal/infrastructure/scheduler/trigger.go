package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
)

// At returns a one-shot trigger firing exactly once at t, then retiring.
func At(t time.Time) cron.Schedule {
	return onceSchedule{at: t}
}

type onceSchedule struct {
	at time.Time
}

// Next returns the configured time while it is still ahead of t, and the
// zero time afterwards so the runtime retires the entry after one fire.
func (s onceSchedule) Next(t time.Time) time.Time {
	if t.Before(s.at) {
		return s.at
	}
	return time.Time{}
}

// Until bounds a recurring trigger by an end date: occurrences strictly
// after end are never produced. A zero end leaves the trigger unbounded.
func Until(inner cron.Schedule, end time.Time) cron.Schedule {
	if end.IsZero() {
		return inner
	}
	return boundedSchedule{inner: inner, end: end}
}

type boundedSchedule struct {
	inner cron.Schedule
	end   time.Time
}

func (s boundedSchedule) Next(t time.Time) time.Time {
	next := s.inner.Next(t)
	if next.IsZero() || next.After(s.end) {
		return time.Time{}
	}
	return next
}

// MonthlyOn returns a trigger firing every month on the given day of
// month at hour:minute. When day exceeds the length of the target month
// the occurrence is clamped to the month's last day, so day 31 fires on
// April 30 and on February 28 (29 in leap years). A plain cron
// day-of-month rule would silently skip those months instead.
func MonthlyOn(day, hour, minute int) cron.Schedule {
	return monthlySchedule{day: day, hour: hour, minute: minute}
}

type monthlySchedule struct {
	day    int
	hour   int
	minute int
}

func (s monthlySchedule) Next(t time.Time) time.Time {
	candidate := monthOccurrence(t.Year(), t.Month(), s.day, s.hour, s.minute, t.Location())
	if candidate.After(t) {
		return candidate
	}

	// This month's occurrence has passed; advance, wrapping December
	// into January of the next year, and re-clamp for the new month.
	year, month := t.Year(), t.Month()
	if month == time.December {
		year, month = year+1, time.January
	} else {
		month++
	}
	return monthOccurrence(year, month, s.day, s.hour, s.minute, t.Location())
}

// monthOccurrence builds the occurrence for a specific month, clamping
// the day to the month's length.
func monthOccurrence(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// daysInMonth returns the number of days in the given month. Day zero of
// the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
