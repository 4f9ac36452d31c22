package constant

// ScheduleType discriminates the supported recurrence rules for
// scheduled emails.
type ScheduleType string

const (
	// ScheduleOnce fires exactly once at an absolute timestamp.
	ScheduleOnce ScheduleType = "once"
	// ScheduleDaily fires every day at a fixed time of day.
	ScheduleDaily ScheduleType = "daily"
	// ScheduleWeekly fires every week on a fixed weekday (0=Monday).
	ScheduleWeekly ScheduleType = "weekly"
	// ScheduleMonthly fires every month on a fixed day of month,
	// clamped to the last day of shorter months.
	ScheduleMonthly ScheduleType = "monthly"
)

// Valid reports whether the schedule type is one of the supported kinds.
func (s ScheduleType) Valid() bool {
	switch s {
	case ScheduleOnce, ScheduleDaily, ScheduleWeekly, ScheduleMonthly:
		return true
	}
	return false
}

func (s ScheduleType) String() string {
	return string(s)
}
