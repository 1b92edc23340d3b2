package seed

import "time"

// Clock derives all seed dates from a single instant captured at
// construction. Every fixture date is an offset from that instant, so a run
// that straddles midnight still produces one consistent "today".
type Clock struct {
	today time.Time
}

// NewClock captures the current instant
func NewClock() *Clock {
	return &Clock{today: time.Now()}
}

// NewClockAt creates a clock pinned to a specific instant
func NewClockAt(t time.Time) *Clock {
	return &Clock{today: t}
}

// Today returns the captured instant
func (c *Clock) Today() time.Time {
	return c.today
}

// DateTimeOffset returns the captured instant shifted by the given number of
// days, keeping the time of day.
func (c *Clock) DateTimeOffset(days int) time.Time {
	return c.today.AddDate(0, 0, days)
}

// DateOnlyOffset returns the calendar date the given number of days from
// today, formatted YYYY-MM-DD.
func (c *Clock) DateOnlyOffset(days int) string {
	return c.today.AddDate(0, 0, days).Format("2006-01-02")
}

// TimeToday returns today's date at the given wall-clock time, with seconds
// and sub-seconds zeroed.
func (c *Clock) TimeToday(hour, minute int) time.Time {
	return time.Date(c.today.Year(), c.today.Month(), c.today.Day(),
		hour, minute, 0, 0, c.today.Location())
}
