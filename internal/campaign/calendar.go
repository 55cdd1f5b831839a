// Package campaign maps wall-clock dates onto the fixed campaign window.
package campaign

import (
	"math"
	"time"
)

// Calendar converts dates to 1-based day numbers of a fixed-length campaign.
// It is pure: the start date and length are injected once and every method is
// a deterministic function of its arguments.
type Calendar struct {
	start time.Time
	days  int
}

func NewCalendar(start time.Time, days int) *Calendar {
	return &Calendar{
		start: truncateToMidnight(start),
		days:  days,
	}
}

// Days returns the campaign length.
func (c *Calendar) Days() int {
	return c.days
}

// Offset returns the raw 1-based day number for the given date, without range
// checks. Dates before the campaign yield values <= 0, dates after it yield
// values > Days(). View code relies on this arithmetic staying consistent out
// of range.
func (c *Calendar) Offset(date time.Time) int {
	diff := truncateToMidnight(date).Sub(c.start)

	// rounding keeps whole-day arithmetic stable across DST transitions,
	// where two midnights can be 23 or 25 hours apart
	return int(math.Round(diff.Hours()/24)) + 1
}

// DayNumber resolves the campaign day for the given date. The second return
// value is false when the date falls outside the campaign window.
func (c *Calendar) DayNumber(date time.Time) (int, bool) {
	day := c.Offset(date)
	if day < 1 || day > c.days {
		return 0, false
	}

	return day, true
}

func truncateToMidnight(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
