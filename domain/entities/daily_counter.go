package entities

import "time"

// DailyDateFormat is the calendar-day key for daily spin counters
const DailyDateFormat = "2006-01-02"

// DailySpinCounter tracks one user's draws for a single calendar day
type DailySpinCounter struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Rollover returns the counter adjusted for today's date. When the stored
// date differs from today the counter resets to zero; otherwise it is
// returned unchanged. Pure so it can be tested without a clock.
func (c DailySpinCounter) Rollover(today string) DailySpinCounter {
	if c.Date != today {
		return DailySpinCounter{Date: today, Count: 0}
	}
	return c
}

// LocalDay formats t as the local calendar day used for counter keys
func LocalDay(t time.Time) string {
	return t.Format(DailyDateFormat)
}
