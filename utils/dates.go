package utils

import (
	"time"

	"homely/config"
)

// Booking window: tomorrow through this many days ahead, unless overridden
// through BOOKING_WINDOW_DAYS.
const BookingWindowDays = 60

// ParseAPIDateAsLocal converts an API date or datetime string into a local
// midnight time for the same calendar date. Only the leading "2006-01-02"
// component is read; any time-of-day or zone offset in the input is dropped,
// so the calendar date survives regardless of the sender's offset. Malformed
// input returns the zero time, which downstream date-string comparisons
// silently fail to match.
func ParseAPIDateAsLocal(s string) time.Time {
	return parseAPIDateIn(s, time.Local)
}

func parseAPIDateIn(s string, loc *time.Location) time.Time {
	if len(s) < 10 {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LocalMidnight truncates a time to local midnight of its local calendar date.
func LocalMidnight(t time.Time) time.Time {
	return localMidnightIn(t, time.Local)
}

func localMidnightIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// FormatDateForAPI encodes the local calendar date of t as an ISO datetime
// anchored at 12:00 UTC. Noon UTC keeps the calendar day stable when the
// string is re-read in any zone within twelve hours of UTC.
func FormatDateForAPI(t time.Time) string {
	return formatDateForAPIIn(t, time.Local)
}

func formatDateForAPIIn(t time.Time, loc *time.Location) string {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

// FormatDateToLocalString renders the local calendar date of t as
// "2006-01-02", the canonical key for date equality across representations.
func FormatDateToLocalString(t time.Time) string {
	return formatDateToLocalStringIn(t, time.Local)
}

func formatDateToLocalStringIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// GetFirstDayOfMonth returns local midnight on the first day of t's month.
func GetFirstDayOfMonth(t time.Time) time.Time {
	return firstDayOfMonthIn(t, time.Local)
}

func firstDayOfMonthIn(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}

// GetLastDayOfMonth returns local midnight on the last day of t's month.
func GetLastDayOfMonth(t time.Time) time.Time {
	return lastDayOfMonthIn(t, time.Local)
}

func lastDayOfMonthIn(t time.Time, loc *time.Location) time.Time {
	return firstDayOfMonthIn(t, loc).AddDate(0, 1, -1)
}

// GetCalendarDates returns the fixed 42-cell (six week) grid for t's month.
// The grid starts on the Sunday on or before the first of the month and pads
// with days from the neighbouring months, so every month renders the same
// number of cells.
func GetCalendarDates(t time.Time) []time.Time {
	return calendarDatesIn(t, time.Local)
}

func calendarDatesIn(t time.Time, loc *time.Location) []time.Time {
	first := firstDayOfMonthIn(t, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	dates := make([]time.Time, 42)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// GetTomorrowDate returns the earliest bookable instant: tomorrow at local
// midnight.
func GetTomorrowDate() time.Time {
	return LocalMidnight(time.Now()).AddDate(0, 0, 1)
}

// GetMaxDate returns the latest bookable instant: the end of the day at the
// far edge of the booking window, local time.
func GetMaxDate() time.Time {
	days := config.AppConfig.BookingWindowDays
	if days <= 0 {
		days = BookingWindowDays
	}
	limit := LocalMidnight(time.Now()).AddDate(0, 0, days)
	return limit.Add(24*time.Hour - time.Millisecond)
}
