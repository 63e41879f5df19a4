package model

import (
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 365 * secondsPerDay
)

// UptimeBreakdown splits a whole number of seconds. Years are fixed
// 365-day years; leap days are ignored.
type UptimeBreakdown struct {
	Years   int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// NewUptimeBreakdown truncates seconds to an integer before splitting.
// Negative, NaN and infinite inputs count as zero; values past the
// int64 range are clamped to math.MaxInt64 seconds.
func NewUptimeBreakdown(seconds float64) UptimeBreakdown {
	var total int64
	switch {
	case math.IsNaN(seconds), math.IsInf(seconds, 0), seconds < 0:
		total = 0
	case seconds >= math.MaxInt64:
		total = math.MaxInt64
	default:
		total = int64(math.Floor(seconds))
	}
	return UptimeBreakdown{
		Years:   total / secondsPerYear,
		Days:    (total / secondsPerDay) % 365,
		Hours:   (total / secondsPerHour) % 24,
		Minutes: (total / secondsPerMinute) % 60,
		Seconds: total % secondsPerMinute,
	}
}

// TotalSeconds recomposes the breakdown.
func (u UptimeBreakdown) TotalSeconds() int64 {
	return u.Years*secondsPerYear + u.Days*secondsPerDay + u.Hours*secondsPerHour +
		u.Minutes*secondsPerMinute + u.Seconds
}

// String renders the breakdown the way the report prints it after
// "Uptime:". Years, days and hours appear only when nonzero; minutes
// and seconds always do. The first field gets a leading space and the
// rest are separated by ", ".
func (u UptimeBreakdown) String() string {
	var b strings.Builder
	emit := func(value int64, unit string) {
		if b.Len() == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(value, 10))
		b.WriteByte(' ')
		b.WriteString(unit)
	}
	if u.Years != 0 {
		emit(u.Years, "years")
	}
	if u.Days != 0 {
		emit(u.Days, "days")
	}
	if u.Hours != 0 {
		emit(u.Hours, "hours")
	}
	emit(u.Minutes, "minutes")
	emit(u.Seconds, "seconds")
	return b.String()
}
