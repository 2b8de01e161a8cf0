// Package timeutil holds the pure clock arithmetic the rest of the service
// builds on: parsing the upstream "HH:mm" strings, composing them with a
// calendar date, and computing the live countdown to a target time.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format used by clients (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// APIDateLayout is the upstream path format (DD-MM-YYYY).
	APIDateLayout = "02-01-2006"
)

// Remaining is a countdown decomposed into whole hours, minutes and seconds,
// floor-truncated from the underlying difference.
type Remaining struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Duration converts the decomposed countdown back to a time.Duration.
func (r Remaining) Duration() time.Duration {
	return time.Duration(r.Hours)*time.Hour +
		time.Duration(r.Minutes)*time.Minute +
		time.Duration(r.Seconds)*time.Second
}

// ParseClock parses an "HH:mm" clock string. The upstream API sometimes
// appends a timezone suffix like "19:20 (+03)"; only the first five
// characters are significant.
func ParseClock(raw string) (hour, min int, err error) {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		s = s[:idx]
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("invalid clock %q", raw)
	}
	hour, err = strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", raw)
	}
	min, err = strconv.Atoi(s[3:])
	if err != nil || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", raw)
	}
	return hour, min, nil
}

// NormalizeClock strips any timezone suffix and returns a bare "HH:mm".
func NormalizeClock(raw string) (string, error) {
	h, m, err := ParseClock(raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// At composes a clock string with day's calendar date in day's location.
func At(clock string, day time.Time) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// RemainingUntil computes the countdown from now to the next occurrence of
// the given clock time. A target at or before now rolls forward exactly one
// day, so a prayer that already passed today counts down to tomorrow's.
func RemainingUntil(clock string, now time.Time) (Remaining, error) {
	target, err := At(clock, now)
	if err != nil {
		return Remaining{}, err
	}
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	d := target.Sub(now)
	return Remaining{
		Hours:   int(d / time.Hour),
		Minutes: int(d/time.Minute) % 60,
		Seconds: int(d/time.Second) % 60,
	}, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// FormatAPIDate renders a date as DD-MM-YYYY for upstream request paths.
func FormatAPIDate(t time.Time) string { return t.Format(APIDateLayout) }

// IsRamadan reports whether a Hijri month number is Ramadan (the 9th month).
func IsRamadan(hijriMonth int) bool { return hijriMonth == 9 }

// To12Hour converts an "HH:mm" clock to "hh:mm AM/PM" form.
func To12Hour(clock string) (string, error) {
	t, err := At(clock, time.Time{})
	if err != nil {
		return "", err
	}
	return t.Format("03:04 PM"), nil
}
