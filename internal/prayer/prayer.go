// Package prayer resolves the upcoming prayer from a day's timetable.
package prayer

import (
	"fmt"
	"time"

	"github.com/kandil-labs/vakit/internal/timeutil"
)

// Canonical prayer names in chronological order. The resolver iterates this
// order and never reorders by parsed time.
var Names = [6]string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// DisplayNames maps canonical names to the Turkish labels shown to users.
var DisplayNames = map[string]string{
	"Fajr":    "İmsak",
	"Sunrise": "Güneş",
	"Dhuhr":   "Öğle",
	"Asr":     "İkindi",
	"Maghrib": "Akşam",
	"Isha":    "Yatsı",
}

// Schedule is one calendar day's six prayer clock-times as "HH:mm" strings.
// Times are assumed strictly increasing within the day; the data source is
// trusted for ordering, only the format is validated.
type Schedule struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Clock returns the schedule entry for a canonical prayer name.
func (s Schedule) Clock(name string) (string, bool) {
	switch name {
	case "Fajr":
		return s.Fajr, true
	case "Sunrise":
		return s.Sunrise, true
	case "Dhuhr":
		return s.Dhuhr, true
	case "Asr":
		return s.Asr, true
	case "Maghrib":
		return s.Maghrib, true
	case "Isha":
		return s.Isha, true
	}
	return "", false
}

// Iftar is the fast-breaking time, which is the Maghrib prayer time.
func (s Schedule) Iftar() string { return s.Maghrib }

// Sahur is the pre-dawn meal deadline, which is the Fajr prayer time.
func (s Schedule) Sahur() string { return s.Fajr }

// Validate checks that all six entries parse as clock times.
func (s Schedule) Validate() error {
	for _, name := range Names {
		clock, _ := s.Clock(name)
		if _, _, err := timeutil.ParseClock(clock); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// NextPrayer is the resolved upcoming prayer relative to some instant.
type NextPrayer struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"displayName"`
	Time        string              `json:"time"`
	NextDay     bool                `json:"nextDay"`
	Remaining   timeutil.Remaining  `json:"remaining"`
}

// Next returns the first prayer whose clock-time is strictly after now on
// now's calendar day. A prayer whose time equals now counts as already
// passed. When every prayer has passed, the result is a synthetic next-day
// Fajr with the countdown computed against tomorrow.
//
// The result is only a snapshot; callers displaying a live countdown should
// re-invoke this at least once per second rather than decrement locally, so
// the value stays correct across suspends.
func Next(s Schedule, now time.Time) (NextPrayer, error) {
	for _, name := range Names {
		clock, _ := s.Clock(name)
		at, err := timeutil.At(clock, now)
		if err != nil {
			return NextPrayer{}, fmt.Errorf("%s: %w", name, err)
		}
		if at.After(now) {
			rem, err := timeutil.RemainingUntil(clock, now)
			if err != nil {
				return NextPrayer{}, err
			}
			return NextPrayer{
				Name:        name,
				DisplayName: DisplayNames[name],
				Time:        clock,
				Remaining:   rem,
			}, nil
		}
	}

	// Everything passed today; RemainingUntil rolls Fajr to tomorrow.
	rem, err := timeutil.RemainingUntil(s.Fajr, now)
	if err != nil {
		return NextPrayer{}, err
	}
	return NextPrayer{
		Name:        "Fajr",
		DisplayName: DisplayNames["Fajr"] + " (Yarın)",
		Time:        s.Fajr,
		NextDay:     true,
		Remaining:   rem,
	}, nil
}
