package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		hour    int
		min     int
		wantErr bool
	}{
		{name: "plain", raw: "05:12", hour: 5, min: 12},
		{name: "timezone suffix", raw: "19:20 (+03)", hour: 19, min: 20},
		{name: "named zone suffix", raw: "04:58 (EET)", hour: 4, min: 58},
		{name: "surrounding whitespace", raw: " 12:45 ", hour: 12, min: 45},
		{name: "missing colon", raw: "1920", wantErr: true},
		{name: "hour out of range", raw: "24:00", wantErr: true},
		{name: "minute out of range", raw: "12:60", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "single digit hour", raw: "5:12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := ParseClock(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error, got %d:%d", tt.raw, h, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.raw, err)
			}
			if h != tt.hour || m != tt.min {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.raw, h, m, tt.hour, tt.min)
			}
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("19:20 (+03)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "19:20" {
		t.Errorf("NormalizeClock = %q, want %q", got, "19:20")
	}
}

func TestRemainingUntil(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	day := func(h, m, s int) time.Time {
		return time.Date(2025, time.March, 10, h, m, s, 0, loc)
	}

	tests := []struct {
		name string
		now  time.Time
		want Remaining
	}{
		{name: "same day", now: day(12, 0, 0), want: Remaining{Hours: 0, Minutes: 45, Seconds: 0}},
		{name: "with seconds", now: day(12, 0, 30), want: Remaining{Hours: 0, Minutes: 44, Seconds: 30}},
		{name: "exact target rolls over", now: day(12, 45, 0), want: Remaining{Hours: 24, Minutes: 0, Seconds: 0}},
		{name: "already passed rolls over", now: day(21, 0, 0), want: Remaining{Hours: 15, Minutes: 45, Seconds: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemainingUntil("12:45", tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RemainingUntil = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The countdown added to now must land exactly on the target instant, and
// minutes/seconds stay inside [0, 60).
func TestRemainingUntilRoundTrips(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	clocks := []string{"00:00", "05:00", "12:45", "19:20", "23:59"}
	nows := []time.Time{
		time.Date(2025, time.March, 10, 0, 0, 0, 0, loc),
		time.Date(2025, time.March, 10, 4, 59, 59, 0, loc),
		time.Date(2025, time.March, 10, 12, 45, 0, 0, loc),
		time.Date(2025, time.March, 10, 23, 59, 30, 0, loc),
	}

	for _, clock := range clocks {
		for _, now := range nows {
			rem, err := RemainingUntil(clock, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rem.Minutes < 0 || rem.Minutes > 59 || rem.Seconds < 0 || rem.Seconds > 59 {
				t.Errorf("RemainingUntil(%q, %v) out of range: %+v", clock, now, rem)
			}
			landed := now.Add(rem.Duration())
			wantClock := landed.Format("15:04")
			if wantClock != clock {
				t.Errorf("RemainingUntil(%q, %v): now+d lands on %s", clock, now, wantClock)
			}
			if !landed.After(now) {
				t.Errorf("RemainingUntil(%q, %v): non-positive countdown", clock, now)
			}
		}
	}
}

func TestIsRamadan(t *testing.T) {
	if !IsRamadan(9) {
		t.Error("month 9 should be Ramadan")
	}
	if IsRamadan(8) {
		t.Error("month 8 should not be Ramadan")
	}
}

func TestTo12Hour(t *testing.T) {
	got, err := To12Hour("19:20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "07:20 PM" {
		t.Errorf("To12Hour = %q, want %q", got, "07:20 PM")
	}
}
