package prayer

import (
	"testing"
	"time"

	"github.com/kandil-labs/vakit/internal/timeutil"
)

var testSchedule = Schedule{
	Fajr:    "05:00",
	Sunrise: "06:30",
	Dhuhr:   "12:45",
	Asr:     "16:10",
	Maghrib: "19:20",
	Isha:    "20:45",
}

func at(h, m int) time.Time {
	loc := time.FixedZone("TRT", 3*60*60)
	return time.Date(2025, time.March, 10, h, m, 0, 0, loc)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantName string
		wantTime string
		nextDay  bool
		wantRem  timeutil.Remaining
	}{
		{
			name:     "before fajr",
			now:      at(4, 0),
			wantName: "Fajr",
			wantTime: "05:00",
			wantRem:  timeutil.Remaining{Hours: 1},
		},
		{
			name:     "midday",
			now:      at(12, 0),
			wantName: "Dhuhr",
			wantTime: "12:45",
			wantRem:  timeutil.Remaining{Minutes: 45},
		},
		{
			name:     "exactly on a prayer counts as passed",
			now:      at(12, 45),
			wantName: "Asr",
			wantTime: "16:10",
			wantRem:  timeutil.Remaining{Hours: 3, Minutes: 25},
		},
		{
			name:     "after isha wraps to next-day fajr",
			now:      at(21, 0),
			wantName: "Fajr",
			wantTime: "05:00",
			nextDay:  true,
			wantRem:  timeutil.Remaining{Hours: 8},
		},
		{
			name:     "exactly on isha wraps",
			now:      at(20, 45),
			wantName: "Fajr",
			wantTime: "05:00",
			nextDay:  true,
			wantRem:  timeutil.Remaining{Hours: 8, Minutes: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(testSchedule, tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.wantName || got.Time != tt.wantTime || got.NextDay != tt.nextDay {
				t.Errorf("Next = %+v, want name=%s time=%s nextDay=%v", got, tt.wantName, tt.wantTime, tt.nextDay)
			}
			if got.Remaining != tt.wantRem {
				t.Errorf("Next remaining = %+v, want %+v", got.Remaining, tt.wantRem)
			}
		})
	}
}

func TestNextBeforeFajrPositiveRemaining(t *testing.T) {
	got, err := Next(testSchedule, at(0, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Fajr" || got.NextDay {
		t.Fatalf("expected same-day Fajr, got %+v", got)
	}
	if got.Remaining.Duration() <= 0 {
		t.Errorf("remaining should be positive, got %+v", got.Remaining)
	}
}

func TestNextIsIdempotent(t *testing.T) {
	now := at(17, 3)
	first, err := Next(testSchedule, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Next(testSchedule, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Next not idempotent: %+v vs %+v", first, second)
	}
}

func TestNextInvalidSchedule(t *testing.T) {
	bad := testSchedule
	bad.Dhuhr = "noon"
	if _, err := Next(bad, at(10, 0)); err == nil {
		t.Error("expected error for malformed schedule")
	}
}

func TestScheduleAccessors(t *testing.T) {
	if testSchedule.Iftar() != "19:20" {
		t.Errorf("Iftar = %q, want Maghrib time", testSchedule.Iftar())
	}
	if testSchedule.Sahur() != "05:00" {
		t.Errorf("Sahur = %q, want Fajr time", testSchedule.Sahur())
	}
}

func TestValidate(t *testing.T) {
	if err := testSchedule.Validate(); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
	bad := testSchedule
	bad.Isha = ""
	if err := bad.Validate(); err == nil {
		t.Error("empty Isha accepted")
	}
}
