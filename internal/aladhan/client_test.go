package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const validTimingsBody = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "05:00 (+03)",
			"Sunrise": "06:30 (+03)",
			"Dhuhr": "12:45 (+03)",
			"Asr": "16:10 (+03)",
			"Maghrib": "19:20 (+03)",
			"Isha": "20:45 (+03)",
			"Imsak": "04:50 (+03)"
		},
		"date": {
			"gregorian": {"date": "10-03-2025", "weekday": {"en": "Monday"}},
			"hijri": {"date": "10-09-1446", "day": "10", "year": "1446", "month": {"number": 9, "en": "Ramaḍān"}}
		}
	}
}`

func testDay() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func TestTimings(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validTimingsBody))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	day, err := c.Timings(context.Background(), testDay(), 41.0082, 28.9784)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/timings/10-03-2025" {
		t.Errorf("request path = %q", gotPath)
	}
	if !strings.Contains(gotQuery, "method=13") {
		t.Errorf("query missing method=13: %q", gotQuery)
	}

	if day.Schedule.Maghrib != "19:20" {
		t.Errorf("Maghrib = %q, want timezone suffix stripped", day.Schedule.Maghrib)
	}
	if day.Date != "2025-03-10" {
		t.Errorf("Date = %q", day.Date)
	}
	if !day.Ramadan() {
		t.Error("hijri month 9 should flag Ramadan")
	}
	if day.HijriLabel != "10 Ramaḍān 1446" {
		t.Errorf("HijriLabel = %q", day.HijriLabel)
	}
}

func TestTimingsUpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "non-2xx", body: `oops`, code: http.StatusBadGateway},
		{name: "malformed body", body: `{not json`, code: http.StatusOK},
		{name: "api-level error", body: `{"code": 400, "status": "BAD REQUEST", "data": {}}`, code: http.StatusOK},
		{name: "missing timing key", code: http.StatusOK, body: `{
			"code": 200, "status": "OK",
			"data": {
				"timings": {"Fajr": "05:00", "Sunrise": "06:30", "Dhuhr": "12:45", "Asr": "16:10", "Maghrib": "19:20"},
				"date": {"gregorian": {"date": "10-03-2025"}, "hijri": {"month": {"number": 9}}}
			}
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient()
			c.BaseURL = srv.URL
			if _, err := c.Timings(context.Background(), testDay(), 41, 29); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	for i := 0; i < 5; i++ {
		c.Timings(context.Background(), testDay(), 41, 29)
	}
	if hits >= 5 {
		t.Errorf("breaker never opened: upstream hit %d times", hits)
	}
}

func TestCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/2025/3" {
			t.Errorf("request path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": [
				{
					"timings": {"Fajr": "05:00", "Sunrise": "06:30", "Dhuhr": "12:45", "Asr": "16:10", "Maghrib": "19:20", "Isha": "20:45"},
					"date": {"gregorian": {"date": "01-03-2025", "weekday": {"en": "Saturday"}}, "hijri": {"date": "01-09-1446", "month": {"number": 9}}}
				},
				{
					"timings": {"Fajr": "04:58", "Sunrise": "06:28", "Dhuhr": "12:45", "Asr": "16:11", "Maghrib": "19:21", "Isha": "20:46"},
					"date": {"gregorian": {"date": "02-03-2025", "weekday": {"en": "Sunday"}}, "hijri": {"date": "02-09-1446", "month": {"number": 9}}}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	days, err := c.Calendar(context.Background(), 2025, 3, 41, 29)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[1].Schedule.Fajr != "04:58" {
		t.Errorf("second day Fajr = %q", days[1].Schedule.Fajr)
	}
}
