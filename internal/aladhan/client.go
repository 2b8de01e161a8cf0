// Package aladhan is the typed boundary to the upstream prayer-times API.
// Responses are validated and normalized here so the rest of the service
// only ever sees well-formed schedules.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/kandil-labs/vakit/internal/prayer"
	"github.com/kandil-labs/vakit/internal/timeutil"
)

const (
	defaultBaseURL = "https://api.aladhan.com/v1"

	// diyanetMethod is calculation method 13 (Diyanet İşleri Başkanlığı),
	// the authority for Turkish cities.
	diyanetMethod = 13

	requestTimeout = 10 * time.Second
)

// Day is a validated, normalized day of timings.
type Day struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	Weekday    string          `json:"weekday"`
	Schedule   prayer.Schedule `json:"timings"`
	HijriDate  string          `json:"hijriDate"`
	HijriMonth int             `json:"hijriMonth"`
	HijriLabel string          `json:"hijriLabel"` // e.g. "10 Ramaḍān 1446"
}

// Ramadan reports whether the day falls inside the month of Ramadan.
func (d Day) Ramadan() bool { return timeutil.IsRamadan(d.HijriMonth) }

// Client talks to the upstream API. BaseURL is exported so tests can point
// it at an httptest server.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	BaseURL    string
}

// NewClient builds a client with the 10s request timeout and a circuit
// breaker that trips after three consecutive upstream failures.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "aladhan",
			MaxRequests: 3,
			Interval:    10 * time.Second,
			Timeout:     time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.TotalFailures >= 3
			},
		}),
		BaseURL: defaultBaseURL,
	}
}

// Timings fetches and validates one day of timings for the coordinates.
func (c *Client) Timings(ctx context.Context, day time.Time, lat, lon float64) (*Day, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, timeutil.FormatAPIDate(day))

	var resp response
	if err := c.get(ctx, endpoint, coordParams(lat, lon), &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("upstream error: code=%d status=%s", resp.Code, resp.Status)
	}

	out, err := toDay(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("malformed timings payload: %w", err)
	}
	return &out, nil
}

// Calendar fetches and validates a whole month of timings.
func (c *Client) Calendar(ctx context.Context, year, month int, lat, lon float64) ([]Day, error) {
	endpoint := fmt.Sprintf("%s/calendar/%d/%d", c.BaseURL, year, month)

	var resp calendarResponse
	if err := c.get(ctx, endpoint, coordParams(lat, lon), &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("upstream error: code=%d status=%s", resp.Code, resp.Status)
	}

	days := make([]Day, 0, len(resp.Data))
	for _, d := range resp.Data {
		out, err := toDay(d)
		if err != nil {
			return nil, fmt.Errorf("malformed calendar payload: %w", err)
		}
		days = append(days, out)
	}
	return days, nil
}

func coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("method", fmt.Sprintf("%d", diyanetMethod))
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("upstream request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, string(body))
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decoding upstream response: %w", err)
		}
		return nil, nil
	})
	return err
}

// toDay validates the raw payload and normalizes every clock to bare
// "HH:mm" (the upstream sometimes appends a timezone suffix).
func toDay(d data) (Day, error) {
	raw := prayer.Schedule{
		Fajr:    d.Timings.Fajr,
		Sunrise: d.Timings.Sunrise,
		Dhuhr:   d.Timings.Dhuhr,
		Asr:     d.Timings.Asr,
		Maghrib: d.Timings.Maghrib,
		Isha:    d.Timings.Isha,
	}

	var normalized prayer.Schedule
	for _, name := range prayer.Names {
		clock, _ := raw.Clock(name)
		norm, err := timeutil.NormalizeClock(clock)
		if err != nil {
			return Day{}, fmt.Errorf("%s: %w", name, err)
		}
		switch name {
		case "Fajr":
			normalized.Fajr = norm
		case "Sunrise":
			normalized.Sunrise = norm
		case "Dhuhr":
			normalized.Dhuhr = norm
		case "Asr":
			normalized.Asr = norm
		case "Maghrib":
			normalized.Maghrib = norm
		case "Isha":
			normalized.Isha = norm
		}
	}

	parsed, err := time.Parse(timeutil.APIDateLayout, d.Date.Gregorian.Date)
	if err != nil {
		return Day{}, fmt.Errorf("gregorian date %q: %w", d.Date.Gregorian.Date, err)
	}

	label := ""
	if d.Date.Hijri.Day != "" && d.Date.Hijri.Month.En != "" && d.Date.Hijri.Year != "" {
		label = fmt.Sprintf("%s %s %s", d.Date.Hijri.Day, d.Date.Hijri.Month.En, d.Date.Hijri.Year)
	}

	return Day{
		Date:       timeutil.FormatDate(parsed),
		Weekday:    d.Date.Gregorian.Weekday.En,
		Schedule:   normalized,
		HijriDate:  d.Date.Hijri.Date,
		HijriMonth: d.Date.Hijri.Month.Number,
		HijriLabel: label,
	}, nil
}
