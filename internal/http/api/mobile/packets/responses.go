package packets

import (
	"github.com/kandil-labs/vakit/internal/model"
	"github.com/kandil-labs/vakit/internal/prayer"
)

type EnrollResponse struct {
	Token  string       `json:"token"`
	Device model.Device `json:"device"`
}

// TimesResponse is the provider snapshot for the selected city and date.
// Times and Next are omitted until the schedule has loaded.
type TimesResponse struct {
	State      string             `json:"state"`
	Error      string             `json:"error,omitempty"`
	City       model.City         `json:"city"`
	Date       string             `json:"date"`
	Times      *prayer.Schedule   `json:"times,omitempty"`
	HijriDate  string             `json:"hijriDate,omitempty"`
	Ramadan    bool               `json:"ramadan"`
	NextPrayer *prayer.NextPrayer `json:"nextPrayer,omitempty"`
}

type CalendarDayResponse struct {
	Date      string          `json:"date"`
	Weekday   string          `json:"weekday,omitempty"`
	Times     prayer.Schedule `json:"times"`
	HijriDate string          `json:"hijriDate,omitempty"`
	Ramadan   bool            `json:"ramadan"`
}
