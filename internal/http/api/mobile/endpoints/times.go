package endpoints

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/aladhan"
	"github.com/kandil-labs/vakit/internal/http/api"
	"github.com/kandil-labs/vakit/internal/http/api/mobile/packets"
	"github.com/kandil-labs/vakit/internal/model"
	"github.com/kandil-labs/vakit/internal/provider"
	"github.com/kandil-labs/vakit/internal/timeutil"
)

// CalendarSource fetches a whole month of timings, bypassing the per-day
// provider state.
type CalendarSource interface {
	Calendar(ctx context.Context, year, month int, lat, lon float64) ([]aladhan.Day, error)
}

// TimesModule mounts the timing endpoints for the authenticated device.
func TimesModule(providers *provider.Manager, calendar CalendarSource) api.Module {
	ctl := &TimesController{providers: providers, calendar: calendar}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/times", ctl.getTimes)
		c.GET("/times/next", ctl.getNextPrayer)
		c.GET("/times/calendar", ctl.getCalendar)
		c.PUT("/times/date", ctl.setDate)
		c.POST("/times/refresh", ctl.refresh)
	})
}

type TimesController struct {
	providers *provider.Manager
	calendar  CalendarSource
}

func snapshotResponse(snap provider.Snapshot) packets.TimesResponse {
	resp := packets.TimesResponse{
		State: string(snap.State),
		City:  snap.City,
		Date:  snap.Date,
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	if snap.Day != nil {
		resp.Times = &snap.Day.Schedule
		resp.HijriDate = snap.Day.HijriLabel
		resp.Ramadan = snap.Day.Ramadan()
	}
	resp.NextPrayer = snap.Next
	return resp
}

// GET /api/mobile/times?date=YYYY-MM-DD
func (t *TimesController) getTimes(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	p := t.providers.Get(device.ID)

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.ParseInLocation(timeutil.DateLayout, raw, time.Local)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
		}
		if timeutil.FormatDate(date) != p.Snapshot().Date {
			p.SetDate(date)
		}
	}

	return snapshotResponse(p.Snapshot()), nil
}

// GET /api/mobile/times/next
func (t *TimesController) getNextPrayer(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	snap := t.providers.Get(device.ID).Snapshot()
	if snap.Next == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "times not loaded yet"}
	}
	return snap.Next, nil
}

// GET /api/mobile/times/calendar?year=2025&month=3
func (t *TimesController) getCalendar(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	now := time.Now()
	year, err := intQuery(ctx, "year", now.Year())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
	}
	month, err := intQuery(ctx, "month", int(now.Month()))
	if err != nil || month < 1 || month > 12 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid month"}
	}

	city := t.providers.Get(device.ID).City()
	days, err := t.calendar.Calendar(ctx.Request.Context(), year, month, city.Latitude, city.Longitude)
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("calendar fetch failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch calendar"}
	}

	resp := make([]packets.CalendarDayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, packets.CalendarDayResponse{
			Date:      d.Date,
			Weekday:   d.Weekday,
			Times:     d.Schedule,
			HijriDate: d.HijriLabel,
			Ramadan:   d.Ramadan(),
		})
	}
	return resp, nil
}

// PUT /api/mobile/times/date
func (t *TimesController) setDate(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.SetDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	date, err := time.ParseInLocation(timeutil.DateLayout, request.Date, time.Local)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
	}

	p := t.providers.Get(device.ID)
	p.SetDate(date)
	return snapshotResponse(p.Snapshot()), nil
}

// POST /api/mobile/times/refresh
func (t *TimesController) refresh(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	p := t.providers.Get(device.ID)
	p.Refresh()
	return snapshotResponse(p.Snapshot()), nil
}

func intQuery(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
