package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/db"
	"github.com/kandil-labs/vakit/internal/http/api"
	"github.com/kandil-labs/vakit/internal/http/api/mobile/packets"
	"github.com/kandil-labs/vakit/internal/model"
	"github.com/kandil-labs/vakit/internal/notify"
	"github.com/kandil-labs/vakit/internal/provider"
	"github.com/kandil-labs/vakit/internal/timeutil"
)

// SettingsModule mounts the persisted per-device settings endpoints.
func SettingsModule(store db.Store, providers *provider.Manager, scheduler *notify.Scheduler) api.Module {
	ctl := &SettingsController{store: store, providers: providers, scheduler: scheduler}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings/city", ctl.getCity)
		c.PUT("/settings/city", ctl.setCity)
		c.GET("/settings/notifications", ctl.getNotificationSettings)
		c.PUT("/settings/notifications", ctl.setNotificationSettings)
		c.GET("/settings/theme", ctl.getThemeSettings)
		c.PUT("/settings/theme", ctl.setThemeSettings)
		c.GET("/settings/last-viewed-date", ctl.getLastViewedDate)
		c.PUT("/settings/last-viewed-date", ctl.setLastViewedDate)
		c.DELETE("/settings", ctl.clearAll)
	})
}

type SettingsController struct {
	store     db.Store
	providers *provider.Manager
	scheduler *notify.Scheduler
}

// GET /api/mobile/settings/city
func (s *SettingsController) getCity(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	return s.providers.Get(device.ID).City(), nil
}

// PUT /api/mobile/settings/city
func (s *SettingsController) setCity(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.SelectCityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	city := model.City{Name: request.Name, Latitude: request.Latitude, Longitude: request.Longitude}
	// a bare name resolves against the built-in list
	if city.Latitude == 0 && city.Longitude == 0 {
		found, ok := model.CityByName(city.Name)
		if !ok {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown city"}
		}
		city = found
	}

	s.providers.Get(device.ID).SetCity(city)
	log.Info().Str("device_id", device.ID).Str("city", city.Name).Msg("city selected")
	return city, nil
}

// GET /api/mobile/settings/notifications
func (s *SettingsController) getNotificationSettings(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	return s.store.NotificationSettings(device.ID), nil
}

// PUT /api/mobile/settings/notifications
func (s *SettingsController) setNotificationSettings(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.UpdateNotificationSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings := model.NotificationSettings{
		IftarEnabled:      *request.IftarEnabled,
		SahurEnabled:      *request.SahurEnabled,
		DailyQuoteEnabled: *request.DailyQuoteEnabled,
		IftarLeadMinutes:  request.IftarLeadMinutes,
		SahurLeadMinutes:  request.SahurLeadMinutes,
	}
	if err := s.store.SaveNotificationSettings(device.ID, settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	// turning a reminder off cancels its pending notifications; turning one
	// on takes effect on the next reschedule sweep
	if s.scheduler != nil {
		if !settings.IftarEnabled {
			s.scheduler.CancelKind(device.ID, notify.KindIftar)
		}
		if !settings.SahurEnabled {
			s.scheduler.CancelKind(device.ID, notify.KindSahur)
		}
		if !settings.DailyQuoteEnabled {
			s.scheduler.CancelKind(device.ID, notify.KindDailyQuote)
		}
	}
	s.providers.Get(device.ID).RescheduleNotifications()

	return settings, nil
}

// GET /api/mobile/settings/theme
func (s *SettingsController) getThemeSettings(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	return s.store.ThemeSettings(device.ID), nil
}

// PUT /api/mobile/settings/theme
func (s *SettingsController) setThemeSettings(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.UpdateThemeSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings := model.ThemeSettings{
		IsDarkMode:     *request.IsDarkMode,
		UseSystemTheme: *request.UseSystemTheme,
	}
	if err := s.store.SaveThemeSettings(device.ID, settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	return settings, nil
}

// GET /api/mobile/settings/last-viewed-date
func (s *SettingsController) getLastViewedDate(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	date, err := s.store.LastViewedDate(device.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read date"}
	}
	return gin.H{"date": date}, nil
}

// PUT /api/mobile/settings/last-viewed-date
func (s *SettingsController) setLastViewedDate(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.SetDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := time.ParseInLocation(timeutil.DateLayout, request.Date, time.Local); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
	}
	if err := s.store.SaveLastViewedDate(device.ID, request.Date); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save date"}
	}
	return gin.H{"date": request.Date}, nil
}

// DELETE /api/mobile/settings
func (s *SettingsController) clearAll(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	if err := s.store.ClearAll(device.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not clear settings"}
	}
	log.Info().Str("device_id", device.ID).Msg("persisted settings cleared")
	return gin.H{"cleared": db.StateKeys}, nil
}
