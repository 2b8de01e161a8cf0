package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/db"
	"github.com/kandil-labs/vakit/internal/http/api"
	"github.com/kandil-labs/vakit/internal/http/api/mobile/packets"
	"github.com/kandil-labs/vakit/internal/http/middleware"
	"github.com/kandil-labs/vakit/internal/model"
)

// DevicesPublicModule mounts the enrollment endpoint (/devices/enroll).
func DevicesPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newDeviceManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/devices/enroll", ctl.enroll)
	})
}

// DevicesModule mounts the authenticated device endpoints.
func DevicesModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/devices/me", getCurrentDevice)
	})
}

type DeviceManager struct {
	jwtSecret string
	store     db.Store
}

func newDeviceManager(secret string, store db.Store) *DeviceManager {
	return &DeviceManager{jwtSecret: secret, store: store}
}

// POST /api/mobile/devices/enroll
func (d *DeviceManager) enroll(ctx *gin.Context) (any, *api.APIError) {
	var request packets.EnrollRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	device, err := d.store.CreateDevice(request.Name)
	if err != nil {
		log.Error().Err(err).Msg("device enrollment failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not enroll device"}
	}

	token, err := middleware.GenerateDeviceJWT(device.ID, d.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	log.Info().Str("device_id", device.ID).Str("name", device.Name).Msg("device enrolled")
	return packets.EnrollResponse{Token: token, Device: device}, nil
}

// GET /api/mobile/devices/me
func getCurrentDevice(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	return device, nil
}
