package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/http/api"
	"github.com/kandil-labs/vakit/internal/http/api/mobile/packets"
	"github.com/kandil-labs/vakit/internal/model"
	"github.com/kandil-labs/vakit/internal/notify"
	"github.com/kandil-labs/vakit/internal/provider"
)

// NotificationsModule mounts the push opt-in and reminder inspection
// endpoints.
func NotificationsModule(notifier notify.Notifier, providers *provider.Manager) api.Module {
	ctl := &NotificationsController{notifier: notifier, providers: providers}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/notifications/scheduled", ctl.listScheduled)
		c.POST("/notifications/permission", ctl.setPermission)
		c.POST("/notifications/test", ctl.sendTest)
	})
}

type NotificationsController struct {
	notifier  notify.Notifier
	providers *provider.Manager
}

// GET /api/mobile/notifications/scheduled
func (n *NotificationsController) listScheduled(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	pending := n.notifier.Scheduled(device.ID)
	if pending == nil {
		pending = []notify.Scheduled{}
	}
	return pending, nil
}

// POST /api/mobile/notifications/permission
func (n *NotificationsController) setPermission(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.PermissionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if *request.Granted {
		n.notifier.Grant(device.ID)
		// apply the stored reminder settings right away
		n.providers.Get(device.ID).RescheduleNotifications()
	} else {
		n.notifier.Revoke(device.ID)
		n.notifier.CancelAll(device.ID)
	}

	log.Info().Str("device_id", device.ID).Bool("granted", *request.Granted).Msg("push permission updated")
	return gin.H{"granted": *request.Granted}, nil
}

// POST /api/mobile/notifications/test
func (n *NotificationsController) sendTest(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	if !n.notifier.Granted(device.ID) {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "push delivery not granted"}
	}

	var request packets.TestNotificationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.Title == "" {
		request.Title = "Test Bildirimi"
	}
	if request.Body == "" {
		request.Body = "Bildirimler çalışıyor."
	}

	id, err := n.notifier.Schedule(device.ID, notify.Request{
		Kind:  notify.KindTest,
		Title: request.Title,
		Body:  request.Body,
		Data:  map[string]string{"type": string(notify.KindTest)},
	}, notify.Trigger{At: time.Now().Add(time.Second)})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: err.Error()}
	}
	return gin.H{"id": id}, nil
}
