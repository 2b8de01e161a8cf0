package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kandil-labs/vakit/internal/db"
	"github.com/kandil-labs/vakit/internal/http/api"
	mobileapi "github.com/kandil-labs/vakit/internal/http/api/mobile/endpoints"
	"github.com/kandil-labs/vakit/internal/notify"
	"github.com/kandil-labs/vakit/internal/provider"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	notifier notify.Notifier,
	scheduler *notify.Scheduler,
	providers *provider.Manager,
	calendar mobileapi.CalendarSource,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/mobile",
		Auth:   false,
	},
		mobileapi.DevicesPublicModule(env.SecretKey, store),
		mobileapi.CitiesPublicModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/mobile",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		mobileapi.DevicesModule(),
		mobileapi.TimesModule(providers, calendar),
		mobileapi.SettingsModule(store, providers, scheduler),
		mobileapi.NotificationsModule(notifier, providers),
	)
}
