package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/aladhan"
	"github.com/kandil-labs/vakit/internal/notify"
	"github.com/kandil-labs/vakit/internal/provider"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	env := LoadEnvironment()
	if env.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store := InitStore(env)
	timingsCache := InitCache(env)
	notifier := InitNotifier(env)
	defer notifier.Close()

	client := aladhan.NewClient()
	scheduler := notify.NewScheduler(notifier)

	providers := provider.NewManager(func(deviceID string) *provider.Provider {
		return provider.New(provider.Options{
			Source:    client,
			Cache:     timingsCache,
			Store:     store,
			Scheduler: scheduler,
			DeviceID:  deviceID,
		})
	})
	defer providers.Close()

	r := gin.Default()
	RegisterRoutes(r, env, store, notifier, scheduler, providers, client)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", env.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
