package main

import (
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/cache"
	"github.com/kandil-labs/vakit/internal/db"
	"github.com/kandil-labs/vakit/internal/notify"
)

// InitStore selects the persistence backend. Without DATABASE_URL the
// service runs on the in-memory store, which loses state on restart.
func InitStore(env Environment) db.Store {
	if env.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		return db.NewMemoryStore()
	}

	conn, err := db.Init(env.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	if err := db.RunMigrations(conn, env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	return db.NewStore(conn)
}

// InitCache returns the Redis-backed timings cache, or a nil cache when
// REDIS_ADDRESS is unset.
func InitCache(env Environment) *cache.Cache {
	if env.RedisAddress == "" {
		log.Warn().Msg("REDIS_ADDRESS not set, timings cache disabled")
		return nil
	}
	rdb := cache.NewClient(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	log.Info().Str("address", env.RedisAddress).Msg("timings cache enabled")
	return cache.New(rdb)
}

// InitNotifier selects the notification delivery backend.
func InitNotifier(env Environment) notify.Notifier {
	if env.MQTTBrokerURL == "" {
		log.Warn().Msg("MQTT_BROKER_URL not set, using in-memory notifier")
		return notify.NewMemory()
	}

	notifier, err := notify.NewMQTT(env.MQTTBrokerURL, "vakit-server")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MQTT broker")
	}
	log.Info().Str("broker", env.MQTTBrokerURL).Msg("MQTT notifier connected")
	return notifier
}
