package db

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/model"
)

// getState unmarshals a stored JSON value into out. Returns false when the
// key has never been written.
func (s *pgStore) getState(deviceID, key string, out any) (bool, error) {
	var raw []byte
	err := s.db.Get(&raw, `SELECT value FROM app_state WHERE device_id = $1 AND key = $2;`, deviceID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("state read failed")
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("key", key).Msg("state entry corrupt")
		return false, err
	}
	return true, nil
}

// setState upserts a JSON value, replacing any previous snapshot whole.
func (s *pgStore) setState(deviceID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	const q = `
	INSERT INTO app_state (device_id, key, value, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (device_id, key)
	DO UPDATE SET value = EXCLUDED.value, updated_at = now();`
	if _, err := s.db.Exec(q, deviceID, key, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("state write failed")
		return err
	}
	return nil
}

func (s *pgStore) SelectedCity(deviceID string) (*model.City, error) {
	var city model.City
	ok, err := s.getState(deviceID, KeySelectedCity, &city)
	if err != nil || !ok {
		return nil, err
	}
	return &city, nil
}

func (s *pgStore) SaveSelectedCity(deviceID string, city model.City) error {
	return s.setState(deviceID, KeySelectedCity, city)
}

// NotificationSettings never fails: a missing or unreadable snapshot falls
// back to the defaults so scheduling keeps working.
func (s *pgStore) NotificationSettings(deviceID string) model.NotificationSettings {
	settings := model.DefaultNotificationSettings()
	ok, err := s.getState(deviceID, KeyNotificationSettings, &settings)
	if err != nil || !ok {
		return model.DefaultNotificationSettings()
	}
	return settings
}

func (s *pgStore) SaveNotificationSettings(deviceID string, settings model.NotificationSettings) error {
	return s.setState(deviceID, KeyNotificationSettings, settings)
}

func (s *pgStore) ThemeSettings(deviceID string) model.ThemeSettings {
	settings := model.DefaultThemeSettings()
	ok, err := s.getState(deviceID, KeyThemeSettings, &settings)
	if err != nil || !ok {
		return model.DefaultThemeSettings()
	}
	return settings
}

func (s *pgStore) SaveThemeSettings(deviceID string, settings model.ThemeSettings) error {
	return s.setState(deviceID, KeyThemeSettings, settings)
}

func (s *pgStore) LastViewedDate(deviceID string) (string, error) {
	var date string
	ok, err := s.getState(deviceID, KeyLastViewedDate, &date)
	if err != nil || !ok {
		return "", err
	}
	return date, nil
}

func (s *pgStore) SaveLastViewedDate(deviceID string, date string) error {
	return s.setState(deviceID, KeyLastViewedDate, date)
}

func (s *pgStore) ClearAll(deviceID string) error {
	_, err := s.db.Exec(
		`DELETE FROM app_state WHERE device_id = $1 AND key = ANY($2);`,
		deviceID, pq.Array(StateKeys),
	)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("ClearAll failed")
	}
	return err
}
