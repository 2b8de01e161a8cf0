package db

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/model"
)

func (s *pgStore) CreateDevice(name string) (model.Device, error) {
	var d model.Device
	const q = `
	INSERT INTO devices (id, name, created_at)
	VALUES ($1, $2, now())
	RETURNING id, name, created_at;`
	if err := s.db.Get(&d, q, uuid.NewString(), name); err != nil {
		log.Error().Err(err).Msg("CreateDevice failed")
		return model.Device{}, err
	}
	return d, nil
}

func (s *pgStore) GetDevice(id string) (*model.Device, error) {
	var d model.Device
	err := s.db.Get(&d, `SELECT id, name, created_at FROM devices WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("device_id", id).Msg("GetDevice failed")
		return nil, err
	}
	return &d, nil
}
