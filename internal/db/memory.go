package db

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kandil-labs/vakit/internal/model"
)

// memStore is an in-memory Store used in tests and when the service runs
// without a database (DATABASE_URL unset). State is lost on restart.
type memStore struct {
	mu      sync.Mutex
	devices map[string]model.Device
	state   map[string]map[string]json.RawMessage // deviceID -> key -> value
}

var _ Store = (*memStore)(nil)

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memStore{
		devices: make(map[string]model.Device),
		state:   make(map[string]map[string]json.RawMessage),
	}
}

func (s *memStore) CreateDevice(name string) (model.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := model.Device{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	s.devices[d.ID] = d
	return d, nil
}

func (s *memStore) GetDevice(id string) (*model.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.devices[id]
	if !ok {
		return nil, fmt.Errorf("device %s not found", id)
	}
	return &d, nil
}

func (s *memStore) getState(deviceID, key string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.state[deviceID][key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *memStore) setState(deviceID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state[deviceID] == nil {
		s.state[deviceID] = make(map[string]json.RawMessage)
	}
	s.state[deviceID][key] = raw
	return nil
}

func (s *memStore) SelectedCity(deviceID string) (*model.City, error) {
	var city model.City
	if !s.getState(deviceID, KeySelectedCity, &city) {
		return nil, nil
	}
	return &city, nil
}

func (s *memStore) SaveSelectedCity(deviceID string, city model.City) error {
	return s.setState(deviceID, KeySelectedCity, city)
}

func (s *memStore) NotificationSettings(deviceID string) model.NotificationSettings {
	settings := model.DefaultNotificationSettings()
	if !s.getState(deviceID, KeyNotificationSettings, &settings) {
		return model.DefaultNotificationSettings()
	}
	return settings
}

func (s *memStore) SaveNotificationSettings(deviceID string, settings model.NotificationSettings) error {
	return s.setState(deviceID, KeyNotificationSettings, settings)
}

func (s *memStore) ThemeSettings(deviceID string) model.ThemeSettings {
	settings := model.DefaultThemeSettings()
	if !s.getState(deviceID, KeyThemeSettings, &settings) {
		return model.DefaultThemeSettings()
	}
	return settings
}

func (s *memStore) SaveThemeSettings(deviceID string, settings model.ThemeSettings) error {
	return s.setState(deviceID, KeyThemeSettings, settings)
}

func (s *memStore) LastViewedDate(deviceID string) (string, error) {
	var date string
	s.getState(deviceID, KeyLastViewedDate, &date)
	return date, nil
}

func (s *memStore) SaveLastViewedDate(deviceID string, date string) error {
	return s.setState(deviceID, KeyLastViewedDate, date)
}

func (s *memStore) ClearAll(deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range StateKeys {
		delete(s.state[deviceID], key)
	}
	return nil
}
