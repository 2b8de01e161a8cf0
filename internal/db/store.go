// exposes a Store interface that is passed to the API and provider layers
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/kandil-labs/vakit/internal/model"
)

// Namespaced keys for per-device persisted state. ClearAll removes exactly
// this set and nothing else.
const (
	KeySelectedCity         = "vakit:selected_city"
	KeyNotificationSettings = "vakit:notification_settings"
	KeyThemeSettings        = "vakit:theme_settings"
	KeyLastViewedDate       = "vakit:last_viewed_date"
)

// StateKeys lists every namespaced key in a stable order.
var StateKeys = []string{
	KeySelectedCity,
	KeyNotificationSettings,
	KeyThemeSettings,
	KeyLastViewedDate,
}

type Store interface {
	// device registry
	CreateDevice(name string) (model.Device, error)
	GetDevice(id string) (*model.Device, error)

	// per-device persisted state, read and written as whole snapshots
	SelectedCity(deviceID string) (*model.City, error)
	SaveSelectedCity(deviceID string, city model.City) error
	NotificationSettings(deviceID string) model.NotificationSettings
	SaveNotificationSettings(deviceID string, s model.NotificationSettings) error
	ThemeSettings(deviceID string) model.ThemeSettings
	SaveThemeSettings(deviceID string, s model.ThemeSettings) error
	LastViewedDate(deviceID string) (string, error)
	SaveLastViewedDate(deviceID string, date string) error

	// ClearAll removes exactly the namespaced state keys for the device.
	ClearAll(deviceID string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
