package model

import "time"

// City is a selectable location whose coordinates drive the timing lookups.
type City struct {
	Name      string  `json:"name" db:"name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Device is a registered mobile client.
type Device struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NotificationSettings is the per-device reminder configuration.
// Lead values are minutes before the target prayer time.
type NotificationSettings struct {
	IftarEnabled      bool `json:"iftarEnabled"`
	SahurEnabled      bool `json:"sahurEnabled"`
	DailyQuoteEnabled bool `json:"dailyQuoteEnabled"`
	IftarLeadMinutes  int  `json:"iftarTime"`
	SahurLeadMinutes  int  `json:"sahurTime"`
}

// DefaultNotificationSettings returns the settings used when a device has
// nothing stored yet, or when the store is unreadable.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		IftarEnabled:      true,
		SahurEnabled:      true,
		DailyQuoteEnabled: false,
		IftarLeadMinutes:  60,
		SahurLeadMinutes:  60,
	}
}

// ThemeSettings mirrors the client-side appearance preferences.
type ThemeSettings struct {
	IsDarkMode     bool `json:"isDarkMode"`
	UseSystemTheme bool `json:"useSystemTheme"`
}

// DefaultThemeSettings follows the system theme in light mode.
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{IsDarkMode: false, UseSystemTheme: true}
}
