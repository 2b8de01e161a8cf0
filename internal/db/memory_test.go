package db

import (
	"testing"

	"github.com/kandil-labs/vakit/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	device, err := s.CreateDevice("test phone")
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	if device.ID == "" {
		t.Fatal("device ID should be assigned")
	}

	got, err := s.GetDevice(device.ID)
	if err != nil {
		t.Fatalf("GetDevice: %v", err)
	}
	if got.Name != "test phone" {
		t.Errorf("device name = %q", got.Name)
	}

	city := model.City{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597}
	if err := s.SaveSelectedCity(device.ID, city); err != nil {
		t.Fatalf("SaveSelectedCity: %v", err)
	}
	saved, err := s.SelectedCity(device.ID)
	if err != nil {
		t.Fatalf("SelectedCity: %v", err)
	}
	if saved == nil || saved.Name != "Ankara" {
		t.Errorf("SelectedCity = %+v", saved)
	}
}

func TestNotificationSettingsDefaults(t *testing.T) {
	s := NewMemoryStore()

	settings := s.NotificationSettings("unknown-device")
	want := model.DefaultNotificationSettings()
	if settings != want {
		t.Errorf("defaults = %+v, want %+v", settings, want)
	}
	if settings.IftarLeadMinutes != 60 {
		t.Errorf("default iftar lead = %d, want 60", settings.IftarLeadMinutes)
	}
}

// ClearAll must remove exactly the namespaced keys and leave everything
// else in the store untouched.
func TestClearAllRemovesExactlyTheNamespacedKeys(t *testing.T) {
	s := NewMemoryStore()
	device, _ := s.CreateDevice("phone")

	s.SaveSelectedCity(device.ID, model.City{Name: "İzmir"})
	s.SaveNotificationSettings(device.ID, model.DefaultNotificationSettings())
	s.SaveThemeSettings(device.ID, model.ThemeSettings{IsDarkMode: true})
	s.SaveLastViewedDate(device.ID, "2025-03-10")

	// a foreign key outside the namespace must survive
	ms := s.(*memStore)
	ms.setState(device.ID, "other:app", "keep me")

	other, _ := s.CreateDevice("tablet")
	s.SaveLastViewedDate(other.ID, "2025-03-11")

	if err := s.ClearAll(device.ID); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	if city, _ := s.SelectedCity(device.ID); city != nil {
		t.Error("selected city should be cleared")
	}
	if date, _ := s.LastViewedDate(device.ID); date != "" {
		t.Error("last viewed date should be cleared")
	}
	if s.NotificationSettings(device.ID) != model.DefaultNotificationSettings() {
		t.Error("notification settings should fall back to defaults")
	}

	var kept string
	if !ms.getState(device.ID, "other:app", &kept) || kept != "keep me" {
		t.Error("non-namespaced key should survive ClearAll")
	}

	if date, _ := s.LastViewedDate(other.ID); date != "2025-03-11" {
		t.Error("other device state should survive ClearAll")
	}

	if len(StateKeys) != 4 {
		t.Errorf("namespace has %d keys, want exactly 4", len(StateKeys))
	}
}
