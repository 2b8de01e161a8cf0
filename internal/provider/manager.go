package provider

import "sync"

// Manager lazily creates and caches one Provider per device.
type Manager struct {
	mu        sync.Mutex
	providers map[string]*Provider
	factory   func(deviceID string) *Provider
}

// NewManager takes a factory that builds an unstarted Provider for a
// device.
func NewManager(factory func(deviceID string) *Provider) *Manager {
	return &Manager{
		providers: make(map[string]*Provider),
		factory:   factory,
	}
}

// Get returns the device's provider, creating and starting it on first
// use.
func (m *Manager) Get(deviceID string) *Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.providers[deviceID]; ok {
		return p
	}
	p := m.factory(deviceID)
	p.Start()
	m.providers[deviceID] = p
	return p
}

// Close tears down every provider.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.providers {
		p.Close()
		delete(m.providers, id)
	}
}
