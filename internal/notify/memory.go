package notify

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// MemoryNotifier keeps everything in-process and only logs deliveries.
// It backs tests and broker-less deployments (MQTT_BROKER_URL unset).
type MemoryNotifier struct {
	*registry

	mu        sync.Mutex
	delivered []Delivery
}

// Delivery records one fired notification.
type Delivery struct {
	DeviceID  string
	Scheduled Scheduled
}

var _ Notifier = (*MemoryNotifier)(nil)

// NewMemory returns an empty in-process notifier.
func NewMemory() *MemoryNotifier {
	n := &MemoryNotifier{}
	n.registry = newRegistry(n.record)
	return n
}

func (n *MemoryNotifier) record(deviceID string, s Scheduled) {
	n.mu.Lock()
	n.delivered = append(n.delivered, Delivery{DeviceID: deviceID, Scheduled: s})
	n.mu.Unlock()

	log.Info().
		Str("device_id", deviceID).
		Str("kind", string(s.Request.Kind)).
		Str("title", s.Request.Title).
		Msg("notification fired (memory notifier)")
}

// Delivered returns a copy of every fired notification so far.
func (n *MemoryNotifier) Delivered() []Delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Delivery, len(n.delivered))
	copy(out, n.delivered)
	return out
}
