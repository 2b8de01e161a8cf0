package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// registry is the shared pending-notification bookkeeping behind every
// Notifier implementation. Delivery itself is pluggable.
type registry struct {
	mu      sync.Mutex
	granted map[string]bool
	pending map[string]map[string]*entry // deviceID -> notification ID
	deliver func(deviceID string, s Scheduled)
	now     func() time.Time
	closed  bool
}

type entry struct {
	scheduled Scheduled
	timer     *time.Timer
}

func newRegistry(deliver func(deviceID string, s Scheduled)) *registry {
	return &registry{
		granted: make(map[string]bool),
		pending: make(map[string]map[string]*entry),
		deliver: deliver,
		now:     time.Now,
	}
}

func (r *registry) Granted(deviceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.granted[deviceID]
}

func (r *registry) Grant(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.granted[deviceID] = true
}

func (r *registry) Revoke(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.granted, deviceID)
}

func (r *registry) Scheduled(deviceID string) []Scheduled {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Scheduled, 0, len(r.pending[deviceID]))
	for _, e := range r.pending[deviceID] {
		out = append(out, e.scheduled)
	}
	return out
}

func (r *registry) Schedule(deviceID string, req Request, trig Trigger) (string, error) {
	if trig.At.IsZero() {
		return "", fmt.Errorf("trigger has no instant")
	}
	if trig.Repeats && trig.Every <= 0 {
		return "", fmt.Errorf("repeating trigger needs a positive interval")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return "", fmt.Errorf("notifier closed")
	}

	id := uuid.NewString()
	s := Scheduled{ID: id, Request: req, Trigger: trig}

	delay := trig.At.Sub(r.now())
	if delay < 0 {
		delay = 0
	}
	e := &entry{scheduled: s}
	e.timer = time.AfterFunc(delay, func() { r.fire(deviceID, id) })

	if r.pending[deviceID] == nil {
		r.pending[deviceID] = make(map[string]*entry)
	}
	r.pending[deviceID][id] = e

	log.Info().
		Str("device_id", deviceID).
		Str("kind", string(req.Kind)).
		Time("at", trig.At).
		Bool("repeats", trig.Repeats).
		Msg("notification scheduled")
	return id, nil
}

func (r *registry) fire(deviceID, id string) {
	r.mu.Lock()
	e, ok := r.pending[deviceID][id]
	if !ok || r.closed {
		r.mu.Unlock()
		return
	}
	s := e.scheduled
	if s.Trigger.Repeats {
		e.scheduled.Trigger.At = s.Trigger.At.Add(s.Trigger.Every)
		e.timer.Reset(s.Trigger.Every)
	} else {
		delete(r.pending[deviceID], id)
	}
	deliver := r.deliver
	r.mu.Unlock()

	deliver(deviceID, s)
}

func (r *registry) Cancel(deviceID, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.pending[deviceID][id]; ok {
		e.timer.Stop()
		delete(r.pending[deviceID], id)
	}
}

func (r *registry) CancelAll(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.pending[deviceID] {
		e.timer.Stop()
		delete(r.pending[deviceID], id)
	}
}

func (r *registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for deviceID, entries := range r.pending {
		for id, e := range entries {
			e.timer.Stop()
			delete(entries, id)
		}
		delete(r.pending, deviceID)
	}
}
