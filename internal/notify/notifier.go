// Package notify delivers reminder notifications to devices and owns the
// scheduling rules for iftar, sahur and daily-quote pushes.
package notify

import "time"

// Kind tags a notification and is its de-duplication key.
type Kind string

const (
	KindIftar      Kind = "iftar"
	KindSahur      Kind = "sahur"
	KindDailyQuote Kind = "daily_quote"
	KindTest       Kind = "test"
)

// Trigger describes when a notification fires. At is the one-shot instant;
// when Repeats is set the notification re-fires every Every after At.
type Trigger struct {
	At      time.Time     `json:"at"`
	Every   time.Duration `json:"every,omitempty"`
	Repeats bool          `json:"repeats,omitempty"`
}

// Request is a notification to be scheduled.
type Request struct {
	Kind  Kind              `json:"kind"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Scheduled is a pending notification held by the notifier.
type Scheduled struct {
	ID      string  `json:"id"`
	Request Request `json:"request"`
	Trigger Trigger `json:"trigger"`
}

// Notifier is the delivery boundary. Implementations hold the pending set
// per device and fire each entry at its trigger instant. Delivery failures
// are logged, never returned to callers of the scheduling rules.
type Notifier interface {
	// Granted reports whether the device has opted in to push delivery.
	Granted(deviceID string) bool
	// Grant and Revoke flip the opt-in flag.
	Grant(deviceID string)
	Revoke(deviceID string)

	// Scheduled lists the device's pending notifications.
	Scheduled(deviceID string) []Scheduled
	// Schedule registers a notification and returns its ID.
	Schedule(deviceID string, req Request, trig Trigger) (string, error)
	// Cancel removes one pending notification; CancelAll removes every one.
	Cancel(deviceID, id string)
	CancelAll(deviceID string)

	// Close stops all pending timers and releases transport resources.
	Close()
}
