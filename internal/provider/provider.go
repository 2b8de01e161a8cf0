// Package provider orchestrates fetch → resolve → reschedule for one
// device: it owns the refresh and countdown timers, the retry policy and
// the loading state machine, and exposes a consistent snapshot to the API
// layer.
package provider

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/aladhan"
	"github.com/kandil-labs/vakit/internal/cache"
	"github.com/kandil-labs/vakit/internal/db"
	"github.com/kandil-labs/vakit/internal/model"
	"github.com/kandil-labs/vakit/internal/notify"
	"github.com/kandil-labs/vakit/internal/prayer"
	"github.com/kandil-labs/vakit/internal/timeutil"
)

// State is the provider's loading state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

const (
	tickInterval    = time.Second
	refreshInterval = 5 * time.Minute
	fetchTimeout    = 15 * time.Second

	// maxRetries caps the automatic retries after the initial failure;
	// afterwards the provider stays in error until a manual refresh.
	maxRetries       = 3
	defaultRetryBase = 2 * time.Second
)

// TimesSource fetches one validated day of timings.
type TimesSource interface {
	Timings(ctx context.Context, day time.Time, lat, lon float64) (*aladhan.Day, error)
}

// Options wires a Provider's collaborators. Source, Store and DeviceID are
// required; Cache and Scheduler may be nil.
type Options struct {
	Source    TimesSource
	Cache     *cache.Cache
	Store     db.Store
	Scheduler *notify.Scheduler
	DeviceID  string
	RetryBase time.Duration
	Now       func() time.Time
}

// Provider holds the live timing state for one device.
type Provider struct {
	source    TimesSource
	cache     *cache.Cache
	store     db.Store
	scheduler *notify.Scheduler
	deviceID  string
	retryBase time.Duration
	now       func() time.Time

	mu         sync.Mutex
	state      State
	city       model.City
	date       time.Time
	day        *aladhan.Day
	next       *prayer.NextPrayer
	lastErr    error
	generation uint64
	attempt    int
	retryTimer *time.Timer

	done      chan struct{}
	closeOnce sync.Once
}

// Snapshot is a consistent read of the provider state.
type Snapshot struct {
	State State
	Err   error
	City  model.City
	Date  string
	Day   *aladhan.Day
	Next  *prayer.NextPrayer
}

// New builds a Provider. The selected city is restored from the store,
// falling back to the default city; the date starts at today.
func New(opts Options) *Provider {
	p := &Provider{
		source:    opts.Source,
		cache:     opts.Cache,
		store:     opts.Store,
		scheduler: opts.Scheduler,
		deviceID:  opts.DeviceID,
		retryBase: opts.RetryBase,
		now:       opts.Now,
		state:     StateIdle,
	}
	if p.retryBase == 0 {
		p.retryBase = defaultRetryBase
	}
	if p.now == nil {
		p.now = time.Now
	}

	p.city = model.DefaultCity()
	if p.store != nil {
		if saved, err := p.store.SelectedCity(p.deviceID); err == nil && saved != nil {
			p.city = *saved
		}
	}
	p.date = p.now()
	return p
}

// Start kicks the initial fetch and launches the timer loop. Close stops
// everything Start created.
func (p *Provider) Start() {
	p.done = make(chan struct{})
	p.beginFetch()
	go p.loop()
}

func (p *Provider) loop() {
	tick := time.NewTicker(tickInterval)
	defer tick.Stop()
	refresh := time.NewTicker(refreshInterval)
	defer refresh.Stop()

	ticks := 0
	for {
		select {
		case <-p.done:
			return
		case <-tick.C:
			p.recompute()
			ticks++
			// the iftar narrow-window gate needs a periodic check at
			// minute granularity
			if ticks%60 == 0 {
				p.RescheduleNotifications()
			}
		case <-refresh.C:
			p.Refresh()
		}
	}
}

// Close stops the timer loop and any pending retry.
func (p *Provider) Close() {
	p.closeOnce.Do(func() {
		if p.done != nil {
			close(p.done)
		}
		p.mu.Lock()
		if p.retryTimer != nil {
			p.retryTimer.Stop()
			p.retryTimer = nil
		}
		p.mu.Unlock()
	})
}

// SetCity persists the selection, invalidates the current schedule and
// refetches.
func (p *Provider) SetCity(city model.City) {
	if p.store != nil {
		if err := p.store.SaveSelectedCity(p.deviceID, city); err != nil {
			log.Warn().Err(err).Str("device_id", p.deviceID).Msg("persisting city failed")
		}
	}

	p.mu.Lock()
	p.city = city
	p.day = nil
	p.next = nil
	p.attempt = 0
	p.mu.Unlock()

	p.beginFetch()
}

// SetDate switches the viewed date and refetches.
func (p *Provider) SetDate(date time.Time) {
	if p.store != nil {
		if err := p.store.SaveLastViewedDate(p.deviceID, timeutil.FormatDate(date)); err != nil {
			log.Warn().Err(err).Str("device_id", p.deviceID).Msg("persisting date failed")
		}
	}

	p.mu.Lock()
	p.date = date
	p.day = nil
	p.next = nil
	p.attempt = 0
	p.mu.Unlock()

	p.beginFetch()
}

// Refresh starts a manual refetch, resetting the retry budget.
func (p *Provider) Refresh() {
	p.mu.Lock()
	p.attempt = 0
	p.mu.Unlock()
	p.beginFetch()
}

// Snapshot returns the current state with the countdown recomputed against
// now, so readers always see a fresh remaining time.
func (p *Provider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recomputeLocked()
	return Snapshot{
		State: p.state,
		Err:   p.lastErr,
		City:  p.city,
		Date:  timeutil.FormatDate(p.date),
		Day:   p.day,
		Next:  p.next,
	}
}

// City returns the current selection.
func (p *Provider) City() model.City {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.city
}

// beginFetch bumps the request generation and launches an async fetch.
// Any in-flight fetch from an older generation is thereby disowned: its
// result will be discarded when it settles.
func (p *Provider) beginFetch() {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	if p.retryTimer != nil {
		p.retryTimer.Stop()
		p.retryTimer = nil
	}
	p.state = StateLoading
	city := p.city
	date := p.date
	p.mu.Unlock()

	go p.fetch(gen, city, date)
}

func (p *Provider) fetch(gen uint64, city model.City, date time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	dateStr := timeutil.FormatDate(date)
	day, hit := p.cache.GetDay(ctx, city.Latitude, city.Longitude, dateStr)

	var err error
	if !hit {
		day, err = p.source.Timings(ctx, date, city.Latitude, city.Longitude)
		if err == nil {
			p.cache.SetDay(ctx, city.Latitude, city.Longitude, day, p.now())
		}
	}

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		log.Debug().Uint64("generation", gen).Msg("discarding stale fetch result")
		return
	}

	if err != nil {
		p.lastErr = err
		p.attempt++
		if p.attempt <= maxRetries {
			delay := p.retryBase * time.Duration(p.attempt)
			p.state = StateLoading
			p.retryTimer = time.AfterFunc(delay, func() { p.retryFetch(gen) })
			attempt := p.attempt
			p.mu.Unlock()

			log.Warn().Err(err).
				Int("attempt", attempt).
				Dur("retry_in", delay).
				Msg("timings fetch failed, will retry")
			return
		}
		p.state = StateError
		p.mu.Unlock()

		log.Error().Err(err).Msg("timings fetch failed, giving up until manual refresh")
		return
	}

	p.state = StateReady
	p.lastErr = nil
	p.attempt = 0
	p.day = day
	p.recomputeLocked()
	p.mu.Unlock()

	log.Info().
		Str("city", city.Name).
		Str("date", dateStr).
		Msg("timings loaded")

	p.RescheduleNotifications()
}

// retryFetch relaunches a failed fetch unless a newer request superseded it.
func (p *Provider) retryFetch(gen uint64) {
	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return
	}
	p.generation++
	next := p.generation
	p.retryTimer = nil
	city := p.city
	date := p.date
	p.mu.Unlock()

	go p.fetch(next, city, date)
}

func (p *Provider) recompute() {
	p.mu.Lock()
	p.recomputeLocked()
	p.mu.Unlock()
}

// recomputeLocked resolves the next prayer from the loaded schedule. The
// value is recomputed rather than decremented so it stays correct across
// process pauses.
func (p *Provider) recomputeLocked() {
	if p.day == nil {
		p.next = nil
		return
	}
	next, err := prayer.Next(p.day.Schedule, p.now())
	if err != nil {
		log.Error().Err(err).Msg("next prayer resolution failed")
		p.next = nil
		return
	}
	p.next = &next
}

// RescheduleNotifications applies the device's notification settings to
// the loaded schedule. Safe to call at any cadence: iftar de-duplicates,
// sahur replaces, and quotes are only scheduled when none are pending.
// Quotes go first because their initial scheduling cancels everything
// pending; the reminders scheduled after it in the same sweep survive.
func (p *Provider) RescheduleNotifications() {
	p.mu.Lock()
	day := p.day
	date := p.date
	p.mu.Unlock()

	if day == nil || p.scheduler == nil || p.store == nil {
		return
	}

	settings := p.store.NotificationSettings(p.deviceID)
	if settings.DailyQuoteEnabled {
		p.scheduler.EnsureDailyQuotes(p.deviceID)
	}
	if settings.IftarEnabled {
		p.scheduler.ScheduleIftar(p.deviceID, day.Schedule.Iftar(), date, settings.IftarLeadMinutes)
	}
	if settings.SahurEnabled {
		p.scheduler.ScheduleSahur(p.deviceID, day.Schedule.Sahur(), date, settings.SahurLeadMinutes)
	}
}
