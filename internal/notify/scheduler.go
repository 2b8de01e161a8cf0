package notify

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/quotes"
	"github.com/kandil-labs/vakit/internal/timeutil"
)

// QuoteHours are the fixed times-of-day for daily-quote pushes.
var QuoteHours = [3]int{10, 14, 20}

// Scheduler applies the reminder rules on top of a Notifier. Every method
// is safe to call blindly: a missing opt-in, a passed time or a delivery
// problem ends in a log line and an empty handle, never an error.
type Scheduler struct {
	notifier Notifier
	now      func() time.Time
}

func NewScheduler(n Notifier) *Scheduler {
	return &Scheduler{notifier: n, now: time.Now}
}

// ScheduleIftar schedules the pre-iftar reminder, leadMinutes before the
// iftar (Maghrib) clock time on the given day. Returns the notification ID
// or "" when nothing was scheduled.
//
// Iftar uses a narrow-window gate: the reminder is only newly scheduled
// when the current gap to the target is exactly leadMinutes at minute
// granularity. A periodic caller lands inside that one-minute window once
// per day; outside it the call is a no-op. Sahur deliberately does not
// share this rule.
func (s *Scheduler) ScheduleIftar(deviceID, iftarClock string, day time.Time, leadMinutes int) string {
	if !s.notifier.Granted(deviceID) {
		return ""
	}

	target, err := timeutil.At(iftarClock, day)
	if err != nil {
		log.Warn().Err(err).Str("device_id", deviceID).Msg("invalid iftar time")
		return ""
	}

	now := s.now()
	gap := int(target.Sub(now).Minutes())
	if gap != leadMinutes {
		log.Debug().
			Str("device_id", deviceID).
			Int("gap_minutes", gap).
			Int("lead_minutes", leadMinutes).
			Msg("outside iftar reminder window, skipping")
		return ""
	}

	// at most one outstanding iftar reminder per device
	for _, sc := range s.notifier.Scheduled(deviceID) {
		if sc.Request.Kind == KindIftar {
			log.Debug().Str("device_id", deviceID).Msg("iftar reminder already scheduled")
			return ""
		}
	}

	at := target.Add(-time.Duration(leadMinutes) * time.Minute)
	if at.Before(now) {
		log.Warn().
			Str("device_id", deviceID).
			Time("at", at).
			Msg("iftar reminder time already passed, skipping")
		return ""
	}

	id, err := s.notifier.Schedule(deviceID, Request{
		Kind:  KindIftar,
		Title: "İftar Vakti Yaklaşıyor",
		Body:  fmt.Sprintf("İftar vaktine %s kaldı. İftar saati: %s", formatLead(leadMinutes), iftarClock),
		Data:  map[string]string{"type": string(KindIftar)},
	}, Trigger{At: at})
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("scheduling iftar reminder failed")
		return ""
	}
	return id
}

// ScheduleSahur schedules the pre-sahur reminder, leadMinutes before the
// Fajr clock time on the given day. Unlike iftar this replaces: any pending
// sahur reminders are cancelled first, then the new one is scheduled
// unconditionally as long as the target is still ahead.
func (s *Scheduler) ScheduleSahur(deviceID, fajrClock string, day time.Time, leadMinutes int) string {
	if !s.notifier.Granted(deviceID) {
		return ""
	}

	s.CancelKind(deviceID, KindSahur)

	target, err := timeutil.At(fajrClock, day)
	if err != nil {
		log.Warn().Err(err).Str("device_id", deviceID).Msg("invalid sahur time")
		return ""
	}

	now := s.now()
	if target.Before(now) {
		log.Debug().
			Str("device_id", deviceID).
			Time("target", target).
			Msg("sahur time already passed, skipping")
		return ""
	}

	at := target.Add(-time.Duration(leadMinutes) * time.Minute)
	if at.Before(now) {
		log.Warn().
			Str("device_id", deviceID).
			Time("at", at).
			Msg("sahur reminder time already passed, skipping")
		return ""
	}

	id, err := s.notifier.Schedule(deviceID, Request{
		Kind:  KindSahur,
		Title: "Sahur Vakti Yaklaşıyor",
		Body:  fmt.Sprintf("Sahur vaktine %s kaldı. İmsak saati: %s", formatLead(leadMinutes), fajrClock),
		Data:  map[string]string{"type": string(KindSahur)},
	}, Trigger{At: at})
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("scheduling sahur reminder failed")
		return ""
	}
	return id
}

// ScheduleDailyQuotes cancels every pending notification for the device
// (all kinds, not just quotes) and schedules one repeating quote push for
// each of the fixed hours: today's occurrence if still upcoming, otherwise
// tomorrow's, repeating every 24 hours. The quote text is picked once at
// schedule time and stays fixed across repeats.
func (s *Scheduler) ScheduleDailyQuotes(deviceID string) {
	if !s.notifier.Granted(deviceID) {
		return
	}

	s.notifier.CancelAll(deviceID)

	now := s.now()
	for _, hour := range QuoteHours {
		q := quotes.Random()
		at := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !at.After(now) {
			at = at.AddDate(0, 0, 1)
		}

		_, err := s.notifier.Schedule(deviceID, Request{
			Kind:  KindDailyQuote,
			Title: quotes.Title(q),
			Body:  q.Content,
			Data:  map[string]string{"type": string(KindDailyQuote), "source": q.Source},
		}, Trigger{At: at, Every: 24 * time.Hour, Repeats: true})
		if err != nil {
			log.Error().Err(err).Str("device_id", deviceID).Int("hour", hour).Msg("scheduling daily quote failed")
		}
	}
}

// EnsureDailyQuotes schedules the quote pushes only when none are pending.
// The periodic resweep goes through here: ScheduleDailyQuotes cancels every
// pending notification before scheduling, so invoking it blindly each sweep
// would wipe the iftar and sahur reminders and re-roll the quote texts. A
// full reschedule happens only on settings or permission transitions, where
// the pending quotes were cancelled first.
func (s *Scheduler) EnsureDailyQuotes(deviceID string) {
	if !s.notifier.Granted(deviceID) {
		return
	}
	for _, sc := range s.notifier.Scheduled(deviceID) {
		if sc.Request.Kind == KindDailyQuote {
			return
		}
	}
	s.ScheduleDailyQuotes(deviceID)
}

// CancelKind removes every pending notification of one kind.
func (s *Scheduler) CancelKind(deviceID string, kind Kind) {
	for _, sc := range s.notifier.Scheduled(deviceID) {
		if sc.Request.Kind == kind {
			s.notifier.Cancel(deviceID, sc.ID)
		}
	}
}

// CancelAll removes every pending notification for the device.
func (s *Scheduler) CancelAll(deviceID string) {
	s.notifier.CancelAll(deviceID)
}

// formatLead renders a minute count as Turkish prose, e.g. "1 saat 30
// dakika" or "45 dakika".
func formatLead(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d saat %d dakika", h, m)
	case h > 0:
		return fmt.Sprintf("%d saat", h)
	default:
		return fmt.Sprintf("%d dakika", m)
	}
}
