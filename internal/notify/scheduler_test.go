package notify

import (
	"testing"
	"time"
)

var loc = time.FixedZone("TRT", 3*60*60)

func at(h, m, s int) time.Time {
	return time.Date(2025, time.March, 10, h, m, s, 0, loc)
}

func newTestScheduler(now time.Time) (*Scheduler, *MemoryNotifier) {
	n := NewMemory()
	n.registry.now = func() time.Time { return now }
	s := NewScheduler(n)
	s.now = func() time.Time { return now }
	return s, n
}

func TestScheduleIftarWithoutPermission(t *testing.T) {
	s, n := newTestScheduler(at(17, 50, 0))

	if id := s.ScheduleIftar("dev", "19:20", at(17, 50, 0), 90); id != "" {
		t.Errorf("expected no-op without permission, got id %q", id)
	}
	if len(n.Scheduled("dev")) != 0 {
		t.Error("nothing should be scheduled")
	}
}

func TestScheduleIftarNarrowWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		scheduled bool
	}{
		{name: "exactly on the lead boundary", now: at(17, 50, 0), scheduled: true},
		{name: "inside the boundary minute", now: at(17, 49, 30), scheduled: true},
		{name: "one minute early", now: at(17, 49, 0), scheduled: false},
		{name: "one minute late", now: at(17, 51, 0), scheduled: false},
		{name: "long before", now: at(12, 0, 0), scheduled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, n := newTestScheduler(tt.now)
			n.Grant("dev")

			id := s.ScheduleIftar("dev", "19:20", tt.now, 90)
			if tt.scheduled && id == "" {
				t.Fatal("expected reminder to be scheduled")
			}
			if !tt.scheduled {
				if id != "" {
					t.Fatalf("expected skip, got id %q", id)
				}
				return
			}

			pending := n.Scheduled("dev")
			if len(pending) != 1 {
				t.Fatalf("pending = %d, want 1", len(pending))
			}
			want := at(17, 50, 0)
			if !pending[0].Trigger.At.Equal(want) {
				t.Errorf("trigger at %v, want %v", pending[0].Trigger.At, want)
			}
			if pending[0].Request.Data["type"] != "iftar" {
				t.Errorf("payload type = %q", pending[0].Request.Data["type"])
			}
		})
	}
}

func TestScheduleIftarIsIdempotent(t *testing.T) {
	now := at(17, 50, 0)
	s, n := newTestScheduler(now)
	n.Grant("dev")

	first := s.ScheduleIftar("dev", "19:20", now, 90)
	if first == "" {
		t.Fatal("first call should schedule")
	}
	second := s.ScheduleIftar("dev", "19:20", now, 90)
	if second != "" {
		t.Errorf("second call should skip, got id %q", second)
	}
	if len(n.Scheduled("dev")) != 1 {
		t.Errorf("pending = %d, want 1", len(n.Scheduled("dev")))
	}
}

func TestScheduleSahurReplaces(t *testing.T) {
	now := at(1, 0, 0)
	s, n := newTestScheduler(now)
	n.Grant("dev")

	first := s.ScheduleSahur("dev", "05:00", now, 60)
	if first == "" {
		t.Fatal("first call should schedule")
	}
	second := s.ScheduleSahur("dev", "05:00", now, 60)
	if second == "" {
		t.Fatal("second call should also schedule")
	}
	if second == first {
		t.Error("replacement should get a fresh id")
	}

	pending := n.Scheduled("dev")
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want exactly one sahur reminder", len(pending))
	}
	if pending[0].ID != second {
		t.Error("surviving reminder should be the replacement")
	}
	if !pending[0].Trigger.At.Equal(at(4, 0, 0)) {
		t.Errorf("trigger at %v, want 04:00", pending[0].Trigger.At)
	}
}

func TestScheduleSahurSkipsWhenPassed(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "fajr already passed", now: at(6, 0, 0)},
		{name: "reminder time already passed", now: at(4, 30, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, n := newTestScheduler(tt.now)
			n.Grant("dev")

			if id := s.ScheduleSahur("dev", "05:00", tt.now, 60); id != "" {
				t.Errorf("expected skip, got id %q", id)
			}
			if len(n.Scheduled("dev")) != 0 {
				t.Error("nothing should be scheduled")
			}
		})
	}
}

func TestScheduleDailyQuotes(t *testing.T) {
	now := at(12, 0, 0)
	s, n := newTestScheduler(now)
	n.Grant("dev")

	// a pending reminder of another kind is swept by the broad cancel
	if id := s.ScheduleSahur("dev", "23:00", now, 60); id == "" {
		t.Fatal("setup: sahur reminder should schedule")
	}

	s.ScheduleDailyQuotes("dev")

	pending := n.Scheduled("dev")
	if len(pending) != 3 {
		t.Fatalf("pending = %d, want 3 quote pushes", len(pending))
	}

	gotHours := map[int]time.Time{}
	for _, p := range pending {
		if p.Request.Kind != KindDailyQuote {
			t.Errorf("unexpected kind %q after broad cancel", p.Request.Kind)
		}
		if !p.Trigger.Repeats || p.Trigger.Every != 24*time.Hour {
			t.Errorf("quote trigger should repeat every 24h, got %+v", p.Trigger)
		}
		if p.Request.Body == "" || p.Request.Data["source"] == "" {
			t.Error("quote payload incomplete")
		}
		gotHours[p.Trigger.At.Hour()] = p.Trigger.At
	}

	// 10:00 already passed at noon, so it lands tomorrow; the others today
	if gotHours[10].Day() != 11 {
		t.Errorf("10:00 push should be tomorrow, got %v", gotHours[10])
	}
	if gotHours[14].Day() != 10 || gotHours[20].Day() != 10 {
		t.Errorf("afternoon pushes should be today: %v / %v", gotHours[14], gotHours[20])
	}
}

func pendingIDs(n *MemoryNotifier, kind Kind) map[string]bool {
	ids := make(map[string]bool)
	for _, sc := range n.Scheduled("dev") {
		if sc.Request.Kind == kind {
			ids[sc.ID] = true
		}
	}
	return ids
}

func TestResweepKeepsRemindersWithQuotesEnabled(t *testing.T) {
	now := at(17, 50, 0)
	s, n := newTestScheduler(now)
	n.Grant("dev")

	// one pass of the periodic resweep: quotes first, then the reminders
	sweep := func() {
		s.EnsureDailyQuotes("dev")
		s.ScheduleIftar("dev", "19:20", now, 90)
		s.ScheduleSahur("dev", "05:00", now.AddDate(0, 0, 1), 60)
	}

	sweep()
	quoteIDs := pendingIDs(n, KindDailyQuote)
	if len(quoteIDs) != 3 {
		t.Fatalf("quote pushes = %d, want 3", len(quoteIDs))
	}
	if len(pendingIDs(n, KindIftar)) != 1 {
		t.Fatal("iftar reminder scheduled in its one-minute window must survive the quote scheduling")
	}
	if len(pendingIDs(n, KindSahur)) != 1 {
		t.Fatal("sahur reminder must survive the quote scheduling")
	}

	// the next sweep must not cancel anything or re-roll the quotes
	sweep()
	if len(pendingIDs(n, KindIftar)) != 1 {
		t.Error("iftar reminder was cancelled by the quote resweep")
	}
	if len(pendingIDs(n, KindSahur)) != 1 {
		t.Error("sahur reminder was cancelled by the quote resweep")
	}
	after := pendingIDs(n, KindDailyQuote)
	if len(after) != len(quoteIDs) {
		t.Fatalf("quote pushes after resweep = %d, want %d", len(after), len(quoteIDs))
	}
	for id := range quoteIDs {
		if !after[id] {
			t.Error("quote pushes were re-rolled by the resweep; the text must stay fixed")
			break
		}
	}
}

func TestEnsureDailyQuotesSchedulesWhenNonePending(t *testing.T) {
	s, n := newTestScheduler(at(12, 0, 0))
	n.Grant("dev")

	s.EnsureDailyQuotes("dev")
	if got := len(pendingIDs(n, KindDailyQuote)); got != 3 {
		t.Fatalf("quote pushes = %d, want 3", got)
	}
}

func TestRegistryFiresAndClears(t *testing.T) {
	n := NewMemory()
	n.Grant("dev")

	_, err := n.Schedule("dev", Request{Kind: KindIftar, Title: "t"}, Trigger{At: time.Now().Add(10 * time.Millisecond)})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(n.Delivered()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if got := len(n.Delivered()); got != 1 {
		t.Fatalf("delivered = %d, want 1", got)
	}
	if len(n.Scheduled("dev")) != 0 {
		t.Error("one-shot should be cleared after firing")
	}
}

func TestRegistryCancelPreventsFire(t *testing.T) {
	n := NewMemory()

	id, err := n.Schedule("dev", Request{Kind: KindSahur}, Trigger{At: time.Now().Add(50 * time.Millisecond)})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	n.Cancel("dev", id)

	time.Sleep(100 * time.Millisecond)
	if len(n.Delivered()) != 0 {
		t.Error("cancelled notification must not fire")
	}
}

func TestFormatLead(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{90, "1 saat 30 dakika"},
		{60, "1 saat"},
		{45, "45 dakika"},
		{0, "0 dakika"},
	}
	for _, tt := range tests {
		if got := formatLead(tt.minutes); got != tt.want {
			t.Errorf("formatLead(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
