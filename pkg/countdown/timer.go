package countdown

import (
	"log"
	"sync"
	"time"

	"github.com/borgmon/countdown/pkg/models"
	"github.com/google/uuid"
)

// SnapshotStore persists countdown progress between launches
type SnapshotStore interface {
	Load() (models.Snapshot, bool)
	Save(snapshot models.Snapshot)
	Clear()
}

type nopStore struct{}

func (nopStore) Load() (models.Snapshot, bool) { return models.Snapshot{}, false }
func (nopStore) Save(models.Snapshot)          {}
func (nopStore) Clear()                        {}

// Option configures a Timer
type Option func(*Timer)

// WithStore enables persistence through the given store
func WithStore(store SnapshotStore) Option {
	return func(t *Timer) {
		if store != nil {
			t.store = store
		}
	}
}

// WithClock replaces the wall clock
func WithClock(clock Clock) Option {
	return func(t *Timer) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithStop enables or disables the Stop transition
func WithStop(enabled bool) Option {
	return func(t *Timer) {
		t.allowStop = enabled
	}
}

// WithPause enables or disables the Pause transition
func WithPause(enabled bool) Option {
	return func(t *Timer) {
		t.allowPause = enabled
	}
}

// Timer is the countdown state machine. Transitions that are not valid
// from the current phase are rejected and leave the state untouched.
type Timer struct {
	mu sync.Mutex

	total     int
	remaining int
	phase     models.Phase
	endsAt    time.Time
	sessionID string

	store      SnapshotStore
	clock      Clock
	allowStop  bool
	allowPause bool

	listeners []func(models.State)
}

// NewTimer creates a Ready timer for the given duration in seconds
func NewTimer(totalSeconds int, opts ...Option) *Timer {
	if totalSeconds < 1 {
		totalSeconds = 1
	}

	t := &Timer{
		total:     totalSeconds,
		remaining: totalSeconds,
		phase:     models.PhaseReady,
		store:     nopStore{},
		clock:     RealClock{},
		allowStop: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnChange registers a listener called after every accepted transition.
// Listeners run on the goroutine that caused the transition.
func (t *Timer) OnChange(fn func(models.State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// State returns a copy of the current state
func (t *Timer) State() models.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

// CanStop reports whether Stop is enabled
func (t *Timer) CanStop() bool {
	return t.allowStop
}

// CanPause reports whether Pause is enabled
func (t *Timer) CanPause() bool {
	return t.allowPause
}

// Restore loads the persisted snapshot, if any, and returns the resulting phase.
// It is meant to run once at startup and does nothing while the timer is running.
func (t *Timer) Restore() models.Phase {
	t.mu.Lock()
	if t.phase == models.PhaseRunning {
		phase := t.phase
		t.mu.Unlock()
		return phase
	}

	changed := t.restoreLocked()
	state := t.stateLocked()
	t.mu.Unlock()

	if changed {
		t.notify(state)
	}
	return state.Phase
}

func (t *Timer) restoreLocked() bool {
	snap, ok := t.store.Load()
	if !ok {
		return false
	}

	if !snap.Valid() {
		log.Printf("Discarding malformed countdown snapshot: %+v", snap)
		t.store.Clear()
		return false
	}

	if snap.Running {
		end, _ := snap.EndTime()
		now := t.clock.Now()
		remaining := secondsUntil(end, now)
		clamped := remaining > t.total
		if clamped {
			remaining = t.total
			end = now.Add(time.Duration(t.total) * time.Second)
		}

		if remaining > 0 {
			t.remaining = remaining
			t.phase = models.PhaseRunning
			t.endsAt = end
			t.sessionID = snap.SessionID
			if clamped {
				// Move the deadline so later reloads resume from here
				t.store.Save(t.snapshotLocked())
			}
			log.Printf("Resumed countdown with %ds left (ends %s)", remaining, end.Format(time.RFC3339))
			return true
		}

		// Deadline passed while we were closed
		t.remaining = 0
		t.phase = models.PhaseFinished
		t.endsAt = time.Time{}
		t.sessionID = ""
		t.store.Clear()
		log.Printf("Countdown ended at %s while closed", end.Format(time.RFC3339))
		return true
	}

	remaining := snap.RemainingSeconds
	if remaining > t.total {
		remaining = t.total
	}
	t.remaining = remaining
	t.phase = models.PhaseReady
	t.endsAt = time.Time{}
	t.sessionID = snap.SessionID
	log.Printf("Restored stopped countdown with %ds left", remaining)
	return true
}

// Start begins counting down from the remaining time
func (t *Timer) Start() bool {
	t.mu.Lock()
	if t.phase == models.PhaseRunning || t.phase == models.PhaseFinished || t.remaining <= 0 {
		t.mu.Unlock()
		return false
	}

	t.endsAt = t.clock.Now().Add(time.Duration(t.remaining) * time.Second)
	if t.sessionID == "" {
		t.sessionID = uuid.New().String()
	}
	t.phase = models.PhaseRunning
	t.store.Save(t.snapshotLocked())

	state := t.stateLocked()
	t.mu.Unlock()

	log.Printf("Countdown %s started with %ds left", state.SessionID, state.RemainingSeconds)
	t.notify(state)
	return true
}

// Tick consumes one elapsed second. Remaining time never lags behind the deadline.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	if t.phase != models.PhaseRunning {
		t.mu.Unlock()
		return false
	}

	t.remaining--
	// Catch up with the deadline when ticks were missed, e.g. across a host suspend
	if left := secondsLeft(t.endsAt, t.clock.Now()); left < t.remaining {
		t.remaining = left
	}
	if t.remaining <= 0 {
		t.remaining = 0
		t.phase = models.PhaseFinished
		t.endsAt = time.Time{}
		t.store.Clear()
		log.Printf("Countdown %s finished", t.sessionID)
		t.sessionID = ""
	} else {
		t.store.Save(t.snapshotLocked())
	}

	state := t.stateLocked()
	t.mu.Unlock()

	t.notify(state)
	return true
}

// Stop resets the countdown to its full duration
func (t *Timer) Stop() bool {
	t.mu.Lock()
	if !t.allowStop || (t.phase != models.PhaseRunning && t.phase != models.PhasePaused) {
		t.mu.Unlock()
		return false
	}

	sessionID := t.sessionID
	t.remaining = t.total
	t.phase = models.PhaseReady
	t.endsAt = time.Time{}
	t.sessionID = ""
	t.store.Clear()

	state := t.stateLocked()
	t.mu.Unlock()

	log.Printf("Countdown %s stopped and reset", sessionID)
	t.notify(state)
	return true
}

// Pause halts the countdown keeping the remaining time
func (t *Timer) Pause() bool {
	t.mu.Lock()
	if !t.allowPause || t.phase != models.PhaseRunning {
		t.mu.Unlock()
		return false
	}

	t.phase = models.PhasePaused
	t.endsAt = time.Time{}
	t.store.Save(t.snapshotLocked())

	state := t.stateLocked()
	t.mu.Unlock()

	log.Printf("Countdown %s paused with %ds left", state.SessionID, state.RemainingSeconds)
	t.notify(state)
	return true
}

func (t *Timer) stateLocked() models.State {
	return models.State{
		TotalSeconds:     t.total,
		RemainingSeconds: t.remaining,
		Phase:            t.phase,
		EndsAt:           t.endsAt,
		SessionID:        t.sessionID,
	}
}

func (t *Timer) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{
		RemainingSeconds: t.remaining,
		Running:          t.phase == models.PhaseRunning,
		TotalSeconds:     t.total,
		SessionID:        t.sessionID,
	}
	if snap.Running {
		ms := t.endsAt.UnixMilli()
		snap.EndTimestamp = &ms
	}
	return snap
}

func (t *Timer) notify(state models.State) {
	t.mu.Lock()
	listeners := make([]func(models.State), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// secondsLeft rounds the time before end up to whole seconds, never negative
func secondsLeft(end, now time.Time) int {
	ms := end.Sub(now).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int((ms + 999) / 1000)
}

// secondsUntil returns the whole seconds left before end, never negative
func secondsUntil(end, now time.Time) int {
	ms := end.Sub(now).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(ms / 1000)
}
