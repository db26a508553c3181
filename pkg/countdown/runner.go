package countdown

import (
	"context"
	"sync"
	"time"
)

// Runner owns the periodic decrement of a Timer. At most one tick loop is
// active at a time; it is released when the countdown finishes, stops,
// pauses or the runner is closed.
//
// Runner methods wait for the tick loop to exit or hold the runner lock while
// the timer notifies, so they must not be called synchronously from a Timer listener.
type Runner struct {
	timer    *Timer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewRunner creates a runner ticking the timer every interval
func NewRunner(timer *Timer, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		timer:    timer,
		interval: interval,
	}
}

// Timer returns the driven timer
func (r *Runner) Timer() *Timer {
	return r.timer
}

// Start starts the countdown and its tick loop
func (r *Runner) Start() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Close cannot slip in between starting the timer and starting its loop
	if r.closed || r.cancel != nil || !r.timer.Start() {
		return false
	}
	r.acquireLocked()
	return true
}

// Resume starts the tick loop for a timer that is already running, e.g. after Restore
func (r *Runner) Resume() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.cancel != nil || !r.timer.State().Running() {
		return false
	}
	r.acquireLocked()
	return true
}

// Stop resets the countdown and releases the tick loop
func (r *Runner) Stop() bool {
	if !r.timer.Stop() {
		return false
	}
	r.release()
	return true
}

// Pause halts the countdown and releases the tick loop
func (r *Runner) Pause() bool {
	if !r.timer.Pause() {
		return false
	}
	r.release()
	return true
}

// Active reports whether a tick loop is running
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Close releases the tick loop for good. The timer is never ticked after Close returns.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.release()
}

// acquireLocked spawns the tick loop. Must be called with mu held.
func (r *Runner) acquireLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go r.loop(ctx, done)
}

func (r *Runner) release() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// detach forgets the loop identified by done if it is still the current one
func (r *Runner) detach(done chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done == done {
		r.cancel()
		r.cancel, r.done = nil, nil
	}
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			if !r.timer.Tick() || r.timer.State().Finished() {
				r.detach(done)
				return
			}
		}
	}
}
