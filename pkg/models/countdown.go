package models

import "time"

// Phase is the lifecycle position of the countdown
type Phase string

const (
	PhaseReady    Phase = "Ready"    // Not started, or reset by Stop
	PhaseRunning  Phase = "Running"  // Counting down
	PhasePaused   Phase = "Paused"   // Halted with time left
	PhaseFinished Phase = "Finished" // Reached zero through natural countdown
)

// State is a point-in-time copy of the countdown
type State struct {
	TotalSeconds     int
	RemainingSeconds int
	Phase            Phase
	EndsAt           time.Time // zero unless running
	SessionID        string
}

// Running reports whether the countdown is actively ticking
func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

// Finished reports whether the countdown reached zero
func (s State) Finished() bool {
	return s.Phase == PhaseFinished
}

// Snapshot is the persisted record used to resume a countdown after a restart
type Snapshot struct {
	RemainingSeconds int    `json:"remainingSeconds"`
	Running          bool   `json:"running"`
	EndTimestamp     *int64 `json:"endTimestamp,omitempty"` // epoch milliseconds, only while running
	TotalSeconds     int    `json:"totalSeconds"`
	SessionID        string `json:"sessionId,omitempty"`
}

// EndTime returns the end timestamp as a time.Time
func (s Snapshot) EndTime() (time.Time, bool) {
	if s.EndTimestamp == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*s.EndTimestamp), true
}

// Valid checks the snapshot can be restored from
func (s Snapshot) Valid() bool {
	if s.TotalSeconds <= 0 {
		return false
	}
	if s.Running {
		return s.EndTimestamp != nil
	}
	return s.RemainingSeconds > 0 && s.EndTimestamp == nil
}
