package store

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/countdown/pkg/countdown"
	"github.com/borgmon/countdown/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_EmptyLoad(t *testing.T) {
	s := NewSnapshotStore(test.NewTempApp(t).Preferences())

	_, ok := s.Load()
	assert.False(t, ok)
}

func TestSnapshotStore_SaveLoadClear(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	s := NewSnapshotStore(prefs)

	end := int64(1773478800000)
	s.Save(models.Snapshot{
		RemainingSeconds: 42,
		Running:          true,
		EndTimestamp:     &end,
		TotalSeconds:     60,
		SessionID:        "session-1",
	})

	assert.JSONEq(t,
		`{"remainingSeconds":42,"running":true,"endTimestamp":1773478800000,"totalSeconds":60,"sessionId":"session-1"}`,
		prefs.String(SnapshotKey))

	snap, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, 42, snap.RemainingSeconds)
	require.NotNil(t, snap.EndTimestamp)
	assert.Equal(t, end, *snap.EndTimestamp)

	s.Clear()
	_, ok = s.Load()
	assert.False(t, ok)
	assert.Empty(t, prefs.String(SnapshotKey))
}

func TestSnapshotStore_StoppedSnapshotOmitsEnd(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	s := NewSnapshotStore(prefs)

	s.Save(models.Snapshot{RemainingSeconds: 10, TotalSeconds: 60})

	assert.JSONEq(t, `{"remainingSeconds":10,"running":false,"totalSeconds":60}`, prefs.String(SnapshotKey))
}

func TestSnapshotStore_MalformedIsAbsent(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	prefs.SetString(SnapshotKey, "{not json")

	_, ok := NewSnapshotStore(prefs).Load()
	assert.False(t, ok)
}

func TestSnapshotStore_MalformedRestoresDefaults(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	prefs.SetString(SnapshotKey, `{"remainingSeconds":"soon"}`)

	timer := countdown.NewTimer(60, countdown.WithStore(NewSnapshotStore(prefs)))

	assert.Equal(t, models.PhaseReady, timer.Restore())
	assert.Equal(t, 60, timer.State().RemainingSeconds)
}

func TestSnapshotStore_ResumeAcrossRestart(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	clock := countdown.NewFakeClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	first := countdown.NewTimer(120, countdown.WithStore(NewSnapshotStore(prefs)), countdown.WithClock(clock))
	require.True(t, first.Start())
	first.Tick()

	// Closed for 90 seconds
	clock.Advance(90 * time.Second)

	second := countdown.NewTimer(120, countdown.WithStore(NewSnapshotStore(prefs)), countdown.WithClock(clock))
	assert.Equal(t, models.PhaseRunning, second.Restore())
	assert.Equal(t, 30, second.State().RemainingSeconds)

	// Closed past the deadline
	clock.Advance(time.Minute)

	third := countdown.NewTimer(120, countdown.WithStore(NewSnapshotStore(prefs)), countdown.WithClock(clock))
	assert.Equal(t, models.PhaseFinished, third.Restore())
	assert.Empty(t, prefs.String(SnapshotKey))
}
