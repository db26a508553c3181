package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/countdown/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestConfigStore_Defaults(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t))

	cfg := cs.Load()
	assert.True(t, cfg.Equal(models.DefaultConfig()))
	assert.True(t, cfg.PersistProgress)
	assert.True(t, cfg.AllowStop)
	assert.False(t, cfg.AllowPause)
}

func TestConfigStore_SaveLoad(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t))

	cfg := &models.Config{
		AutoStart:       true,
		StartFullScreen: true,
		PersistProgress: false,
		AllowStop:       false,
		AllowPause:      true,
		HoldTimeSeconds: 4,
		AlarmEnabled:    false,
		AlarmSound:      "/opt/alarm.wav",
		AlarmSeconds:    3,
	}
	cs.Save(cfg)

	assert.Equal(t, cfg, cs.Load())
}

func TestConfigStore_ClampsHoldTime(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t))

	cfg := models.DefaultConfig()
	cfg.HoldTimeSeconds = 60
	cs.Save(cfg)

	assert.Equal(t, 10, cs.Load().HoldTimeSeconds)
}

func TestConfigStore_SnapshotsShareKeys(t *testing.T) {
	a := test.NewTempApp(t)
	cs := NewConfigStore(a)

	cs.Snapshots().Save(models.Snapshot{RemainingSeconds: 5, TotalSeconds: 10})

	assert.NotEmpty(t, a.Preferences().String(SnapshotKey))
}
