package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/countdown/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	app fyne.App
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{app: app}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	prefs := cs.app.Preferences()
	defaults := models.DefaultConfig()

	return &models.Config{
		AutoStart:       prefs.BoolWithFallback("auto_start", defaults.AutoStart),
		StartFullScreen: prefs.BoolWithFallback("start_fullscreen", defaults.StartFullScreen),
		PersistProgress: prefs.BoolWithFallback("persist_progress", defaults.PersistProgress),
		AllowStop:       prefs.BoolWithFallback("allow_stop", defaults.AllowStop),
		AllowPause:      prefs.BoolWithFallback("allow_pause", defaults.AllowPause),
		HoldTimeSeconds: prefs.IntWithFallback("hold_time_seconds", defaults.HoldTimeSeconds),
		AlarmEnabled:    prefs.BoolWithFallback("alarm_enabled", defaults.AlarmEnabled),
		AlarmSound:      prefs.StringWithFallback("alarm_sound", defaults.AlarmSound),
		AlarmSeconds:    prefs.IntWithFallback("alarm_seconds", defaults.AlarmSeconds),
	}
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	prefs := cs.app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetBool("start_fullscreen", config.StartFullScreen)
	prefs.SetBool("persist_progress", config.PersistProgress)
	prefs.SetBool("allow_stop", config.AllowStop)
	prefs.SetBool("allow_pause", config.AllowPause)
	prefs.SetInt("hold_time_seconds", config.HoldTime())
	prefs.SetBool("alarm_enabled", config.AlarmEnabled)
	prefs.SetString("alarm_sound", config.AlarmSound)
	prefs.SetInt("alarm_seconds", config.AlarmSeconds)
}

// Snapshots returns the snapshot store sharing the same preferences
func (cs *ConfigStore) Snapshots() *SnapshotStore {
	return NewSnapshotStore(cs.app.Preferences())
}
