package models

// Config holds application configuration
type Config struct {
	AutoStart       bool   `json:"auto_start"`
	StartFullScreen bool   `json:"start_fullscreen"`
	PersistProgress bool   `json:"persist_progress"`  // resume after restart
	AllowStop       bool   `json:"allow_stop"`        // show the hold-to-stop button
	AllowPause      bool   `json:"allow_pause"`       // show the pause button
	HoldTimeSeconds int    `json:"hold_time_seconds"` // stop button hold time
	AlarmEnabled    bool   `json:"alarm_enabled"`
	AlarmSound      string `json:"alarm_sound"`   // WAV path, empty for the built-in chime
	AlarmSeconds    int    `json:"alarm_seconds"` // how long the alarm plays
}

const (
	minHoldSeconds = 1
	maxHoldSeconds = 10
)

// DefaultConfig returns the configuration used on first launch
func DefaultConfig() *Config {
	return &Config{
		PersistProgress: true,
		AllowStop:       true,
		HoldTimeSeconds: 2,
		AlarmEnabled:    true,
		AlarmSeconds:    10,
	}
}

// HoldTime returns the stop hold time clamped to the supported range
func (c *Config) HoldTime() int {
	if c.HoldTimeSeconds < minHoldSeconds {
		return minHoldSeconds
	}
	if c.HoldTimeSeconds > maxHoldSeconds {
		return maxHoldSeconds
	}
	return c.HoldTimeSeconds
}

// Equal reports whether two configs hold the same values
func (c *Config) Equal(other *Config) bool {
	if other == nil {
		return false
	}
	return *c == *other
}
