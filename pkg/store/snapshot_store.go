package store

import (
	"encoding/json"
	"log"

	"fyne.io/fyne/v2"
	"github.com/borgmon/countdown/pkg/models"
)

// SnapshotKey is the preference key holding the serialized countdown snapshot
const SnapshotKey = "countdown_snapshot"

// SnapshotStore keeps the countdown snapshot as JSON under a single preference key
type SnapshotStore struct {
	prefs fyne.Preferences
}

// NewSnapshotStore creates a SnapshotStore backed by the given preferences
func NewSnapshotStore(prefs fyne.Preferences) *SnapshotStore {
	return &SnapshotStore{prefs: prefs}
}

// Load returns the stored snapshot. Absent or unreadable data reports false.
func (s *SnapshotStore) Load() (models.Snapshot, bool) {
	raw := s.prefs.String(SnapshotKey)
	if raw == "" {
		return models.Snapshot{}, false
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		log.Printf("Ignoring unreadable countdown snapshot: %v", err)
		return models.Snapshot{}, false
	}
	return snap, true
}

// Save overwrites the stored snapshot
func (s *SnapshotStore) Save(snap models.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Failed to encode countdown snapshot: %v", err)
		return
	}
	s.prefs.SetString(SnapshotKey, string(data))
}

// Clear deletes the stored snapshot
func (s *SnapshotStore) Clear() {
	s.prefs.RemoveValue(SnapshotKey)
}
