//go:build !darwin

package platform

// QuitGuard is a no-op on non-macOS platforms
type QuitGuard struct{}

// NewQuitGuard creates a disengaged guard
func NewQuitGuard() *QuitGuard {
	return &QuitGuard{}
}

// Engage is a no-op on non-macOS platforms
func (g *QuitGuard) Engage() {}

// Release is a no-op on non-macOS platforms
func (g *QuitGuard) Release() {}
