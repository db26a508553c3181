//go:build darwin

package platform

import (
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
)

const focusPollInterval = 500 * time.Millisecond

// QuitGuard swallows Cmd+Q while engaged so the display cannot be quit by accident.
// The hotkey is only held while the app is frontmost.
type QuitGuard struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	engaged bool
	stop    chan struct{}
}

// NewQuitGuard creates a disengaged guard
func NewQuitGuard() *QuitGuard {
	return &QuitGuard{}
}

// Engage registers the Cmd+Q hotkey and starts watching app focus
func (g *QuitGuard) Engage() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.engaged {
		return
	}
	g.engaged = true
	g.stop = make(chan struct{})
	g.register()

	go g.monitorFocus(g.stop)
}

// Release unregisters the hotkey
func (g *QuitGuard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.engaged {
		return
	}
	g.engaged = false
	close(g.stop)
	g.unregister()
}

// register must be called with mu held
func (g *QuitGuard) register() {
	if g.hk != nil {
		return
	}

	hk := hotkey.New([]hotkey.Modifier{hotkey.ModCmd}, hotkey.KeyQ)
	if err := hk.Register(); err != nil {
		log.Printf("Failed to register Cmd+Q quit guard: %v", err)
		return
	}
	g.hk = hk

	// Consume keydown events to keep the default quit from firing
	go func() {
		for range hk.Keydown() {
			log.Println("Cmd+Q blocked while the countdown is running")
		}
	}()
}

// unregister must be called with mu held
func (g *QuitGuard) unregister() {
	if g.hk == nil {
		return
	}
	if err := g.hk.Unregister(); err != nil {
		log.Printf("Failed to unregister Cmd+Q quit guard: %v", err)
	}
	g.hk = nil
}

func (g *QuitGuard) monitorFocus(stop <-chan struct{}) {
	ticker := time.NewTicker(focusPollInterval)
	defer ticker.Stop()

	wasActive := true
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			active := IsAppActive()
			if active == wasActive {
				continue
			}

			g.mu.Lock()
			if g.engaged {
				if active {
					log.Println("Countdown regained focus - registering Cmd+Q guard")
					g.register()
				} else {
					log.Println("Countdown lost focus - releasing Cmd+Q guard")
					g.unregister()
				}
			}
			g.mu.Unlock()

			wasActive = active
		}
	}
}
