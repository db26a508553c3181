package main

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/countdown/pkg/audio"
	"github.com/borgmon/countdown/pkg/branding"
	"github.com/borgmon/countdown/pkg/countdown"
	"github.com/borgmon/countdown/pkg/models"
	"github.com/borgmon/countdown/pkg/platform"
	"github.com/borgmon/countdown/pkg/store"
)

// countdownDuration is the length of the event countdown
const countdownDuration = 24 * time.Hour

const appID = "com.borgmon.countdown"

type Countdown struct {
	app          fyne.App
	config       *models.Config
	configStore  *store.ConfigStore
	branding     *branding.Branding
	timer        *countdown.Timer
	runner       *countdown.Runner
	window       *CountdownWindow
	configWindow *ConfigWindow
	quitGuard    *platform.QuitGuard

	// mu guards config, alarm and lastPhase
	mu        sync.Mutex
	alarm     *audio.Player
	lastPhase models.Phase
}

func main() {
	cd := &Countdown{
		app: app.NewWithID(appID),
	}

	if err := cd.initialize(); err != nil {
		log.Fatal(err)
	}

	cd.run()
}

func (cd *Countdown) initialize() error {
	cd.configStore = store.NewConfigStore(cd.app)
	cd.config = cd.configStore.Load()

	// Sync autostart state with config on startup
	if err := setupAutostart(cd.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	cd.configStore.Save(cd.config)

	b, err := branding.Default()
	if err != nil {
		return err
	}
	cd.branding = b

	cd.timer = newTimer(cd.config, cd.configStore.Snapshots())
	cd.runner = countdown.NewRunner(cd.timer, time.Second)
	cd.quitGuard = platform.NewQuitGuard()

	// Restore before listening so a deadline that passed while closed does not ring the alarm
	cd.timer.Restore()
	initial := cd.timer.State()
	cd.lastPhase = initial.Phase

	cd.window = NewCountdownWindow(cd.app, cd.branding, cd.config, cd.timer.CanStop(), cd.timer.CanPause(), windowActions{
		start:            cd.start,
		stop:             cd.stop,
		pause:            cd.pause,
		settings:         cd.showConfigWindow,
		fullscreenChange: cd.onFullscreenChange,
		closed:           cd.teardown,
	})
	cd.window.Render(initial)

	cd.timer.OnChange(cd.onTimerChange)
	if initial.Running() {
		cd.runner.Resume()
	}

	cd.setupSystemTray()

	if cd.config.StartFullScreen {
		cd.window.SetFullscreen(true)
	}

	return nil
}

// newTimer builds the state machine with the capabilities enabled in config
func newTimer(cfg *models.Config, snapshots *store.SnapshotStore) *countdown.Timer {
	opts := []countdown.Option{
		countdown.WithStop(cfg.AllowStop),
		countdown.WithPause(cfg.AllowPause),
	}

	if cfg.PersistProgress {
		opts = append(opts, countdown.WithStore(snapshots))
	} else {
		// Drop anything left from a run with persistence enabled
		snapshots.Clear()
	}

	return countdown.NewTimer(int(countdownDuration/time.Second), opts...)
}

func (cd *Countdown) run() {
	cd.window.Show()
	cd.app.Run()
}

func (cd *Countdown) start() {
	if !cd.runner.Start() {
		log.Println("Start ignored: countdown cannot start from its current state")
	}
}

func (cd *Countdown) stop() {
	cd.stopAlarm()
	if !cd.runner.Stop() {
		log.Println("Stop ignored: countdown is not running or stop is disabled")
	}
}

func (cd *Countdown) pause() {
	if !cd.runner.Pause() {
		log.Println("Pause ignored: countdown is not running or pause is disabled")
	}
}

// onTimerChange runs on whichever goroutine caused the transition
func (cd *Countdown) onTimerChange(state models.State) {
	cd.mu.Lock()
	phaseChanged := state.Phase != cd.lastPhase
	cd.lastPhase = state.Phase
	cd.mu.Unlock()

	fyne.Do(func() {
		cd.window.Render(state)
		if phaseChanged {
			cd.updateSystemTrayMenu(state)
			cd.updateQuitGuard(state, cd.window.IsFullscreen())
		}
	})

	if phaseChanged && state.Finished() {
		go cd.onFinished()
	}
}

func (cd *Countdown) onFinished() {
	platform.ActivateApp()
	fyne.Do(func() {
		cd.window.RequestFocus()
	})

	cfg := cd.currentConfig()
	if !cfg.AlarmEnabled {
		return
	}

	player := audio.PlayAlarmSound(audio.LoadAlarm(cfg.AlarmSound), time.Duration(cfg.AlarmSeconds)*time.Second)

	cd.mu.Lock()
	cd.alarm = player
	cd.mu.Unlock()
}

func (cd *Countdown) stopAlarm() {
	cd.mu.Lock()
	player := cd.alarm
	cd.alarm = nil
	cd.mu.Unlock()

	player.Stop()
}

func (cd *Countdown) onFullscreenChange(fullscreen bool) {
	cd.updateQuitGuard(cd.timer.State(), fullscreen)
}

// updateQuitGuard blocks accidental quits while a fullscreen countdown is on display
func (cd *Countdown) updateQuitGuard(state models.State, fullscreen bool) {
	if state.Running() && fullscreen {
		cd.quitGuard.Engage()
	} else {
		cd.quitGuard.Release()
	}
}

// currentConfig may be called from any goroutine; the returned config must not be mutated
func (cd *Countdown) currentConfig() *models.Config {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	return cd.config
}

func (cd *Countdown) setConfig(cfg *models.Config) {
	cd.mu.Lock()
	cd.config = cfg
	cd.mu.Unlock()
}

func (cd *Countdown) showConfigWindow() {
	// If config window already exists and is showing, just bring it to front
	if cd.configWindow != nil && cd.configWindow.window != nil {
		cd.configWindow.window.RequestFocus()
		cd.configWindow.window.Show()
		return
	}

	cd.configWindow = NewConfigWindow(cd.app, cd.currentConfig(), func(newConfig *models.Config) {
		cd.setConfig(newConfig)
		cd.configStore.Save(newConfig)
		log.Printf("Settings saved (%s); timer changes apply on next launch", configSummary(newConfig))
	})

	cd.configWindow.window.SetOnClosed(func() {
		cd.configWindow = nil
	})

	cd.configWindow.Show()
}

// teardown releases the tick loop and everything tied to the display
func (cd *Countdown) teardown() {
	cd.runner.Close()
	cd.stopAlarm()
	cd.quitGuard.Release()
}

func (cd *Countdown) quit() {
	cd.teardown()
	cd.app.Quit()
}
