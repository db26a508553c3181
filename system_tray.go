package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/countdown/pkg/countdown"
	"github.com/borgmon/countdown/pkg/models"
)

func (cd *Countdown) setupSystemTray() {
	cd.updateSystemTrayMenu(cd.timer.State())
}

func (cd *Countdown) updateSystemTrayMenu(state models.State) {
	desk, ok := cd.app.(desktop.App)
	if !ok {
		return
	}

	headerItem := fyne.NewMenuItem(trayHeader(state), nil)
	headerItem.Disabled = true

	startLabel := "Start Countdown"
	if state.Phase == models.PhasePaused {
		startLabel = "Resume"
	}
	startItem := fyne.NewMenuItem(startLabel, cd.start)
	startItem.Disabled = state.Running() || state.Finished()

	pauseItem := fyne.NewMenuItem("Pause", cd.pause)
	pauseItem.Disabled = !state.Running() || !cd.timer.CanPause()

	stopItem := fyne.NewMenuItem("Stop", cd.stop)
	stopItem.Disabled = !(state.Running() || state.Phase == models.PhasePaused) || !cd.timer.CanStop()

	exportItem := fyne.NewMenuItem("Export Deadline", func() {
		uri, err := cd.exportDeadline()
		if err != nil {
			log.Printf("Failed to export deadline: %v", err)
			return
		}
		log.Printf("Deadline exported to %s", uri)
	})
	exportItem.Disabled = !state.Running()

	menuItems := []*fyne.MenuItem{
		headerItem,
		fyne.NewMenuItemSeparator(),
		startItem,
		pauseItem,
		stopItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Fullscreen", func() {
			cd.window.ToggleFullscreen()
		}),
		exportItem,
		fyne.NewMenuItem("Settings", func() {
			cd.showConfigWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			cd.quit()
		}),
	}

	menu := fyne.NewMenu(cd.branding.Title, menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// trayHeader summarizes the countdown for the tray menu
func trayHeader(state models.State) string {
	switch state.Phase {
	case models.PhaseRunning:
		if !state.EndsAt.IsZero() {
			return fmt.Sprintf("Running - ends %s", state.EndsAt.Local().Format("Mon 3:04 PM"))
		}
		return countdown.StatusText(state)
	case models.PhasePaused:
		return fmt.Sprintf("Paused - %s left", countdown.FormatTime(state.RemainingSeconds))
	default:
		return countdown.StatusText(state)
	}
}
