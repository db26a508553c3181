package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/countdown/pkg/branding"
	"github.com/borgmon/countdown/pkg/countdown"
	"github.com/borgmon/countdown/pkg/models"
	"github.com/borgmon/countdown/pkg/ui/components"
)

const (
	timeTextSize   = 56
	statusTextSize = 18
	titleTextSize  = 32
)

// windowActions are the app-level handlers the countdown window triggers
type windowActions struct {
	start            func()
	stop             func()
	pause            func()
	settings         func()
	fullscreenChange func(bool)
	closed           func()
}

type CountdownWindow struct {
	window   fyne.Window
	app      fyne.App
	branding *branding.Branding
	config   *models.Config
	actions  windowActions

	ring             *components.ProgressRing
	timeText         *canvas.Text
	statusText       *canvas.Text
	startButton      *widget.Button
	pauseButton      *widget.Button
	stopButton       *components.HoldButton
	fullscreenButton *widget.Button

	canStop      bool
	canPause     bool
	isFullscreen bool
	phase        models.Phase
}

func NewCountdownWindow(app fyne.App, b *branding.Branding, config *models.Config, canStop, canPause bool, actions windowActions) *CountdownWindow {
	cw := &CountdownWindow{
		app:      app,
		branding: b,
		config:   config,
		actions:  actions,
		canStop:  canStop,
		canPause: canPause,
		phase:    models.PhaseReady,
	}

	cw.window = app.NewWindow(b.Title)
	cw.window.SetMaster()
	cw.buildUI()
	cw.setupKeyboardShortcuts()

	cw.window.SetOnClosed(func() {
		if cw.actions.closed != nil {
			cw.actions.closed()
		}
	})

	return cw
}

func (cw *CountdownWindow) buildUI() {
	title := canvas.NewText(cw.branding.Title, theme.ForegroundColor())
	title.TextSize = titleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	cw.ring = components.NewProgressRing()

	cw.timeText = canvas.NewText(countdown.FormatTime(0), theme.ForegroundColor())
	cw.timeText.TextSize = timeTextSize
	cw.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	cw.timeText.Alignment = fyne.TextAlignCenter

	cw.statusText = canvas.NewText("", theme.DisabledColor())
	cw.statusText.TextSize = statusTextSize
	cw.statusText.Alignment = fyne.TextAlignCenter

	dial := container.NewStack(
		cw.ring,
		container.NewCenter(container.NewVBox(cw.timeText, cw.statusText)),
	)

	cw.startButton = widget.NewButtonWithIcon("Start Countdown", theme.MediaPlayIcon(), func() {
		cw.actions.start()
	})
	cw.startButton.Importance = widget.HighImportance

	cw.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() {
		cw.actions.pause()
	})

	hold := time.Duration(cw.config.HoldTime()) * time.Second
	cw.stopButton = components.NewHoldButton(
		fmt.Sprintf("Stop (Hold %ds)", int(hold.Seconds())), hold, func() {
			cw.actions.stop()
		})

	cw.fullscreenButton = widget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), func() {
		cw.ToggleFullscreen()
	})
	cw.fullscreenButton.Importance = widget.LowImportance

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		cw.actions.settings()
	})
	settingsButton.Importance = widget.LowImportance

	controls := container.NewCenter(container.NewHBox(cw.startButton, cw.pauseButton, cw.stopButton))

	body := container.NewVBox(
		cw.buildLogoRow(cw.branding.Header),
		container.NewPadded(title),
		dial,
		controls,
	)

	toolbar := container.NewHBox(layout.NewSpacer(), settingsButton, cw.fullscreenButton)
	content := container.NewBorder(
		toolbar,
		cw.buildLogoRow(cw.branding.Footer),
		nil,
		nil,
		container.NewCenter(body),
	)

	cw.window.SetContent(content)
	cw.window.Resize(fyne.NewSize(900, 760))
	cw.window.CenterOnScreen()
}

// buildLogoRow lays out the logos that exist next to the binary
func (cw *CountdownWindow) buildLogoRow(logos []branding.Logo) fyne.CanvasObject {
	row := container.NewHBox(layout.NewSpacer())

	for _, logo := range branding.Resolve(logos, executableDir()) {
		img := canvas.NewImageFromFile(logo.Path)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(logo.Height*2, logo.Height))
		row.Add(img)
	}

	row.Add(layout.NewSpacer())
	return row
}

func (cw *CountdownWindow) setupKeyboardShortcuts() {
	cw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyF11:
			cw.ToggleFullscreen()
		case fyne.KeyEscape:
			if cw.isFullscreen {
				cw.SetFullscreen(false)
			}
		case fyne.KeySpace:
			if cw.phase == models.PhaseReady || cw.phase == models.PhasePaused {
				cw.actions.start()
			}
		}
	})
}

// Render shows the given countdown state. Must run on the UI thread.
func (cw *CountdownWindow) Render(state models.State) {
	cw.phase = state.Phase
	cw.ring.SetFraction(countdown.Progress(state.RemainingSeconds, state.TotalSeconds))

	if state.Finished() {
		cw.timeText.Text = countdown.StatusText(state)
		cw.statusText.Text = ""
	} else {
		cw.timeText.Text = countdown.FormatTime(state.RemainingSeconds)
		cw.statusText.Text = countdown.StatusText(state)
	}
	cw.timeText.Refresh()
	cw.statusText.Refresh()

	switch state.Phase {
	case models.PhaseReady:
		cw.startButton.SetText("Start Countdown")
		cw.startButton.Show()
	case models.PhasePaused:
		cw.startButton.SetText("Resume")
		cw.startButton.Show()
	default:
		cw.startButton.Hide()
	}

	active := state.Running() || state.Phase == models.PhasePaused
	setVisible(cw.pauseButton, state.Running() && cw.canPause)
	setVisible(cw.stopButton, active && cw.canStop)
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// fullscreenSupported probes whether the running driver can change window modes
func fullscreenSupported(app fyne.App) bool {
	_, ok := app.Driver().(desktop.Driver)
	return ok
}

func (cw *CountdownWindow) ToggleFullscreen() {
	cw.SetFullscreen(!cw.window.FullScreen())
}

func (cw *CountdownWindow) SetFullscreen(fullscreen bool) {
	if !fullscreenSupported(cw.app) {
		log.Println("Fullscreen not supported")
		return
	}
	// The window manager may have left fullscreen on its own
	cw.isFullscreen = cw.window.FullScreen()
	if fullscreen == cw.isFullscreen {
		return
	}

	cw.window.SetFullScreen(fullscreen)
	cw.isFullscreen = fullscreen

	if fullscreen {
		cw.fullscreenButton.SetIcon(theme.ViewRestoreIcon())
	} else {
		cw.fullscreenButton.SetIcon(theme.ViewFullScreenIcon())
	}
	log.Printf("Fullscreen: %v", fullscreen)

	if cw.actions.fullscreenChange != nil {
		cw.actions.fullscreenChange(fullscreen)
	}
}

func (cw *CountdownWindow) IsFullscreen() bool {
	return cw.isFullscreen
}

func (cw *CountdownWindow) RequestFocus() {
	cw.window.Show()
	cw.window.RequestFocus()
}

func (cw *CountdownWindow) Show() {
	cw.window.Show()
}
