package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/countdown/pkg/models"
)

// Cmd+S on macOS, Ctrl+S elsewhere
var desktopSaveShortcut = desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}

type ConfigWindow struct {
	window fyne.Window
	app    fyne.App
	config *models.Config
	onSave func(*models.Config)

	// General tab
	autoStartCheck       *widget.Check
	startFullscreenCheck *widget.Check

	// Timer tab
	persistProgressCheck *widget.Check
	allowStopCheck       *widget.Check
	allowPauseCheck      *widget.Check
	holdTimeSelect       *widget.Select

	// Alarm tab
	alarmEnabledCheck  *widget.Check
	alarmSoundEntry    *widget.Entry
	alarmSecondsSelect *widget.Select

	// UI state
	hasUnsavedChanges bool
	saveStatusLabel   *widget.Label
	saveButton        *widget.Button
}

func NewConfigWindow(app fyne.App, config *models.Config, onSave func(*models.Config)) *ConfigWindow {
	cw := &ConfigWindow{
		app:    app,
		config: config,
		onSave: onSave,
	}

	cw.window = app.NewWindow("Hackathon Countdown - Settings")
	cw.buildUI()

	return cw
}

func (cw *ConfigWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", cw.buildGeneralTab()),
		container.NewTabItem("Timer", cw.buildTimerTab()),
		container.NewTabItem("Alarm", cw.buildAlarmTab()),
	)

	// Initial SetChecked/SetSelected calls fire change callbacks
	cw.hasUnsavedChanges = false

	// Save status label
	cw.saveStatusLabel = widget.NewLabel("")
	cw.saveStatusLabel.Importance = widget.SuccessImportance

	cw.saveButton = widget.NewButton("Save", func() {
		cw.save()
	})
	cw.saveButton.Importance = widget.HighImportance
	cw.saveButton.Disable() // Initially disabled until changes are made

	closeButton := widget.NewButton("Close", func() {
		cw.handleClose()
	})

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(cw.saveButton, cw.saveStatusLabel),
		closeButton,
		container.NewHBox(),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		tabs,
	)

	cw.window.SetContent(content)
	cw.window.Resize(fyne.NewSize(720, 520))
	cw.window.CenterOnScreen()

	cw.setupKeyboardShortcuts()

	// Add close interceptor for unsaved changes
	cw.window.SetCloseIntercept(func() {
		cw.handleClose()
	})
}

func (cw *ConfigWindow) save() {
	cw.saveButton.Disable()
	cw.setStatus("Saving...", widget.MediumImportance)

	newConfig := cw.getConfigFromUI()
	go func() {
		// Handle autostart setting
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			fyne.Do(func() {
				cw.setStatus("Error: Failed to set autostart", widget.DangerImportance)
				cw.updateSaveButtonState()
			})
			return
		}

		if cw.onSave != nil {
			cw.onSave(newConfig)
		}

		fyne.Do(func() {
			cw.config = newConfig
			cw.hasUnsavedChanges = false
			cw.setStatus("Settings saved successfully", widget.SuccessImportance)
			cw.updateSaveButtonState()

			// Clear success message after 3 seconds
			time.AfterFunc(3*time.Second, func() {
				fyne.Do(func() {
					if cw.saveStatusLabel.Text == "Settings saved successfully" {
						cw.setStatus("", widget.SuccessImportance)
					}
				})
			})
		})
	}()
}

func (cw *ConfigWindow) setStatus(text string, importance widget.Importance) {
	cw.saveStatusLabel.SetText(text)
	cw.saveStatusLabel.Importance = importance
	cw.saveStatusLabel.Refresh()
}

func (cw *ConfigWindow) getConfigFromUI() *models.Config {
	return &models.Config{
		AutoStart:       cw.autoStartCheck.Checked,
		StartFullScreen: cw.startFullscreenCheck.Checked,
		PersistProgress: cw.persistProgressCheck.Checked,
		AllowStop:       cw.allowStopCheck.Checked,
		AllowPause:      cw.allowPauseCheck.Checked,
		HoldTimeSeconds: parseSeconds(cw.holdTimeSelect.Selected, cw.config.HoldTimeSeconds),
		AlarmEnabled:    cw.alarmEnabledCheck.Checked,
		AlarmSound:      cw.alarmSoundEntry.Text,
		AlarmSeconds:    parseSeconds(cw.alarmSecondsSelect.Selected, cw.config.AlarmSeconds),
	}
}

func (cw *ConfigWindow) Show() {
	cw.window.Show()
}

// markChanged marks the config as having unsaved changes
func (cw *ConfigWindow) markChanged() {
	cw.hasUnsavedChanges = true
	cw.updateSaveButtonState()
}

// updateSaveButtonState enables or disables the save button based on changes
func (cw *ConfigWindow) updateSaveButtonState() {
	if cw.saveButton == nil {
		return
	}
	if cw.hasUnsavedChanges {
		cw.saveButton.Enable()
	} else {
		cw.saveButton.Disable()
	}
}

// handleClose handles window close with unsaved changes check
func (cw *ConfigWindow) handleClose() {
	if cw.hasActualChanges() {
		dialog.ShowConfirm("Unsaved Changes",
			"You have unsaved changes. Are you sure you want to close?",
			func(confirmed bool) {
				if confirmed {
					cw.window.Close()
				}
			}, cw.window)
		return
	}
	cw.window.Close()
}

// hasActualChanges checks if the current UI state differs from the saved config
func (cw *ConfigWindow) hasActualChanges() bool {
	return !cw.getConfigFromUI().Equal(cw.config)
}

func (cw *ConfigWindow) setupKeyboardShortcuts() {
	cw.window.Canvas().AddShortcut(&desktopSaveShortcut, func(fyne.Shortcut) {
		if cw.hasUnsavedChanges {
			cw.save()
		}
	})

	cw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			cw.handleClose()
		}
	})
}
