package main

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/countdown/pkg/models"
)

var (
	holdTimeOptions     = []string{"1 sec", "2 sec", "3 sec", "5 sec", "10 sec"}
	alarmSecondsOptions = []string{"5 sec", "10 sec", "30 sec", "60 sec"}
)

func (cw *ConfigWindow) buildTimerTab() fyne.CanvasObject {
	cw.persistProgressCheck = widget.NewCheck("Keep progress across restarts", func(checked bool) {
		cw.markChanged()
	})
	cw.persistProgressCheck.SetChecked(cw.config.PersistProgress)

	cw.allowStopCheck = widget.NewCheck("Allow stopping the countdown", func(checked bool) {
		cw.markChanged()
	})
	cw.allowStopCheck.SetChecked(cw.config.AllowStop)

	cw.allowPauseCheck = widget.NewCheck("Allow pausing the countdown", func(checked bool) {
		cw.markChanged()
	})
	cw.allowPauseCheck.SetChecked(cw.config.AllowPause)

	cw.holdTimeSelect = widget.NewSelect(holdTimeOptions, func(string) {
		cw.markChanged()
	})
	cw.holdTimeSelect.SetSelected(formatSeconds(cw.config.HoldTime()))

	restartHelp := widget.NewLabel("Changes to these options apply the next time the app starts")
	restartHelp.Importance = widget.WarningImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Progress:"), cw.persistProgressCheck,
		widget.NewLabel("Stop:"), cw.allowStopCheck,
		widget.NewLabel("Pause:"), cw.allowPauseCheck,
		widget.NewLabel("Hold to stop:"), cw.holdTimeSelect,
	)

	content := container.NewVBox(
		widget.NewLabel("Timer Settings"),
		widget.NewSeparator(),
		form,
		restartHelp,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (cw *ConfigWindow) buildAlarmTab() fyne.CanvasObject {
	cw.alarmEnabledCheck = widget.NewCheck("Play an alarm when time is up", func(checked bool) {
		cw.markChanged()
	})
	cw.alarmEnabledCheck.SetChecked(cw.config.AlarmEnabled)

	cw.alarmSoundEntry = widget.NewEntry()
	cw.alarmSoundEntry.SetPlaceHolder("Built-in chime")
	cw.alarmSoundEntry.SetText(cw.config.AlarmSound)
	cw.alarmSoundEntry.OnChanged = func(string) {
		cw.markChanged()
	}

	browseButton := widget.NewButton("Browse...", func() {
		picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			cw.alarmSoundEntry.SetText(reader.URI().Path())
		}, cw.window)
		picker.SetFilter(storage.NewExtensionFileFilter([]string{".wav"}))
		picker.Show()
	})

	clearButton := widget.NewButton("Use Chime", func() {
		cw.alarmSoundEntry.SetText("")
	})

	cw.alarmSecondsSelect = widget.NewSelect(alarmSecondsOptions, func(string) {
		cw.markChanged()
	})
	cw.alarmSecondsSelect.SetSelected(formatSeconds(cw.config.AlarmSeconds))

	soundHelp := widget.NewLabel("16-bit PCM WAV file")
	soundHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Alarm:"), cw.alarmEnabledCheck,
		container.NewVBox(widget.NewLabel("Sound:"), soundHelp),
		container.NewBorder(nil, nil, nil, container.NewHBox(browseButton, clearButton), cw.alarmSoundEntry),
		widget.NewLabel("Play for:"), cw.alarmSecondsSelect,
	)

	content := container.NewVBox(
		widget.NewLabel("Alarm Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func formatSeconds(seconds int) string {
	return fmt.Sprintf("%d sec", seconds)
}

// parseSeconds reads "5 sec" back into 5, returning fallback when it cannot
func parseSeconds(selected string, fallback int) int {
	var val int
	if _, err := fmt.Sscanf(strings.TrimSpace(selected), "%d sec", &val); err != nil || val <= 0 {
		return fallback
	}
	return val
}

// configSummary is logged after saving
func configSummary(c *models.Config) string {
	return fmt.Sprintf("persist=%v stop=%v pause=%v hold=%ds alarm=%v",
		c.PersistProgress, c.AllowStop, c.AllowPause, c.HoldTime(), c.AlarmEnabled)
}
