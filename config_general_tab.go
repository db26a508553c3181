package main

import (
	"log"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func (cw *ConfigWindow) buildGeneralTab() fyne.CanvasObject {
	cw.autoStartCheck = widget.NewCheck("Auto Start on System Boot", func(checked bool) {
		cw.markChanged()
	})
	cw.autoStartCheck.SetChecked(cw.config.AutoStart)

	cw.startFullscreenCheck = widget.NewCheck("Open in fullscreen", func(checked bool) {
		cw.markChanged()
	})
	cw.startFullscreenCheck.SetChecked(cw.config.StartFullScreen)

	// Storage root URI display (read-only)
	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(cw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		openInFileManager(cw.app.Storage().RootURI().Path())
	})

	autoStartHelp := widget.NewLabel("Launch the countdown automatically when your system starts")
	fullscreenHelp := widget.NewLabel("Take over the whole screen on launch. F11 toggles, Escape leaves")

	storageHelp := widget.NewLabel("Settings, countdown progress and exported deadlines are stored here")
	storageHelp.Wrapping = fyne.TextWrapWord

	storageContainer := container.NewBorder(
		nil,
		container.NewPadded(openStorageButton),
		nil,
		nil,
		storageURIEntry,
	)

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(widget.NewLabel("Auto Start:"), autoStartHelp),
		cw.autoStartCheck,

		container.NewVBox(widget.NewLabel("Fullscreen:"), fullscreenHelp),
		cw.startFullscreenCheck,

		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		storageContainer,
	)

	content := container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func openInFileManager(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		log.Printf("Unsupported OS: %s", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Error opening file manager: %v", err)
	}
}
