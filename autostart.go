package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

func setupAutostart(enable bool) error {
	// Get the executable path
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	entry := &autostart.App{
		Name:        "hackathon-countdown",
		DisplayName: "Hackathon Countdown",
		Exec:        []string{execPath},
	}

	switch {
	case enable && !entry.IsEnabled():
		if err := entry.Enable(); err != nil {
			log.Printf("Failed to enable autostart: %v", err)
			return err
		}
		log.Println("Autostart enabled")
	case !enable && entry.IsEnabled():
		if err := entry.Disable(); err != nil {
			log.Printf("Failed to disable autostart: %v", err)
			return err
		}
		log.Println("Autostart disabled")
	}

	return nil
}

// executableDir is where bundled assets are looked up next to the binary
func executableDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath)
}
