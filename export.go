package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/countdown/pkg/calendar"
	"github.com/borgmon/countdown/pkg/models"
)

const deadlineFileName = "deadline.ics"

var errNotRunning = errors.New("countdown is not running")

// deadlineFor describes a running countdown as a calendar entry
func deadlineFor(state models.State, title string, now time.Time) (calendar.Deadline, error) {
	if !state.Running() || state.EndsAt.IsZero() {
		return calendar.Deadline{}, errNotRunning
	}
	return calendar.Deadline{
		SessionID: state.SessionID,
		Title:     title,
		Start:     now,
		End:       state.EndsAt,
	}, nil
}

// writeDeadline encodes the deadline for the given state into w
func writeDeadline(w io.Writer, state models.State, title string, now time.Time) error {
	d, err := deadlineFor(state, title, now)
	if err != nil {
		return err
	}
	return calendar.WriteDeadline(w, d, now)
}

// exportDeadline writes the running deadline into the app storage root
func (cd *Countdown) exportDeadline() (fyne.URI, error) {
	state := cd.timer.State()
	if !state.Running() {
		return nil, errNotRunning
	}

	uri, err := storage.Child(cd.app.Storage().RootURI(), deadlineFileName)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", deadlineFileName, err)
	}

	w, err := storage.Writer(uri)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	defer w.Close()

	if err := writeDeadline(w, state, cd.branding.Title, time.Now()); err != nil {
		return nil, err
	}
	return uri, nil
}
