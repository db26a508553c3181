package calendar

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
)

const productID = "-//borgmon//Hackathon Countdown//EN"

// Deadline describes a running countdown as a calendar entry
type Deadline struct {
	SessionID string
	Title     string
	Start     time.Time
	End       time.Time
}

// NewCalendar builds a VCALENDAR holding a single VEVENT for the deadline
func NewCalendar(d Deadline, stamp time.Time) (*ical.Calendar, error) {
	if d.SessionID == "" {
		return nil, errors.New("deadline has no session id")
	}
	if !d.End.After(d.Start) {
		return nil, fmt.Errorf("deadline end %s is not after start %s", d.End, d.Start)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, d.SessionID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	event.Props.SetText(ical.PropSummary, d.Title)
	event.Props.SetText(ical.PropDescription, "Countdown deadline")
	event.Props.SetDateTime(ical.PropDateTimeStart, d.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, d.End.UTC())

	cal.Children = append(cal.Children, event.Component)
	return cal, nil
}

// WriteDeadline encodes the deadline as an iCalendar document
func WriteDeadline(w io.Writer, d Deadline, stamp time.Time) error {
	cal, err := NewCalendar(d, stamp)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
