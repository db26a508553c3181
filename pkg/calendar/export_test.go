package calendar

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDeadline(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	d := Deadline{
		SessionID: "2b1c6a8e-session",
		Title:     "CodeFest Hackathon",
		Start:     start,
		End:       start.Add(24 * time.Hour),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDeadline(&buf, d, start))

	text := buf.String()
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "UID:2b1c6a8e-session")
	assert.Contains(t, text, "DTEND:20260315T090000Z")

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "CodeFest Hackathon", summary)

	end, err := events[0].DateTimeEnd(time.UTC)
	require.NoError(t, err)
	assert.True(t, end.Equal(d.End))
}

func TestWriteDeadline_Rejects(t *testing.T) {
	now := time.Now()

	err := WriteDeadline(&bytes.Buffer{}, Deadline{Start: now, End: now.Add(time.Hour)}, now)
	assert.Error(t, err)

	err = WriteDeadline(&bytes.Buffer{}, Deadline{SessionID: "x", Start: now, End: now}, now)
	assert.Error(t, err)
}
