package components

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestProgressRing_Segments(t *testing.T) {
	test.NewTempApp(t)

	ring := NewProgressRing()
	r := ring.CreateRenderer().(*progressRingRenderer)

	assert.Equal(t, ringSegments, r.visibleSegments())

	ring.SetFraction(0.5)
	r.Refresh()
	assert.Equal(t, ringSegments/2, r.visibleSegments())
	assert.True(t, r.segments[ringSegments/2-1].Visible())
	assert.False(t, r.segments[ringSegments/2].Visible())

	ring.SetFraction(0)
	r.Refresh()
	assert.Equal(t, 0, r.visibleSegments())
	assert.False(t, r.segments[0].Visible())
}

func TestProgressRing_Clamps(t *testing.T) {
	test.NewTempApp(t)

	ring := NewProgressRing()
	ring.SetFraction(3)
	assert.Equal(t, 1.0, ring.Fraction())
	ring.SetFraction(-1)
	assert.Equal(t, 0.0, ring.Fraction())
}

func TestHoldButton_ConfirmsAfterHold(t *testing.T) {
	test.NewTempApp(t)

	var fired atomic.Int32
	b := NewHoldButton("Stop", 150*time.Millisecond, func() {
		fired.Add(1)
	})

	b.MouseDown(nil)
	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.0, b.Progress())

	// Releasing after confirmation does not fire again
	b.MouseUp(nil)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestHoldButton_EarlyReleaseCancels(t *testing.T) {
	test.NewTempApp(t)

	var fired atomic.Int32
	b := NewHoldButton("Stop", time.Second, func() {
		fired.Add(1)
	})

	b.MouseDown(nil)
	time.Sleep(120 * time.Millisecond)
	b.MouseUp(nil)

	assert.Equal(t, 0.0, b.Progress())
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestHoldButton_MouseOutCancels(t *testing.T) {
	test.NewTempApp(t)

	var fired atomic.Int32
	b := NewHoldButton("Stop", 300*time.Millisecond, func() {
		fired.Add(1)
	})

	b.MouseDown(nil)
	b.MouseOut()
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
