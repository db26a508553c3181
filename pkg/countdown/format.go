package countdown

import (
	"fmt"
	"math"

	"github.com/borgmon/countdown/pkg/models"
)

// RingRadius is the radius of the progress ring in view units
const RingRadius = 110.0

// FormatTime renders seconds as MM:SS, or HH:MM:SS from one hour up
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Progress returns the fraction of the countdown still left, in [0, 1]
func Progress(remaining, total int) float64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= total {
		return 1
	}
	return float64(remaining) / float64(total)
}

// RingGeometry maps a progress fraction onto a dashed circle stroke
type RingGeometry struct {
	Radius float64
}

// Circumference returns the stroke length of the full ring
func (g RingGeometry) Circumference() float64 {
	return 2 * math.Pi * g.Radius
}

// StrokeLength returns the drawn arc length: the full circumference at 1, zero at 0
func (g RingGeometry) StrokeLength(fraction float64) float64 {
	return g.Circumference() * clampFraction(fraction)
}

// DashOffset returns the hidden stroke length, the complement of StrokeLength
func (g RingGeometry) DashOffset(fraction float64) float64 {
	return g.Circumference() * (1 - clampFraction(fraction))
}

func clampFraction(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// StatusText is the caption shown under the readout
func StatusText(state models.State) string {
	switch state.Phase {
	case models.PhaseRunning:
		return "Running..."
	case models.PhasePaused:
		return "Paused"
	case models.PhaseFinished:
		return "Time's up!"
	default:
		return "Ready to start"
	}
}
