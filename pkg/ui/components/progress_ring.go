package components

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/countdown/pkg/countdown"
)

const (
	ringSegments    = 180
	ringStrokeWidth = 8
	ringMinSize     = 240
)

// ProgressRing draws the countdown fraction as an arc running clockwise from the top
type ProgressRing struct {
	widget.BaseWidget

	fraction float64
}

// NewProgressRing creates a full ring
func NewProgressRing() *ProgressRing {
	r := &ProgressRing{fraction: 1}
	r.ExtendBaseWidget(r)
	return r
}

// SetFraction updates the visible part of the ring, clamped to [0, 1]
func (r *ProgressRing) SetFraction(fraction float64) {
	r.fraction = math.Max(0, math.Min(1, fraction))
	r.Refresh()
}

// Fraction returns the visible part of the ring
func (r *ProgressRing) Fraction() float64 {
	return r.fraction
}

// CreateRenderer implements fyne.Widget
func (r *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewCircle(color.Transparent)
	track.StrokeWidth = ringStrokeWidth / 2

	segments := make([]*canvas.Line, ringSegments)
	for i := range segments {
		segments[i] = canvas.NewLine(theme.PrimaryColor())
		segments[i].StrokeWidth = ringStrokeWidth
	}

	rr := &progressRingRenderer{
		ring:     r,
		track:    track,
		segments: segments,
	}
	rr.applyColors()
	return rr
}

type progressRingRenderer struct {
	ring     *ProgressRing
	track    *canvas.Circle
	segments []*canvas.Line
}

// visibleSegments is how many segments the current fraction lights up
func (rr *progressRingRenderer) visibleSegments() int {
	g := countdown.RingGeometry{Radius: countdown.RingRadius}
	shown := g.StrokeLength(rr.ring.fraction) / g.Circumference()
	return int(math.Round(shown * ringSegments))
}

func (rr *progressRingRenderer) Layout(size fyne.Size) {
	side := fyne.Min(size.Width, size.Height)
	radius := side/2 - ringStrokeWidth
	center := fyne.NewPos(size.Width/2, size.Height/2)

	rr.track.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	rr.track.Resize(fyne.NewSize(radius*2, radius*2))

	step := 2 * math.Pi / ringSegments
	for i, seg := range rr.segments {
		// Start at twelve o'clock and go clockwise
		a0 := -math.Pi/2 + float64(i)*step
		a1 := a0 + step
		seg.Position1 = fyne.NewPos(
			center.X+radius*float32(math.Cos(a0)),
			center.Y+radius*float32(math.Sin(a0)))
		seg.Position2 = fyne.NewPos(
			center.X+radius*float32(math.Cos(a1)),
			center.Y+radius*float32(math.Sin(a1)))
	}
}

func (rr *progressRingRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ringMinSize, ringMinSize)
}

func (rr *progressRingRenderer) Refresh() {
	rr.applyColors()
	rr.Layout(rr.ring.Size())
	canvas.Refresh(rr.ring)
}

func (rr *progressRingRenderer) applyColors() {
	track := theme.DisabledColor()
	if c, ok := track.(color.NRGBA); ok {
		c.A /= 4
		track = c
	}
	rr.track.StrokeColor = track

	visible := rr.visibleSegments()
	for i, seg := range rr.segments {
		seg.StrokeColor = theme.PrimaryColor()
		if i < visible {
			seg.Show()
		} else {
			seg.Hide()
		}
	}
}

func (rr *progressRingRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(rr.segments)+1)
	objects = append(objects, rr.track)
	for _, seg := range rr.segments {
		objects = append(objects, seg)
	}
	return objects
}

func (rr *progressRingRenderer) Destroy() {}
