package components

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const holdTickInterval = 50 * time.Millisecond

// HoldButton is a button that fires only after being held down for HoldTime
type HoldButton struct {
	widget.BaseWidget
	Text        string
	HoldTime    time.Duration
	OnConfirmed func()

	mu       sync.Mutex
	holding  bool
	hovered  bool
	progress float64
	ticker   *time.Ticker
}

// NewHoldButton creates a new HoldButton
func NewHoldButton(text string, hold time.Duration, onConfirmed func()) *HoldButton {
	b := &HoldButton{
		Text:        text,
		HoldTime:    hold,
		OnConfirmed: onConfirmed,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Progress returns how far the current hold has got, in [0, 1]
func (b *HoldButton) Progress() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.progress
}

// Tapped implements fyne.Tappable
func (b *HoldButton) Tapped(*fyne.PointEvent) {}

// TappedSecondary implements fyne.SecondaryTappable
func (b *HoldButton) TappedSecondary(*fyne.PointEvent) {}

// MouseIn implements desktop.Hoverable
func (b *HoldButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (b *HoldButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *HoldButton) MouseOut() {
	b.hovered = false
	// Stop holding when mouse leaves
	b.release()
	b.Refresh()
}

// MouseDown implements desktop.Mouseable
func (b *HoldButton) MouseDown(*desktop.MouseEvent) {
	b.press()
}

// MouseUp implements desktop.Mouseable
func (b *HoldButton) MouseUp(*desktop.MouseEvent) {
	b.release()
}

func (b *HoldButton) press() {
	b.mu.Lock()
	if b.holding {
		b.mu.Unlock()
		return
	}
	b.holding = true
	b.progress = 0

	hold := b.HoldTime
	if hold < holdTickInterval {
		hold = holdTickInterval
	}
	increment := float64(holdTickInterval) / float64(hold)
	ticker := time.NewTicker(holdTickInterval)
	b.ticker = ticker
	b.mu.Unlock()

	b.Refresh()

	go func() {
		for range ticker.C {
			b.mu.Lock()
			if !b.holding || b.ticker != ticker {
				b.mu.Unlock()
				return
			}
			b.progress += increment
			done := b.progress >= 1
			if done {
				b.holding = false
				b.progress = 0
				b.ticker = nil
				ticker.Stop()
			}
			b.mu.Unlock()

			fyne.Do(b.Refresh)

			if done {
				if b.OnConfirmed != nil {
					b.OnConfirmed()
				}
				return
			}
		}
	}()
}

func (b *HoldButton) release() {
	b.mu.Lock()
	if !b.holding {
		b.mu.Unlock()
		return
	}
	b.holding = false
	b.progress = 0
	if b.ticker != nil {
		b.ticker.Stop()
		b.ticker = nil
	}
	b.mu.Unlock()

	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *HoldButton) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.Text, theme.ForegroundColor())
	text.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(theme.ButtonColor())
	bg.CornerRadius = theme.InputRadiusSize()
	progressBar := canvas.NewRectangle(theme.ErrorColor())

	return &holdButtonRenderer{
		button:      b,
		text:        text,
		bg:          bg,
		progressBar: progressBar,
	}
}

type holdButtonRenderer struct {
	button      *HoldButton
	text        *canvas.Text
	bg          *canvas.Rectangle
	progressBar *canvas.Rectangle
}

func (r *holdButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Resize(size)

	// Progress bar fills from left to right
	progressWidth := size.Width * float32(r.button.Progress())
	r.progressBar.Resize(fyne.NewSize(progressWidth, size.Height))
	r.progressBar.Move(fyne.NewPos(0, 0))
}

func (r *holdButtonRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	minWidth := textSize.Width + theme.Padding()*4
	minHeight := textSize.Height + theme.Padding()*2

	if minWidth < 200 {
		minWidth = 200
	}
	if minHeight < 48 {
		minHeight = 48
	}

	return fyne.NewSize(minWidth, minHeight)
}

func (r *holdButtonRenderer) Refresh() {
	r.text.Text = r.button.Text
	r.text.Color = theme.ForegroundColor()

	if r.button.hovered {
		r.bg.FillColor = theme.HoverColor()
	} else {
		r.bg.FillColor = theme.ButtonColor()
	}

	r.Layout(r.bg.Size())

	r.bg.Refresh()
	r.progressBar.Refresh()
	r.text.Refresh()
}

func (r *holdButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.progressBar, r.text}
}

func (r *holdButtonRenderer) Destroy() {}

func (r *holdButtonRenderer) BackgroundColor() color.Color {
	return theme.ButtonColor()
}
