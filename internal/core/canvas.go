package core

// Canvas is the drawing surface every variant's Draw emits to. Coordinates
// are logical units; the implementation owns scaling to its device.
type Canvas interface {
	// Clear fills the whole surface with the background.
	Clear()
	// Rect fills a rectangle. glow is the halo color where the device can
	// show one, fill is the body.
	Rect(x, y, w, h float64, glow, fill Color)
	// Text draws a label centered on (x, y).
	Text(text string, x, y, size float64)
	// Line draws a one-unit stroke.
	Line(x1, y1, x2, y2 float64, c Color)
	// Circle fills a disc.
	Circle(cx, cy, r float64, c Color)
}

// Audio plays short synthesized tones. Calls are fire-and-forget.
type Audio interface {
	PlayTone(freqHz, durSeconds float64)
}

// Silence is an Audio that plays nothing.
type Silence struct{}

// PlayTone does nothing.
func (Silence) PlayTone(float64, float64) {}

// Discard is a Canvas that drops every op.
var Discard Canvas = discard{}

type discard struct{}

func (discard) Clear() {}
func (discard) Rect(_, _, _, _ float64, _, _ Color) {}
func (discard) Text(_ string, _, _, _ float64) {}
func (discard) Line(_, _, _, _ float64, _ Color) {}
func (discard) Circle(_, _, _ float64, _ Color) {}
