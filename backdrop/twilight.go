package backdrop

import "math"

const twilightFrames = 20

var twilightBottom = RGB{20, 20, 40}

// Twilight is the fallback background: a deep purple gradient whose top
// drifts slightly in red.
type Twilight struct {
	width  int
	height int
}

// NewTwilight creates an instance of a Twilight animation.
func NewTwilight(width, height int) *Twilight {
	return &Twilight{width: width, height: height}
}

// TopColor gets the top stop for a frame index.
func (t *Twilight) TopColor(index int) RGB {
	shift := math.Sin(float64(index)*0.2) * 10
	return RGB{40 + int(shift), 20, 60}
}

// CalculateFrame creates a new Frame instance.
func (t *Twilight) CalculateFrame(index int) *Frame {
	g := Gradient{Top: t.TopColor(index), Bottom: twilightBottom}
	return g.Render(t.width, t.height)
}
