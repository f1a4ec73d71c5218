package backdrop

import (
	"image/color"
	"math"
)

const (
	sunnyFrames = 20

	glowMaxRadius = 150
	glowStep      = 5
	glowIntensity = 0.1
	glowBlur      = 20

	coreRadius  = 40
	rayCount    = 12
	rayLength   = 300
	rayWidth    = 20
	overlayBlur = 10
)

var (
	sunnySky   = Gradient{Top: RGB{20, 100, 200}, Bottom: RGB{255, 220, 150}}
	glowColour = color.NRGBA{R: 255, G: 255, B: 200}
	coreColour = color.NRGBA{R: 255, G: 255, B: 240, A: 200}
	rayColour  = color.NRGBA{R: 255, G: 255, B: 255, A: 15}
)

// Sunny is a warm sky with a soft sun bloom, a pulsing core and slowly
// turning rays.
type Sunny struct {
	base   *Frame
	glow   *Layer
	cx, cy float64
}

// NewSunny creates an instance of a Sunny animation.
func NewSunny(width, height int) *Sunny {
	s := new(Sunny)
	s.base = sunnySky.Render(width, height)
	s.cx = float64(width / 2)
	s.cy = float64(height / 5)
	s.glow = radialGlow(width, height, s.cx, s.cy)
	return s
}

// radialGlow approximates a radial gradient with shrinking concentric
// circles, each more opaque than the last, then softens the rings.
func radialGlow(width, height int, cx, cy float64) *Layer {
	l := NewLayer(width, height)
	for r := glowMaxRadius; r > 0; r -= glowStep {
		c := glowColour
		c.A = uint8(255 * (1 - float64(r)/glowMaxRadius) * glowIntensity)
		l.FillCircle(cx, cy, float64(r), c)
	}
	return l.Blur(glowBlur)
}

// CalculateFrame creates a new Frame instance.
func (s *Sunny) CalculateFrame(index int) *Frame {
	f := s.base.Clone()
	f.Composite(s.glow)

	b := f.Bounds()
	overlay := NewLayer(b.Dx(), b.Dy())
	pulse := 5 + 2*math.Sin(float64(index)*0.3)
	overlay.FillCircle(s.cx, s.cy, coreRadius+pulse, coreColour)

	step := 360 / rayCount
	for angle := 0; angle < 360; angle += step {
		rad := float64(angle+index) * math.Pi / 180
		ex := s.cx + rayLength*math.Cos(rad)
		ey := s.cy + rayLength*math.Sin(rad)
		overlay.Line(s.cx, s.cy, ex, ey, rayWidth, rayColour)
	}

	f.Composite(overlay.Blur(overlayBlur))
	return f
}
